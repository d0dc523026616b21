package registration

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/company"
	domreg "supplier-marketplace/internal/domain/registration"
	"supplier-marketplace/internal/domain/user"
	reqdto "supplier-marketplace/internal/handler/dto/request"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/usecase/commands"
	"supplier-marketplace/internal/usecase/queries"
	"supplier-marketplace/internal/usecase/shared"
)

var (
	ErrINNRequired     = errs.Mark(errs.New("INN is required for supplier registration"), errs.ErrInvalidInput)
	ErrCompanyNotOwned = errs.Mark(errs.New("Company does not belong to this account"), errs.ErrForbidden)
)

// Input is everything the sign-up form collects before the survey.
type Input struct {
	Email    string
	Password string
	Role     string
	INN      string
	Name     string
	FullName *string
	Region   *string
}

// Pending identifies a registration waiting for its survey. The password is kept by the caller
// so the saga can log in once the survey is saved.
type Pending struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Email     string
	Password  string
}

type Result struct {
	State   domreg.State
	History []domreg.State
	User    *queries.UserView
	Company *queries.CompanyView
	Pending *Pending
	Login   *commands.LoginResult
}

// Registrar drives the registration saga; Orchestrator implements it.
type Registrar interface {
	Register(ctx context.Context, in Input) (*Result, error)
	CompleteSurvey(ctx context.Context, p Pending, survey reqdto.SurveyRequest) (*Result, error)
}

type Orchestrator struct {
	credentials CredentialStore
	companies   CompanyRegistry
	publisher   shared.EventPublisher
	region      company.RegionRule
	clock       clock.Clock
}

func NewOrchestrator(
	credentials CredentialStore,
	companies CompanyRegistry,
	publisher shared.EventPublisher,
	region company.RegionRule,
	clk clock.Clock,
) *Orchestrator {
	return &Orchestrator{
		credentials: credentials,
		companies:   companies,
		publisher:   publisher,
		region:      region,
		clock:       clk,
	}
}

// Register runs credential, company and login steps. Regional companies stop in SurveyPending
// and are finished by CompleteSurvey.
func (o *Orchestrator) Register(ctx context.Context, in Input) (*Result, error) {
	role, err := user.NewRole(strings.TrimSpace(in.Role))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	var inn company.INN
	if role.OwnsCompany() {
		if strings.TrimSpace(in.INN) == "" {
			return nil, ErrINNRequired
		}
		inn, err = company.NewINN(in.INN)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
	}

	m := domreg.NewMachine()

	created, err := o.credentials.Register(ctx, reqdto.RegisterRequest{
		Email:    in.Email,
		Password: in.Password,
		Role:     role.String(),
	})
	if err != nil {
		o.fire(m, domreg.EventStepFailed)
		o.logOutcome(ctx, m, uuid.Nil, err)
		return nil, err
	}
	o.fire(m, domreg.EventCredentialCreated)

	result := &Result{User: created}

	if role.OwnsCompany() {
		createdCompany, err := o.companies.CreateCompany(ctx, o.companyRequest(created.ID, inn, in))
		if err != nil {
			if o.fire(m, domreg.EventCompanyFailed) == domreg.CompensateDeleteUser {
				o.compensate(ctx, created, inn, err)
			}
			o.logOutcome(ctx, m, created.ID, err)
			return nil, err
		}
		o.fire(m, domreg.EventCompanyCreated)
		result.Company = createdCompany

		if o.region.Matches(inn) {
			o.fire(m, domreg.EventSurveyRequired)
			result.Pending = &Pending{
				UserID:    created.ID,
				CompanyID: createdCompany.ID,
				Email:     in.Email,
				Password:  in.Password,
			}
			return o.finish(ctx, m, result), nil
		}
	}

	login, err := o.credentials.Login(ctx, reqdto.LoginRequest{Email: in.Email, Password: in.Password})
	if err != nil {
		o.fire(m, domreg.EventStepFailed)
		o.logOutcome(ctx, m, created.ID, err)
		return nil, err
	}
	o.fire(m, domreg.EventLoggedIn)
	result.Login = login

	return o.finish(ctx, m, result), nil
}

// CompleteSurvey finishes a pending registration. The credentials are checked first and the
// company must belong to the account they open; only then is the survey saved. Any failure
// leaves the registration pending so it can be retried.
func (o *Orchestrator) CompleteSurvey(ctx context.Context, p Pending, survey reqdto.SurveyRequest) (*Result, error) {
	m := domreg.Resume(domreg.StateSurveyPending)
	stop := func(userID uuid.UUID, err error) (*Result, error) {
		o.fire(m, domreg.EventStepFailed)
		o.logOutcome(ctx, m, userID, err)
		return nil, err
	}

	login, err := o.credentials.Login(ctx, reqdto.LoginRequest{Email: p.Email, Password: p.Password})
	if err != nil {
		return stop(p.UserID, err)
	}

	own, err := o.companies.OwnCompany(ctx, login.Token)
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return stop(login.UserID, ErrCompanyNotOwned)
	case err != nil:
		return stop(login.UserID, err)
	case own.ID != p.CompanyID || own.UserID != login.UserID:
		return stop(login.UserID, ErrCompanyNotOwned)
	}

	if _, err := o.companies.SaveSurvey(ctx, p.CompanyID, survey); err != nil {
		return stop(login.UserID, err)
	}
	o.fire(m, domreg.EventSurveySaved)
	o.fire(m, domreg.EventLoggedIn)

	return o.finish(ctx, m, &Result{Login: login}), nil
}

func (o *Orchestrator) companyRequest(userID uuid.UUID, inn company.INN, in Input) reqdto.CreateCompanyRequest {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = company.DefaultName(inn)
	}
	region := in.Region
	if (region == nil || strings.TrimSpace(*region) == "") && o.region.Matches(inn) {
		regionName := o.region.Name
		region = &regionName
	}
	return reqdto.CreateCompanyRequest{
		UserID:   userID.String(),
		Name:     name,
		INN:      inn.Value(),
		FullName: in.FullName,
		Region:   region,
	}
}

// compensate deletes the credential of a registration whose company step failed. The delete runs
// even if the caller has gone away. When it fails the credential is orphaned and reported.
func (o *Orchestrator) compensate(ctx context.Context, created *queries.UserView, inn company.INN, cause error) {
	ctx = context.WithoutCancel(ctx)

	err := o.credentials.DeleteUser(ctx, created.ID)
	if err == nil {
		slog.InfoContext(ctx, "registration rolled back", "user_id", created.ID, "inn", inn.Value())
		return
	}

	slog.ErrorContext(ctx, "orphaned credential",
		"user_id", created.ID,
		"email", created.Email,
		"inn", inn.Value(),
		"company_error", cause.Error(),
		"delete_error", err.Error(),
	)

	event := shared.OrphanedCredential{
		UserID:     created.ID,
		Email:      created.Email,
		INN:        inn.Value(),
		Reason:     err.Error(),
		OccurredAt: o.clock.Now(),
	}
	if pubErr := o.publisher.Publish(ctx, shared.EventOrphanedCredential, event); pubErr != nil {
		slog.ErrorContext(ctx, "failed to publish orphaned credential", "user_id", created.ID, "error", pubErr.Error())
	}
}

// fire advances the machine. The orchestrator only fires events legal in the current state, so an
// error here is a programming mistake and is logged rather than returned.
func (o *Orchestrator) fire(m *domreg.Machine, e domreg.Event) domreg.Compensation {
	comp, err := m.Fire(e)
	if err != nil {
		slog.Error("registration transition rejected", "state", string(m.State()), "event", string(e))
	}
	return comp
}

func (o *Orchestrator) finish(ctx context.Context, m *domreg.Machine, r *Result) *Result {
	r.State = m.State()
	r.History = m.History()
	slog.DebugContext(ctx, "registration step finished", "state", string(r.State))
	return r
}

func (o *Orchestrator) logOutcome(ctx context.Context, m *domreg.Machine, userID uuid.UUID, err error) {
	slog.WarnContext(ctx, "registration stopped",
		"state", string(m.State()),
		"user_id", userID,
		"error", err.Error(),
	)
}
