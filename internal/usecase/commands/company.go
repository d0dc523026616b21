package commands

import (
	"context"

	"github.com/google/uuid"

	reqdto "supplier-marketplace/internal/handler/dto/request"
	"supplier-marketplace/internal/infra"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/usecase/queries"
	"supplier-marketplace/internal/usecase/shared"
)

const (
	constraintCompanyINN  = "companies_inn_key"
	constraintCompanyUser = "companies_user_id_key"
)

var (
	ErrINNTaken           = errs.Mark(errs.New("Company with this INN is already registered"), errs.ErrConflict)
	ErrUserHasCompany     = errs.Mark(errs.New("User already owns a company"), errs.ErrConflict)
	ErrOwnerNotFound      = errs.Mark(errs.New("Company owner not found"), errs.ErrNotFound)
	ErrCompanyNotFound    = errs.Mark(errs.New("Company not found"), errs.ErrNotFound)
	ErrCompanyIDMalformed = errs.Mark(errs.New("Company ID is malformed"), errs.ErrInvalidInput)
)

type CompanyCommands interface {
	CreateCompany(ctx context.Context, req reqdto.CreateCompanyRequest) (*queries.CompanyView, error)
	SaveSurvey(ctx context.Context, companyID uuid.UUID, req reqdto.SurveyRequest) (*queries.SurveyView, error)
	UpdateOwnCompany(ctx context.Context, userID uuid.UUID, req reqdto.UpdateCompanyRequest) (*queries.CompanyView, error)
}

type companyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCompanyCommands(uow shared.UnitOfWork, clk clock.Clock) CompanyCommands {
	return &companyCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (c *companyCommandsImpl) CreateCompany(ctx context.Context, req reqdto.CreateCompanyRequest) (*queries.CompanyView, error) {
	entity, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	var created *queries.CompanyView
	err = c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		created, createErr = tx.Companies().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == constraintCompanyUser:
			return nil, ErrUserHasCompany
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrINNTaken
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	return created, nil
}

func (c *companyCommandsImpl) SaveSurvey(ctx context.Context, companyID uuid.UUID, req reqdto.SurveyRequest) (*queries.SurveyView, error) {
	answer, err := req.ToDomain(companyID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	var saved *queries.SurveyView
	err = c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var saveErr error
		saved, saveErr = tx.Surveys().Upsert(ctx, tx.DB(), answer, c.clock.Now())
		return saveErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	return saved, nil
}

// UpdateOwnCompany rewrites the company row and its contact in one transaction.
func (c *companyCommandsImpl) UpdateOwnCompany(ctx context.Context, userID uuid.UUID, req reqdto.UpdateCompanyRequest) (*queries.CompanyView, error) {
	now := c.clock.Now()
	profile, err := req.ToDomain(now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	var updated *queries.CompanyView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		companyID, err := tx.Companies().LockIDByUserID(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}

		updated, err = tx.Companies().UpdateProfile(ctx, tx.DB(), companyID, profile, now)
		if err != nil {
			return err
		}

		contact, err := tx.Contacts().Upsert(ctx, tx.DB(), companyID, profile.Contact, now)
		if err != nil {
			return err
		}
		updated.Contact = contact
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	return updated, nil
}
