//go:build e2e

package registration_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"supplier-marketplace/internal/domain/company"
	domreg "supplier-marketplace/internal/domain/registration"
	"supplier-marketplace/internal/handler/api"
	"supplier-marketplace/internal/handler/dto/request"
	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/internal/infra/client"
	"supplier-marketplace/internal/infra/events"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/usecase/registration"
	"supplier-marketplace/tests/common/builder"
	"supplier-marketplace/tests/common/dbtest"
	"supplier-marketplace/tests/common/httptest"
	"supplier-marketplace/tests/e2e"
)

const (
	registrationsURL = "/api/registrations"
	surveyURL        = registrationsURL + "/survey"
	meURL            = "/api/companies/me"
)

// registrationSuite runs the saga against the services of the shared router, reached over real
// HTTP the way a standalone gateway would reach them.
type registrationSuite struct {
	e2e.SharedSuite
	services  *nethttptest.Server
	saga      *registration.Orchestrator
	sagaRoute *gin.Engine
}

func TestRegistrationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(registrationSuite))
}

func (s *registrationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	s.services = nethttptest.NewServer(s.Router)
	s.T().Cleanup(s.services.Close)

	timeout := 5 * time.Second
	s.saga = registration.NewOrchestrator(
		client.NewUsersClient(s.services.URL, timeout, s.Config.JWT.TTL, clock.NewRealClock(), s.services.Client()),
		client.NewCompaniesClient(s.services.URL, timeout, s.services.Client()),
		events.NoopPublisher{},
		company.NewRegionRule(s.Config.Region.INNPrefix, s.Config.Region.Name),
		clock.NewRealClock(),
	)

	h := api.NewRegistrationHandler(s.saga)
	s.sagaRoute = gin.New()
	s.sagaRoute.POST(registrationsURL, h.Register)
	s.sagaRoute.POST(surveyURL, h.CompleteSurvey)
}

func (s *registrationSuite) TestSupplierOutsideRegion() {
	result, err := s.saga.Register(s.T().Context(), registration.Input{
		Email:    "a@x.com",
		Password: "p1",
		Role:     "supplier",
		INN:      "7701234567",
		Name:     "Acme",
	})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), domreg.StateCompleted, result.State)
	require.NotNil(s.T(), result.User)
	require.NotNil(s.T(), result.Company)
	require.NotNil(s.T(), result.Login)
	assert.Nil(s.T(), result.Pending)
	assert.Equal(s.T(), "supplier", result.Login.Role.String())
	assert.Equal(s.T(), result.User.ID, result.Company.UserID)
	assert.Equal(s.T(), "7701234567", result.Company.INN)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, result.Login.Token)
	var own resdto.CompanyResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &own)
	assert.Equal(s.T(), result.Company.ID, own.ID)
}

func (s *registrationSuite) TestCustomerSkipsCompany() {
	result, err := s.saga.Register(s.T().Context(), registration.Input{
		Email:    "c@x.com",
		Password: "p1",
		Role:     "customer",
	})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), domreg.StateCompleted, result.State)
	assert.Nil(s.T(), result.Company)
	require.NotNil(s.T(), result.Login)
	assert.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "companies", ""))
}

func (s *registrationSuite) TestDuplicateINNRollsBackCredential() {
	s.Run("existing company keeps its inn and the new user is removed", func() {
		owner := dbtest.CreateTestUser(s.T(), s.DB, "first@x.com", "supplier")
		dbtest.CreateTestCompany(s.T(), s.DB, owner, "7701234567", "", time.Now())

		_, err := s.saga.Register(s.T().Context(), registration.Input{
			Email:    "a@x.com",
			Password: "p1",
			Role:     "supplier",
			INN:      "7701234567",
			Name:     "Acme",
		})

		require.Error(s.T(), err)
		assert.True(s.T(), errs.Is(err, errs.ErrConflict))
		assert.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "users", "email = $1", "a@x.com"))
		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "companies", "inn = $1", "7701234567"))
	})

	s.Run("over http the conflict is reported as 409", func() {
		owner := dbtest.CreateTestUser(s.T(), s.DB, "first@x.com", "supplier")
		dbtest.CreateTestCompany(s.T(), s.DB, owner, "7701234567", "", time.Now())

		w := httptest.PerformRequest(s.T(), s.sagaRoute, http.MethodPost, registrationsURL, request.RegistrationRequest{
			Email: "a@x.com", Password: "p1", Role: "supplier", INN: "7701234567", Name: "Acme",
		}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
		assert.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "users", "email = $1", "a@x.com"))
	})
}

func (s *registrationSuite) TestDuplicateEmailStopsBeforeCompany() {
	dbtest.CreateTestUser(s.T(), s.DB, "a@x.com", "customer")

	_, err := s.saga.Register(s.T().Context(), registration.Input{
		Email:    "a@x.com",
		Password: "p1",
		Role:     "supplier",
		INN:      "7701234567",
		Name:     "Acme",
	})

	require.Error(s.T(), err)
	assert.True(s.T(), errs.Is(err, errs.ErrConflict))
	assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "users", "email = $1", "a@x.com"))
	assert.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "companies", ""))
}

func (s *registrationSuite) TestRegionalSupplierGoesThroughSurvey() {
	w := httptest.PerformRequest(s.T(), s.sagaRoute, http.MethodPost, registrationsURL, request.RegistrationRequest{
		Email: "a@x.com", Password: "p1", Role: "supplier", INN: "5201234567", Name: "Acme",
	}, "")

	var pending resdto.RegistrationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusAccepted, &pending)
	assert.Equal(s.T(), string(domreg.StateSurveyPending), pending.State)
	assert.True(s.T(), pending.SurveyRequired)
	assert.Empty(s.T(), pending.Token)
	require.NotNil(s.T(), pending.CompanyID)
	assert.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "survey_support_answers", ""))

	w = httptest.PerformRequest(s.T(), s.sagaRoute, http.MethodPost, surveyURL, request.RegistrationSurveyRequest{
		CompanyID: pending.CompanyID.String(),
		Email:     "a@x.com",
		Password:  "p1",
		Survey:    builder.NewSurveyDTO(),
	}, "")

	var done resdto.RegistrationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &done)
	assert.Equal(s.T(), string(domreg.StateCompleted), done.State)
	assert.NotEmpty(s.T(), done.Token)
	assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "survey_support_answers", "company_id = $1", *pending.CompanyID))

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, done.Token)
	var own resdto.CompanyResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &own)
	assert.Equal(s.T(), *pending.CompanyID, own.ID)
}

func (s *registrationSuite) TestSurveyRequiresTheOwnersCredentials() {
	start := func(email, inn string) uuid.UUID {
		w := httptest.PerformRequest(s.T(), s.sagaRoute, http.MethodPost, registrationsURL, request.RegistrationRequest{
			Email: email, Password: "p1", Role: "supplier", INN: inn, Name: "Acme " + inn,
		}, "")
		var pending resdto.RegistrationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusAccepted, &pending)
		require.NotNil(s.T(), pending.CompanyID)
		return *pending.CompanyID
	}
	complete := func(companyID uuid.UUID, email, password string) *nethttptest.ResponseRecorder {
		return httptest.PerformRequest(s.T(), s.sagaRoute, http.MethodPost, surveyURL, request.RegistrationSurveyRequest{
			CompanyID: companyID.String(),
			Email:     email,
			Password:  password,
			Survey:    builder.NewSurveyDTO(),
		}, "")
	}

	first := start("a@x.com", "5201234567")
	second := start("b@x.com", "5207654321")

	s.Run("wrong password", func() {
		w := complete(first, "a@x.com", "wrong")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid credentials")
		assert.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "survey_support_answers", ""))
	})

	s.Run("another account's company", func() {
		w := complete(first, "b@x.com", "p1")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, registration.ErrCompanyNotOwned.Error())
		assert.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "survey_support_answers", ""))
	})

	s.Run("owner completes", func() {
		w := complete(second, "b@x.com", "p1")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "survey_support_answers", "company_id = $1", second))
	})
}

func (s *registrationSuite) TestSupplierWithoutINN() {
	w := httptest.PerformRequest(s.T(), s.sagaRoute, http.MethodPost, registrationsURL, request.RegistrationRequest{
		Email: "a@x.com", Password: "p1", Role: "supplier",
	}, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, registration.ErrINNRequired.Error())
	assert.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "users", ""))
}
