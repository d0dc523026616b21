//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	domreg "supplier-marketplace/internal/domain/registration"
	"supplier-marketplace/internal/domain/user"
	"supplier-marketplace/internal/handler/api"
	reqdto "supplier-marketplace/internal/handler/dto/request"
	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/internal/usecase/commands"
	"supplier-marketplace/internal/usecase/registration"
	"supplier-marketplace/tests/common/builder"
	"supplier-marketplace/tests/common/httptest"
	"supplier-marketplace/tests/common/testutil"
	registrationmock "supplier-marketplace/tests/mock/registration"
)

type RegistrationHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockRegistrar *registrationmock.MockRegistrar
}

func (s *RegistrationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRegistrar = registrationmock.NewMockRegistrar(s.mockCtrl)
	h := api.NewRegistrationHandler(s.mockRegistrar)

	s.router.POST("/api/registrations", h.Register)
	s.router.POST("/api/registrations/survey", h.CompleteSurvey)
}

func (s *RegistrationHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *RegistrationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistrationHandlerSuite(t *testing.T) {
	suite.Run(t, new(RegistrationHandlerTestSuite))
}

func (s *RegistrationHandlerTestSuite) TestRegister() {
	url := "/api/registrations"
	reqBody := reqdto.RegistrationRequest{Email: "a@x.com", Password: "p1", Role: "supplier", INN: "7701234567"}
	input := registration.Input{Email: "a@x.com", Password: "p1", Role: "supplier", INN: "7701234567"}

	s.Run("success: 201 with token when no survey is needed", func() {
		u := builder.NewUserBuilder().WithEmail("a@x.com").BuildReadModel()
		c := builder.NewCompanyBuilder().WithINN("7701234567").WithUserID(u.ID).BuildReadModel()
		s.mockRegistrar.EXPECT().Register(gomock.Any(), input).Return(&registration.Result{
			State:   domreg.StateCompleted,
			User:    u,
			Company: c,
			Login:   &commands.LoginResult{Token: "tok", UserID: u.ID, Role: user.RoleSupplier},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.RegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(string(domreg.StateCompleted), body.State)
		s.False(body.SurveyRequired)
		s.Equal("tok", body.Token)
		s.Require().NotNil(body.CompanyID)
		s.Equal(c.ID, *body.CompanyID)
	})

	s.Run("success: 202 when the regional survey is pending", func() {
		regional := reqBody
		regional.INN = "5201"
		in := input
		in.INN = "5201"
		u := builder.NewUserBuilder().BuildReadModel()
		c := builder.NewCompanyBuilder().WithUserID(u.ID).BuildReadModel()
		s.mockRegistrar.EXPECT().Register(gomock.Any(), in).Return(&registration.Result{
			State:   domreg.StateSurveyPending,
			User:    u,
			Company: c,
			Pending: &registration.Pending{UserID: u.ID, CompanyID: c.ID, Email: u.Email, Password: "p1"},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, regional, "")

		var body resdto.RegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.True(body.SurveyRequired)
		s.Empty(body.Token)
	})

	s.Run("error: 409 surfaces the company error after rollback", func() {
		s.mockRegistrar.EXPECT().Register(gomock.Any(), input).Return(nil, commands.ErrINNTaken).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "INN")
	})

	s.Run("error: 400 when role is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("role", nil)), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email, password and role are required")
	})

	s.Run("error: 400 when inn is missing for a supplier", func() {
		noINN := input
		noINN.INN = ""
		s.mockRegistrar.EXPECT().Register(gomock.Any(), noINN).Return(nil, registration.ErrINNRequired).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("inn", nil)), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INN is required")
	})
}

func (s *RegistrationHandlerTestSuite) TestCompleteSurvey() {
	url := "/api/registrations/survey"
	companyID := uuid.New()
	survey := builder.NewSurveyDTO()
	reqBody := reqdto.RegistrationSurveyRequest{
		CompanyID: companyID.String(),
		Email:     "a@x.com",
		Password:  "p1",
		Survey:    survey,
	}
	pending := registration.Pending{CompanyID: companyID, Email: "a@x.com", Password: "p1"}

	s.Run("success: 201 with token", func() {
		s.mockRegistrar.EXPECT().CompleteSurvey(gomock.Any(), pending, survey).Return(&registration.Result{
			State: domreg.StateCompleted,
			Login: &commands.LoginResult{Token: "tok", Role: user.RoleSupplier},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.RegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("tok", body.Token)
		s.Equal(string(domreg.StateCompleted), body.State)
	})

	s.Run("error: 400 for a malformed company id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("company_id", "nope")), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Company ID is malformed")
	})

	s.Run("error: 401 when the credentials no longer match", func() {
		s.mockRegistrar.EXPECT().CompleteSurvey(gomock.Any(), pending, survey).Return(nil, commands.ErrInvalidCredentials).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials")
	})
}
