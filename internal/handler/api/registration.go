package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "supplier-marketplace/internal/handler/dto/request"
	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/internal/handler/httperr"
	"supplier-marketplace/internal/pkg/forwarded"
	"supplier-marketplace/internal/usecase/registration"
)

const (
	msgRegistered     = "Registration completed"
	msgSurveyRequired = "Company registered, support survey required"
)

type RegistrationHandler struct {
	registrar registration.Registrar
}

func NewRegistrationHandler(registrar registration.Registrar) *RegistrationHandler {
	return &RegistrationHandler{
		registrar: registrar,
	}
}

// @Summary Register with company
// @Description Create the credential and, for suppliers, the company. Regional companies stop at the survey step.
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body reqdto.RegistrationRequest true "Sign-up form"
// @Success 201 {object} resdto.RegistrationResponse
// @Success 202 {object} resdto.RegistrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/registrations [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req reqdto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Email, password and role are required")
		return
	}

	result, err := h.registrar.Register(sagaContext(c), registration.Input{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		INN:      req.INN,
		Name:     req.Name,
		FullName: req.FullName,
		Region:   req.Region,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	if result.Pending != nil {
		h.write(c, http.StatusAccepted, msgSurveyRequired, result)
		return
	}
	h.write(c, http.StatusCreated, msgRegistered, result)
}

// @Summary Finish registration with the survey
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body reqdto.RegistrationSurveyRequest true "Survey and credentials"
// @Success 201 {object} resdto.RegistrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/registrations/survey [post]
func (h *RegistrationHandler) CompleteSurvey(c *gin.Context) {
	var req reqdto.RegistrationSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "company_id, email and password are required")
		return
	}

	companyID, err := reqdto.ParseID(req.CompanyID)
	if err != nil {
		httperr.BadRequest(c, err, "Company ID is malformed")
		return
	}

	result, err := h.registrar.CompleteSurvey(sagaContext(c), registration.Pending{
		CompanyID: companyID,
		Email:     req.Email,
		Password:  req.Password,
	}, req.Survey)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.write(c, http.StatusCreated, msgRegistered, result)
}

// sagaContext lets downstream services rate-limit the end user rather than this host.
func sagaContext(c *gin.Context) context.Context {
	return forwarded.WithClientIP(c.Request.Context(), c.ClientIP())
}

func (h *RegistrationHandler) write(c *gin.Context, status int, message string, result *registration.Result) {
	res, err := resdto.FromRegistrationResult(message, result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
