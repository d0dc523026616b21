package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "supplier-marketplace/internal/handler/dto/request"
	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/internal/handler/httperr"
	"supplier-marketplace/internal/handler/middleware"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/usecase/commands"
	"supplier-marketplace/internal/usecase/queries"
)

const msgSurveySaved = "Survey data saved successfully"

var errNoUserInContext = errs.New("authenticated user missing from context")

type CompaniesHandler struct {
	commands commands.CompanyCommands
	queries  queries.CompanyQueries
}

func NewCompaniesHandler(cmd commands.CompanyCommands, q queries.CompanyQueries) *CompaniesHandler {
	return &CompaniesHandler{
		commands: cmd,
		queries:  q,
	}
}

// @Summary Create company
// @Description Register the company owned by a supplier credential
// @Tags companies
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCompanyRequest true "Company"
// @Success 201 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /companies [post]
func (h *CompaniesHandler) Create(c *gin.Context) {
	var req reqdto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "user_id, name and inn are required")
		return
	}

	view, err := h.commands.CreateCompany(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.writeCompany(c, http.StatusCreated, view)
}

// @Summary Save support survey
// @Description Upsert the support survey answers of a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body reqdto.SurveyRequest true "Survey answers"
// @Success 201 {object} resdto.SurveyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies/{id}/support-survey [post]
func (h *CompaniesHandler) SaveSurvey(c *gin.Context) {
	companyID, err := reqdto.ParseID(c.Param("id"))
	if err != nil {
		httperr.Abort(c, commands.ErrCompanyIDMalformed)
		return
	}

	var req reqdto.SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid survey format")
		return
	}

	view, err := h.commands.SaveSurvey(c.Request.Context(), companyID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromSurveyView(msgSurveySaved, view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Get own company
// @Description Company profile and contact of the authenticated user
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CompanyResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/companies/me [get]
func (h *CompaniesHandler) GetOwn(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetOwnCompany(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.writeCompany(c, http.StatusOK, view)
}

// @Summary Update own company
// @Description Replace the profile and contact of the authenticated user's company in one transaction
// @Tags companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateCompanyRequest true "Profile"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/companies/me [put]
func (h *CompaniesHandler) UpdateOwn(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Company name is required")
		return
	}

	view, err := h.commands.UpdateOwnCompany(c.Request.Context(), userID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.writeCompany(c, http.StatusOK, view)
}

// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} resdto.CompanyResponse
// @Router /companies [get]
func (h *CompaniesHandler) List(c *gin.Context) {
	views, err := h.queries.ListCompanies(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.writeList(c, views)
}

// @Summary List companies of a region
// @Tags companies
// @Produce json
// @Param regionName path string true "Region name"
// @Success 200 {array} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Router /companies/region/{regionName} [get]
func (h *CompaniesHandler) ListByRegion(c *gin.Context) {
	views, err := h.queries.ListCompaniesByRegion(c.Request.Context(), c.Param("regionName"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.writeList(c, views)
}

func (h *CompaniesHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUserInContext, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func (h *CompaniesHandler) writeCompany(c *gin.Context, status int, view *queries.CompanyView) {
	res, err := resdto.FromCompanyView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}

func (h *CompaniesHandler) writeList(c *gin.Context, views []*queries.CompanyView) {
	res, err := resdto.FromCompanyList(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
