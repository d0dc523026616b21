package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "supplier-marketplace/internal/handler/dto/request"
	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/internal/handler/httperr"
	"supplier-marketplace/internal/handler/middleware"
	"supplier-marketplace/internal/usecase/commands"
	"supplier-marketplace/internal/usecase/queries"
)

const msgSupportConfirmed = "Support measure confirmed successfully"

// OperatorHandler serves the operator console. Every route sits behind RequireRole(operator).
type OperatorHandler struct {
	commands commands.OperatorCommands
	queries  queries.OperatorQueries
}

func NewOperatorHandler(cmd commands.OperatorCommands, q queries.OperatorQueries) *OperatorHandler {
	return &OperatorHandler{
		commands: cmd,
		queries:  q,
	}
}

// @Summary Registry statistics
// @Tags operator
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.RegistryStatsResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/operator/registry-stats [get]
func (h *OperatorHandler) RegistryStats(c *gin.Context) {
	view, err := h.queries.RegistryStats(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRegistryStats(view))
}

// @Summary Support survey statistics
// @Tags operator
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SupportStatsResponse
// @Failure 403 {object} httperr.Response
// @Router /api/operator/support-stats [get]
func (h *OperatorHandler) SupportStats(c *gin.Context) {
	view, err := h.queries.SupportStats(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromSupportStats(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Find company by INN
// @Tags operator
// @Security BearerAuth
// @Produce json
// @Param inn path string true "INN"
// @Success 200 {object} resdto.CompanyRefResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/operator/company-by-inn/{inn} [get]
func (h *OperatorHandler) CompanyByINN(c *gin.Context) {
	view, err := h.queries.FindCompanyByINN(c.Request.Context(), c.Param("inn"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompanyRef(view))
}

// @Summary Confirmed grants of a company
// @Description Newest first
// @Tags operator
// @Security BearerAuth
// @Produce json
// @Param companyId path string true "Company ID"
// @Success 200 {array} resdto.GrantResponse
// @Failure 400 {object} httperr.Response
// @Router /api/operator/company/{companyId}/grants [get]
func (h *OperatorHandler) ListGrants(c *gin.Context) {
	companyID, err := reqdto.ParseID(c.Param("companyId"))
	if err != nil {
		httperr.Abort(c, commands.ErrCompanyIDMalformed)
		return
	}

	views, err := h.queries.ListGrants(c.Request.Context(), companyID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGrantList(views))
}

// @Summary Confirm support measure
// @Description Append a confirmed grant for a company. Repeated confirmations are kept as separate rows.
// @Tags operator
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmSupportRequest true "Measure"
// @Success 201 {object} resdto.ConfirmSupportResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/operator/confirm-support [post]
func (h *OperatorHandler) ConfirmSupport(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUserInContext, "Unauthorized", nil)
		return
	}

	var req reqdto.ConfirmSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, commands.ErrMeasureIncomplete.Error())
		return
	}

	view, err := h.commands.ConfirmSupport(c.Request.Context(), operatorID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ConfirmSupportResponse{
		Message: msgSupportConfirmed,
		Grant:   resdto.FromGrantView(view),
	})
}
