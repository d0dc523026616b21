package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "supplier-marketplace/internal/handler/dto/request"
	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/internal/handler/httperr"
	"supplier-marketplace/internal/usecase/commands"
)

const (
	msgUserCreated = "User created successfully"
	msgLoggedIn    = "Logged in successfully"
	msgUserDeleted = "User deleted successfully"
)

type UsersHandler struct {
	auth commands.AuthCommands
}

func NewUsersHandler(auth commands.AuthCommands) *UsersHandler {
	return &UsersHandler{
		auth: auth,
	}
}

// @Summary Register user
// @Description Create a credential for a customer, supplier or operator
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /register [post]
func (h *UsersHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Email, password and role are required")
		return
	}

	view, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromUserView(msgUserCreated, view))
}

// @Summary Login
// @Description Verify credentials and issue a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /login [post]
func (h *UsersHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Email and password are required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(msgLoggedIn, result))
}

// DeleteUser is internal: the registration saga calls it to compensate a failed company step.
//
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [delete]
func (h *UsersHandler) DeleteUser(c *gin.Context) {
	id, err := reqdto.ParseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "User ID is malformed")
		return
	}

	if err := h.auth.DeleteUser(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msgUserDeleted})
}
