package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spaceatlas/atlas-backend/internal/model"
	"github.com/spaceatlas/atlas-backend/internal/response"
	"github.com/spaceatlas/atlas-backend/internal/service"
	"github.com/spaceatlas/atlas-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// loginResponse is the success shape for POST /api/auth/login. The token and
// user ride at the top level, not under data.
type loginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

// Login godoc
// POST /api/auth/login
// Verifies the admin credentials and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, http.StatusBadRequest,
			"Username and password are required", validator.Messages(fields))
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrMissingCredentials) {
			response.Fail(c, http.StatusBadRequest, "Username and password are required")
			return
		}
		response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    model.User{Username: req.Username, Role: service.RoleAdmin},
	})
}
