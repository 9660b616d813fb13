package handlers

import (
	"net/http"

	"agency_admin/internal/logger"
	"agency_admin/internal/middleware"
	"agency_admin/internal/services"
	"agency_admin/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout is stateless: tokens are short-lived and the client just
// drops its copy. The endpoint exists so the admin UI has a uniform
// session lifecycle.
func (h *AuthHandler) Logout(c *gin.Context) {
	logger.CtxInfo(c.Request.Context(), "staff logout", "user_id", middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
