// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"community-board/internal/services"
	"community-board/internal/transport/httpdto"
	"community-board/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the login and registration endpoints.
type AuthHandler struct {
	service *services.AuthService
	logger  *logger.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService, l *logger.Logger) *AuthHandler {
	if l == nil {
		l = logger.NewNop()
	}
	return &AuthHandler{service: service, logger: l}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgLoginRequired))
		return
	}

	u, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.writeAuthError(c, err, httpdto.MsgLoginRequired, httpdto.MsgLoginFailed)
		return
	}

	c.JSON(http.StatusOK, httpdto.AuthResponse{
		Success: true,
		Message: httpdto.MsgLoginOK,
		User:    u,
	})
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(httpdto.MsgRegisterRequired))
		return
	}

	u, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.writeAuthError(c, err, httpdto.MsgRegisterRequired, httpdto.MsgRegisterConflict)
		return
	}

	c.JSON(http.StatusOK, httpdto.AuthResponse{
		Success: true,
		Message: httpdto.MsgRegisterOK,
		User:    u,
	})
}

// writeAuthError maps a service error to its status. Anything unexpected is
// logged and answered with the generic server error message.
func (h *AuthHandler) writeAuthError(c *gin.Context, err error, invalidMsg, rejectedMsg string) {
	status := services.HTTPStatus(err)
	switch status {
	case http.StatusBadRequest:
		c.JSON(status, httpdto.NewErrorResponse(invalidMsg))
	case http.StatusUnauthorized, http.StatusConflict:
		c.JSON(status, httpdto.NewErrorResponse(rejectedMsg))
	default:
		h.logger.WithContext(c.Request.Context()).Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(httpdto.MsgServerError))
	}
}
