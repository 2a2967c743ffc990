package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/service"
	"github.com/fleetflow/fleetflow-go/pkg/response"
)

// AuthHandler handles login and registration.
type AuthHandler struct {
	service *service.AuthService
	log     *zap.SugaredLogger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service *service.AuthService, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var in models.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Login(in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, result)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var in models.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.service.Register(in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Created(c, gin.H{"success": true, "user": user})
}
