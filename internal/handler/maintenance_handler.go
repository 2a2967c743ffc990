package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/service"
	"github.com/fleetflow/fleetflow-go/pkg/response"
)

// MaintenanceHandler handles HTTP requests for maintenance logs.
type MaintenanceHandler struct {
	service *service.MaintenanceService
	log     *zap.SugaredLogger
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(service *service.MaintenanceService, log *zap.SugaredLogger) *MaintenanceHandler {
	return &MaintenanceHandler{service: service, log: log}
}

// List handles GET /api/maintenance.
func (h *MaintenanceHandler) List(c *gin.Context) {
	logs, err := h.service.List()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, logs)
}

// Get handles GET /api/maintenance/:id.
func (h *MaintenanceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	m, err := h.service.Get(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, m)
}

// Create handles POST /api/maintenance.
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var in models.MaintenanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	m, err := h.service.Create(in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Created(c, m)
}

// Update handles PUT /api/maintenance/:id.
func (h *MaintenanceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.MaintenanceUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	m, err := h.service.Update(id, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, m)
}
