package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/service"
	"github.com/fleetflow/fleetflow-go/pkg/response"
)

// DriverHandler handles HTTP requests for the driver roster.
type DriverHandler struct {
	service *service.DriverService
	log     *zap.SugaredLogger
}

// NewDriverHandler creates a new driver handler.
func NewDriverHandler(service *service.DriverService, log *zap.SugaredLogger) *DriverHandler {
	return &DriverHandler{service: service, log: log}
}

// List handles GET /api/drivers.
func (h *DriverHandler) List(c *gin.Context) {
	drivers, err := h.service.List()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, drivers)
}

// Get handles GET /api/drivers/:id.
func (h *DriverHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	driver, err := h.service.Get(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, driver)
}

// Create handles POST /api/drivers.
func (h *DriverHandler) Create(c *gin.Context) {
	var in models.DriverInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	driver, err := h.service.Create(in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Created(c, driver)
}

// Update handles PUT /api/drivers/:id.
func (h *DriverHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.DriverInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	driver, err := h.service.Update(id, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, driver)
}

// Delete handles DELETE /api/drivers/:id.
func (h *DriverHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, gin.H{"success": true})
}
