package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/service"
	"github.com/fleetflow/fleetflow-go/pkg/response"
)

// VehicleHandler handles HTTP requests for the vehicle registry.
type VehicleHandler struct {
	service *service.VehicleService
	log     *zap.SugaredLogger
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(service *service.VehicleService, log *zap.SugaredLogger) *VehicleHandler {
	return &VehicleHandler{service: service, log: log}
}

// List handles GET /api/vehicles.
func (h *VehicleHandler) List(c *gin.Context) {
	var filter models.VehicleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	vehicles, err := h.service.List(filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, vehicles)
}

// Get handles GET /api/vehicles/:id.
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := h.service.Get(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, vehicle)
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(c *gin.Context) {
	var in models.VehicleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vehicle, err := h.service.Create(in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Created(c, vehicle)
}

// Update handles PUT /api/vehicles/:id.
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.VehicleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vehicle, err := h.service.Update(id, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, vehicle)
}

// Delete handles DELETE /api/vehicles/:id.
func (h *VehicleHandler) Delete(c *gin.Context) {
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
