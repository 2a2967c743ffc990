package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/service"
	"github.com/fleetflow/fleetflow-go/pkg/response"
)

// TripHandler handles HTTP requests for trip dispatch.
type TripHandler struct {
	service *service.TripService
	log     *zap.SugaredLogger
}

// NewTripHandler creates a new trip handler.
func NewTripHandler(service *service.TripService, log *zap.SugaredLogger) *TripHandler {
	return &TripHandler{service: service, log: log}
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	var filter models.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	trips, err := h.service.List(filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, trips)
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := h.service.Get(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, trip)
}

// Create handles POST /api/trips.
func (h *TripHandler) Create(c *gin.Context) {
	var in models.TripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	trip, err := h.service.Create(in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Created(c, trip)
}

// Update handles PUT /api/trips/:id, covering both status transitions and
// plain revenue updates.
func (h *TripHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.TripUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	trip, err := h.service.Update(id, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, trip)
}
