package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetflow/fleetflow-go/internal/service"
	"github.com/fleetflow/fleetflow-go/pkg/response"
)

// AnalyticsHandler handles the analytics endpoint.
type AnalyticsHandler struct {
	service *service.AnalyticsService
	log     *zap.SugaredLogger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service *service.AnalyticsService, log *zap.SugaredLogger) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, log: log}
}

// Report handles GET /api/analytics.
func (h *AnalyticsHandler) Report(c *gin.Context) {
	report, err := h.service.Report()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, report)
}
