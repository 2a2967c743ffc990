package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/service"
	"github.com/fleetflow/fleetflow-go/pkg/response"
)

// ExpenseHandler handles HTTP requests for expenses.
type ExpenseHandler struct {
	service *service.ExpenseService
	log     *zap.SugaredLogger
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(service *service.ExpenseService, log *zap.SugaredLogger) *ExpenseHandler {
	return &ExpenseHandler{service: service, log: log}
}

// List handles GET /api/expenses.
func (h *ExpenseHandler) List(c *gin.Context) {
	var filter models.ExpenseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	expenses, err := h.service.List(filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, expenses)
}

// Get handles GET /api/expenses/:id.
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	expense, err := h.service.Get(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.OK(c, expense)
}

// Create handles POST /api/expenses.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var in models.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.service.Create(in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	response.Created(c, expense)
}
