package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/services"
	"github.com/conduzpt/fleet-backend/utils"
)

// FinancingHandler handles financing HTTP requests
type FinancingHandler struct {
	financingService *services.FinancingService
}

// NewFinancingHandler creates a new financing handler
func NewFinancingHandler(financingService *services.FinancingService) *FinancingHandler {
	return &FinancingHandler{financingService: financingService}
}

// CreateFinancing handles POST /financing/create
func (h *FinancingHandler) CreateFinancing(c *gin.Context) {
	var req models.CreateFinancingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	record, err := h.financingService.CreateFinancing(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, record)
}

// ListFinancingByDriver handles POST /financing/listByDriver
func (h *FinancingHandler) ListFinancingByDriver(c *gin.Context) {
	var req models.ListByDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	records, err := h.financingService.ListByDriver(req.DriverID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, records)
}

// UpdateFinancing handles POST /financing/update
func (h *FinancingHandler) UpdateFinancing(c *gin.Context) {
	var req models.UpdateFinancingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	record, err := h.financingService.UpdateFinancing(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, record)
}
