package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/services"
	"github.com/conduzpt/fleet-backend/utils"
)

// WeeklyRecordHandler handles weekly record HTTP requests
type WeeklyRecordHandler struct {
	weeklyService *services.WeeklyService
}

// NewWeeklyRecordHandler creates a new weekly record handler
func NewWeeklyRecordHandler(weeklyService *services.WeeklyService) *WeeklyRecordHandler {
	return &WeeklyRecordHandler{weeklyService: weeklyService}
}

// CreateWeeklyRecord handles POST /weekly-records/create
func (h *WeeklyRecordHandler) CreateWeeklyRecord(c *gin.Context) {
	var req models.CreateWeeklyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	record, err := h.weeklyService.CreateWeeklyRecord(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, record)
}

// GetWeeklyRecord handles POST /weekly-records/get
func (h *WeeklyRecordHandler) GetWeeklyRecord(c *gin.Context) {
	var req models.GetWeeklyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	record, err := h.weeklyService.GetByID(req.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, record)
}

// ListWeeklyRecordsByDriver handles POST /weekly-records/listByDriver
func (h *WeeklyRecordHandler) ListWeeklyRecordsByDriver(c *gin.Context) {
	var req models.ListByDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	records, err := h.weeklyService.ListByDriver(req.DriverID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, records)
}
