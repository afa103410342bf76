package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/services"
	"github.com/conduzpt/fleet-backend/utils"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CommitPayment handles POST /payments/commit
func (h *PaymentHandler) CommitPayment(c *gin.Context) {
	var req models.CommitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	result, err := h.paymentService.CommitPayment(c.Request.Context(), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// ListPaymentsByDriver handles POST /payments/listByDriver
func (h *PaymentHandler) ListPaymentsByDriver(c *gin.Context) {
	var req models.ListByDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	payments, err := h.paymentService.ListByDriver(req.DriverID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payments)
}

// AttachProof handles POST /payments/attachProof
func (h *PaymentHandler) AttachProof(c *gin.Context) {
	var req models.AttachProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	payment, err := h.paymentService.AttachProof(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}
