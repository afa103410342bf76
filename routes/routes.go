package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/conduzpt/fleet-backend/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(
	router *gin.Engine,
	weeklyHandler *handlers.WeeklyRecordHandler,
	paymentHandler *handlers.PaymentHandler,
	financingHandler *handlers.FinancingHandler,
) {
	v1 := router.Group("/api/v1")
	{
		// Weekly record endpoints
		v1.POST("/weekly-records/create", weeklyHandler.CreateWeeklyRecord)
		v1.POST("/weekly-records/get", weeklyHandler.GetWeeklyRecord)
		v1.POST("/weekly-records/listByDriver", weeklyHandler.ListWeeklyRecordsByDriver)

		// Payment endpoints
		v1.POST("/payments/commit", paymentHandler.CommitPayment)
		v1.POST("/payments/listByDriver", paymentHandler.ListPaymentsByDriver)
		v1.POST("/payments/attachProof", paymentHandler.AttachProof)

		// Financing endpoints
		v1.POST("/financing/create", financingHandler.CreateFinancing)
		v1.POST("/financing/listByDriver", financingHandler.ListFinancingByDriver)
		v1.POST("/financing/update", financingHandler.UpdateFinancing)
	}
}
