package services

import (
	"context"
	"time"

	"github.com/conduzpt/fleet-backend/models"
)

// Store runs a function inside a single storage transaction. The callback is
// retried as a whole when the storage engine reports a write conflict, so it
// must be safe to re-execute from the first read.
type Store interface {
	InTransaction(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the transactional handle the payment commit works through. Every
// read sees the live stored row, not a caller-supplied copy.
type Tx interface {
	GetWeeklyRecord(id string) (*models.WeeklyRecord, error)
	MarkWeeklyRecordPaid(id string, paymentDate time.Time) error
	InsertDriverPayment(payment *models.DriverPayment) error
	GetActiveLoans(driverID string) ([]models.FinancingRecord, error)
	UpdateFinancingProgress(id string, remainingWeeks int, status string, endDate *time.Time) error
}

// WeeklyRecordRepository handles weekly record reads and ingestion writes.
type WeeklyRecordRepository interface {
	Create(record *models.WeeklyRecord) error
	GetByID(id string) (*models.WeeklyRecord, error)
	ListByDriver(driverID string) ([]models.WeeklyRecord, error)
}

// FinancingRepository handles financing record persistence outside the
// payment transaction.
type FinancingRepository interface {
	Create(record *models.FinancingRecord) error
	GetByID(id string) (*models.FinancingRecord, error)
	ListByDriver(driverID string) ([]models.FinancingRecord, error)
	ListActiveByDriver(driverID string) ([]models.FinancingRecord, error)
	Update(record *models.FinancingRecord) error
}

// PaymentRepository handles payment reads and proof attachment.
type PaymentRepository interface {
	GetByID(id string) (*models.DriverPayment, error)
	ListByDriver(driverID string) ([]models.DriverPayment, error)
	AttachProof(paymentID string, proof *models.PaymentProof) error
}
