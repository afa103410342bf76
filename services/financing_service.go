package services

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/utils"
)

// FinancingService maintains loans and recurring discounts per driver and
// applies one installment decrement per weekly payment.
type FinancingService struct {
	financingRepo FinancingRepository
	log           *logrus.Logger
}

// NewFinancingService creates a new financing service
func NewFinancingService(financingRepo FinancingRepository, log *logrus.Logger) *FinancingService {
	return &FinancingService{
		financingRepo: financingRepo,
		log:           log,
	}
}

// WeeklyInstallmentCents derives the fixed weekly deduction for a financing
// record. Loans amortize straight-line over TotalWeeks plus flat weekly
// interest on the principal; discounts deduct their amount as-is every week.
func (s *FinancingService) WeeklyInstallmentCents(record *models.FinancingRecord) int64 {
	amountCents := utils.ToCents(record.Amount)
	if record.Type == utils.FinancingTypeDiscount {
		return amountCents
	}
	principal := int64(math.Round(float64(amountCents) / float64(record.TotalWeeks)))
	interest := utils.PercentOfCents(amountCents, record.WeeklyInterestRate)
	return principal + interest
}

// WeeklyDeductionTotal sums the weekly installments of the given active
// financing records. Applies to both driver types.
func (s *FinancingService) WeeklyDeductionTotal(records []models.FinancingRecord) float64 {
	var total int64
	for _, record := range records {
		if record.Status != utils.FinancingStatusActive {
			continue
		}
		total += utils.ToCents(record.WeeklyInstallment)
	}
	return utils.FromCents(total)
}

// CreateFinancing registers a new loan or discount for a driver.
func (s *FinancingService) CreateFinancing(req *models.CreateFinancingRequest) (*models.FinancingRecord, error) {
	if err := utils.ValidateFinancingType(req.Type); err != nil {
		return nil, err
	}
	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(req.WeeklyInterestRate, "weekly interest rate"); err != nil {
		return nil, err
	}
	if req.Type == utils.FinancingTypeLoan && req.TotalWeeks < 1 {
		return nil, utils.NewValidationError("total weeks must be at least 1 for a loan")
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return nil, utils.NewValidationError("start date must use the YYYY-MM-DD format")
	}

	now := time.Now()
	record := &models.FinancingRecord{
		ID:                 uuid.NewString(),
		DriverID:           req.DriverID,
		Type:               req.Type,
		Amount:             req.Amount,
		TotalWeeks:         req.TotalWeeks,
		WeeklyInterestRate: req.WeeklyInterestRate,
		RemainingWeeks:     req.TotalWeeks,
		Status:             utils.FinancingStatusActive,
		StartDate:          startDate,
		CreatedBy:          req.CreatedBy,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if record.Type == utils.FinancingTypeDiscount {
		record.RemainingWeeks = 0
	}
	record.WeeklyInstallment = utils.FromCents(s.WeeklyInstallmentCents(record))

	if err := s.financingRepo.Create(record); err != nil {
		s.log.WithError(err).Error("failed to create financing record")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"financingId": record.ID,
		"driverId":    record.DriverID,
		"type":        record.Type,
	}).Info("financing record created")
	return record, nil
}

// ListByDriver returns all financing records for a driver.
func (s *FinancingService) ListByDriver(driverID string) ([]models.FinancingRecord, error) {
	return s.financingRepo.ListByDriver(driverID)
}

// UpdateFinancing applies a manual admin edit to a financing record.
// This path is not serialized against concurrent payment commits; an edit
// racing a commit can lose. The payment flow itself is unaffected because it
// re-reads the record inside its own transaction.
func (s *FinancingService) UpdateFinancing(req *models.UpdateFinancingRequest) (*models.FinancingRecord, error) {
	record, err := s.financingRepo.GetByID(req.ID)
	if err != nil {
		return nil, err
	}

	if req.RemainingWeeks != nil {
		if *req.RemainingWeeks < 0 {
			return nil, utils.NewValidationError("remaining weeks cannot be negative")
		}
		record.RemainingWeeks = *req.RemainingWeeks
	}
	if req.Status != nil {
		if *req.Status != utils.FinancingStatusActive && *req.Status != utils.FinancingStatusCompleted {
			return nil, utils.NewValidationError("status must be active or completed")
		}
		record.Status = *req.Status
	}
	if req.ProofURL != nil {
		record.ProofURL = *req.ProofURL
	}
	record.UpdatedAt = time.Now()

	if err := s.financingRepo.Update(record); err != nil {
		s.log.WithError(err).WithField("financingId", record.ID).Error("failed to update financing record")
		return nil, err
	}
	return record, nil
}

// ApplyWeeklyDecrement applies one installment to every active loan of the
// driver inside the given transaction. Discounts are a flat weekly deduction
// already counted in the payout and are never amortized. Must run inside the
// same transaction as the payment commit so a failed commit rolls back every
// decrement.
func (s *FinancingService) ApplyWeeklyDecrement(tx Tx, driverID string) ([]models.FinancingDecrement, error) {
	loans, err := tx.GetActiveLoans(driverID)
	if err != nil {
		return nil, err
	}

	decrements := make([]models.FinancingDecrement, 0, len(loans))
	for _, loan := range loans {
		remaining := loan.RemainingWeeks - 1
		if remaining < 0 {
			remaining = 0
		}

		status := utils.FinancingStatusActive
		var endDate *time.Time
		if remaining == 0 {
			status = utils.FinancingStatusCompleted
			completedAt := time.Now()
			endDate = &completedAt
		}

		if err := tx.UpdateFinancingProgress(loan.ID, remaining, status, endDate); err != nil {
			return nil, err
		}

		decrements = append(decrements, models.FinancingDecrement{
			FinancingID:           loan.ID,
			Amount:                loan.WeeklyInstallment,
			InstallmentsPaid:      loan.TotalWeeks - remaining,
			RemainingInstallments: remaining,
			Completed:             remaining == 0,
		})
	}
	return decrements, nil
}
