package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/utils"
)

// WeeklyService turns aggregator totals into pending weekly records.
type WeeklyService struct {
	weeklyRepo       WeeklyRecordRepository
	financingRepo    FinancingRepository
	payoutService    *PayoutService
	financingService *FinancingService
	log              *logrus.Logger
}

// NewWeeklyService creates a new weekly record service
func NewWeeklyService(
	weeklyRepo WeeklyRecordRepository,
	financingRepo FinancingRepository,
	payoutService *PayoutService,
	financingService *FinancingService,
	log *logrus.Logger,
) *WeeklyService {
	return &WeeklyService{
		weeklyRepo:       weeklyRepo,
		financingRepo:    financingRepo,
		payoutService:    payoutService,
		financingService: financingService,
		log:              log,
	}
}

// CreateWeeklyRecord computes the payout pipeline for the submitted weekly
// totals and persists a pending record. The week's financing deduction is
// derived from the driver's currently active financing records.
func (s *WeeklyService) CreateWeeklyRecord(req *models.CreateWeeklyRecordRequest) (*models.WeeklyRecord, error) {
	weekStart, err := time.Parse(time.DateOnly, req.WeekStart)
	if err != nil {
		return nil, utils.NewValidationError("week start must use the YYYY-MM-DD format")
	}
	weekEnd, err := time.Parse(time.DateOnly, req.WeekEnd)
	if err != nil {
		return nil, utils.NewValidationError("week end must use the YYYY-MM-DD format")
	}
	if weekEnd.Before(weekStart) {
		return nil, utils.NewValidationError("week end cannot be before week start")
	}

	active, err := s.financingRepo.ListActiveByDriver(req.DriverID)
	if err != nil {
		return nil, err
	}
	financingTotal := s.financingService.WeeklyDeductionTotal(active)

	breakdown, err := s.payoutService.Calculate(PayoutInput{
		DriverType:     req.DriverType,
		UberTotal:      req.UberTotal,
		BoltTotal:      req.BoltTotal,
		Fuel:           req.Fuel,
		Tolls:          req.Tolls,
		Rent:           req.Rent,
		FinancingTotal: financingTotal,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &models.WeeklyRecord{
		ID:             uuid.NewString(),
		DriverID:       req.DriverID,
		DriverName:     req.DriverName,
		DriverType:     req.DriverType,
		WeekID:         req.WeekID,
		WeekStart:      weekStart,
		WeekEnd:        weekEnd,
		UberTotal:      req.UberTotal,
		BoltTotal:      req.BoltTotal,
		GrossTotal:     utils.FromCents(breakdown.GrossCents),
		VAT:            utils.FromCents(breakdown.VATCents),
		GrossLessVAT:   utils.FromCents(breakdown.GrossLessVATCents),
		AdminFee:       utils.FromCents(breakdown.AdminFeeCents),
		Fuel:           utils.FromCents(breakdown.FuelCents),
		Tolls:          utils.FromCents(breakdown.TollsCents),
		Rent:           utils.FromCents(breakdown.RentCents),
		FinancingTotal: utils.FromCents(breakdown.FinancingCents),
		TotalExpenses:  utils.FromCents(breakdown.TotalExpensesCents),
		Repasse:        utils.FromCents(breakdown.RepasseCents),
		PaymentStatus:  utils.PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.weeklyRepo.Create(record); err != nil {
		s.log.WithError(err).WithField("driverId", req.DriverID).Error("failed to store weekly record")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"weeklyRecordId": record.ID,
		"driverId":       record.DriverID,
		"weekId":         record.WeekID,
		"repasse":        record.Repasse,
	}).Info("weekly record created")
	return record, nil
}

// GetByID returns one weekly record.
func (s *WeeklyService) GetByID(id string) (*models.WeeklyRecord, error) {
	return s.weeklyRepo.GetByID(id)
}

// ListByDriver returns a driver's weekly records, newest week first.
func (s *WeeklyService) ListByDriver(driverID string) ([]models.WeeklyRecord, error) {
	return s.weeklyRepo.ListByDriver(driverID)
}
