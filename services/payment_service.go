package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/utils"
)

// PaymentService owns the single point where a weekly record transitions
// from pending to paid.
type PaymentService struct {
	store            Store
	paymentRepo      PaymentRepository
	financingService *FinancingService
	log              *logrus.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(store Store, paymentRepo PaymentRepository, financingService *FinancingService, log *logrus.Logger) *PaymentService {
	return &PaymentService{
		store:            store,
		paymentRepo:      paymentRepo,
		financingService: financingService,
		log:              log,
	}
}

// CommitPayment atomically marks the weekly record paid, creates the
// immutable payment entity and decrements the driver's active loans. The
// pending precondition is checked against the live stored row inside the
// transaction, so a retried call on an already-paid record returns Conflict
// without re-applying any effect.
func (s *PaymentService) CommitPayment(ctx context.Context, req *models.CommitPaymentRequest) (*models.CommitPaymentResult, error) {
	if err := utils.ValidateRequired(req.WeeklyRecordID, "weeklyRecordId"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.Actor, "actor"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(req.BonusAmount, "bonus amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(req.DiscountAmount, "discount amount"); err != nil {
		return nil, err
	}

	var result models.CommitPaymentResult
	err := s.store.InTransaction(ctx, func(tx Tx) error {
		record, err := tx.GetWeeklyRecord(req.WeeklyRecordID)
		if err != nil {
			return err
		}
		if record.PaymentStatus != utils.PaymentStatusPending {
			return utils.NewConflictError(utils.ErrRecordNotPayable)
		}

		baseCents := utils.ToCents(record.Repasse)
		bonusCents := utils.ToCents(req.BonusAmount)
		discountCents := utils.ToCents(req.DiscountAmount)
		totalCents := baseCents + bonusCents - discountCents
		if totalCents <= 0 {
			return utils.NewValidationError(utils.ErrNonPositivePayment)
		}

		now := time.Now()
		if err := tx.MarkWeeklyRecordPaid(record.ID, now); err != nil {
			return err
		}

		decrements, err := s.financingService.ApplyWeeklyDecrement(tx, record.DriverID)
		if err != nil {
			return err
		}

		updated := *record
		updated.PaymentStatus = utils.PaymentStatusPaid
		updated.PaymentDate = &now
		updated.UpdatedAt = now

		payment := &models.DriverPayment{
			ID:              uuid.NewString(),
			WeeklyRecordID:  record.ID,
			DriverID:        record.DriverID,
			BaseAmount:      utils.FromCents(baseCents),
			BonusAmount:     utils.FromCents(bonusCents),
			DiscountAmount:  utils.FromCents(discountCents),
			TotalAmount:     utils.FromCents(totalCents),
			BaseAmountCents: baseCents,
			BonusCents:      bonusCents,
			DiscountCents:   discountCents,
			TotalCents:      totalCents,
			IBAN:            req.IBAN,
			Actor:           req.Actor,
			PaymentDate:     now,
			RecordSnapshot:  updated,
			FinancingLog:    decrements,
			CreatedAt:       now,
		}
		if req.Proof != nil {
			payment.Proof = &models.PaymentProof{
				FileName:   req.Proof.FileName,
				FileURL:    req.Proof.FileURL,
				AttachedAt: now,
			}
		}

		if err := tx.InsertDriverPayment(payment); err != nil {
			return err
		}

		result = models.CommitPaymentResult{WeeklyRecord: &updated, Payment: payment}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"weeklyRecordId": result.Payment.WeeklyRecordID,
		"paymentId":      result.Payment.ID,
		"driverId":       result.Payment.DriverID,
		"totalCents":     result.Payment.TotalCents,
		"actor":          result.Payment.Actor,
	}).Info("weekly payment committed")
	return &result, nil
}

// GetByID returns one payment.
func (s *PaymentService) GetByID(paymentID string) (*models.DriverPayment, error) {
	return s.paymentRepo.GetByID(paymentID)
}

// ListByDriver returns all payments made to a driver.
func (s *PaymentService) ListByDriver(driverID string) ([]models.DriverPayment, error) {
	return s.paymentRepo.ListByDriver(driverID)
}

// AttachProof attaches proof-of-payment metadata to an existing payment.
// This is the only mutation a payment record ever receives.
func (s *PaymentService) AttachProof(req *models.AttachProofRequest) (*models.DriverPayment, error) {
	payment, err := s.paymentRepo.GetByID(req.PaymentID)
	if err != nil {
		return nil, err
	}

	proof := &models.PaymentProof{
		FileName:   req.FileName,
		FileURL:    req.FileURL,
		AttachedAt: time.Now(),
	}
	if err := s.paymentRepo.AttachProof(payment.ID, proof); err != nil {
		s.log.WithError(err).WithField("paymentId", payment.ID).Error("failed to attach payment proof")
		return nil, err
	}

	payment.Proof = proof
	return payment, nil
}
