// repository/store.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/services"
	"github.com/conduzpt/fleet-backend/utils"
)

// Postgres aborts one of two serializable transactions touching the same
// rows; the whole callback is retried in that case.
const maxSerializationRetries = 3

// Store runs payment commits under serializable isolation.
type Store struct {
	db  *sql.DB
	log *logrus.Logger
}

// NewStore creates a new transactional store
func NewStore(db *sql.DB, log *logrus.Logger) *Store {
	return &Store{db: db, log: log}
}

// InTransaction executes fn inside one serializable transaction, retrying
// the whole read-write sequence on serialization failure. Application errors
// returned by fn roll back the transaction and pass through unchanged;
// storage failures surface as StorageError.
func (s *Store) InTransaction(ctx context.Context, fn func(tx services.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxSerializationRetries; attempt++ {
		err = s.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			break
		}
		s.log.WithField("attempt", attempt).Warn("transaction serialization failure, retrying")
	}

	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	s.log.WithError(err).Error("transaction failed")
	return utils.NewStorageError(utils.ErrFailedToStore)
}

func (s *Store) runOnce(ctx context.Context, fn func(tx services.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&pgTx{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

// pgTx implements services.Tx over one *sql.Tx.
type pgTx struct {
	tx *sql.Tx
}

// GetWeeklyRecord reads the live stored record inside the transaction.
func (t *pgTx) GetWeeklyRecord(id string) (*models.WeeklyRecord, error) {
	query := `SELECT ` + weeklyRecordColumns + ` FROM weekly_records WHERE id = $1`
	record, err := scanWeeklyRecord(t.tx.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("Weekly record")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly record: %w", err)
	}
	return record, nil
}

// MarkWeeklyRecordPaid flips a pending record to paid. The status guard in
// the WHERE clause makes the update a no-op when the record was paid by a
// concurrent commit, which surfaces as Conflict.
func (t *pgTx) MarkWeeklyRecordPaid(id string, paymentDate time.Time) error {
	query := `
		UPDATE weekly_records
		SET payment_status = $2, payment_date = $3, updated_at = $3
		WHERE id = $1 AND payment_status = $4
	`
	result, err := t.tx.Exec(query, id, utils.PaymentStatusPaid, paymentDate, utils.PaymentStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark weekly record paid: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return utils.NewConflictError(utils.ErrRecordNotPayable)
	}
	return nil
}

// InsertDriverPayment creates the immutable payment row. The unique
// constraint on weekly_record_id backs up the pending-status precondition.
func (t *pgTx) InsertDriverPayment(payment *models.DriverPayment) error {
	snapshotJSON, err := json.Marshal(payment.RecordSnapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal record snapshot: %w", err)
	}
	logJSON, err := json.Marshal(payment.FinancingLog)
	if err != nil {
		return fmt.Errorf("failed to marshal financing log: %w", err)
	}
	var proofJSON []byte
	if payment.Proof != nil {
		proofJSON, err = json.Marshal(payment.Proof)
		if err != nil {
			return fmt.Errorf("failed to marshal payment proof: %w", err)
		}
	}

	query := `
		INSERT INTO driver_payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err = t.tx.Exec(query,
		payment.ID, payment.WeeklyRecordID, payment.DriverID,
		payment.BaseAmount, payment.BonusAmount, payment.DiscountAmount,
		payment.TotalAmount, payment.BaseAmountCents, payment.BonusCents,
		payment.DiscountCents, payment.TotalCents,
		nullIfEmpty(payment.IBAN), payment.Actor, payment.PaymentDate,
		proofJSON, snapshotJSON, logJSON, payment.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return utils.NewConflictError(utils.ErrRecordNotPayable)
		}
		return fmt.Errorf("failed to insert driver payment: %w", err)
	}
	return nil
}

// GetActiveLoans returns the driver's active loan records. Discounts are not
// amortized and are excluded here.
func (t *pgTx) GetActiveLoans(driverID string) ([]models.FinancingRecord, error) {
	query := `SELECT ` + financingColumns + ` FROM financing_records
		WHERE driver_id = $1 AND status = $2 AND type = $3 ORDER BY created_at`
	rows, err := t.tx.Query(query, driverID, utils.FinancingStatusActive, utils.FinancingTypeLoan)
	if err != nil {
		return nil, fmt.Errorf("failed to list active loans: %w", err)
	}
	defer rows.Close()

	var loans []models.FinancingRecord
	for rows.Next() {
		loan, err := scanFinancingRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan active loan: %w", err)
		}
		loans = append(loans, *loan)
	}
	return loans, rows.Err()
}

// UpdateFinancingProgress persists one installment decrement.
func (t *pgTx) UpdateFinancingProgress(id string, remainingWeeks int, status string, endDate *time.Time) error {
	query := `
		UPDATE financing_records
		SET remaining_weeks = $2, status = $3, end_date = COALESCE($4, end_date), updated_at = NOW()
		WHERE id = $1
	`
	result, err := t.tx.Exec(query, id, remainingWeeks, status, endDate)
	if err != nil {
		return fmt.Errorf("failed to update financing progress: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return utils.NewNotFoundError("Financing record")
	}
	return nil
}
