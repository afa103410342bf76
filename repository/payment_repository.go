// repository/payment_repository.go
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/utils"
)

const paymentColumns = `id, weekly_record_id, driver_id, base_amount, bonus_amount, discount_amount,
	total_amount, base_amount_cents, bonus_cents, discount_cents, total_cents,
	iban, actor, payment_date, proof_json, record_snapshot_json, financing_log_json, created_at`

// PaymentRepository handles driver payment data operations
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// GetByID retrieves a payment by its ID
func (r *PaymentRepository) GetByID(id string) (*models.DriverPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM driver_payments WHERE id = $1`
	payment, err := scanDriverPayment(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("Payment")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

// ListByDriver retrieves all payments made to a driver, newest first
func (r *PaymentRepository) ListByDriver(driverID string) ([]models.DriverPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM driver_payments WHERE driver_id = $1 ORDER BY payment_date DESC`
	rows, err := r.db.Query(query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.DriverPayment
	for rows.Next() {
		payment, err := scanDriverPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, *payment)
	}
	return payments, rows.Err()
}

// AttachProof sets the proof metadata on an existing payment. Payments are
// otherwise append-only; no other column is ever updated.
func (r *PaymentRepository) AttachProof(paymentID string, proof *models.PaymentProof) error {
	proofJSON, err := json.Marshal(proof)
	if err != nil {
		return fmt.Errorf("failed to marshal payment proof: %w", err)
	}

	query := `UPDATE driver_payments SET proof_json = $2 WHERE id = $1`
	result, err := r.db.Exec(query, paymentID, proofJSON)
	if err != nil {
		return fmt.Errorf("failed to attach payment proof: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return utils.NewNotFoundError("Payment")
	}
	return nil
}

func scanDriverPayment(row rowScanner) (*models.DriverPayment, error) {
	var payment models.DriverPayment
	var iban sql.NullString
	var proofJSON, snapshotJSON, logJSON []byte
	err := row.Scan(
		&payment.ID, &payment.WeeklyRecordID, &payment.DriverID,
		&payment.BaseAmount, &payment.BonusAmount, &payment.DiscountAmount,
		&payment.TotalAmount, &payment.BaseAmountCents, &payment.BonusCents,
		&payment.DiscountCents, &payment.TotalCents,
		&iban, &payment.Actor, &payment.PaymentDate,
		&proofJSON, &snapshotJSON, &logJSON, &payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	payment.IBAN = iban.String

	if len(proofJSON) > 0 {
		if err := json.Unmarshal(proofJSON, &payment.Proof); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payment proof: %w", err)
		}
	}
	if err := json.Unmarshal(snapshotJSON, &payment.RecordSnapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record snapshot: %w", err)
	}
	if len(logJSON) > 0 {
		if err := json.Unmarshal(logJSON, &payment.FinancingLog); err != nil {
			return nil, fmt.Errorf("failed to unmarshal financing log: %w", err)
		}
	}
	return &payment, nil
}
