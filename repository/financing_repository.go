// repository/financing_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/utils"
)

const financingColumns = `id, driver_id, type, amount, total_weeks, weekly_interest_rate,
	weekly_installment, remaining_weeks, status, start_date, end_date, proof_url,
	created_by, created_at, updated_at`

// FinancingRepository handles financing record data operations
type FinancingRepository struct {
	db *sql.DB
}

// NewFinancingRepository creates a new financing repository
func NewFinancingRepository(db *sql.DB) *FinancingRepository {
	return &FinancingRepository{db: db}
}

// Create persists a new financing record
func (r *FinancingRepository) Create(record *models.FinancingRecord) error {
	query := `
		INSERT INTO financing_records (` + financingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(query,
		record.ID, record.DriverID, record.Type, record.Amount, record.TotalWeeks,
		record.WeeklyInterestRate, record.WeeklyInstallment, record.RemainingWeeks,
		record.Status, record.StartDate, record.EndDate, nullIfEmpty(record.ProofURL),
		record.CreatedBy, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert financing record: %w", err)
	}
	return nil
}

// GetByID retrieves a financing record by its ID
func (r *FinancingRepository) GetByID(id string) (*models.FinancingRecord, error) {
	query := `SELECT ` + financingColumns + ` FROM financing_records WHERE id = $1`
	record, err := scanFinancingRecord(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("Financing record")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get financing record: %w", err)
	}
	return record, nil
}

// ListByDriver retrieves all financing records for a driver
func (r *FinancingRepository) ListByDriver(driverID string) ([]models.FinancingRecord, error) {
	query := `SELECT ` + financingColumns + ` FROM financing_records WHERE driver_id = $1 ORDER BY created_at`
	return r.queryFinancingRecords(query, driverID)
}

// ListActiveByDriver retrieves a driver's active financing records of both types
func (r *FinancingRepository) ListActiveByDriver(driverID string) ([]models.FinancingRecord, error) {
	query := `SELECT ` + financingColumns + ` FROM financing_records WHERE driver_id = $1 AND status = $2 ORDER BY created_at`
	return r.queryFinancingRecords(query, driverID, utils.FinancingStatusActive)
}

// Update overwrites the mutable fields of a financing record
func (r *FinancingRepository) Update(record *models.FinancingRecord) error {
	query := `
		UPDATE financing_records
		SET remaining_weeks = $2, status = $3, end_date = $4, proof_url = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.db.Exec(query,
		record.ID, record.RemainingWeeks, record.Status, record.EndDate,
		nullIfEmpty(record.ProofURL), record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update financing record: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return utils.NewNotFoundError("Financing record")
	}
	return nil
}

func (r *FinancingRepository) queryFinancingRecords(query string, args ...interface{}) ([]models.FinancingRecord, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list financing records: %w", err)
	}
	defer rows.Close()

	var records []models.FinancingRecord
	for rows.Next() {
		record, err := scanFinancingRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan financing record: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func scanFinancingRecord(row rowScanner) (*models.FinancingRecord, error) {
	var record models.FinancingRecord
	var endDate sql.NullTime
	var proofURL sql.NullString
	err := row.Scan(
		&record.ID, &record.DriverID, &record.Type, &record.Amount, &record.TotalWeeks,
		&record.WeeklyInterestRate, &record.WeeklyInstallment, &record.RemainingWeeks,
		&record.Status, &record.StartDate, &endDate, &proofURL,
		&record.CreatedBy, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		record.EndDate = &endDate.Time
	}
	record.ProofURL = proofURL.String
	return &record, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
