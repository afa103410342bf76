// repository/weekly_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/utils"
)

const weeklyRecordColumns = `id, driver_id, driver_name, driver_type, week_id, week_start, week_end,
	uber_total, bolt_total, gross_total, vat, gross_less_vat, admin_fee,
	fuel, tolls, rent, financing_total, total_expenses, repasse,
	payment_status, payment_date, created_at, updated_at`

// WeeklyRecordRepository handles weekly record data operations
type WeeklyRecordRepository struct {
	db *sql.DB
}

// NewWeeklyRecordRepository creates a new weekly record repository
func NewWeeklyRecordRepository(db *sql.DB) *WeeklyRecordRepository {
	return &WeeklyRecordRepository{db: db}
}

// Create persists a new pending weekly record
func (r *WeeklyRecordRepository) Create(record *models.WeeklyRecord) error {
	query := `
		INSERT INTO weekly_records (` + weeklyRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`
	_, err := r.db.Exec(query,
		record.ID, record.DriverID, record.DriverName, record.DriverType,
		record.WeekID, record.WeekStart, record.WeekEnd,
		record.UberTotal, record.BoltTotal, record.GrossTotal, record.VAT,
		record.GrossLessVAT, record.AdminFee, record.Fuel, record.Tolls,
		record.Rent, record.FinancingTotal, record.TotalExpenses, record.Repasse,
		record.PaymentStatus, record.PaymentDate, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert weekly record: %w", err)
	}
	return nil
}

// GetByID retrieves a weekly record by its ID
func (r *WeeklyRecordRepository) GetByID(id string) (*models.WeeklyRecord, error) {
	query := `SELECT ` + weeklyRecordColumns + ` FROM weekly_records WHERE id = $1`
	record, err := scanWeeklyRecord(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("Weekly record")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly record: %w", err)
	}
	return record, nil
}

// ListByDriver retrieves all weekly records for a driver, newest week first
func (r *WeeklyRecordRepository) ListByDriver(driverID string) ([]models.WeeklyRecord, error) {
	query := `SELECT ` + weeklyRecordColumns + ` FROM weekly_records WHERE driver_id = $1 ORDER BY week_start DESC`
	rows, err := r.db.Query(query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly records: %w", err)
	}
	defer rows.Close()

	var records []models.WeeklyRecord
	for rows.Next() {
		record, err := scanWeeklyRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly record: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWeeklyRecord(row rowScanner) (*models.WeeklyRecord, error) {
	var record models.WeeklyRecord
	var paymentDate sql.NullTime
	err := row.Scan(
		&record.ID, &record.DriverID, &record.DriverName, &record.DriverType,
		&record.WeekID, &record.WeekStart, &record.WeekEnd,
		&record.UberTotal, &record.BoltTotal, &record.GrossTotal, &record.VAT,
		&record.GrossLessVAT, &record.AdminFee, &record.Fuel, &record.Tolls,
		&record.Rent, &record.FinancingTotal, &record.TotalExpenses, &record.Repasse,
		&record.PaymentStatus, &paymentDate, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if paymentDate.Valid {
		record.PaymentDate = &paymentDate.Time
	}
	return &record, nil
}
