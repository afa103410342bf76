package services

import (
	"context"
	"time"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/utils"
)

// fakeStore is an in-memory Store. Writes made through the transactional
// handle are staged and applied only when the callback succeeds, mirroring
// the rollback behavior of the real store.
type fakeStore struct {
	records   map[string]*models.WeeklyRecord
	financing map[string]*models.FinancingRecord
	payments  map[string]*models.DriverPayment
	finOrder  []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records:   make(map[string]*models.WeeklyRecord),
		financing: make(map[string]*models.FinancingRecord),
		payments:  make(map[string]*models.DriverPayment),
	}
}

func (f *fakeStore) addRecord(record models.WeeklyRecord) {
	f.records[record.ID] = &record
}

func (f *fakeStore) addFinancing(record models.FinancingRecord) {
	f.financing[record.ID] = &record
	f.finOrder = append(f.finOrder, record.ID)
}

func (f *fakeStore) InTransaction(ctx context.Context, fn func(tx Tx) error) error {
	tx := &fakeTx{store: f}
	if err := fn(tx); err != nil {
		return err
	}
	tx.apply()
	return nil
}

type finUpdate struct {
	id        string
	remaining int
	status    string
	endDate   *time.Time
}

type fakeTx struct {
	store      *fakeStore
	paidID     string
	paidAt     time.Time
	finUpdates []finUpdate
	inserted   []*models.DriverPayment
}

func (t *fakeTx) GetWeeklyRecord(id string) (*models.WeeklyRecord, error) {
	record, ok := t.store.records[id]
	if !ok {
		return nil, utils.NewNotFoundError("Weekly record")
	}
	clone := *record
	return &clone, nil
}

func (t *fakeTx) MarkWeeklyRecordPaid(id string, paymentDate time.Time) error {
	record, ok := t.store.records[id]
	if !ok {
		return utils.NewNotFoundError("Weekly record")
	}
	if record.PaymentStatus != utils.PaymentStatusPending {
		return utils.NewConflictError(utils.ErrRecordNotPayable)
	}
	t.paidID = id
	t.paidAt = paymentDate
	return nil
}

func (t *fakeTx) InsertDriverPayment(payment *models.DriverPayment) error {
	for _, existing := range t.store.payments {
		if existing.WeeklyRecordID == payment.WeeklyRecordID {
			return utils.NewConflictError(utils.ErrRecordNotPayable)
		}
	}
	t.inserted = append(t.inserted, payment)
	return nil
}

func (t *fakeTx) GetActiveLoans(driverID string) ([]models.FinancingRecord, error) {
	var loans []models.FinancingRecord
	for _, id := range t.store.finOrder {
		record := t.store.financing[id]
		if record.DriverID == driverID &&
			record.Status == utils.FinancingStatusActive &&
			record.Type == utils.FinancingTypeLoan {
			loans = append(loans, *record)
		}
	}
	return loans, nil
}

func (t *fakeTx) UpdateFinancingProgress(id string, remainingWeeks int, status string, endDate *time.Time) error {
	if _, ok := t.store.financing[id]; !ok {
		return utils.NewNotFoundError("Financing record")
	}
	t.finUpdates = append(t.finUpdates, finUpdate{id: id, remaining: remainingWeeks, status: status, endDate: endDate})
	return nil
}

func (t *fakeTx) apply() {
	if t.paidID != "" {
		record := t.store.records[t.paidID]
		record.PaymentStatus = utils.PaymentStatusPaid
		paidAt := t.paidAt
		record.PaymentDate = &paidAt
		record.UpdatedAt = paidAt
	}
	for _, update := range t.finUpdates {
		record := t.store.financing[update.id]
		record.RemainingWeeks = update.remaining
		record.Status = update.status
		if update.endDate != nil {
			record.EndDate = update.endDate
		}
	}
	for _, payment := range t.inserted {
		t.store.payments[payment.ID] = payment
	}
}

// fakePaymentRepo serves reads over the fake store's committed payments.
type fakePaymentRepo struct {
	store *fakeStore
}

func (r *fakePaymentRepo) GetByID(id string) (*models.DriverPayment, error) {
	payment, ok := r.store.payments[id]
	if !ok {
		return nil, utils.NewNotFoundError("Payment")
	}
	clone := *payment
	return &clone, nil
}

func (r *fakePaymentRepo) ListByDriver(driverID string) ([]models.DriverPayment, error) {
	var payments []models.DriverPayment
	for _, payment := range r.store.payments {
		if payment.DriverID == driverID {
			payments = append(payments, *payment)
		}
	}
	return payments, nil
}

func (r *fakePaymentRepo) AttachProof(paymentID string, proof *models.PaymentProof) error {
	payment, ok := r.store.payments[paymentID]
	if !ok {
		return utils.NewNotFoundError("Payment")
	}
	payment.Proof = proof
	return nil
}

// fakeFinancingRepo is an in-memory FinancingRepository.
type fakeFinancingRepo struct {
	store *fakeStore
}

func (r *fakeFinancingRepo) Create(record *models.FinancingRecord) error {
	r.store.addFinancing(*record)
	return nil
}

func (r *fakeFinancingRepo) GetByID(id string) (*models.FinancingRecord, error) {
	record, ok := r.store.financing[id]
	if !ok {
		return nil, utils.NewNotFoundError("Financing record")
	}
	clone := *record
	return &clone, nil
}

func (r *fakeFinancingRepo) ListByDriver(driverID string) ([]models.FinancingRecord, error) {
	var records []models.FinancingRecord
	for _, id := range r.store.finOrder {
		record := r.store.financing[id]
		if record.DriverID == driverID {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (r *fakeFinancingRepo) ListActiveByDriver(driverID string) ([]models.FinancingRecord, error) {
	var records []models.FinancingRecord
	for _, id := range r.store.finOrder {
		record := r.store.financing[id]
		if record.DriverID == driverID && record.Status == utils.FinancingStatusActive {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (r *fakeFinancingRepo) Update(record *models.FinancingRecord) error {
	if _, ok := r.store.financing[record.ID]; !ok {
		return utils.NewNotFoundError("Financing record")
	}
	clone := *record
	r.store.financing[record.ID] = &clone
	return nil
}

// fakeWeeklyRepo is an in-memory WeeklyRecordRepository.
type fakeWeeklyRepo struct {
	store *fakeStore
}

func (r *fakeWeeklyRepo) Create(record *models.WeeklyRecord) error {
	r.store.addRecord(*record)
	return nil
}

func (r *fakeWeeklyRepo) GetByID(id string) (*models.WeeklyRecord, error) {
	record, ok := r.store.records[id]
	if !ok {
		return nil, utils.NewNotFoundError("Weekly record")
	}
	clone := *record
	return &clone, nil
}

func (r *fakeWeeklyRepo) ListByDriver(driverID string) ([]models.WeeklyRecord, error) {
	var records []models.WeeklyRecord
	for _, record := range r.store.records {
		if record.DriverID == driverID {
			records = append(records, *record)
		}
	}
	return records, nil
}
