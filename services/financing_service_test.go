package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduzpt/fleet-backend/models"
	"github.com/conduzpt/fleet-backend/utils"
)

func newFinancingServiceWithStore(store *fakeStore) *FinancingService {
	return NewFinancingService(&fakeFinancingRepo{store: store}, testLogger())
}

func TestFinancingService_WeeklyInstallmentCents_Loan(t *testing.T) {
	service := newFinancingServiceWithStore(newFakeStore())

	// 520.00 over 4 weeks at 1% weekly interest: 130.00 + 5.20 per week.
	installment := service.WeeklyInstallmentCents(&models.FinancingRecord{
		Type:               utils.FinancingTypeLoan,
		Amount:             520.00,
		TotalWeeks:         4,
		WeeklyInterestRate: 0.01,
	})

	assert.Equal(t, int64(13520), installment)
}

func TestFinancingService_WeeklyInstallmentCents_InterestFree(t *testing.T) {
	service := newFinancingServiceWithStore(newFakeStore())

	installment := service.WeeklyInstallmentCents(&models.FinancingRecord{
		Type:       utils.FinancingTypeLoan,
		Amount:     520.00,
		TotalWeeks: 4,
	})

	assert.Equal(t, int64(13000), installment)
}

func TestFinancingService_WeeklyInstallmentCents_Discount(t *testing.T) {
	service := newFinancingServiceWithStore(newFakeStore())

	installment := service.WeeklyInstallmentCents(&models.FinancingRecord{
		Type:   utils.FinancingTypeDiscount,
		Amount: 25.00,
	})

	assert.Equal(t, int64(2500), installment)
}

func TestFinancingService_WeeklyDeductionTotal(t *testing.T) {
	service := newFinancingServiceWithStore(newFakeStore())

	records := []models.FinancingRecord{
		{Type: utils.FinancingTypeLoan, WeeklyInstallment: 130.00, Status: utils.FinancingStatusActive},
		{Type: utils.FinancingTypeDiscount, WeeklyInstallment: 25.00, Status: utils.FinancingStatusActive},
		{Type: utils.FinancingTypeLoan, WeeklyInstallment: 99.00, Status: utils.FinancingStatusCompleted},
	}

	assert.Equal(t, 155.00, service.WeeklyDeductionTotal(records))
}

func TestFinancingService_CreateFinancing_Loan(t *testing.T) {
	store := newFakeStore()
	service := newFinancingServiceWithStore(store)

	record, err := service.CreateFinancing(&models.CreateFinancingRequest{
		DriverID:           "drv-1",
		Type:               utils.FinancingTypeLoan,
		Amount:             520.00,
		TotalWeeks:         4,
		WeeklyInterestRate: 0.01,
		StartDate:          "2026-08-03",
		CreatedBy:          "admin@conduz.pt",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, utils.FinancingStatusActive, record.Status)
	assert.Equal(t, 4, record.RemainingWeeks)
	assert.Equal(t, 135.20, record.WeeklyInstallment)
	assert.Contains(t, store.financing, record.ID)
}

func TestFinancingService_CreateFinancing_Discount(t *testing.T) {
	service := newFinancingServiceWithStore(newFakeStore())

	record, err := service.CreateFinancing(&models.CreateFinancingRequest{
		DriverID:  "drv-1",
		Type:      utils.FinancingTypeDiscount,
		Amount:    25.00,
		StartDate: "2026-08-03",
		CreatedBy: "admin@conduz.pt",
	})

	require.NoError(t, err)
	// Discounts recur until cancelled; there is nothing to amortize.
	assert.Equal(t, 0, record.RemainingWeeks)
	assert.Equal(t, 25.00, record.WeeklyInstallment)
}

func TestFinancingService_CreateFinancing_Validation(t *testing.T) {
	service := newFinancingServiceWithStore(newFakeStore())

	cases := []struct {
		name string
		req  models.CreateFinancingRequest
	}{
		{
			name: "unknown type",
			req:  models.CreateFinancingRequest{DriverID: "drv-1", Type: "advance", Amount: 100, TotalWeeks: 4, StartDate: "2026-08-03"},
		},
		{
			name: "non-positive amount",
			req:  models.CreateFinancingRequest{DriverID: "drv-1", Type: utils.FinancingTypeLoan, Amount: 0, TotalWeeks: 4, StartDate: "2026-08-03"},
		},
		{
			name: "loan without weeks",
			req:  models.CreateFinancingRequest{DriverID: "drv-1", Type: utils.FinancingTypeLoan, Amount: 100, TotalWeeks: 0, StartDate: "2026-08-03"},
		},
		{
			name: "bad start date",
			req:  models.CreateFinancingRequest{DriverID: "drv-1", Type: utils.FinancingTypeLoan, Amount: 100, TotalWeeks: 4, StartDate: "03/08/2026"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateFinancing(&tc.req)
			require.Error(t, err)
			assert.True(t, utils.IsKind(err, utils.KindValidation))
		})
	}
}

func TestFinancingService_UpdateFinancing(t *testing.T) {
	store := newFakeStore()
	store.addFinancing(activeLoan("fin-1", "drv-1", 3))
	service := newFinancingServiceWithStore(store)

	remaining := 1
	record, err := service.UpdateFinancing(&models.UpdateFinancingRequest{
		ID:             "fin-1",
		RemainingWeeks: &remaining,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, record.RemainingWeeks)
	assert.Equal(t, 1, store.financing["fin-1"].RemainingWeeks)

	negative := -1
	_, err = service.UpdateFinancing(&models.UpdateFinancingRequest{
		ID:             "fin-1",
		RemainingWeeks: &negative,
	})
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	badStatus := "paused"
	_, err = service.UpdateFinancing(&models.UpdateFinancingRequest{
		ID:     "fin-1",
		Status: &badStatus,
	})
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	_, err = service.UpdateFinancing(&models.UpdateFinancingRequest{ID: "missing"})
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}
