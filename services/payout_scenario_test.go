package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conduzpt/fleet-backend/utils"
)

// End-to-end weekly scenarios: the same gross earnings settled for an
// affiliate and for a renter, with and without financing.

func TestPayoutScenario_AffiliateWeek(t *testing.T) {
	service := NewPayoutService()

	breakdown, err := service.Calculate(PayoutInput{
		DriverType: utils.DriverTypeAffiliate,
		UberTotal:  500.00,
		BoltTotal:  300.00,
		Fuel:       50.00,
	})

	assert.NoError(t, err)
	assert.Equal(t, 800.00, utils.FromCents(breakdown.GrossCents))
	assert.Equal(t, 48.00, utils.FromCents(breakdown.VATCents))
	assert.Equal(t, 752.00, utils.FromCents(breakdown.GrossLessVATCents))
	assert.Equal(t, 52.64, utils.FromCents(breakdown.AdminFeeCents))
	assert.Equal(t, 50.00, utils.FromCents(breakdown.TotalExpensesCents))
	assert.Equal(t, 649.36, utils.FromCents(breakdown.RepasseCents))
}

func TestPayoutScenario_RenterWeek(t *testing.T) {
	service := NewPayoutService()

	breakdown, err := service.Calculate(PayoutInput{
		DriverType: utils.DriverTypeRenter,
		UberTotal:  500.00,
		BoltTotal:  300.00,
		Fuel:       50.00,
		Tolls:      20.00,
		Rent:       100.00,
	})

	assert.NoError(t, err)
	assert.Equal(t, 20.00, utils.FromCents(breakdown.TollsCents))
	assert.Equal(t, 100.00, utils.FromCents(breakdown.RentCents))
	assert.Equal(t, 529.36, utils.FromCents(breakdown.RepasseCents))
}

func TestPayoutScenario_RenterWeekWithFinancing(t *testing.T) {
	service := NewPayoutService()

	// Same week as above with a 45.50 weekly financing deduction.
	breakdown, err := service.Calculate(PayoutInput{
		DriverType:     utils.DriverTypeRenter,
		UberTotal:      500.00,
		BoltTotal:      300.00,
		Fuel:           50.00,
		Tolls:          20.00,
		Rent:           100.00,
		FinancingTotal: 45.50,
	})

	assert.NoError(t, err)
	assert.Equal(t, 45.50, utils.FromCents(breakdown.FinancingCents))
	assert.Equal(t, 483.86, utils.FromCents(breakdown.RepasseCents))
}
