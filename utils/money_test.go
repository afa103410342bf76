package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(80000), ToCents(800.00))
	assert.Equal(t, int64(52936), ToCents(529.36))
	assert.Equal(t, int64(1), ToCents(0.01))
	assert.Equal(t, int64(-10258), ToCents(-102.58))

	// Float representation noise must not shift the cent value.
	assert.Equal(t, int64(2920), ToCents(29.20))
	assert.Equal(t, int64(815), ToCents(0.1+0.2+7.85))
}

func TestFromCents(t *testing.T) {
	assert.Equal(t, 529.36, FromCents(52936))
	assert.Equal(t, -102.58, FromCents(-10258))
	assert.Equal(t, 0.00, FromCents(0))
}

func TestPercentOfCents(t *testing.T) {
	// 6% VAT on 800.00 and 7% admin fee on 752.00.
	assert.Equal(t, int64(4800), PercentOfCents(80000, VATRate))
	assert.Equal(t, int64(5264), PercentOfCents(75200, AdminFeeRate))

	// Half a cent rounds up: 1% of 0.51 is 0.0051.
	assert.Equal(t, int64(1), PercentOfCents(51, 0.01))
	assert.Equal(t, int64(0), PercentOfCents(49, 0.01))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 529.36, Round(529.3551))
	assert.Equal(t, 529.35, Round(529.3549))
	assert.Equal(t, 0.1, Round(0.1))
	assert.Equal(t, 649.36, Round(649.3649))
}
