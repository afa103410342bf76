package services

import (
	"github.com/conduzpt/fleet-backend/utils"
)

// PayoutService computes a driver's weekly net payout from gross platform
// earnings. All arithmetic runs on integer cents with rounding at each step.
type PayoutService struct{}

// NewPayoutService creates a new payout service
func NewPayoutService() *PayoutService {
	return &PayoutService{}
}

// PayoutInput is one driver's validated weekly totals in euros.
type PayoutInput struct {
	DriverType     string
	UberTotal      float64
	BoltTotal      float64
	Fuel           float64
	Tolls          float64
	Rent           float64
	FinancingTotal float64
}

// PayoutBreakdown is the computed deduction pipeline in integer cents.
// Tolls and rent carry the applied values: zero for affiliate drivers.
type PayoutBreakdown struct {
	GrossCents         int64
	VATCents           int64
	GrossLessVATCents  int64
	AdminFeeCents      int64
	FuelCents          int64
	TollsCents         int64
	RentCents          int64
	FinancingCents     int64
	TotalExpensesCents int64
	RepasseCents       int64
}

// Calculate runs the fixed deduction pipeline:
// gross -> VAT -> admin fee -> expenses -> repasse.
// A negative repasse is a valid result: the driver owes the company.
func (s *PayoutService) Calculate(input PayoutInput) (*PayoutBreakdown, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	gross := utils.ToCents(input.UberTotal) + utils.ToCents(input.BoltTotal)
	vat := utils.PercentOfCents(gross, utils.VATRate)
	grossLessVAT := gross - vat
	adminFee := utils.PercentOfCents(grossLessVAT, utils.AdminFeeRate)

	// Tolls and rent are only charged to drivers on company vehicles.
	var tolls, rent int64
	if input.DriverType == utils.DriverTypeRenter {
		tolls = utils.ToCents(input.Tolls)
		rent = utils.ToCents(input.Rent)
	}

	fuel := utils.ToCents(input.Fuel)
	financing := utils.ToCents(input.FinancingTotal)
	totalExpenses := fuel + tolls + rent + financing

	return &PayoutBreakdown{
		GrossCents:         gross,
		VATCents:           vat,
		GrossLessVATCents:  grossLessVAT,
		AdminFeeCents:      adminFee,
		FuelCents:          fuel,
		TollsCents:         tolls,
		RentCents:          rent,
		FinancingCents:     financing,
		TotalExpensesCents: totalExpenses,
		RepasseCents:       grossLessVAT - adminFee - totalExpenses,
	}, nil
}

// validateInput validates the payout input
func (s *PayoutService) validateInput(input PayoutInput) error {
	if err := utils.ValidateDriverType(input.DriverType); err != nil {
		return err
	}
	if err := utils.ValidateNonNegative(input.UberTotal, "uber total"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegative(input.BoltTotal, "bolt total"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegative(input.Fuel, "fuel"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegative(input.Tolls, "tolls"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegative(input.Rent, "rent"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegative(input.FinancingTotal, "financing total"); err != nil {
		return err
	}
	return nil
}
