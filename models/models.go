package models

import "time"

// WeeklyRecord holds one driver's earnings and deductions for one ISO week.
// It is created when platform data is ingested and mutated exactly once,
// when the payment commit flips it from pending to paid.
type WeeklyRecord struct {
	ID             string     `json:"id" db:"id"`
	DriverID       string     `json:"driverId" db:"driver_id"`
	DriverName     string     `json:"driverName" db:"driver_name"`
	DriverType     string     `json:"driverType" db:"driver_type"`
	WeekID         string     `json:"weekId" db:"week_id"`
	WeekStart      time.Time  `json:"weekStart" db:"week_start"`
	WeekEnd        time.Time  `json:"weekEnd" db:"week_end"`
	UberTotal      float64    `json:"uberTotal" db:"uber_total"`
	BoltTotal      float64    `json:"boltTotal" db:"bolt_total"`
	GrossTotal     float64    `json:"grossTotal" db:"gross_total"`
	VAT            float64    `json:"vat" db:"vat"`
	GrossLessVAT   float64    `json:"grossLessVat" db:"gross_less_vat"`
	AdminFee       float64    `json:"adminFee" db:"admin_fee"`
	Fuel           float64    `json:"fuel" db:"fuel"`
	Tolls          float64    `json:"tolls" db:"tolls"`
	Rent           float64    `json:"rent" db:"rent"`
	FinancingTotal float64    `json:"financingTotal" db:"financing_total"`
	TotalExpenses  float64    `json:"totalExpenses" db:"total_expenses"`
	Repasse        float64    `json:"repasse" db:"repasse"`
	PaymentStatus  string     `json:"paymentStatus" db:"payment_status"`
	PaymentDate    *time.Time `json:"paymentDate,omitempty" db:"payment_date"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// FinancingRecord represents a loan amortized over a number of weeks or a
// flat recurring weekly discount. Amount is the principal for loans and the
// weekly deduction for discounts. WeeklyInstallment is fixed at creation so
// every week deducts the same amount.
type FinancingRecord struct {
	ID                 string     `json:"id" db:"id"`
	DriverID           string     `json:"driverId" db:"driver_id"`
	Type               string     `json:"type" db:"type"`
	Amount             float64    `json:"amount" db:"amount"`
	TotalWeeks         int        `json:"totalWeeks" db:"total_weeks"`
	WeeklyInterestRate float64    `json:"weeklyInterestRate" db:"weekly_interest_rate"`
	WeeklyInstallment  float64    `json:"weeklyInstallment" db:"weekly_installment"`
	RemainingWeeks     int        `json:"remainingWeeks" db:"remaining_weeks"`
	Status             string     `json:"status" db:"status"`
	StartDate          time.Time  `json:"startDate" db:"start_date"`
	EndDate            *time.Time `json:"endDate,omitempty" db:"end_date"`
	ProofURL           string     `json:"proofUrl,omitempty" db:"proof_url"`
	CreatedBy          string     `json:"createdBy" db:"created_by"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}

// FinancingDecrement is one audit log entry produced when a loan installment
// is applied during a payment commit.
type FinancingDecrement struct {
	FinancingID           string  `json:"financingId"`
	Amount                float64 `json:"amount"`
	InstallmentsPaid      int     `json:"installmentsPaid"`
	RemainingInstallments int     `json:"remainingInstallments"`
	Completed             bool    `json:"completed"`
}

// PaymentProof is optional proof-of-payment metadata attached to a payment.
type PaymentProof struct {
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	AttachedAt time.Time `json:"attachedAt"`
}

// DriverPayment is the append-only record of a completed payment for one
// weekly record. Amounts are kept both in euros and integer cents; the cents
// are authoritative. The snapshot preserves the weekly record as it was at
// commit time.
type DriverPayment struct {
	ID              string               `json:"id" db:"id"`
	WeeklyRecordID  string               `json:"weeklyRecordId" db:"weekly_record_id"`
	DriverID        string               `json:"driverId" db:"driver_id"`
	BaseAmount      float64              `json:"baseAmount" db:"base_amount"`
	BonusAmount     float64              `json:"bonusAmount" db:"bonus_amount"`
	DiscountAmount  float64              `json:"discountAmount" db:"discount_amount"`
	TotalAmount     float64              `json:"totalAmount" db:"total_amount"`
	BaseAmountCents int64                `json:"baseAmountCents" db:"base_amount_cents"`
	BonusCents      int64                `json:"bonusCents" db:"bonus_cents"`
	DiscountCents   int64                `json:"discountCents" db:"discount_cents"`
	TotalCents      int64                `json:"totalCents" db:"total_cents"`
	IBAN            string               `json:"iban,omitempty" db:"iban"`
	Actor           string               `json:"actor" db:"actor"`
	PaymentDate     time.Time            `json:"paymentDate" db:"payment_date"`
	Proof           *PaymentProof        `json:"proof,omitempty" db:"proof"`
	RecordSnapshot  WeeklyRecord         `json:"recordSnapshot" db:"record_snapshot"`
	FinancingLog    []FinancingDecrement `json:"financingLog" db:"financing_log"`
	CreatedAt       time.Time            `json:"createdAt" db:"created_at"`
}
