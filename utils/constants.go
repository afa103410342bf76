package utils

const (
	// Driver types
	DriverTypeAffiliate = "affiliate"
	DriverTypeRenter    = "renter"

	// Weekly record payment statuses
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusCancelled = "cancelled"

	// Financing types
	FinancingTypeLoan     = "loan"
	FinancingTypeDiscount = "discount"

	// Financing statuses
	FinancingStatusActive    = "active"
	FinancingStatusCompleted = "completed"

	// Deduction rates applied to every weekly record
	VATRate      = 0.06
	AdminFeeRate = 0.07

	// HTTP status messages
	ErrInvalidRequest       = "Invalid request"
	ErrWeeklyRecordNotFound = "Weekly record not found"
	ErrFinancingNotFound    = "Financing record not found"
	ErrPaymentNotFound      = "Payment not found"
	ErrRecordNotPayable     = "Weekly record is not pending payment"
	ErrNonPositivePayment   = "Total payment amount must be positive"
	ErrFailedToStore        = "Failed to store data"
	ErrFailedToRetrieve     = "Failed to retrieve data"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
