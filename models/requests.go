package models

// CreateWeeklyRecordRequest carries one driver's normalized weekly totals
// from the platform aggregator. Dates use the 2006-01-02 layout.
type CreateWeeklyRecordRequest struct {
	DriverID   string  `json:"driverId" binding:"required"`
	DriverName string  `json:"driverName" binding:"required"`
	DriverType string  `json:"driverType" binding:"required"`
	WeekID     string  `json:"weekId" binding:"required"`
	WeekStart  string  `json:"weekStart" binding:"required"`
	WeekEnd    string  `json:"weekEnd" binding:"required"`
	UberTotal  float64 `json:"uberTotal" binding:"min=0"`
	BoltTotal  float64 `json:"boltTotal" binding:"min=0"`
	Fuel       float64 `json:"fuel" binding:"min=0"`
	Tolls      float64 `json:"tolls" binding:"min=0"`
	Rent       float64 `json:"rent" binding:"min=0"`
}

// GetWeeklyRecordRequest request model
type GetWeeklyRecordRequest struct {
	ID string `json:"id" binding:"required"`
}

// ListByDriverRequest request model
type ListByDriverRequest struct {
	DriverID string `json:"driverId" binding:"required"`
}

// ProofInput is proof-of-payment metadata supplied by the caller.
type ProofInput struct {
	FileName string `json:"fileName" binding:"required"`
	FileURL  string `json:"fileUrl" binding:"required"`
}

// CommitPaymentRequest is the admin action that marks a weekly record paid.
type CommitPaymentRequest struct {
	WeeklyRecordID string      `json:"weeklyRecordId" binding:"required"`
	BonusAmount    float64     `json:"bonusAmount"`
	DiscountAmount float64     `json:"discountAmount"`
	IBAN           string      `json:"iban"`
	Actor          string      `json:"actor" binding:"required"`
	Proof          *ProofInput `json:"proofOfPayment"`
}

// CommitPaymentResult is returned on a successful payment commit.
type CommitPaymentResult struct {
	WeeklyRecord *WeeklyRecord  `json:"weeklyRecord"`
	Payment      *DriverPayment `json:"payment"`
}

// AttachProofRequest attaches proof metadata to an existing payment.
type AttachProofRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
	FileName  string `json:"fileName" binding:"required"`
	FileURL   string `json:"fileUrl" binding:"required"`
}

// CreateFinancingRequest creates a loan or recurring discount for a driver.
type CreateFinancingRequest struct {
	DriverID           string  `json:"driverId" binding:"required"`
	Type               string  `json:"type" binding:"required"`
	Amount             float64 `json:"amount" binding:"required,gt=0"`
	TotalWeeks         int     `json:"totalWeeks" binding:"min=0"`
	WeeklyInterestRate float64 `json:"weeklyInterestRate" binding:"min=0"`
	StartDate          string  `json:"startDate" binding:"required"`
	CreatedBy          string  `json:"createdBy" binding:"required"`
}

// UpdateFinancingRequest is a manual admin edit of a financing record.
// Unlike the payment commit, it is not serialized against concurrent
// commits; see FinancingService.UpdateFinancing.
type UpdateFinancingRequest struct {
	ID             string  `json:"id" binding:"required"`
	RemainingWeeks *int    `json:"remainingWeeks"`
	Status         *string `json:"status"`
	ProofURL       *string `json:"proofUrl"`
}
