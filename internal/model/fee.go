package model

type FeeTransaction struct {
	TransactionID string  `db:"transaction_id" json:"transaction_id"`
	StudentID     string  `db:"student_id"     json:"student_id"`
	FeeType       string  `db:"fee_type"       json:"fee_type"` // free text: Class/Hostel/Bus
	Amount        float64 `db:"amount"         json:"amount"`
	PaymentDate   string  `db:"payment_date"   json:"payment_date"`
}

// FeeSchedule is the per-class tuition amount, keyed by class name.
type FeeSchedule struct {
	Class  string  `db:"class"  json:"class"`
	Amount float64 `db:"amount" json:"amount"`
}

type CreateFeeTransactionRequest struct {
	StudentID string `json:"student_id"`
	FeeType   string `json:"fee_type"`
	Amount    string `json:"amount"`
}

// TuitionFee is the student-dashboard view of the fee schedule. Found
// distinguishes "fee not set for this class" from a real amount.
type TuitionFee struct {
	Class  string  `json:"class"`
	Amount float64 `json:"amount"`
	Found  bool    `json:"found"`
}

// NoDuesCertificate is the generated artifact plus the fields it was
// rendered from.
type NoDuesCertificate struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Date      string `json:"date"` // YYYY-MM-DD
	Content   string `json:"content"`
	Path      string `json:"path,omitempty"`
}

type GenerateNoDuesRequest struct {
	DestinationPath string `json:"destination_path"`
}
