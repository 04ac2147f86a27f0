package model

type Employee struct {
	EmployeeID  string  `db:"employee_id" json:"employee_id"`
	Name        string  `db:"name"        json:"name"`
	Designation string  `db:"designation" json:"designation"`
	Salary      float64 `db:"salary"      json:"salary"`
	CreatedAt   string  `db:"created_at"  json:"created_at"`
}

type SalarySlip struct {
	SlipID     string  `db:"slip_id"     json:"slip_id"`
	EmployeeID string  `db:"employee_id" json:"employee_id"`
	Month      string  `db:"month"       json:"month"` // free text, e.g. "2025-04"
	Amount     float64 `db:"amount"      json:"amount"`
	IssuedDate string  `db:"issued_date" json:"issued_date"`
}

type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Salary      string `json:"salary"` // parsed as decimal
}

type CreateSalarySlipRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	Amount     string `json:"amount"`
}
