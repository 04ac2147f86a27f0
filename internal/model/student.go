package model

type Student struct {
	StudentID    string `db:"student_id"    json:"student_id"`
	Name         string `db:"name"          json:"name"`
	Class        string `db:"class"         json:"class"`
	HostelStatus string `db:"hostel_status" json:"hostel_status"` // Yes | No
	BusStatus    string `db:"bus_status"    json:"bus_status"`    // Yes | No
	CreatedAt    string `db:"created_at"    json:"created_at"`
}

type CreateStudentRequest struct {
	Name         string `json:"name"`
	Class        string `json:"class"`
	HostelStatus string `json:"hostel_status"`
	BusStatus    string `json:"bus_status"`
}

// StudentCredentials is returned once, at creation time: username is
// "student" + the first 8 characters of the generated id, and the
// password is that same 8-character fragment.
type StudentCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreatedStudent struct {
	Student     Student            `json:"student"`
	Credentials StudentCredentials `json:"credentials"`
}

type StudentFilter struct {
	// Substring matched against both name and class, OR-combined.
	Search string
}
