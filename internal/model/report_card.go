package model

type ReportCard struct {
	ReportID  string `db:"report_id"  json:"report_id"`
	StudentID string `db:"student_id" json:"student_id"`
	Subject   string `db:"subject"    json:"subject"`
	Marks     int    `db:"marks"      json:"marks"` // 0-100 inclusive
	CreatedAt string `db:"created_at" json:"created_at"`
}

type CreateReportCardRequest struct {
	StudentID string `json:"student_id"`
	Subject   string `json:"subject"`
	Marks     string `json:"marks"`
}
