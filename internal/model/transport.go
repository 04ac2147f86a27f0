package model

// Hosteler marks a student as residing in school housing. Creation
// requires the student's hostel_status to be "Yes".
type Hosteler struct {
	HostelerID  string `db:"hosteler_id"  json:"hosteler_id"`
	StudentID   string `db:"student_id"   json:"student_id"`
	RoomNumber  string `db:"room_number"  json:"room_number"`
	JoiningDate string `db:"joining_date" json:"joining_date"`
}

// BusHolder marks a student as using school transport. Creation
// requires the student's bus_status to be "Yes".
type BusHolder struct {
	BusHolderID string `db:"bus_holder_id" json:"bus_holder_id"`
	StudentID   string `db:"student_id"    json:"student_id"`
	RouteNumber string `db:"route_number"  json:"route_number"`
	PickupPoint string `db:"pickup_point"  json:"pickup_point"`
}

type CreateHostelerRequest struct {
	StudentID   string `json:"student_id"`
	RoomNumber  string `json:"room_number"`
	JoiningDate string `json:"joining_date"` // YYYY-MM-DD
}

type CreateBusHolderRequest struct {
	StudentID   string `json:"student_id"`
	RouteNumber string `json:"route_number"`
	PickupPoint string `json:"pickup_point"`
}
