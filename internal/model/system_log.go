package model

// SystemLog is an append-only audit row. The service layer only ever
// writes these; the admin log listing is the sole reader.
type SystemLog struct {
	LogID     string `db:"log_id"    json:"log_id"`
	Action    string `db:"action"    json:"action"`
	Username  string `db:"username"  json:"username"`
	Timestamp string `db:"timestamp" json:"timestamp"`
}
