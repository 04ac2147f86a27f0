package utils

import "time"

// Timestamps are persisted as TEXT in a fixed layout; lexical order
// equals chronological order.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

func Timestamp() string {
	return time.Now().Format(TimestampLayout)
}

func DateStamp() string {
	return time.Now().Format(DateLayout)
}
