package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// DecodeJSON decodes a request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// ValidationErrors maps field name to message.
type ValidationErrors map[string]string

func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}

// IsYesNo reports whether s is exactly "Yes" or "No", the two values
// the status flag columns accept.
func IsYesNo(s string) bool {
	return s == "Yes" || s == "No"
}

// ParseAmount parses a decimal form field; negative amounts are
// accepted, matching the stored data (amounts are non-negative in
// practice but never enforced).
func ParseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseMarks parses an integer mark and enforces the closed range
// [0,100]; both boundary values are valid.
func ParseMarks(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > 100 {
		return 0, false
	}
	return v, true
}
