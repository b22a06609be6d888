package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate reports whether dateStr is a real calendar date written as YYYY-MM-DD.
func IsValidDate(dateStr string) (time.Time, bool) {
	if !dateRegex.MatchString(dateStr) {
		return time.Time{}, false
	}
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// ParseID parses a positive integer identifier from a path or query value.
func ParseID(s string) (int64, bool) {
	if !IsNumeric(s) {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// MaxLength reports whether s fits in a column of n characters.
func MaxLength(s string, n int) bool {
	return len([]rune(s)) <= n
}
