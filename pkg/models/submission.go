package models

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Required text fields are pointers: binding's `required` then only rejects
// absent or null values, so "" is accepted as text.

// ContactForm is the body of POST /api/contact
type ContactForm struct {
	Name    *string `json:"name" binding:"required"`
	Email   *string `json:"email" binding:"required"`
	Phone   *string `json:"phone"`
	Message *string `json:"message" binding:"required"`
}

// ReservationRequest is the body of POST /api/reservation
type ReservationRequest struct {
	Name            *string      `json:"name" binding:"required"`
	Email           *string      `json:"email" binding:"required"`
	Phone           *string      `json:"phone" binding:"required"`
	Date            *string      `json:"date" binding:"required"`
	Time            *string      `json:"time" binding:"required"`
	Guests          *WholeNumber `json:"guests" binding:"required"` // an explicit 0 counts as present
	SpecialRequests *string      `json:"special_requests"`
}

// WholeNumber is an integer that also accepts whole-valued JSON floats such
// as 4.0. Strings, fractions and out-of-range numbers are type errors.
type WholeNumber int

func (n *WholeNumber) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return &json.UnmarshalTypeError{
			Value: jsonKind(data),
			Type:  reflect.TypeOf(0),
		}
	}
	*n = WholeNumber(f)
	return nil
}

func jsonKind(data []byte) string {
	switch {
	case len(data) == 0:
		return "value"
	case data[0] == '"':
		return "string"
	case data[0] == 't' || data[0] == 'f':
		return "bool"
	case data[0] == '{':
		return "object"
	case data[0] == '[':
		return "array"
	default:
		return "number " + string(data)
	}
}

// SubmissionResponse acknowledges an accepted contact message or reservation
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Restaurant string `json:"restaurant"`
}

// FieldError describes one offending request field
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ValidationErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}
