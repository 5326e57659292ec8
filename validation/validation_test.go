package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var layouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func TestValidators(t *testing.T) {
	v := make(Violations)
	Required("first_name", "  ", v)
	PositiveID("customer_id", 0, v)
	OneOf("status", "ARCHIVED", []string{"SENT", "CONFIRMED"}, v)
	Date("departure_date", "31/12/2025", layouts, v)
	Email("email", "nobody", v)

	assert.Equal(t, Violations{
		"first_name":     "required",
		"customer_id":    "must_be_positive",
		"status":         "invalid_status",
		"departure_date": "invalid_date",
		"email":          "invalid_email",
	}, v)
}

func TestValidatorsAccept(t *testing.T) {
	v := make(Violations)
	Required("first_name", "Jeanne", v)
	PositiveID("customer_id", 3, v)
	OneOf("status", "SENT", []string{"SENT", "CONFIRMED"}, v)
	Date("departure_date", "2025-06-01", layouts, v)
	Date("return_date", "2025-06-10T08:00:00Z", layouts, v)
	Date("created_at", "2025-06-10T08:00:00", layouts, v)
	Email("email", "jeanne@example.fr", v)

	assert.True(t, v.Empty())
	assert.NoError(t, v.Err())
}

func TestViolationsError(t *testing.T) {
	v := Violations{"b": "required", "a": "invalid_date"}
	err := v.Err()
	assert.EqualError(t, err, "validation failed: a: invalid_date, b: required")

	var got Violations
	assert.True(t, errors.As(err, &got))
	assert.Len(t, got, 2)
}
