package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/diewo77/devis-board/internal/models"
)

func utc(lang string) Formatter {
	return Formatter{Lang: lang, Location: time.UTC}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestDate(t *testing.T) {
	f := utc("fr")
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "—"},
		{"date only", "2025-06-01", "01/06/2025"},
		{"timestamp", "2025-06-01T10:30:00Z", "01/06/2025"},
		{"timestamp with millis", "2025-12-31T23:59:59.123Z", "31/12/2025"},
		{"local timestamp", "2025-03-09T08:00:00", "09/03/2025"},
		{"unparseable", "bientôt", "bientôt"},
		{"wrong order", "31/12/2025", "31/12/2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Date(tt.value))
		})
	}
}

func TestDate_TimestampUsesLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	f := Formatter{Lang: "fr", Location: paris}
	assert.Equal(t, "01/06/2025", f.Date("2025-05-31T23:30:00Z"))
	// calendar dates never move
	assert.Equal(t, "31/05/2025", f.Date("2025-05-31"))
}

func TestDate_English(t *testing.T) {
	assert.Equal(t, "6/1/2025", utc("en").Date("2025-06-01"))
}

func TestDateRange(t *testing.T) {
	f := utc("fr")
	assert.Equal(t, "—", f.DateRange("", ""))
	assert.Equal(t, "01/06/2025 → 10/06/2025", f.DateRange("2025-06-01", "2025-06-10"))
	assert.Equal(t, "01/06/2025", f.DateRange("2025-06-01", ""))
	assert.Equal(t, "10/06/2025", f.DateRange("", "2025-06-10"))
	assert.Equal(t, "n/a → 10/06/2025", f.DateRange("n/a", "2025-06-10"))
}

func TestDateRange_PresenceIsSymmetric(t *testing.T) {
	f := utc("fr")
	for _, d := range []string{"2025-01-15", "2024-02-29T12:00:00Z", "garbage"} {
		assert.Equal(t, f.Date(d), f.DateRange(d, ""))
		assert.Equal(t, f.Date(d), f.DateRange("", d))
		assert.Equal(t, f.Date(d)+" → "+f.Date(d), f.DateRange(d, d))
	}
}

func TestCurrency(t *testing.T) {
	f := utc("fr")
	tests := []struct {
		name  string
		value *decimal.Decimal
		want  string
	}{
		{"absent", nil, "—"},
		{"zero", dec("0"), "0\u00a0€"},
		{"small", dec("950"), "950\u00a0€"},
		{"thousands", dec("1234"), "1\u202f234\u00a0€"},
		{"rounds half up", dec("2450.5"), "2\u202f451\u00a0€"},
		{"rounds down", dec("2450.49"), "2\u202f450\u00a0€"},
		{"millions", dec("1234567"), "1\u202f234\u202f567\u00a0€"},
		{"negative", dec("-1500.5"), "-1\u202f501\u00a0€"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Currency(tt.value))
		})
	}
}

func TestCurrency_English(t *testing.T) {
	f := utc("en")
	assert.Equal(t, "€1,234,568", f.Currency(dec("1234567.8")))
	assert.Equal(t, "€12", f.Currency(dec("12")))
}

func TestMapStatus(t *testing.T) {
	tests := map[models.QuoteStatus]models.DisplayStatus{
		models.QuoteStatusPendingNew:      models.StatusPendingNew,
		models.QuoteStatusPendingProgress: models.StatusPendingProgress,
		models.QuoteStatusSent:            models.StatusSent,
		models.QuoteStatusConfirmed:       models.StatusConfirmed,
		models.QuoteStatusCancelled:       models.StatusCancelled,
		"":                                models.StatusPendingNew,
		"ARCHIVED":                        models.StatusPendingNew,
		"confirmed":                       models.StatusPendingNew,
	}
	for in, want := range tests {
		assert.Equal(t, want, MapStatus(in), "status %q", in)
	}
}

func TestCustomerLabel(t *testing.T) {
	assert.Equal(t, "Client inconnu", CustomerLabel(nil))
	assert.Equal(t, "Unknown customer", utc("en").CustomerLabel(nil))
	assert.Equal(t, "Jeanne Martin", CustomerLabel(&models.Customer{FirstName: " Jeanne", LastName: "Martin "}))
	assert.Equal(t, "", CustomerLabel(&models.Customer{}))
}

func TestPackageHelpers(t *testing.T) {
	assert.Equal(t, "—", FormatDate(""))
	assert.Equal(t, "—", FormatDateRange("", ""))
	assert.Equal(t, "—", FormatCurrency(nil))
	assert.Equal(t, "01/06/2025", FormatDate("2025-06-01"))
}
