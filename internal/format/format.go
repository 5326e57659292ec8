// Package format turns raw API scalars into display strings.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diewo77/devis-board/i18n"
	"github.com/diewo77/devis-board/internal/models"
)

// Placeholder is shown for absent values.
const Placeholder = "—"

const (
	narrowNBSP = "\u202f"
	nbsp       = "\u00a0"
)

// Formatter formats values for one language. Timestamps are rendered in
// Location; plain calendar dates are never shifted.
type Formatter struct {
	Lang     string
	Location *time.Location
}

// New returns a formatter for lang using the local time zone.
func New(lang string) Formatter {
	return Formatter{Lang: i18n.Normalize(lang), Location: time.Local}
}

var fr = New(i18n.DefaultLang)

// Date formats an ISO date or timestamp as a calendar date. Empty input gives
// the placeholder, unparseable input is returned unchanged.
func (f Formatter) Date(value string) string {
	if value == "" {
		return Placeholder
	}
	t, ok := f.parse(value)
	if !ok {
		return value
	}
	if f.Lang == "en" {
		return t.Format("1/2/2006")
	}
	return t.Format("02/01/2006")
}

func (f Formatter) parse(value string) (time.Time, bool) {
	for i, layout := range models.DateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		// layouts with an explicit zone are instants, show them locally
		if i < 2 && f.Location != nil {
			t = t.In(f.Location)
		}
		return t, true
	}
	return time.Time{}, false
}

// DateRange renders "start → end", or the one date present.
func (f Formatter) DateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return Placeholder
	case start != "" && end != "":
		return f.Date(start) + " → " + f.Date(end)
	case start != "":
		return f.Date(start)
	default:
		return f.Date(end)
	}
}

// Currency renders an amount in whole euros, rounding half away from zero.
func (f Formatter) Currency(value *decimal.Decimal) string {
	if value == nil {
		return Placeholder
	}
	rounded := value.Round(0)
	digits := rounded.Abs().String()
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	if f.Lang == "en" {
		return sign + "€" + group(digits, ",")
	}
	return sign + group(digits, narrowNBSP) + nbsp + "€"
}

// group inserts sep every three digits from the right.
func group(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// CustomerLabel returns "first last" or the unknown-customer placeholder.
func (f Formatter) CustomerLabel(c *models.Customer) string {
	if c == nil {
		return i18n.T(f.Lang, "unknown_customer")
	}
	return c.FullName()
}

// MapStatus converts a wire status to its display form. Unknown or empty
// codes map to pending_new.
func MapStatus(s models.QuoteStatus) models.DisplayStatus {
	switch s {
	case models.QuoteStatusConfirmed:
		return models.StatusConfirmed
	case models.QuoteStatusCancelled:
		return models.StatusCancelled
	case models.QuoteStatusSent:
		return models.StatusSent
	case models.QuoteStatusPendingProgress:
		return models.StatusPendingProgress
	default:
		return models.StatusPendingNew
	}
}

func FormatDate(value string) string { return fr.Date(value) }

func FormatDateRange(start, end string) string { return fr.DateRange(start, end) }

func FormatCurrency(value *decimal.Decimal) string { return fr.Currency(value) }

func CustomerLabel(c *models.Customer) string { return fr.CustomerLabel(c) }
