package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the status code as transmitted by the remote API.
type QuoteStatus string

const (
	QuoteStatusPendingNew      QuoteStatus = "PENDING_NEW"
	QuoteStatusPendingProgress QuoteStatus = "PENDING_PROGRESS"
	QuoteStatusSent            QuoteStatus = "SENT"
	QuoteStatusConfirmed       QuoteStatus = "CONFIRMED"
	QuoteStatusCancelled       QuoteStatus = "CANCELLED"
)

// QuoteStatuses lists every wire status in workflow order.
var QuoteStatuses = []QuoteStatus{
	QuoteStatusPendingNew,
	QuoteStatusPendingProgress,
	QuoteStatusSent,
	QuoteStatusConfirmed,
	QuoteStatusCancelled,
}

// QuoteStatusStrings returns QuoteStatuses as plain strings.
func QuoteStatusStrings() []string {
	out := make([]string, len(QuoteStatuses))
	for i, s := range QuoteStatuses {
		out[i] = string(s)
	}
	return out
}

// DateLayouts are the wire layouts of quote date fields, tried in order.
// The first two carry a zone.
var DateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Quote is a tour price quote as returned by GET /quotes.
type Quote struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	QuoteNumber string `gorm:"size:50;index" json:"quoteNumber,omitempty"`
	CreatedAt   string `gorm:"size:40" json:"createdAt,omitempty"`

	// Travel dates, ISO 8601 (date or date-time)
	DepartureDate string `gorm:"size:40" json:"departureDate,omitempty"`
	ReturnDate    string `gorm:"size:40" json:"returnDate,omitempty"`

	// References are optional and may point to entities that no longer exist.
	CustomerID    *int64 `gorm:"index" json:"customerId,omitempty"`
	TourPackageID *int64 `gorm:"index" json:"tourPackageId,omitempty"`

	ParticipantCount *int             `json:"participantCount,omitempty"`
	LockedTotalPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"lockedTotalPrice,omitempty"`
	Status           QuoteStatus      `gorm:"size:20" json:"status,omitempty"`

	Items []QuoteItem `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// GetID implements index.Identifiable.
func (q Quote) GetID() int64 { return q.ID }

// QuoteItem is one participant line of a quote.
type QuoteItem struct {
	ID              int64            `gorm:"primaryKey" json:"id"`
	QuoteID         int64            `gorm:"index;not null" json:"quoteId"`
	ParticipantName string           `gorm:"size:255" json:"participantName,omitempty"`
	MotoLocationID  *int64           `json:"motoLocationId"`
	AccommodationID *int64           `json:"accommodationId,omitempty"`
	LockedUnitPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"lockedUnitPrice,omitempty"`

	Options []QuoteItemOption `gorm:"foreignKey:QuoteItemID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

// QuoteItemOption attaches a catalog option to a quote item, with the price
// frozen when the quote was created.
type QuoteItemOption struct {
	ID          int64            `gorm:"primaryKey" json:"id"`
	QuoteItemID int64            `gorm:"index;not null" json:"quoteItemId"`
	OptionID    int64            `gorm:"not null" json:"optionId"`
	Quantity    *int             `json:"quantity,omitempty"`
	LockedPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"lockedPrice,omitempty"`
}
