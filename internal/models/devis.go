package models

import "github.com/shopspring/decimal"

// DisplayStatus is the lowercase status used by the presentation layer.
type DisplayStatus string

const (
	StatusPendingNew      DisplayStatus = "pending_new"
	StatusPendingProgress DisplayStatus = "pending_progress"
	StatusSent            DisplayStatus = "sent"
	StatusConfirmed       DisplayStatus = "confirmed"
	StatusCancelled       DisplayStatus = "cancelled"
)

// Devis is the denormalized, display-ready projection of one Quote.
// Values are shared between published states and must not be mutated.
type Devis struct {
	APIID         int64  `json:"apiId"`
	CustomerID    *int64 `json:"customerId,omitempty"`
	TourPackageID *int64 `json:"tourPackageId,omitempty"`

	// ID is the quote number, or Q-### when the quote has none.
	ID      string `json:"id"`
	Client  string `json:"client"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Circuit string `json:"circuit"`
	Formula string `json:"formule"`

	Date          string `json:"date"`
	DepartureDate string `json:"departureDate,omitempty"`
	ReturnDate    string `json:"returnDate,omitempty"`

	ParticipantCount    *int                `json:"participantCount,omitempty"`
	Participants        []string            `json:"participants"`
	ParticipantsDetails []ParticipantDetail `json:"participantsDetails"`

	Amount    string           `json:"amount"`
	AmountRaw *decimal.Decimal `json:"amountRaw,omitempty"`
	Status    DisplayStatus    `json:"status"`
	Notes     string           `json:"notes"`
}

// ParticipantDetail is one resolved quote item. Moto and Accommodation are
// empty when the reference is missing or unknown.
type ParticipantDetail struct {
	Name          string   `json:"name"`
	Moto          string   `json:"moto,omitempty"`
	Accommodation string   `json:"accommodation,omitempty"`
	Options       []string `json:"options"`
	UnitPrice     string   `json:"unitPrice"`
}
