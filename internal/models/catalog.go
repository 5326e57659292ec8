package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Customer entity
type Customer struct {
	ID        int64   `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"size:255" json:"firstName"`
	LastName  string  `gorm:"size:255;index" json:"lastName"`
	Email     *string `gorm:"size:255" json:"email,omitempty"`
	Phone     *string `gorm:"size:50" json:"phone,omitempty"`
}

func (c Customer) GetID() int64 { return c.ID }

// FullName returns "first last" without surrounding blanks.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Tour is the itinerary part of a tour package.
type Tour struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Country      string `gorm:"size:100" json:"country"`
	DurationDays *int   `json:"durationDays,omitempty"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
}

// Formula describes what a tour package includes.
type Formula struct {
	ID                    int64  `gorm:"primaryKey" json:"id"`
	Name                  string `gorm:"size:255;not null" json:"name"`
	IncludesMoto          *bool  `json:"includesMoto,omitempty"`
	IncludesAccommodation *bool  `json:"includesAccommodation,omitempty"`
	IncludesMeals         *bool  `json:"includesMeals,omitempty"`
}

// TourFormula is a sellable tour package: one tour in one formula.
// Quotes reference it through tourPackageId.
type TourFormula struct {
	ID        int64   `gorm:"primaryKey" json:"id"`
	TourID    int64   `gorm:"index" json:"-"`
	Tour      Tour    `gorm:"foreignKey:TourID" json:"tour"`
	FormulaID int64   `gorm:"index" json:"-"`
	Formula   Formula `gorm:"foreignKey:FormulaID" json:"formula"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

func (tf TourFormula) GetID() int64 { return tf.ID }

type Accommodation struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	City    string `gorm:"size:100" json:"city,omitempty"`
	Country string `gorm:"size:100" json:"country,omitempty"`
	Type    string `gorm:"size:50" json:"type,omitempty"`
}

func (a Accommodation) GetID() int64 { return a.ID }

type MotoCategory struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

// MotoLocation is a rentable motorbike model; Count is the fleet size.
type MotoLocation struct {
	ID             int64         `gorm:"primaryKey" json:"id"`
	MotoCategoryID *int64        `gorm:"index" json:"-"`
	MotoCategory   *MotoCategory `gorm:"foreignKey:MotoCategoryID" json:"motoCategory,omitempty"`
	Brand          string        `gorm:"size:100" json:"brand"`
	Model          string        `gorm:"size:100" json:"model"`
	Count          int           `json:"count"`
}

func (m MotoLocation) GetID() int64 { return m.ID }

// OptionTargetType tells whether an option applies to a whole quote or to a
// single participant.
type OptionTargetType string

const (
	OptionTargetQuoteItem OptionTargetType = "QUOTE_ITEM"
	OptionTargetQuote     OptionTargetType = "QUOTE"
)

type Option struct {
	ID         int64            `gorm:"primaryKey" json:"id"`
	Name       string           `gorm:"size:255" json:"name"`
	Price      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"price,omitempty"`
	TargetType OptionTargetType `gorm:"size:20" json:"targetType,omitempty"`
}

func (o Option) GetID() int64 { return o.ID }
