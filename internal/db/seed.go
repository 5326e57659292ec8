package db

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/devis-board/internal/models"
)

func ptr[T any](v T) *T { return &v }

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Seed inserts a small demo dataset. Rows carry fixed ids and existing ids are
// left alone, so running it twice changes nothing.
// Should be called after Migrate.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, rows := range seedRows() {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error; err != nil {
				return fmt.Errorf("seed %T: %w", rows, err)
			}
		}
		return nil
	})
}

func seedRows() []any {
	tours := []models.Tour{
		{ID: 1, Name: "Grand Atlas", Country: "Maroc", DurationDays: ptr(10)},
		{ID: 2, Name: "Route des Alpes", Country: "France", DurationDays: ptr(7)},
	}
	formulas := []models.Formula{
		{ID: 1, Name: "Confort", IncludesMoto: ptr(true), IncludesAccommodation: ptr(true), IncludesMeals: ptr(true)},
		{ID: 2, Name: "Liberté", IncludesMoto: ptr(true), IncludesAccommodation: ptr(false), IncludesMeals: ptr(false)},
	}
	tourFormulas := []models.TourFormula{
		{ID: 1, TourID: 1, FormulaID: 1, IsActive: ptr(true)},
		{ID: 2, TourID: 1, FormulaID: 2, IsActive: ptr(true)},
		{ID: 3, TourID: 2, FormulaID: 1, IsActive: ptr(false)},
	}
	customers := []models.Customer{
		{ID: 1, FirstName: "Jeanne", LastName: "Martin", Email: ptr("jeanne.martin@example.fr"), Phone: ptr("06 11 22 33 44")},
		{ID: 2, FirstName: "Paul", LastName: "Durand", Email: ptr("paul.durand@example.fr")},
		{ID: 3, FirstName: "Ana", LastName: "Lopes", Phone: ptr("07 55 66 77 88")},
	}
	categories := []models.MotoCategory{
		{ID: 1, Name: "Trail"},
		{ID: 2, Name: "Roadster"},
	}
	motos := []models.MotoLocation{
		{ID: 1, MotoCategoryID: ptr(int64(1)), Brand: "Honda", Model: "Africa Twin", Count: 6},
		{ID: 2, MotoCategoryID: ptr(int64(1)), Brand: "BMW", Model: "R 1250 GS", Count: 4},
		{ID: 3, Brand: "Royal Enfield", Model: "Himalayan", Count: 3},
	}
	accommodations := []models.Accommodation{
		{ID: 1, Name: "Riad Dar Zitoun", City: "Marrakech", Country: "Maroc", Type: "riad"},
		{ID: 2, Name: "Kasbah Tizimi", City: "Erfoud", Country: "Maroc", Type: "hotel"},
	}
	options := []models.Option{
		{ID: 1, Name: "Assurance annulation", Price: price("89"), TargetType: models.OptionTargetQuoteItem},
		{ID: 2, Name: "Chambre individuelle", Price: price("240"), TargetType: models.OptionTargetQuoteItem},
		{ID: 3, Name: "Transfert aéroport", Price: price("60"), TargetType: models.OptionTargetQuote},
	}
	quotes := []models.Quote{
		{
			ID: 1, QuoteNumber: "DEV-2025-001", CreatedAt: "2025-01-12T09:30:00Z",
			DepartureDate: "2025-04-05", ReturnDate: "2025-04-14",
			CustomerID: ptr(int64(1)), TourPackageID: ptr(int64(1)), ParticipantCount: ptr(2),
			LockedTotalPrice: price("4978"), Status: models.QuoteStatusConfirmed,
			Items: []models.QuoteItem{
				{ID: 1, ParticipantName: "Jeanne Martin", MotoLocationID: ptr(int64(1)), AccommodationID: ptr(int64(1)),
					LockedUnitPrice: price("2400"),
					Options:         []models.QuoteItemOption{{ID: 1, OptionID: 1, Quantity: ptr(1), LockedPrice: price("89")}}},
				{ID: 2, ParticipantName: "Marc Martin", MotoLocationID: ptr(int64(2)), AccommodationID: ptr(int64(1)),
					LockedUnitPrice: price("2400"),
					Options:         []models.QuoteItemOption{{ID: 2, OptionID: 1, Quantity: ptr(1), LockedPrice: price("89")}}},
			},
		},
		{
			ID: 2, QuoteNumber: "DEV-2025-002", CreatedAt: "2025-02-03T14:00:00Z",
			DepartureDate: "2025-06-01",
			CustomerID:    ptr(int64(2)), TourPackageID: ptr(int64(2)), ParticipantCount: ptr(1),
			LockedTotalPrice: price("1650.5"), Status: models.QuoteStatusSent,
			Items: []models.QuoteItem{
				{ID: 3, MotoLocationID: ptr(int64(3)), LockedUnitPrice: price("1650.5"),
					Options: []models.QuoteItemOption{{ID: 3, OptionID: 2, Quantity: ptr(1)}}},
			},
		},
		{
			ID: 3, CreatedAt: "2025-02-20T08:15:00Z",
			CustomerID: ptr(int64(99)), Status: models.QuoteStatusPendingNew,
		},
	}
	return []any{
		&tours, &formulas, &tourFormulas, &customers, &categories,
		&motos, &accommodations, &options, &quotes,
	}
}
