// Package index builds id lookups over the reference collections so quote
// projection resolves every foreign key in constant time.
package index

import "github.com/diewo77/devis-board/internal/models"

// Identifiable is any entity with a numeric id.
type Identifiable interface {
	GetID() int64
}

// ByID maps each item's id to the item. When ids repeat, the last item wins.
func ByID[T Identifiable](items []T) map[int64]T {
	m := make(map[int64]T, len(items))
	for _, it := range items {
		m[it.GetID()] = it
	}
	return m
}

// Collections are the reference collections a projection may look into.
type Collections struct {
	TourFormulas   []models.TourFormula
	Customers      []models.Customer
	MotoLocations  []models.MotoLocation
	Accommodations []models.Accommodation
	Options        []models.Option
}

// Set holds one index per reference collection.
type Set struct {
	TourFormulas   map[int64]models.TourFormula
	Customers      map[int64]models.Customer
	MotoLocations  map[int64]models.MotoLocation
	Accommodations map[int64]models.Accommodation
	Options        map[int64]models.Option
}

// Build indexes every collection in c.
func Build(c Collections) Set {
	return Set{
		TourFormulas:   ByID(c.TourFormulas),
		Customers:      ByID(c.Customers),
		MotoLocations:  ByID(c.MotoLocations),
		Accommodations: ByID(c.Accommodations),
		Options:        ByID(c.Options),
	}
}

// lookup treats a nil or zero reference as absent.
func lookup[T any](m map[int64]T, ref *int64) (T, bool) {
	var zero T
	if ref == nil || *ref == 0 {
		return zero, false
	}
	v, ok := m[*ref]
	return v, ok
}

func (s Set) Customer(ref *int64) (models.Customer, bool) {
	return lookup(s.Customers, ref)
}

func (s Set) TourFormula(ref *int64) (models.TourFormula, bool) {
	return lookup(s.TourFormulas, ref)
}

func (s Set) MotoLocation(ref *int64) (models.MotoLocation, bool) {
	return lookup(s.MotoLocations, ref)
}

func (s Set) Accommodation(ref *int64) (models.Accommodation, bool) {
	return lookup(s.Accommodations, ref)
}

// Option looks up an option by plain id; option links always carry one.
func (s Set) Option(id int64) (models.Option, bool) {
	o, ok := s.Options[id]
	return o, ok
}
