package store

import "github.com/diewo77/devis-board/internal/models"

type Phase string

const (
	PhaseIdle   Phase = "idle"
	PhaseLoaded Phase = "loaded"
	PhaseError  Phase = "error"
)

// State is one published value of the store. A published State is never
// modified; operations build a new one.
type State struct {
	Items          []*models.Devis        `json:"items"`
	TourFormulas   []models.TourFormula   `json:"tourFormulas"`
	Customers      []models.Customer      `json:"customers"`
	MotoLocations  []models.MotoLocation  `json:"motoLocations"`
	Accommodations []models.Accommodation `json:"accommodations"`
	Options        []models.Option        `json:"options"`
	Loading        bool                   `json:"loading"`
	// Error is empty when there is no error.
	Error string `json:"error"`
	// Loaded is set by a successful Load and cleared by a failed one.
	Loaded bool `json:"-"`
}

// Phase reports the steady state. Loading is orthogonal to it.
func (s State) Phase() Phase {
	switch {
	case s.Error != "":
		return PhaseError
	case s.Loaded:
		return PhaseLoaded
	default:
		return PhaseIdle
	}
}

// Item returns the display record with the given api id.
func (s State) Item(apiID int64) (*models.Devis, bool) {
	for _, d := range s.Items {
		if d.APIID == apiID {
			return d, true
		}
	}
	return nil, false
}

func emptyState() State {
	return State{
		Items:          []*models.Devis{},
		TourFormulas:   []models.TourFormula{},
		Customers:      []models.Customer{},
		MotoLocations:  []models.MotoLocation{},
		Accommodations: []models.Accommodation{},
		Options:        []models.Option{},
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
