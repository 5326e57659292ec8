// Package store keeps the loaded collections and the derived display list in
// sync. Every operation computes a new State and publishes it in one step.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/diewo77/devis-board/i18n"
	"github.com/diewo77/devis-board/internal/apiclient"
	"github.com/diewo77/devis-board/internal/format"
	"github.com/diewo77/devis-board/internal/index"
	"github.com/diewo77/devis-board/internal/models"
	"github.com/diewo77/devis-board/internal/projection"
)

// API is the remote collaborator. *apiclient.Client implements it.
type API interface {
	Quotes(ctx context.Context) ([]models.Quote, error)
	TourFormulas(ctx context.Context) ([]models.TourFormula, error)
	Customers(ctx context.Context) ([]models.Customer, error)
	MotoLocations(ctx context.Context) ([]models.MotoLocation, error)
	Accommodations(ctx context.Context) ([]models.Accommodation, error)
	Options(ctx context.Context) ([]models.Option, error)

	DeleteQuote(ctx context.Context, id int64) error
	PatchQuote(ctx context.Context, id int64, patch models.QuotePatch) (models.Quote, error)
	PatchCustomer(ctx context.Context, id int64, patch models.CustomerPatch) (models.Customer, error)
}

// Collection names passed to the fetch hook, in the order failures are
// reported.
const (
	CollectionQuotes         = "quotes"
	CollectionTourFormulas   = "tour-formulas"
	CollectionCustomers      = "customers"
	CollectionMotoLocations  = "moto-locations"
	CollectionAccommodations = "accommodations"
	CollectionOptions        = "options"
)

var loadErrorCodes = [...]string{
	"load_quotes_failed",
	"load_formulas_failed",
	"load_customers_failed",
	"load_motos_failed",
	"load_accommodations_failed",
	"load_options_failed",
}

// UpdateError is returned when the remote API refuses or fails a partial
// update. Message is localized; Err is the underlying cause.
type UpdateError struct {
	Message string
	Err     error
}

func (e *UpdateError) Error() string { return e.Message + ": " + e.Err.Error() }

func (e *UpdateError) Unwrap() error { return e.Err }

// Store holds the quotes board state and publishes every change to subscribers.
type Store struct {
	api     API
	lang    string
	loc     *time.Location
	logger  *log.Logger
	onFetch func(collection string, err error)
	proj    *projection.Projector

	// notify serializes publishes so subscribers see states in order.
	notify sync.Mutex

	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithLang selects the language of labels and error messages.
func WithLang(lang string) Option {
	return func(s *Store) { s.lang = i18n.Normalize(lang) }
}

// WithLocation sets the zone timestamps are shown in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithFetchHook registers fn to be called once per collection fetched by
// Load. fn may be called from several goroutines at once.
func WithFetchHook(fn func(collection string, err error)) Option {
	return func(s *Store) { s.onFetch = fn }
}

func New(api API, opts ...Option) *Store {
	s := &Store{
		api:     api,
		lang:    i18n.DefaultLang,
		loc:     time.Local,
		logger:  log.Default(),
		onFetch: func(string, error) {},
		state:   emptyState(),
		subs:    make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.proj = projection.New(format.Formatter{Lang: s.lang, Location: s.loc})
	return s
}

// Snapshot returns the current state. Callers must not modify it.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe calls fn with the current state, then with every published state
// in publish order, until the returned cancel func is called. fn must not
// call back into operations that publish.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.notify.Lock()
	defer s.notify.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	cur := s.state
	s.mu.Unlock()

	fn(cur)
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// update replaces the state with fn(current) and notifies subscribers.
func (s *Store) update(fn func(State) State) {
	s.notify.Lock()
	defer s.notify.Unlock()

	s.mu.Lock()
	s.state = fn(s.state)
	next := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, f := range s.subs {
		subs = append(subs, f)
	}
	s.mu.Unlock()

	for _, f := range subs {
		f(next)
	}
}

// Load fetches the six collections concurrently and publishes either the
// fully projected state or an error state with every collection cleared.
// Failures end up in State.Error; they are not returned.
func (s *Store) Load(ctx context.Context) {
	s.update(func(st State) State {
		st.Loading = true
		st.Error = ""
		return st
	})

	var (
		quotes         []models.Quote
		tourFormulas   []models.TourFormula
		customers      []models.Customer
		motoLocations  []models.MotoLocation
		accommodations []models.Accommodation
		options        []models.Option
		errs           [len(loadErrorCodes)]error
	)

	// No shared context: one failed fetch does not cancel the others.
	var g errgroup.Group
	fetch := func(slot int, name string, call func() error) {
		g.Go(func() error {
			err := call()
			errs[slot] = err
			s.onFetch(name, err)
			return err
		})
	}
	fetch(0, CollectionQuotes, func() (err error) { quotes, err = s.api.Quotes(ctx); return })
	fetch(1, CollectionTourFormulas, func() (err error) { tourFormulas, err = s.api.TourFormulas(ctx); return })
	fetch(2, CollectionCustomers, func() (err error) { customers, err = s.api.Customers(ctx); return })
	fetch(3, CollectionMotoLocations, func() (err error) { motoLocations, err = s.api.MotoLocations(ctx); return })
	fetch(4, CollectionAccommodations, func() (err error) { accommodations, err = s.api.Accommodations(ctx); return })
	fetch(5, CollectionOptions, func() (err error) { options, err = s.api.Options(ctx); return })
	_ = g.Wait()

	for i, err := range errs {
		if err == nil {
			continue
		}
		msg := i18n.T(s.lang, loadErrorCodes[i])
		s.logger.Printf("load: %s: %v", msg, err)
		s.update(func(State) State {
			st := emptyState()
			st.Error = msg
			return st
		})
		return
	}

	c := index.Collections{
		TourFormulas:   orEmpty(tourFormulas),
		Customers:      orEmpty(customers),
		MotoLocations:  orEmpty(motoLocations),
		Accommodations: orEmpty(accommodations),
		Options:        orEmpty(options),
	}
	items := s.proj.ProjectAll(quotes, index.Build(c))
	s.update(func(State) State {
		return State{
			Items:          items,
			TourFormulas:   c.TourFormulas,
			Customers:      c.Customers,
			MotoLocations:  c.MotoLocations,
			Accommodations: c.Accommodations,
			Options:        c.Options,
			Loaded:         true,
		}
	})
}

// Delete removes the quote remotely, then locally. An id <= 0 is ignored.
// A non-2xx answer is logged and the local record is still removed. An error
// is returned only when no answer was received, and then state is unchanged.
func (s *Store) Delete(ctx context.Context, apiID int64) error {
	if apiID <= 0 {
		return nil
	}
	if err := s.api.DeleteQuote(ctx, apiID); err != nil {
		var se *apiclient.StatusError
		if !errors.As(err, &se) {
			return fmt.Errorf("delete quote %d: %w", apiID, err)
		}
		s.logger.Printf("delete quote %d: %v", apiID, err)
	}
	s.update(func(st State) State {
		items := make([]*models.Devis, 0, len(st.Items))
		for _, d := range st.Items {
			if d.APIID != apiID {
				items = append(items, d)
			}
		}
		st.Items = items
		return st
	})
	return nil
}

// UpdateQuote sends patch and re-projects the matching record in place using
// the reference collections already held. Other records keep their identity.
func (s *Store) UpdateQuote(ctx context.Context, apiID int64, patch models.QuotePatch) error {
	if apiID <= 0 {
		return nil
	}
	updated, err := s.api.PatchQuote(ctx, apiID, patch)
	if err != nil {
		return &UpdateError{Message: i18n.T(s.lang, "update_quote_failed"), Err: err}
	}

	s.update(func(st State) State {
		idx := index.Build(collections(st))
		items := make([]*models.Devis, len(st.Items))
		for i, d := range st.Items {
			if d.APIID == apiID {
				items[i] = s.proj.Project(updated, idx)
				continue
			}
			items[i] = d
		}
		st.Items = items
		return st
	})
	return nil
}

// UpdateCustomer sends patch, replaces the stored customer and re-derives the
// client, email and phone of every record referencing it.
func (s *Store) UpdateCustomer(ctx context.Context, customerID int64, patch models.CustomerPatch) error {
	if customerID <= 0 {
		return nil
	}
	updated, err := s.api.PatchCustomer(ctx, customerID, patch)
	if err != nil {
		return &UpdateError{Message: i18n.T(s.lang, "update_customer_failed"), Err: err}
	}

	s.update(func(st State) State {
		customers := make([]models.Customer, len(st.Customers))
		for i, c := range st.Customers {
			if c.ID == customerID {
				c = updated
			}
			customers[i] = c
		}
		items := make([]*models.Devis, len(st.Items))
		for i, d := range st.Items {
			if d.CustomerID != nil && *d.CustomerID == customerID {
				items[i] = s.proj.WithCustomer(d, &updated)
				continue
			}
			items[i] = d
		}
		st.Customers = customers
		st.Items = items
		return st
	})
	return nil
}

func collections(st State) index.Collections {
	return index.Collections{
		TourFormulas:   st.TourFormulas,
		Customers:      st.Customers,
		MotoLocations:  st.MotoLocations,
		Accommodations: st.Accommodations,
		Options:        st.Options,
	}
}
