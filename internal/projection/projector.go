// Package projection joins a raw quote with the reference indexes into a
// display-ready models.Devis. Unresolved references never fail a projection;
// they fall back to placeholder labels.
package projection

import (
	"fmt"
	"strings"

	"github.com/diewo77/devis-board/i18n"
	"github.com/diewo77/devis-board/internal/format"
	"github.com/diewo77/devis-board/internal/index"
	"github.com/diewo77/devis-board/internal/models"
)

// Projector builds display records in one language.
type Projector struct {
	fm format.Formatter
}

// New returns a projector formatting values and placeholders with f.
func New(f format.Formatter) *Projector {
	return &Projector{fm: f}
}

func (p *Projector) label(code string) string {
	return i18n.T(p.fm.Lang, code)
}

// Project builds the display record for q. The result depends only on its
// inputs.
func (p *Projector) Project(q models.Quote, idx index.Set) *models.Devis {
	customer, hasCustomer := idx.Customer(q.CustomerID)
	tf, hasTF := idx.TourFormula(q.TourPackageID)

	details := make([]models.ParticipantDetail, 0, len(q.Items))
	for i, item := range q.Items {
		details = append(details, p.participant(i, item, idx))
	}
	names := make([]string, len(details))
	for i, d := range details {
		names[i] = d.Name
	}

	d := &models.Devis{
		APIID:               q.ID,
		CustomerID:          q.CustomerID,
		TourPackageID:       q.TourPackageID,
		ID:                  displayID(q),
		Circuit:             format.Placeholder,
		Formula:             format.Placeholder,
		Date:                p.fm.DateRange(q.DepartureDate, q.ReturnDate),
		DepartureDate:       q.DepartureDate,
		ReturnDate:          q.ReturnDate,
		ParticipantCount:    q.ParticipantCount,
		Participants:        names,
		ParticipantsDetails: details,
		Amount:              p.fm.Currency(q.LockedTotalPrice),
		AmountRaw:           q.LockedTotalPrice,
		Status:              format.MapStatus(q.Status),
	}
	if hasCustomer {
		p.setCustomer(d, &customer)
	} else {
		p.setCustomer(d, nil)
	}
	if hasTF {
		if tf.Tour.Name != "" {
			d.Circuit = tf.Tour.Name
		}
		if tf.Formula.Name != "" {
			d.Formula = tf.Formula.Name
		}
	}
	return d
}

// ProjectAll projects quotes keeping their order.
func (p *Projector) ProjectAll(quotes []models.Quote, idx index.Set) []*models.Devis {
	out := make([]*models.Devis, len(quotes))
	for i, q := range quotes {
		out[i] = p.Project(q, idx)
	}
	return out
}

// WithCustomer returns a copy of d whose client, email and phone are derived
// from c. Every other field is shared with d.
func (p *Projector) WithCustomer(d *models.Devis, c *models.Customer) *models.Devis {
	cp := *d
	p.setCustomer(&cp, c)
	return &cp
}

func (p *Projector) setCustomer(d *models.Devis, c *models.Customer) {
	d.Client = p.fm.CustomerLabel(c)
	d.Email = format.Placeholder
	d.Phone = format.Placeholder
	if c == nil {
		return
	}
	if c.Email != nil {
		d.Email = *c.Email
	}
	if c.Phone != nil {
		d.Phone = *c.Phone
	}
}

func (p *Projector) participant(i int, item models.QuoteItem, idx index.Set) models.ParticipantDetail {
	name := strings.TrimSpace(item.ParticipantName)
	if name == "" {
		name = fmt.Sprintf(p.label("participant_n"), i+1)
	}

	detail := models.ParticipantDetail{
		Name:      name,
		Options:   make([]string, 0, len(item.Options)),
		UnitPrice: p.fm.Currency(item.LockedUnitPrice),
	}
	if moto, ok := idx.MotoLocation(item.MotoLocationID); ok {
		category := p.label("category_fallback")
		if moto.MotoCategory != nil {
			category = moto.MotoCategory.Name
		}
		detail.Moto = fmt.Sprintf("%s %s (%s)", moto.Brand, moto.Model, category)
	}
	if acc, ok := idx.Accommodation(item.AccommodationID); ok {
		detail.Accommodation = acc.Name
	}
	for _, link := range item.Options {
		label := fmt.Sprintf(p.label("option_n"), link.OptionID)
		if opt, ok := idx.Option(link.OptionID); ok {
			label = opt.Name
		}
		if label == "" {
			continue
		}
		detail.Options = append(detail.Options, label)
	}
	return detail
}

func displayID(q models.Quote) string {
	if q.QuoteNumber != "" {
		return q.QuoteNumber
	}
	return fmt.Sprintf("Q-%03d", q.ID)
}
