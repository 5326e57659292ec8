package models

// QuotePatch is the body of PATCH /quotes/{id}. Nil fields are not sent.
type QuotePatch struct {
	CustomerID    *int64       `json:"customerId,omitempty"`
	TourPackageID *int64       `json:"tourPackageId,omitempty"`
	DepartureDate *string      `json:"departureDate,omitempty"`
	ReturnDate    *string      `json:"returnDate,omitempty"`
	Status        *QuoteStatus `json:"status,omitempty"`
}

// Apply copies the set fields of p onto q.
func (p QuotePatch) Apply(q *Quote) {
	if p.CustomerID != nil {
		id := *p.CustomerID
		q.CustomerID = &id
	}
	if p.TourPackageID != nil {
		id := *p.TourPackageID
		q.TourPackageID = &id
	}
	if p.DepartureDate != nil {
		q.DepartureDate = *p.DepartureDate
	}
	if p.ReturnDate != nil {
		q.ReturnDate = *p.ReturnDate
	}
	if p.Status != nil {
		q.Status = *p.Status
	}
}

// CustomerPatch is the body of PATCH /customers/{id}. Nil fields are not sent.
type CustomerPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

func (p CustomerPatch) Apply(c *Customer) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		v := *p.Email
		c.Email = &v
	}
	if p.Phone != nil {
		v := *p.Phone
		c.Phone = &v
	}
}
