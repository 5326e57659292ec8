package devapi

import (
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/devis-board/httpx"
	"github.com/diewo77/devis-board/i18n"
	"github.com/diewo77/devis-board/internal/models"
	"github.com/diewo77/devis-board/validation"
)

// CatalogHandler serves the read-only reference collections.
type CatalogHandler struct {
	db *gorm.DB
}

func (h *CatalogHandler) TourFormulas(w http.ResponseWriter, r *http.Request) {
	var out []models.TourFormula
	list(w, r, h.db.WithContext(r.Context()).Preload("Tour").Preload("Formula"), &out)
}

func (h *CatalogHandler) MotoLocations(w http.ResponseWriter, r *http.Request) {
	var out []models.MotoLocation
	list(w, r, h.db.WithContext(r.Context()).Preload("MotoCategory"), &out)
}

func (h *CatalogHandler) Accommodations(w http.ResponseWriter, r *http.Request) {
	var out []models.Accommodation
	list(w, r, h.db.WithContext(r.Context()), &out)
}

func (h *CatalogHandler) Options(w http.ResponseWriter, r *http.Request) {
	var out []models.Option
	list(w, r, h.db.WithContext(r.Context()), &out)
}

// list writes every row of dst's table ordered by id.
func list[T any](w http.ResponseWriter, r *http.Request, db *gorm.DB, dst *[]T) {
	if err := db.Order("id").Find(dst).Error; err != nil {
		log.Printf("devapi: list %T: %v", dst, err)
		replyError(w, r, http.StatusInternalServerError, "db_error", nil)
		return
	}
	if *dst == nil {
		*dst = []T{}
	}
	httpx.JSON(w, http.StatusOK, *dst)
}

type QuoteHandler struct {
	db *gorm.DB
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []models.Quote
	list(w, r, h.db.WithContext(r.Context()).Preload("Items", orderByID).Preload("Items.Options", orderByID), &out)
}

func orderByID(db *gorm.DB) *gorm.DB { return db.Order("id") }

// Delete removes a quote with its items and item options.
func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		replyError(w, r, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	err := h.db.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		var q models.Quote
		if err := tx.First(&q, id).Error; err != nil {
			return err
		}
		items := tx.Model(&models.QuoteItem{}).Select("id").Where("quote_id = ?", id)
		if err := tx.Where("quote_item_id IN (?)", items).Delete(&models.QuoteItemOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quote_id = ?", id).Delete(&models.QuoteItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&q).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		replyError(w, r, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		log.Printf("devapi: delete quote %d: %v", id, err)
		replyError(w, r, http.StatusInternalServerError, "db_error", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Patch applies a partial update and answers with the stored quote.
func (h *QuoteHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		replyError(w, r, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var patch models.QuotePatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		replyError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	if v := validateQuotePatch(patch); !v.Empty() {
		replyError(w, r, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	db := h.db.WithContext(r.Context())
	var q models.Quote
	if err := db.First(&q, id).Error; err != nil {
		notFoundOrFail(w, r, "quote", id, err)
		return
	}
	patch.Apply(&q)
	if err := db.Omit(clause.Associations).Save(&q).Error; err != nil {
		log.Printf("devapi: patch quote %d: %v", id, err)
		replyError(w, r, http.StatusInternalServerError, "db_error", nil)
		return
	}

	var out models.Quote
	if err := db.Preload("Items", orderByID).Preload("Items.Options", orderByID).First(&out, id).Error; err != nil {
		notFoundOrFail(w, r, "quote", id, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

type CustomerHandler struct {
	db *gorm.DB
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []models.Customer
	list(w, r, h.db.WithContext(r.Context()), &out)
}

func (h *CustomerHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		replyError(w, r, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var patch models.CustomerPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		replyError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	if v := validateCustomerPatch(patch); !v.Empty() {
		replyError(w, r, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	db := h.db.WithContext(r.Context())
	var c models.Customer
	if err := db.First(&c, id).Error; err != nil {
		notFoundOrFail(w, r, "customer", id, err)
		return
	}
	patch.Apply(&c)
	if err := db.Save(&c).Error; err != nil {
		log.Printf("devapi: patch customer %d: %v", id, err)
		replyError(w, r, http.StatusInternalServerError, "db_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

func notFoundOrFail(w http.ResponseWriter, r *http.Request, what string, id int64, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		replyError(w, r, http.StatusNotFound, "not_found", nil)
		return
	}
	log.Printf("devapi: load %s %d: %v", what, id, err)
	replyError(w, r, http.StatusInternalServerError, "db_error", nil)
}

// replyError answers with the error code and its message in the request
// language.
func replyError(w http.ResponseWriter, r *http.Request, status int, code string, details any) {
	httpx.JSON(w, status, httpx.ErrorResponse{
		Error:   code,
		Message: i18n.T(i18n.LangFrom(r.Context()), code),
		Details: details,
	})
}

func validateQuotePatch(p models.QuotePatch) validation.Violations {
	v := validation.Violations{}
	if p.CustomerID != nil {
		validation.PositiveID("customerId", *p.CustomerID, v)
	}
	if p.TourPackageID != nil {
		validation.PositiveID("tourPackageId", *p.TourPackageID, v)
	}
	if p.DepartureDate != nil {
		validation.Date("departureDate", *p.DepartureDate, models.DateLayouts, v)
	}
	if p.ReturnDate != nil {
		validation.Date("returnDate", *p.ReturnDate, models.DateLayouts, v)
	}
	if p.Status != nil {
		validation.OneOf("status", string(*p.Status), models.QuoteStatusStrings(), v)
	}
	return v
}

// validateCustomerPatch allows clearing email or phone with an empty string.
func validateCustomerPatch(p models.CustomerPatch) validation.Violations {
	v := validation.Violations{}
	if p.FirstName != nil {
		validation.Required("firstName", *p.FirstName, v)
	}
	if p.LastName != nil {
		validation.Required("lastName", *p.LastName, v)
	}
	if p.Email != nil && *p.Email != "" {
		validation.Email("email", *p.Email, v)
	}
	return v
}
