// Package i18n holds the French and English catalogs used for display labels
// and user-facing error messages.
package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is used when no supported language can be detected.
const DefaultLang = "fr"

var supported = []language.Tag{language.French, language.English}

var matcher = language.NewMatcher(supported)

var catalogs = map[string]map[string]string{
	"fr": {
		"required":         "Requis",
		"must_be_positive": "Doit être positif",
		"invalid_status":   "Statut inconnu",
		"invalid_date":     "Date invalide",
		"invalid_email":    "Email invalide",

		"invalid_id":        "Identifiant invalide",
		"invalid_body":      "Corps de requête invalide",
		"validation_failed": "Données invalides",
		"not_found":         "Introuvable",
		"db_error":          "Erreur base de données",
		"db_unavailable":    "Base de données indisponible",

		"unknown_customer":  "Client inconnu",
		"participant_n":     "Participant %d",
		"option_n":          "Option #%d",
		"category_fallback": "Catégorie",

		"load_quotes_failed":         "Erreur chargement devis",
		"load_formulas_failed":       "Erreur chargement formules",
		"load_customers_failed":      "Erreur chargement clients",
		"load_motos_failed":          "Erreur chargement motos",
		"load_accommodations_failed": "Erreur chargement hébergements",
		"load_options_failed":        "Erreur chargement options",
		"update_quote_failed":        "Erreur mise à jour devis",
		"update_customer_failed":     "Erreur mise à jour client",
	},
	"en": {
		"required":         "Required",
		"must_be_positive": "Must be positive",
		"invalid_status":   "Unknown status",
		"invalid_date":     "Invalid date",
		"invalid_email":    "Invalid email",

		"invalid_id":        "Invalid identifier",
		"invalid_body":      "Invalid request body",
		"validation_failed": "Invalid data",
		"not_found":         "Not found",
		"db_error":          "Database error",
		"db_unavailable":    "Database unavailable",

		"unknown_customer":  "Unknown customer",
		"participant_n":     "Participant %d",
		"option_n":          "Option #%d",
		"category_fallback": "Category",

		"load_quotes_failed":         "Failed to load quotes",
		"load_formulas_failed":       "Failed to load formulas",
		"load_customers_failed":      "Failed to load customers",
		"load_motos_failed":          "Failed to load motorbikes",
		"load_accommodations_failed": "Failed to load accommodations",
		"load_options_failed":        "Failed to load options",
		"update_quote_failed":        "Failed to update quote",
		"update_customer_failed":     "Failed to update customer",
	},
}

// T translates code into lang. Unknown languages fall back to French, unknown
// codes are returned unchanged.
func T(lang, code string) string {
	if m, ok := catalogs[Normalize(lang)]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := catalogs[DefaultLang][code]; ok {
		return s
	}
	return code
}

// Normalize lowercases lang and strips any region ("EN-gb" -> "en").
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}

// DetectLanguage picks the best supported language for an Accept-Language
// style header (also works with LANG values such as "en_US.UTF-8").
func DetectLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return DefaultLang
	}
	if i := strings.IndexByte(header, '.'); i >= 0 && !strings.Contains(header, ",") {
		header = header[:i]
	}
	header = strings.ReplaceAll(header, "_", "-")
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	base, _ := supported[idx].Base()
	return base.String()
}

type langKey struct{}

// WithLang returns a new context carrying lang.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// LangFrom returns the language stored in ctx, or DefaultLang.
func LangFrom(ctx context.Context) string {
	if v, ok := ctx.Value(langKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultLang
}
