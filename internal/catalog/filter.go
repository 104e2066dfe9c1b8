package catalog

import (
	"strings"

	"github.com/yojanasathi/yojanasathi/internal/i18n"
)

// FilterParams selects a subset of the catalog. Category and Query are
// combined with logical AND; empty values pass everything through.
type FilterParams struct {
	Category Category
	Query    string
}

// Filter returns the schemes matching the params, in catalog order.
func (c *Catalog) Filter(params FilterParams) []Scheme {
	query := strings.ToLower(strings.TrimSpace(params.Query))

	var out []Scheme
	for _, s := range c.All() {
		if !matchCategory(s, params.Category) {
			continue
		}
		if query != "" && !matchQuery(s, query) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// matchCategory is an exact match, with "all" (or unset) passing through.
func matchCategory(s Scheme, filter Category) bool {
	if filter == "" || filter == CategoryAll {
		return true
	}
	return s.Category == filter
}

// matchQuery is a case-insensitive substring match against the primary
// name, the secondary-language name when present, and the primary
// description.
func matchQuery(s Scheme, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(s.Name.EN), lowerQuery) {
		return true
	}
	if s.Name.HI != "" && strings.Contains(strings.ToLower(s.Name.HI), lowerQuery) {
		return true
	}
	return strings.Contains(strings.ToLower(s.Description.EN), lowerQuery)
}

// RecommendFor returns the schemes recommended for an occupation. The
// mapping is closed and case-insensitive; any unmapped occupation,
// including empty, recommends the entire catalog.
func (c *Catalog) RecommendFor(occupation string) []Scheme {
	category, ok := OccupationCategory[strings.ToLower(strings.TrimSpace(occupation))]
	if !ok {
		return c.All()
	}
	return c.Filter(FilterParams{Category: category})
}

// LocalizedScheme is a scheme flattened to a single language for API
// responses, applying the primary-language fallback per field.
type LocalizedScheme struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefit     string   `json:"benefit"`
	Eligibility []string `json:"eligibility"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
	ApplySteps  []string `json:"apply_steps"`
	ApplyURL    string   `json:"apply_url"`
}

// Localize flattens a scheme to the given language.
func Localize(s Scheme, lang i18n.Language) LocalizedScheme {
	return LocalizedScheme{
		ID:          s.ID,
		Name:        s.Name.In(lang),
		Description: s.Description.In(lang),
		Benefit:     s.Benefit.In(lang),
		Eligibility: s.Eligibility.In(lang),
		Category:    s.Category,
		Tags:        s.Tags,
		ImageURL:    s.ImageURL,
		ApplySteps:  s.ApplySteps.In(lang),
		ApplyURL:    s.ApplyURL,
	}
}

// LocalizeAll flattens a scheme list to the given language.
func LocalizeAll(schemes []Scheme, lang i18n.Language) []LocalizedScheme {
	out := make([]LocalizedScheme, len(schemes))
	for i, s := range schemes {
		out[i] = Localize(s, lang)
	}
	return out
}
