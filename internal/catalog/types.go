// Package catalog holds the static government scheme catalog and the
// filter/recommendation views over it.
package catalog

import (
	"fmt"
	"strings"

	"github.com/yojanasathi/yojanasathi/internal/i18n"
)

// Category is one of the four coarse scheme groupings.
type Category string

const (
	CategoryFarmer     Category = "farmer"
	CategoryStudent    Category = "student"
	CategoryEmployment Category = "employment"
	CategoryGeneral    Category = "general"

	// CategoryAll is the pass-through filter value, not a record category.
	CategoryAll Category = "all"
)

// Valid reports whether the category belongs to the closed record set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFarmer, CategoryStudent, CategoryEmployment, CategoryGeneral:
		return true
	}
	return false
}

// Scheme is an immutable government welfare scheme record. Records are
// loaded once at startup and never mutated.
type Scheme struct {
	ID          string    `yaml:"id" json:"id"`
	Name        i18n.Text `yaml:"name" json:"name"`
	Description i18n.Text `yaml:"description" json:"description"`
	Benefit     i18n.Text `yaml:"benefit" json:"benefit"`
	Eligibility i18n.List `yaml:"eligibility" json:"eligibility"`
	Category    Category  `yaml:"category" json:"category"`
	Tags        []string  `yaml:"tags" json:"tags"`
	ImageURL    string    `yaml:"image_url" json:"image_url"`
	ApplySteps  i18n.List `yaml:"apply_steps" json:"apply_steps"`
	ApplyURL    string    `yaml:"apply_url" json:"apply_url"`
}

// validate checks the record invariants: non-empty identifier and name,
// category drawn from the closed set.
func (s *Scheme) validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("scheme with empty id")
	}
	if s.Name.EN == "" {
		return fmt.Errorf("scheme %s: empty name", s.ID)
	}
	if !s.Category.Valid() {
		return fmt.Errorf("scheme %s: unknown category %q", s.ID, s.Category)
	}
	return nil
}

// OccupationCategory maps a normalized occupation string to the scheme
// category it is recommended. Unmapped occupations recommend the entire
// catalog; see Catalog.RecommendFor.
var OccupationCategory = map[string]Category{
	"farmer":        CategoryFarmer,
	"student":       CategoryStudent,
	"unemployed":    CategoryEmployment,
	"self-employed": CategoryEmployment,
}

// IndianStates is the state list offered by the profile setup form.
var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal",
}
