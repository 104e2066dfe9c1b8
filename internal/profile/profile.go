// Package profile holds the user's self-reported profile and the two-step
// setup wizard that produces it.
package profile

// Profile is the session-lifetime record of the user's self-reported
// attributes. All fields are free-text or enum-like strings; nothing is
// validated against the scheme catalog vocabulary.
type Profile struct {
	Name         string `json:"name"`
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	State        string `json:"state"`
	District     string `json:"district"`
	AnnualIncome string `json:"annual_income"`
	Occupation   string `json:"occupation"`
	Category     string `json:"category"`
}

// GuestName is substituted when a completed profile carries no name.
const GuestName = "Guest User"
