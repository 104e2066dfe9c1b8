package profile

import "strings"

// Step identifies a wizard screen.
type Step string

const (
	StepPersonal Step = "personal"
	StepEconomic Step = "economic"
)

// PersonalDetails are the step-1 fields. District is optional.
type PersonalDetails struct {
	Name     string `json:"name"`
	Age      string `json:"age"`
	Gender   string `json:"gender"`
	State    string `json:"state"`
	District string `json:"district"`
}

// EconomicDetails are the step-2 fields. Category is optional.
type EconomicDetails struct {
	Occupation   string `json:"occupation"`
	AnnualIncome string `json:"annual_income"`
	Category     string `json:"category"`
}

// Wizard is the linear two-step profile setup state machine. Transitions
// are forward/back only: no branching, no skipping. Entered values survive
// back-navigation; only exiting the flow discards them.
type Wizard struct {
	step Step
	form Profile
}

// NewWizard starts a fresh setup flow at the personal-details step.
func NewWizard() *Wizard {
	return &Wizard{step: StepPersonal}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Snapshot returns the values entered so far.
func (w *Wizard) Snapshot() Profile {
	return w.form
}

// Advance stores the step-1 fields and moves to the economic step. It
// refuses to advance unless name, age, gender, and state are all set,
// mirroring the disabled submit control.
func (w *Wizard) Advance(d PersonalDetails) bool {
	if w.step != StepPersonal {
		return false
	}

	w.form.Name = d.Name
	w.form.Age = d.Age
	w.form.Gender = d.Gender
	w.form.State = d.State
	w.form.District = d.District

	if !filled(d.Name, d.Age, d.Gender, d.State) {
		return false
	}
	w.step = StepEconomic
	return true
}

// Complete stores the step-2 fields and finishes the flow, returning the
// completed profile. Occupation and income are required; category and
// district are optional.
func (w *Wizard) Complete(d EconomicDetails) (Profile, bool) {
	if w.step != StepEconomic {
		return Profile{}, false
	}

	w.form.Occupation = d.Occupation
	w.form.AnnualIncome = d.AnnualIncome
	w.form.Category = d.Category

	if !filled(d.Occupation, d.AnnualIncome) {
		return Profile{}, false
	}

	done := w.form
	if strings.TrimSpace(done.Name) == "" {
		done.Name = GuestName
	}
	return done, true
}

// Back moves one step backwards. From the economic step it returns to
// personal details without discarding entered values; from the personal
// step it exits the flow entirely.
func (w *Wizard) Back() (exited bool) {
	if w.step == StepEconomic {
		w.step = StepPersonal
		return false
	}
	return true
}

func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
