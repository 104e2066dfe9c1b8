package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPersonal() PersonalDetails {
	return PersonalDetails{
		Name:   "Asha Devi",
		Age:    "34",
		Gender: "Female",
		State:  "Bihar",
	}
}

func TestAdvanceRequiresAllStep1Fields(t *testing.T) {
	cases := map[string]PersonalDetails{
		"missing name":   {Age: "34", Gender: "Female", State: "Bihar"},
		"missing age":    {Name: "Asha", Gender: "Female", State: "Bihar"},
		"missing gender": {Name: "Asha", Age: "34", State: "Bihar"},
		"missing state":  {Name: "Asha", Age: "34", Gender: "Female"},
		"blank name":     {Name: "   ", Age: "34", Gender: "Female", State: "Bihar"},
	}

	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			w := NewWizard()
			assert.False(t, w.Advance(d))
			assert.Equal(t, StepPersonal, w.Step())
		})
	}

	w := NewWizard()
	assert.True(t, w.Advance(validPersonal()))
	assert.Equal(t, StepEconomic, w.Step())
}

func TestDistrictOptional(t *testing.T) {
	w := NewWizard()
	d := validPersonal()
	d.District = ""
	assert.True(t, w.Advance(d))
}

func TestCompleteRequiresOccupationAndIncome(t *testing.T) {
	w := NewWizard()
	require.True(t, w.Advance(validPersonal()))

	_, ok := w.Complete(EconomicDetails{Occupation: "Farmer"})
	assert.False(t, ok)

	_, ok = w.Complete(EconomicDetails{AnnualIncome: "Below ₹1 lakh"})
	assert.False(t, ok)

	done, ok := w.Complete(EconomicDetails{Occupation: "Farmer", AnnualIncome: "Below ₹1 lakh"})
	require.True(t, ok)
	assert.Equal(t, "Asha Devi", done.Name)
	assert.Equal(t, "Farmer", done.Occupation)
	assert.Equal(t, "Below ₹1 lakh", done.AnnualIncome)
	assert.Empty(t, done.Category)
}

func TestCompleteOnlyFromEconomicStep(t *testing.T) {
	w := NewWizard()
	_, ok := w.Complete(EconomicDetails{Occupation: "Farmer", AnnualIncome: "x"})
	assert.False(t, ok)
}

func TestBackFromEconomicPreservesValues(t *testing.T) {
	w := NewWizard()
	require.True(t, w.Advance(validPersonal()))

	// Partially filled step 2, then back.
	_, ok := w.Complete(EconomicDetails{Occupation: "Farmer"})
	require.False(t, ok)

	exited := w.Back()
	assert.False(t, exited)
	assert.Equal(t, StepPersonal, w.Step())

	// Step-1 and step-2 values both survive.
	snap := w.Snapshot()
	assert.Equal(t, "Asha Devi", snap.Name)
	assert.Equal(t, "Bihar", snap.State)
	assert.Equal(t, "Farmer", snap.Occupation)
}

func TestBackFromPersonalExits(t *testing.T) {
	w := NewWizard()
	assert.True(t, w.Back())
}

func TestGuestNameSubstitution(t *testing.T) {
	w := &Wizard{step: StepEconomic, form: Profile{Name: "  "}}
	done, ok := w.Complete(EconomicDetails{Occupation: "Student", AnnualIncome: "Below ₹1 lakh"})
	require.True(t, ok)
	assert.Equal(t, GuestName, done.Name)
}
