package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFallback(t *testing.T) {
	full := Text{EN: "PM Kisan Samman Nidhi", HI: "पीएम किसान सम्मान निधि"}
	enOnly := Text{EN: "Kisan Credit Card"}

	// Hindi value shown when present, English otherwise.
	assert.Equal(t, "पीएम किसान सम्मान निधि", full.In(Hindi))
	assert.Equal(t, "PM Kisan Samman Nidhi", full.In(English))
	assert.Equal(t, "Kisan Credit Card", enOnly.In(Hindi))
	assert.Equal(t, "Kisan Credit Card", enOnly.In(English))
}

func TestListFallbackPerItem(t *testing.T) {
	l := List{
		{EN: "Farmer", HI: "किसान"},
		{EN: "Land owner"},
	}
	assert.Equal(t, []string{"किसान", "Land owner"}, l.In(Hindi))
	assert.Equal(t, []string{"Farmer", "Land owner"}, l.In(English))
}

func TestParse(t *testing.T) {
	assert.Equal(t, Hindi, Parse("hi"))
	assert.Equal(t, English, Parse("en"))
	assert.Equal(t, English, Parse(""))
	assert.Equal(t, English, Parse("fr"))
}

func TestTranslationTablesComplete(t *testing.T) {
	// Every English key must exist; Hindi may fall back but here both
	// tables are fully populated.
	for key := range uiStrings[English] {
		assert.NotEmpty(t, T(Hindi, key), "missing hindi string for %s", key)
	}
	assert.Equal(t, len(uiStrings[English]), len(uiStrings[Hindi]))
}
