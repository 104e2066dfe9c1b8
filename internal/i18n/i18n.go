// Package i18n provides the two-language text model for yojanasathi.
package i18n

// Language is a supported UI language code.
type Language string

const (
	// English is the primary language; every record carries an English value.
	English Language = "en"
	// Hindi is the secondary language; Hindi values are optional.
	Hindi Language = "hi"
)

// Parse normalizes a language code, falling back to English for anything
// that is not a supported code.
func Parse(code string) Language {
	if code == string(Hindi) {
		return Hindi
	}
	return English
}

// Text is a bilingual string. HI is optional; consumers always receive the
// EN value when no Hindi translation exists.
type Text struct {
	EN string `yaml:"en" json:"en"`
	HI string `yaml:"hi,omitempty" json:"hi,omitempty"`
}

// In returns the value for the given language, falling back to English
// when the Hindi translation is absent.
func (t Text) In(lang Language) string {
	if lang == Hindi && t.HI != "" {
		return t.HI
	}
	return t.EN
}

// IsZero reports whether the text carries no value in any language.
func (t Text) IsZero() bool {
	return t.EN == "" && t.HI == ""
}

// List is an ordered list of bilingual strings.
type List []Text

// In returns the values for the given language, with per-item fallback.
func (l List) In(lang Language) []string {
	out := make([]string, len(l))
	for i, t := range l {
		out[i] = t.In(lang)
	}
	return out
}
