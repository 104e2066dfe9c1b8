package chat

import (
	"strings"
	"unicode"

	"github.com/yojanasathi/yojanasathi/internal/i18n"
)

// FollowUp identifies which section of a knowledge-base entry a follow-up
// question asks for.
type FollowUp string

const (
	FollowUpApply       FollowUp = "apply"
	FollowUpEligibility FollowUp = "eligibility"
	FollowUpBenefit     FollowUp = "benefit"
)

// followUpKeywords are the language-specific trigger phrases, checked in
// declaration order. Apply comes first so "how to apply" is not shadowed by
// a looser match.
var followUpKeywords = []struct {
	Kind     FollowUp
	Keywords map[i18n.Language][]string
}{
	{
		Kind: FollowUpApply,
		Keywords: map[i18n.Language][]string{
			i18n.English: {"how to apply", "how do i apply", "how can i apply", "apply", "application process", "registration"},
			i18n.Hindi:   {"आवेदन कैसे", "कैसे करें", "आवेदन", "पंजीकरण", "रजिस्ट्रेशन"},
		},
	},
	{
		Kind: FollowUpEligibility,
		Keywords: map[i18n.Language][]string{
			i18n.English: {"who is eligible", "eligibility", "eligible", "who can", "am i eligible", "qualify"},
			i18n.Hindi:   {"पात्रता", "कौन पात्र", "पात्र", "कौन ले सकता"},
		},
	},
	{
		Kind: FollowUpBenefit,
		Keywords: map[i18n.Language][]string{
			i18n.English: {"what are the benefits", "benefits", "benefit", "what do i get", "how much"},
			i18n.Hindi:   {"लाभ", "फायदा", "फायदे", "कितना मिलेगा"},
		},
	},
}

// detectors map utterances to intent keys. Order is the fixed priority:
// named-scheme detectors before category detectors.
var detectors = []struct {
	Key      string
	Keywords map[i18n.Language][]string
}{
	{
		Key: IntentPMKisan,
		Keywords: map[i18n.Language][]string{
			i18n.English: {"pm kisan", "pm-kisan", "pmkisan", "kisan samman", "samman nidhi"},
			i18n.Hindi:   {"पीएम किसान", "किसान सम्मान", "सम्मान निधि"},
		},
	},
	{
		Key: IntentUjjwala,
		Keywords: map[i18n.Language][]string{
			i18n.English: {"ujjwala", "lpg", "gas cylinder", "cooking gas"},
			i18n.Hindi:   {"उज्ज्वला", "गैस", "सिलेंडर", "एलपीजी"},
		},
	},
	{
		Key: IntentFarmer,
		Keywords: map[i18n.Language][]string{
			i18n.English: {"farmer", "kisan", "crop", "agriculture", "farming"},
			i18n.Hindi:   {"किसान", "खेती", "फसल", "कृषि"},
		},
	},
	{
		Key: IntentScholarship,
		Keywords: map[i18n.Language][]string{
			i18n.English: {"student", "scholarship", "education", "study", "college"},
			i18n.Hindi:   {"छात्र", "छात्रवृत्ति", "पढ़ाई", "शिक्षा", "कॉलेज"},
		},
	},
	{
		Key: IntentEmployment,
		Keywords: map[i18n.Language][]string{
			i18n.English: {"employ", "job", "skill", "business", "unemployed", "loan"},
			i18n.Hindi:   {"रोजगार", "नौकरी", "कौशल", "व्यवसाय", "बेरोजगार", "ऋण"},
		},
	},
	{
		Key: IntentHealth,
		Keywords: map[i18n.Language][]string{
			i18n.English: {"health", "hospital", "medical", "ayushman", "insurance"},
			i18n.Hindi:   {"स्वास्थ्य", "अस्पताल", "इलाज", "आयुष्मान", "बीमा"},
		},
	},
}

// greetingTokens are matched as whole tokens so that "hi" does not fire
// inside unrelated words.
var greetingTokens = map[i18n.Language][]string{
	i18n.English: {"hello", "hi", "hey", "namaste", "namaskar", "good morning", "good evening"},
	i18n.Hindi:   {"नमस्ते", "नमस्कार", "हेलो", "हाय", "प्रणाम"},
}

// normalize lowercases and collapses whitespace for keyword matching.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// containsAny reports whether the normalized utterance contains any of the
// given keywords as a substring.
func containsAny(norm string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(norm, k) {
			return true
		}
	}
	return false
}

// detectFollowUp returns the follow-up kind triggered by the utterance, if
// any. Both language keyword sets are always consulted: users mix scripts
// regardless of the UI language.
func detectFollowUp(norm string) (FollowUp, bool) {
	for _, fu := range followUpKeywords {
		if containsAny(norm, fu.Keywords[i18n.English]) || containsAny(norm, fu.Keywords[i18n.Hindi]) {
			return fu.Kind, true
		}
	}
	return "", false
}

// detectIntent returns the first intent key whose detector matches, in
// priority order. Named schemes win over categories.
func detectIntent(norm string) (string, bool) {
	for _, d := range detectors {
		if containsAny(norm, d.Keywords[i18n.English]) || containsAny(norm, d.Keywords[i18n.Hindi]) {
			return d.Key, true
		}
	}
	return "", false
}

// detectNamedScheme is like detectIntent but restricted to named-scheme
// detectors. Used to resolve a follow-up that names its scheme inline.
func detectNamedScheme(norm string) (string, bool) {
	for _, d := range detectors {
		if d.Key != IntentPMKisan && d.Key != IntentUjjwala {
			continue
		}
		if containsAny(norm, d.Keywords[i18n.English]) || containsAny(norm, d.Keywords[i18n.Hindi]) {
			return d.Key, true
		}
	}
	return "", false
}

// isGreeting reports whether the utterance contains a greeting token.
func isGreeting(norm string) bool {
	tokens := strings.FieldsFunc(norm, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}

	for _, set := range greetingTokens {
		for _, g := range set {
			if strings.ContainsRune(g, ' ') {
				if strings.Contains(norm, g) {
					return true
				}
				continue
			}
			if _, ok := tokenSet[g]; ok {
				return true
			}
		}
	}
	return false
}
