package chat

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/yojanasathi/yojanasathi/internal/i18n"
)

// Kind classifies how a turn was resolved. Used for reply shaping and
// metrics labels.
type Kind string

const (
	KindFollowUp Kind = "followup"
	KindClarify  Kind = "clarify"
	KindScheme   Kind = "scheme"
	KindCategory Kind = "category"
	KindGreeting Kind = "greeting"
	KindFallback Kind = "fallback"
)

// Result is the outcome of classifying one utterance. Intent carries the
// resolved intent key when SetIntent is true; the caller owns writing it
// into the session's remembered slot.
type Result struct {
	Reply     string
	Kind      Kind
	Intent    string
	SetIntent bool
}

// Engine is the rule-based reply engine. It is total: every utterance
// resolves to some reply, with the two-string random fallback as the
// terminal case.
type Engine struct {
	// pick selects a uniform index in [0,n). Injectable so tests can pin
	// the fallback choice.
	pick func(n int) int
}

// NewEngine creates an engine with the default randomness source.
func NewEngine() *Engine {
	return &Engine{pick: rand.Intn}
}

// NewEngineWithPicker creates an engine with an injected randomness source.
func NewEngineWithPicker(pick func(n int) int) *Engine {
	return &Engine{pick: pick}
}

// Respond maps an utterance plus the remembered last intent to a reply.
// Classification order, first match wins: follow-up, direct scheme/category
// detection, greeting, fallback.
func (e *Engine) Respond(utterance string, lang i18n.Language, lastIntent, userName string) Result {
	norm := normalize(utterance)

	// 1. Follow-up about the remembered (or inline-named) scheme.
	if kind, ok := detectFollowUp(norm); ok {
		target := lastIntent
		if named, ok := detectNamedScheme(norm); ok {
			target = named
		}
		if target == "" {
			return Result{Reply: i18n.T(lang, i18n.KeyClarifyScheme), Kind: KindClarify}
		}
		if entry, ok := LookupEntry(target); ok {
			return Result{
				Reply:     formatSection(entry, kind, lang),
				Kind:      KindFollowUp,
				Intent:    target,
				SetIntent: true,
			}
		}
		// Remembered key without a KB entry; ask again rather than guess.
		return Result{Reply: i18n.T(lang, i18n.KeyClarifyScheme), Kind: KindClarify}
	}

	// 2. Direct scheme or category query.
	if key, ok := detectIntent(norm); ok {
		entry, found := LookupEntry(key)
		if found {
			kind := KindCategory
			if key == IntentPMKisan || key == IntentUjjwala {
				kind = KindScheme
			}
			return Result{
				Reply:     formatSummary(entry, lang),
				Kind:      kind,
				Intent:    key,
				SetIntent: true,
			}
		}
	}

	// 3. Greeting.
	if isGreeting(norm) {
		return Result{
			Reply: fmt.Sprintf(i18n.T(lang, i18n.KeyGreeting), firstName(userName, lang)),
			Kind:  KindGreeting,
		}
	}

	// 4. Fallback: uniform choice between exactly two fixed strings.
	fallbacks := [2]string{
		i18n.T(lang, i18n.KeyFallbackA),
		i18n.T(lang, i18n.KeyFallbackB),
	}
	return Result{Reply: fallbacks[e.pick(2)], Kind: KindFallback}
}

// formatSummary renders the structured summary for a direct query: the
// entry's summary text plus eligibility and apply sections for named
// schemes. Category summaries already list multiple schemes, so they are
// shown as-is.
func formatSummary(entry Entry, lang i18n.Language) string {
	summary := entry.Summary.In(lang)
	switch entry.Key {
	case IntentPMKisan, IntentUjjwala:
		return fmt.Sprintf("%s\n\n%s: %s\n\n%s:\n%s",
			summary,
			i18n.T(lang, i18n.KeyLabelEligible), entry.Eligibility.In(lang),
			i18n.T(lang, i18n.KeyLabelApply), entry.ApplySteps.In(lang),
		)
	}
	return summary
}

// formatSection renders one knowledge-base section for a follow-up reply,
// headed by the scheme's display name.
func formatSection(entry Entry, kind FollowUp, lang i18n.Language) string {
	name := entry.Name.In(lang)
	switch kind {
	case FollowUpApply:
		return fmt.Sprintf("**%s** — %s:\n%s", name, i18n.T(lang, i18n.KeyLabelApply), entry.ApplySteps.In(lang))
	case FollowUpEligibility:
		return fmt.Sprintf("**%s** — %s:\n%s", name, i18n.T(lang, i18n.KeyLabelEligible), entry.Eligibility.In(lang))
	default:
		return fmt.Sprintf("**%s** — %s:\n%s", name, i18n.T(lang, i18n.KeyLabelBenefit), entry.Benefit.In(lang))
	}
}

// firstName extracts the user's first name for greeting personalization,
// falling back to the generic guest name.
func firstName(userName string, lang i18n.Language) string {
	fields := strings.Fields(userName)
	if len(fields) == 0 {
		return i18n.T(lang, i18n.KeyGuestName)
	}
	return fields[0]
}
