package chat

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/yojanasathi/yojanasathi/internal/i18n"
)

// EngineSuite is a test suite for the reply engine.
type EngineSuite struct {
	suite.Suite
	engine *Engine
	picked []int
}

func (s *EngineSuite) SetupTest() {
	s.picked = nil
	// Pinned picker: always choose index 0 unless a test swaps it.
	s.engine = NewEngineWithPicker(func(n int) int {
		s.picked = append(s.picked, n)
		return 0
	})
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// TestFollowUpWithoutMemory: a follow-up with no prior scheme discussed
// returns the clarification prompt and does not set an intent.
func (s *EngineSuite) TestFollowUpWithoutMemory() {
	res := s.engine.Respond("How to apply?", i18n.English, "", "Asha")

	s.Equal(KindClarify, res.Kind)
	s.False(res.SetIntent)
	s.Equal(i18n.T(i18n.English, i18n.KeyClarifyScheme), res.Reply)
}

// TestFollowUpUsesRememberedIntent: after a farmer question, a bare "how do
// I apply?" must carry the farmer entry's apply steps.
func (s *EngineSuite) TestFollowUpUsesRememberedIntent() {
	first := s.engine.Respond("Tell me about farmer schemes", i18n.English, "", "Asha")
	s.Equal(KindCategory, first.Kind)
	s.True(first.SetIntent)
	s.Equal(IntentFarmer, first.Intent)

	second := s.engine.Respond("How do I apply?", i18n.English, first.Intent, "Asha")
	s.Equal(KindFollowUp, second.Kind)

	entry, ok := LookupEntry(IntentFarmer)
	s.Require().True(ok)
	s.Contains(second.Reply, entry.Name.EN)
	s.Contains(second.Reply, entry.ApplySteps.EN)
}

// TestFollowUpMemoryDepthIsOne: a later direct match overwrites the slot,
// and the next follow-up refers to the most recent scheme only.
func (s *EngineSuite) TestFollowUpMemoryDepthIsOne() {
	intent := ""
	for _, utterance := range []string{"Tell me about PM Kisan", "What about ujjwala gas connection?"} {
		res := s.engine.Respond(utterance, i18n.English, intent, "Asha")
		s.True(res.SetIntent)
		intent = res.Intent
	}
	s.Equal(IntentUjjwala, intent)

	res := s.engine.Respond("Who is eligible?", i18n.English, intent, "Asha")
	s.Equal(KindFollowUp, res.Kind)
	s.Contains(res.Reply, "PM Ujjwala Yojana")
	s.NotContains(res.Reply, "PM Kisan Samman Nidhi")
}

// TestFollowUpNamingSchemeInline: "How to apply for PM Kisan?" resolves
// the named scheme even with empty memory.
func (s *EngineSuite) TestFollowUpNamingSchemeInline() {
	res := s.engine.Respond("How to apply for PM Kisan?", i18n.English, "", "Asha")

	s.Equal(KindFollowUp, res.Kind)
	s.True(res.SetIntent)
	s.Equal(IntentPMKisan, res.Intent)
	s.Contains(res.Reply, "pmkisan.gov.in")
}

// TestNamedSchemeBeatsCategory: "pm kisan" also contains the farmer-category
// keyword "kisan"; the named-scheme detector must win.
func (s *EngineSuite) TestNamedSchemeBeatsCategory() {
	res := s.engine.Respond("pm kisan samman nidhi details", i18n.English, "", "Asha")

	s.Equal(KindScheme, res.Kind)
	s.Equal(IntentPMKisan, res.Intent)
}

func (s *EngineSuite) TestCategoryDetection() {
	cases := map[string]string{
		"schemes for students please":    IntentScholarship,
		"I need a job, any skill plans?": IntentEmployment,
		"hospital cover for my family":   IntentHealth,
		"crop support schemes":           IntentFarmer,
	}
	for utterance, want := range cases {
		res := s.engine.Respond(utterance, i18n.English, "", "Asha")
		s.Equal(want, res.Intent, "utterance %q", utterance)
		s.Equal(KindCategory, res.Kind)
		s.True(res.SetIntent)
	}
}

func (s *EngineSuite) TestGreeting() {
	res := s.engine.Respond("Hello there", i18n.English, IntentFarmer, "Asha Devi")

	s.Equal(KindGreeting, res.Kind)
	s.False(res.SetIntent)
	s.Contains(res.Reply, "Asha")
	s.NotContains(s.picked, 2, "greeting must not consult the fallback picker")
}

func (s *EngineSuite) TestGreetingGuestFallbackName() {
	res := s.engine.Respond("namaste", i18n.English, "", "")
	s.Contains(res.Reply, i18n.T(i18n.English, i18n.KeyGuestName))
}

// TestGreetingTokenBoundary: "hi" must not fire inside unrelated words.
func (s *EngineSuite) TestGreetingTokenBoundary() {
	res := s.engine.Respond("something", i18n.English, "", "Asha")
	s.Equal(KindFallback, res.Kind)
}

// TestFallbackTwoStrings: unrecognized input always yields one of exactly
// two fixed strings, chosen by the injected picker.
func (s *EngineSuite) TestFallbackTwoStrings() {
	seen := map[string]bool{}
	for _, idx := range []int{0, 1, 0, 1} {
		e := NewEngineWithPicker(func(n int) int {
			s.Equal(2, n)
			return idx
		})
		res := e.Respond("xyzzy plugh", i18n.English, "", "Asha")
		s.Equal(KindFallback, res.Kind)
		seen[res.Reply] = true
	}
	s.Len(seen, 2)
	s.True(seen[i18n.T(i18n.English, i18n.KeyFallbackA)])
	s.True(seen[i18n.T(i18n.English, i18n.KeyFallbackB)])
}

// TestHindiReplies: classification works on Hindi keywords and replies come
// back in Hindi.
func (s *EngineSuite) TestHindiReplies() {
	res := s.engine.Respond("किसान योजना के बारे में बताइए", i18n.Hindi, "", "आशा")
	s.Equal(IntentFarmer, res.Intent)
	s.Contains(res.Reply, "पीएम किसान सम्मान निधि")

	follow := s.engine.Respond("आवेदन कैसे करें", i18n.Hindi, res.Intent, "आशा")
	s.Equal(KindFollowUp, follow.Kind)
	s.Contains(follow.Reply, i18n.T(i18n.Hindi, i18n.KeyLabelApply))
}

// TestEngineIsTotal: no utterance produces an empty reply.
func (s *EngineSuite) TestEngineIsTotal() {
	inputs := []string{"", "   ", "????", "tell me everything", "ñ ö ü", "12345"}
	for _, in := range inputs {
		res := s.engine.Respond(in, i18n.English, "", "")
		s.NotEmpty(res.Reply, "input %q", in)
	}
}

func (s *EngineSuite) TestKnowledgeBaseComplete() {
	for _, key := range []string{IntentPMKisan, IntentUjjwala, IntentFarmer, IntentScholarship, IntentEmployment, IntentHealth} {
		entry, ok := LookupEntry(key)
		s.Require().True(ok, "missing KB entry %s", key)
		s.NotEmpty(entry.Name.EN)
		s.NotEmpty(entry.Name.HI)
		s.False(entry.Summary.IsZero())
		s.False(entry.Benefit.IsZero())
		s.False(entry.Eligibility.IsZero())
		s.False(entry.ApplySteps.IsZero())
	}
}
