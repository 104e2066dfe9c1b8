package i18n

// UI string keys used by the chat engine and the web shell. The table is
// deliberately flat: two hardcoded languages, no locale negotiation.
const (
	KeyClarifyScheme   = "chat.clarify_scheme"
	KeyGreeting        = "chat.greeting"
	KeyFallbackA       = "chat.fallback_a"
	KeyFallbackB       = "chat.fallback_b"
	KeyGuestName       = "chat.guest_name"
	KeyLabelBenefit    = "chat.label_benefit"
	KeyLabelEligible   = "chat.label_eligibility"
	KeyLabelApply      = "chat.label_apply"
	KeyNoResults       = "catalog.no_results"
	KeyWelcomeAssist   = "chat.welcome"
	KeyUnknownSchemeID = "catalog.unknown_scheme"
)

var uiStrings = map[Language]map[string]string{
	English: {
		KeyClarifyScheme:   "Which scheme do you mean? Tell me the scheme name, for example \"PM Kisan\" or \"Ujjwala Yojana\", and I will share the details.",
		KeyGreeting:        "Namaste %s! 🙏 I'm your YojanaSathi assistant. Ask me about any government scheme, and I'll help you find the best ones for you.",
		KeyFallbackA:       "I can help you find the right government schemes! Tell me whether you are a farmer, a student, or looking for employment, and I'll suggest the best matches. 🙏",
		KeyFallbackB:       "Sorry, I didn't quite get that. You can ask me about schemes for farmers, students, employment, or health — for example \"Tell me about PM Kisan\".",
		KeyGuestName:       "Guest",
		KeyLabelBenefit:    "Benefit",
		KeyLabelEligible:   "Eligibility",
		KeyLabelApply:      "How to apply",
		KeyNoResults:       "No schemes match your search.",
		KeyWelcomeAssist:   "Namaste! 🙏 I'm your YojanaSathi assistant. Ask me about any government scheme, and I'll help you find the best ones for you.",
		KeyUnknownSchemeID: "scheme not found",
	},
	Hindi: {
		KeyClarifyScheme:   "आप किस योजना के बारे में पूछ रहे हैं? योजना का नाम बताइए, जैसे \"पीएम किसान\" या \"उज्ज्वला योजना\", मैं पूरी जानकारी दूंगा।",
		KeyGreeting:        "नमस्ते %s! 🙏 मैं आपका योजनासाथी सहायक हूं। किसी भी सरकारी योजना के बारे में पूछिए, मैं आपके लिए सबसे अच्छी योजनाएं ढूंढने में मदद करूंगा।",
		KeyFallbackA:       "मैं आपके लिए सही सरकारी योजनाएं ढूंढ सकता हूं! बताइए कि आप किसान हैं, छात्र हैं, या रोजगार की तलाश में हैं। 🙏",
		KeyFallbackB:       "माफ कीजिए, मैं समझ नहीं पाया। आप किसान, छात्र, रोजगार या स्वास्थ्य योजनाओं के बारे में पूछ सकते हैं — जैसे \"पीएम किसान के बारे में बताइए\"।",
		KeyGuestName:       "अतिथि",
		KeyLabelBenefit:    "लाभ",
		KeyLabelEligible:   "पात्रता",
		KeyLabelApply:      "आवेदन कैसे करें",
		KeyNoResults:       "आपकी खोज से कोई योजना मेल नहीं खाती।",
		KeyWelcomeAssist:   "नमस्ते! 🙏 मैं आपका योजनासाथी सहायक हूं। किसी भी सरकारी योजना के बारे में पूछिए, मैं आपके लिए सबसे अच्छी योजनाएं ढूंढने में मदद करूंगा।",
		KeyUnknownSchemeID: "योजना नहीं मिली",
	},
}

// T looks up a UI string for the given language, falling back to English
// when the key has no translation.
func T(lang Language, key string) string {
	if s, ok := uiStrings[lang][key]; ok {
		return s
	}
	return uiStrings[English][key]
}
