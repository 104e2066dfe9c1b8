// Package chat implements the rule-based chat assistant for yojanasathi:
// keyword intent classification over a fixed knowledge base, single-slot
// follow-up memory, and bilingual reply templating.
package chat

import "github.com/yojanasathi/yojanasathi/internal/i18n"

// Entry is a knowledge-base record for one intent key. Named schemes carry
// a single-scheme summary; category entries carry multi-scheme summary text
// and their detail sections describe the category's flagship scheme.
type Entry struct {
	Key         string
	Name        i18n.Text
	Summary     i18n.Text
	Benefit     i18n.Text
	Eligibility i18n.Text
	ApplySteps  i18n.Text
}

// Intent keys. Named schemes are listed before categories; detector
// priority in keywords.go follows the same order.
const (
	IntentPMKisan     = "pm_kisan"
	IntentUjjwala     = "ujjwala"
	IntentFarmer      = "farmer"
	IntentScholarship = "scholarship"
	IntentEmployment  = "employment"
	IntentHealth      = "health"
)

// knowledgeBase is the fixed intent key → bilingual content mapping. It is
// deliberately separate from the scheme catalog: only intents with deep
// chat support have entries here.
var knowledgeBase = map[string]Entry{
	IntentPMKisan: {
		Key: IntentPMKisan,
		Name: i18n.Text{
			EN: "PM Kisan Samman Nidhi",
			HI: "पीएम किसान सम्मान निधि",
		},
		Summary: i18n.Text{
			EN: "🌾 **PM Kisan Samman Nidhi** gives ₹6,000/year directly to small and marginal farmer families, paid in three installments to your bank account.",
			HI: "🌾 **पीएम किसान सम्मान निधि** छोटे और सीमांत किसान परिवारों को सीधे बैंक खाते में ₹6,000/वर्ष देती है, तीन किस्तों में।",
		},
		Benefit: i18n.Text{
			EN: "₹6,000 per year, paid as three installments of ₹2,000 directly into your bank account.",
			HI: "₹6,000 प्रति वर्ष, ₹2,000 की तीन किस्तों में सीधे आपके बैंक खाते में।",
		},
		Eligibility: i18n.Text{
			EN: "Small and marginal farmer families owning cultivable land, with annual income below ₹2 lakh.",
			HI: "खेती योग्य भूमि वाले छोटे और सीमांत किसान परिवार, जिनकी वार्षिक आय ₹2 लाख से कम हो।",
		},
		ApplySteps: i18n.Text{
			EN: "1. Visit pmkisan.gov.in and click \"New Farmer Registration\".\n2. Enter your Aadhaar number and land records.\n3. Submit bank account details for direct transfer.",
			HI: "1. pmkisan.gov.in पर जाएं और \"New Farmer Registration\" पर क्लिक करें।\n2. अपना आधार नंबर और भूमि रिकॉर्ड दर्ज करें।\n3. सीधे हस्तांतरण के लिए बैंक खाता विवरण जमा करें।",
		},
	},
	IntentUjjwala: {
		Key: IntentUjjwala,
		Name: i18n.Text{
			EN: "PM Ujjwala Yojana",
			HI: "पीएम उज्ज्वला योजना",
		},
		Summary: i18n.Text{
			EN: "🔥 **PM Ujjwala Yojana** gives free LPG connections and subsidised cylinders to women from BPL households, with the first refill free.",
			HI: "🔥 **पीएम उज्ज्वला योजना** बीपीएल परिवारों की महिलाओं को मुफ्त एलपीजी कनेक्शन और सब्सिडी वाले सिलेंडर देती है, पहली रिफिल मुफ्त।",
		},
		Benefit: i18n.Text{
			EN: "Free LPG connection with the first refill and stove free, plus an ongoing cylinder subsidy.",
			HI: "मुफ्त एलपीजी कनेक्शन, पहली रिफिल और चूल्हा मुफ्त, साथ में सिलेंडर पर सब्सिडी।",
		},
		Eligibility: i18n.Text{
			EN: "Adult women from BPL households with no existing LPG connection in the family.",
			HI: "बीपीएल परिवारों की वयस्क महिलाएं जिनके परिवार में पहले से कोई एलपीजी कनेक्शन नहीं है।",
		},
		ApplySteps: i18n.Text{
			EN: "1. Collect the KYC form from your nearest LPG distributor.\n2. Submit your BPL ration card and Aadhaar.\n3. Receive the connection with the first refill free.",
			HI: "1. अपने नजदीकी एलपीजी वितरक से केवाईसी फॉर्म लें।\n2. बीपीएल राशन कार्ड और आधार जमा करें।\n3. पहली रिफिल मुफ्त के साथ कनेक्शन प्राप्त करें।",
		},
	},
	IntentFarmer: {
		Key: IntentFarmer,
		Name: i18n.Text{
			EN: "PM Kisan Samman Nidhi",
			HI: "पीएम किसान सम्मान निधि",
		},
		Summary: i18n.Text{
			EN: "Here are the top schemes for farmers:\n\n🌾 **PM Kisan Samman Nidhi** - Get ₹6,000/year directly in your bank account.\n\n🛡️ **PM Fasal Bima Yojana** - Protect your crops with affordable insurance.\n\n💳 **Kisan Credit Card** - Access low-interest credit for farming needs.\n\nWould you like details on how to apply for any of these?",
			HI: "किसानों के लिए प्रमुख योजनाएं:\n\n🌾 **पीएम किसान सम्मान निधि** - सीधे बैंक खाते में ₹6,000/वर्ष पाएं।\n\n🛡️ **पीएम फसल बीमा योजना** - किफायती बीमा से अपनी फसल सुरक्षित करें।\n\n💳 **किसान क्रेडिट कार्ड** - खेती के लिए कम ब्याज पर ऋण पाएं।\n\nक्या आप इनमें से किसी के लिए आवेदन की जानकारी चाहते हैं?",
		},
		Benefit: i18n.Text{
			EN: "₹6,000 per year income support under PM Kisan, plus crop insurance and low-interest credit through the companion farmer schemes.",
			HI: "पीएम किसान के तहत ₹6,000 प्रति वर्ष आय सहायता, साथ में फसल बीमा और कम ब्याज पर ऋण।",
		},
		Eligibility: i18n.Text{
			EN: "Small and marginal farmer families owning cultivable land, with annual income below ₹2 lakh.",
			HI: "खेती योग्य भूमि वाले छोटे और सीमांत किसान परिवार, जिनकी वार्षिक आय ₹2 लाख से कम हो।",
		},
		ApplySteps: i18n.Text{
			EN: "1. Visit pmkisan.gov.in and click \"New Farmer Registration\".\n2. Enter your Aadhaar number and land records.\n3. Submit bank account details for direct transfer.",
			HI: "1. pmkisan.gov.in पर जाएं और \"New Farmer Registration\" पर क्लिक करें।\n2. अपना आधार नंबर और भूमि रिकॉर्ड दर्ज करें।\n3. सीधे हस्तांतरण के लिए बैंक खाता विवरण जमा करें।",
		},
	},
	IntentScholarship: {
		Key: IntentScholarship,
		Name: i18n.Text{
			EN: "National Scholarship Portal",
			HI: "राष्ट्रीय छात्रवृत्ति पोर्टल",
		},
		Summary: i18n.Text{
			EN: "Great news for students! Here are schemes you may be eligible for:\n\n📚 **National Scholarship Portal** - Apply for scholarships up to ₹50,000/year.\n\n🎓 **PM Vidya Lakshmi Yojana** - Get education loans from multiple banks.\n\nShall I help you understand the eligibility criteria?",
			HI: "छात्रों के लिए खुशखबरी! ये योजनाएं आपके लिए हो सकती हैं:\n\n📚 **राष्ट्रीय छात्रवृत्ति पोर्टल** - ₹50,000/वर्ष तक की छात्रवृत्ति के लिए आवेदन करें।\n\n🎓 **पीएम विद्या लक्ष्मी योजना** - कई बैंकों से शिक्षा ऋण पाएं।\n\nक्या मैं पात्रता समझने में मदद करूं?",
		},
		Benefit: i18n.Text{
			EN: "Scholarships up to ₹50,000 per year through the National Scholarship Portal, and education loans via PM Vidya Lakshmi.",
			HI: "राष्ट्रीय छात्रवृत्ति पोर्टल से ₹50,000 प्रति वर्ष तक की छात्रवृत्ति, और विद्या लक्ष्मी से शिक्षा ऋण।",
		},
		Eligibility: i18n.Text{
			EN: "Students from Class 1 to PhD with family income below ₹2.5 lakh; most awards are merit-based.",
			HI: "कक्षा 1 से पीएचडी तक के छात्र जिनकी पारिवारिक आय ₹2.5 लाख से कम हो; अधिकांश छात्रवृत्तियां मेरिट आधारित हैं।",
		},
		ApplySteps: i18n.Text{
			EN: "1. Register on scholarships.gov.in with your Aadhaar.\n2. Upload your income certificate and previous marksheets.\n3. Track verification through your institute.",
			HI: "1. scholarships.gov.in पर आधार से पंजीकरण करें।\n2. आय प्रमाणपत्र और पिछली मार्कशीट अपलोड करें।\n3. अपने संस्थान के माध्यम से सत्यापन ट्रैक करें।",
		},
	},
	IntentEmployment: {
		Key: IntentEmployment,
		Name: i18n.Text{
			EN: "PM Kaushal Vikas Yojana",
			HI: "पीएम कौशल विकास योजना",
		},
		Summary: i18n.Text{
			EN: "Here are the best schemes for skill development and employment:\n\n💼 **PM Kaushal Vikas Yojana** - Free skill training with government certification.\n\n🏪 **Mudra Loan Yojana** - Start your own business with loans up to ₹10 lakh.\n\nWant to know more about the application process?",
			HI: "कौशल विकास और रोजगार के लिए सबसे अच्छी योजनाएं:\n\n💼 **पीएम कौशल विकास योजना** - सरकारी प्रमाणपत्र के साथ मुफ्त कौशल प्रशिक्षण।\n\n🏪 **मुद्रा लोन योजना** - ₹10 लाख तक के ऋण से अपना व्यवसाय शुरू करें।\n\nक्या आप आवेदन प्रक्रिया के बारे में और जानना चाहते हैं?",
		},
		Benefit: i18n.Text{
			EN: "Free skill training with certification under PM Kaushal Vikas, and collateral-free business loans up to ₹10 lakh under Mudra.",
			HI: "पीएम कौशल विकास के तहत प्रमाणपत्र सहित मुफ्त कौशल प्रशिक्षण, और मुद्रा के तहत ₹10 लाख तक का बिना गारंटी ऋण।",
		},
		Eligibility: i18n.Text{
			EN: "Unemployed youth aged 15-45 for skill training; any small business owner or entrepreneur for Mudra loans.",
			HI: "कौशल प्रशिक्षण के लिए 15-45 वर्ष के बेरोजगार युवा; मुद्रा ऋण के लिए कोई भी छोटा व्यवसायी या उद्यमी।",
		},
		ApplySteps: i18n.Text{
			EN: "1. Find a nearby training centre on pmkvyofficial.org.\n2. Enroll with your Aadhaar and pick a job role course.\n3. Complete training and collect your certificate.",
			HI: "1. pmkvyofficial.org पर नजदीकी प्रशिक्षण केंद्र खोजें।\n2. आधार से नामांकन करें और कोर्स चुनें।\n3. प्रशिक्षण पूरा कर प्रमाणपत्र प्राप्त करें।",
		},
	},
	IntentHealth: {
		Key: IntentHealth,
		Name: i18n.Text{
			EN: "Ayushman Bharat Yojana",
			HI: "आयुष्मान भारत योजना",
		},
		Summary: i18n.Text{
			EN: "For health coverage, the flagship scheme is:\n\n🏥 **Ayushman Bharat Yojana** - ₹5 lakh health insurance cover per family per year for hospitalization at empanelled hospitals.\n\nWould you like to know if your family is eligible?",
			HI: "स्वास्थ्य सुरक्षा के लिए प्रमुख योजना:\n\n🏥 **आयुष्मान भारत योजना** - सूचीबद्ध अस्पतालों में भर्ती के लिए प्रति परिवार प्रति वर्ष ₹5 लाख का स्वास्थ्य बीमा।\n\nक्या आप जानना चाहेंगे कि आपका परिवार पात्र है या नहीं?",
		},
		Benefit: i18n.Text{
			EN: "₹5 lakh health insurance cover per family per year for secondary and tertiary hospitalization.",
			HI: "माध्यमिक और तृतीयक अस्पताल में भर्ती के लिए प्रति परिवार प्रति वर्ष ₹5 लाख का स्वास्थ्य बीमा कवर।",
		},
		Eligibility: i18n.Text{
			EN: "BPL families and families with annual income below ₹1 lakh, per the SECC beneficiary list.",
			HI: "बीपीएल परिवार और ₹1 लाख से कम वार्षिक आय वाले परिवार, एसईसीसी लाभार्थी सूची के अनुसार।",
		},
		ApplySteps: i18n.Text{
			EN: "1. Check family eligibility on pmjay.gov.in or call 14555.\n2. Visit an empanelled hospital with your Aadhaar.\n3. Collect your Ayushman card; treatment is cashless.",
			HI: "1. pmjay.gov.in पर पात्रता जांचें या 14555 पर कॉल करें।\n2. आधार लेकर सूचीबद्ध अस्पताल जाएं।\n3. आयुष्मान कार्ड प्राप्त करें; इलाज कैशलेस है।",
		},
	},
}

// LookupEntry returns the knowledge-base entry for an intent key.
func LookupEntry(key string) (Entry, bool) {
	e, ok := knowledgeBase[key]
	return e, ok
}
