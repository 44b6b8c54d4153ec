package translation

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/tatvax/edubot/internal/language"
)

// Dictionary is a bilingual term table used when every provider fails. Keys
// are source-language terms; longer phrases are substituted before shorter
// ones so multi-word entries are not shadowed.
type Dictionary map[string]string

// dictionaryKey builds the table name for a language pair.
func dictionaryKey(source, target language.Code) string {
	return string(source) + "_to_" + string(target)
}

// Apply substitutes every dictionary term found in text, whole-word and
// case-insensitive. Terms absent from the text leave it untouched; a text
// matching nothing comes back unchanged.
func (d Dictionary) Apply(text string) string {
	terms := make([]string, 0, len(d))
	for term := range d {
		terms = append(terms, term)
	}
	// Longest first; equal lengths ordered lexicographically so the pass
	// is deterministic.
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	for _, term := range terms {
		text = replaceWholeWord(text, term, d[term])
	}
	return text
}

// replaceWholeWord substitutes case-insensitive occurrences of term whose
// neighbors are not letters, digits, or underscores. The boundary check is
// rune-based rather than regexp \b so it behaves the same for Latin and
// Indic scripts.
func replaceWholeWord(text, term, replacement string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	matches := re.FindAllStringIndex(text, -1)
	if matches == nil {
		return text
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if !boundaryBefore(text, start) || !boundaryAfter(text, end) {
			continue
		}
		sb.WriteString(text[last:start])
		sb.WriteString(replacement)
		last = end
	}
	sb.WriteString(text[last:])
	return sb.String()
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r := []rune(text[:idx])
	return !isWordRune(r[len(r)-1])
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	r := []rune(text[idx:])
	return !isWordRune(r[0])
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// defaultDictionaries returns the curated educational term tables.
func defaultDictionaries() map[string]Dictionary {
	return map[string]Dictionary{
		dictionaryKey(language.English, language.Hindi): englishToHindi(),
		dictionaryKey(language.Hindi, language.English): hindiToEnglish(),
	}
}

func englishToHindi() Dictionary {
	return Dictionary{
		// Educational terms
		"mathematics":    "गणित",
		"science":        "विज्ञान",
		"english":        "अंग्रेजी",
		"social studies": "सामाजिक अध्ययन",
		"physics":        "भौतिकी",
		"chemistry":      "रसायन विज्ञान",
		"biology":        "जीव विज्ञान",
		"history":        "इतिहास",
		"geography":      "भूगोल",
		"literature":     "साहित्य",
		"grammar":        "व्याकरण",
		"vocabulary":     "शब्दावली",
		"chapter":        "अध्याय",
		"lesson":         "पाठ",
		"exercise":       "अभ्यास",
		"example":        "उदाहरण",
		"question":       "प्रश्न",
		"answer":         "उत्तर",
		"solution":       "समाधान",
		// Numbers and math
		"number":         "संख्या",
		"addition":       "जोड़",
		"subtraction":    "घटाव",
		"multiplication": "गुणा",
		"division":       "भाग",
		"fraction":       "भिन्न",
		"decimal":        "दशमलव",
		"percentage":     "प्रतिशत",
		"equation":       "समीकरण",
		"formula":        "सूत्र",
		"calculation":    "गणना",
		// Institutional terms
		"examination": "परीक्षा",
		"test":        "परीक्षण",
		"syllabus":    "पाठ्यक्रम",
		"curriculum":  "पाठ्यक्रम",
		"timetable":   "समय सारणी",
		"schedule":    "कार्यक्रम",
		"admission":   "प्रवेश",
		"fee":         "शुल्क",
		"fees":        "शुल्क",
		"scholarship": "छात्रवृत्ति",
		"library":     "पुस्तकालय",
		"laboratory":  "प्रयोगशाला",
		"principal":   "प्राचार्य",
		"teacher":     "शिक्षक",
		"student":     "छात्र",
		"classroom":   "कक्षा",
		"homework":    "गृहकार्य",
		"assignment":  "असाइनमेंट",
		"project":     "परियोजना",
		"result":      "परिणाम",
		"marks":       "अंक",
		"grade":       "श्रेणी",
		"certificate": "प्रमाण पत्र",
		"diploma":     "डिप्लोमा",
		// Common phrases
		"hello":          "नमस्ते",
		"good morning":   "सुप्रभात",
		"good afternoon": "नमस्कार",
		"good evening":   "शुभ संध्या",
		"good night":     "शुभ रात्रि",
		"thank you":      "धन्यवाद",
		"please":         "कृपया",
		"excuse me":      "माफ करें",
		"sorry":          "माफ करें",
		"help":           "मदद",
		"understand":     "समझना",
		"explain":        "समझाना",
		"learn":          "सीखना",
		"study":          "अध्ययन",
		"practice":       "अभ्यास करना",
		"repeat":         "दोहराना",
		"remember":       "याद रखना",
		"forget":         "भूलना",
		"know":           "जानना",
		// Time and calendar
		"today":     "आज",
		"tomorrow":  "कल",
		"yesterday": "कल",
		"morning":   "सुबह",
		"afternoon": "दोपहर",
		"evening":   "शाम",
		"night":     "रात",
		"week":      "सप्ताह",
		"month":     "महीना",
		"year":      "साल",
		"day":       "दिन",
		"time":      "समय",
		"hour":      "घंटा",
		"minute":    "मिनट",
		// Basic verbs
		"is":      "है",
		"are":     "हैं",
		"was":     "था",
		"were":    "थे",
		"will be": "होगा",
		"have":    "है",
		"has":     "है",
		"had":     "था",
		"do":      "करना",
		"does":    "करता है",
		"did":     "किया",
		"can":     "सकना",
		"will":    "होगा",
		"would":   "होगा",
		"should":  "चाहिए",
		"must":    "जरूर",
		// Common adjectives
		"good":        "अच्छा",
		"bad":         "बुरा",
		"big":         "बड़ा",
		"small":       "छोटा",
		"new":         "नया",
		"old":         "पुराना",
		"easy":        "आसान",
		"difficult":   "कठिन",
		"important":   "महत्वपूर्ण",
		"useful":      "उपयोगी",
		"interesting": "दिलचस्प",
		"beautiful":   "सुंदर",
		// Educational verbs
		"read":       "पढ़ना",
		"write":      "लिखना",
		"listen":     "सुनना",
		"speak":      "बोलना",
		"think":      "सोचना",
		"solve":      "हल करना",
		"calculate":  "गणना करना",
		"measure":    "मापना",
		"observe":    "देखना",
		"experiment": "प्रयोग करना",
	}
}

func hindiToEnglish() Dictionary {
	return Dictionary{
		"गणित":             "mathematics",
		"विज्ञान":          "science",
		"अंग्रेजी":         "english",
		"सामाजिक अध्ययन":   "social studies",
		"परीक्षा":          "examination",
		"शिक्षक":           "teacher",
		"छात्र":            "student",
		"प्रश्न":           "question",
		"उत्तर":            "answer",
		"अध्ययन":           "study",
		"सीखना":            "learn",
		"समझना":            "understand",
		"पढ़ना":            "read",
		"लिखना":            "write",
		"गणना":             "calculation",
		"समाधान":           "solution",
		"उदाहरण":           "example",
		"अभ्यास":           "practice",
		"याद रखना":         "remember",
		"समझाना":           "explain",
		"दोहराना":          "repeat",
		"फीस":              "fee",
		"प्रवेश":           "admission",
		"छुट्टी":           "holiday",
		"पुस्तकालय":        "library",
		"छात्रवृत्ति":      "scholarship",
		"कठिन":             "difficult",
		"आसान":             "easy",
		"महत्वपूर्ण":       "important",
		"अच्छा":            "good",
		"बुरा":             "bad",
		"नया":              "new",
		"पुराना":           "old",
	}
}
