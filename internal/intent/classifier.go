// Package intent routes a query to either institutional-FAQ handling or
// subject-learning handling by keyword scoring against static bilingual
// tables.
package intent

import (
	"strings"

	"github.com/tatvax/edubot/pkg/logging"
)

// Kind is the coarse routing decision for a query.
type Kind string

const (
	Institutional Kind = "institutional"
	Subject       Kind = "subject"
)

// GeneralSubject is returned when no subject table scores above zero.
const GeneralSubject = "general"

// subjectTerms pairs a subject key with its keyword list. Slice order is the
// tie-break for equal scores, so it must stay stable.
type subjectTerms struct {
	key   string
	terms []string
}

// Classifier scores queries against keyword tables. Tables are fixed at
// construction; classification is pure and deterministic.
type Classifier struct {
	logger        *logging.Logger
	institutional []string
	subjects      []subjectTerms
}

// NewClassifier builds a classifier with the default bilingual keyword tables.
func NewClassifier(logger *logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &Classifier{
		logger:        logger.Component("intent"),
		institutional: institutionalKeywords(),
		subjects: []subjectTerms{
			{key: "mathematics", terms: mathematicsKeywords()},
			{key: "science", terms: scienceKeywords()},
			{key: "english", terms: englishKeywords()},
			{key: "social_studies", terms: socialStudiesKeywords()},
		},
	}
}

// Classify routes a query. Institutional keywords take absolute priority: a
// single hit short-circuits subject scoring. Otherwise the subject with the
// most keyword hits wins, first-declared subject winning ties. A query that
// hits nothing is subject/general.
func (c *Classifier) Classify(query string) (Kind, string) {
	queryLower := strings.ToLower(query)

	for _, keyword := range c.institutional {
		if strings.Contains(queryLower, keyword) {
			c.logger.Debug("query classified institutional", "keyword", keyword)
			return Institutional, GeneralSubject
		}
	}

	bestKey := GeneralSubject
	bestScore := 0
	for _, subject := range c.subjects {
		score := 0
		for _, term := range subject.terms {
			if strings.Contains(queryLower, term) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestKey = subject.key
		}
	}

	if bestScore == 0 {
		return Subject, GeneralSubject
	}
	c.logger.Debug("query classified subject", "subject", bestKey, "score", bestScore)
	return Subject, bestKey
}

// Subjects returns the subject keys in table order.
func (c *Classifier) Subjects() []string {
	out := make([]string, len(c.subjects))
	for i, s := range c.subjects {
		out[i] = s.key
	}
	return out
}

func institutionalKeywords() []string {
	return []string{
		"admission", "fee", "exam", "schedule", "timetable", "syllabus",
		"holiday", "vacation", "result", "grade", "marks", "scholarship",
		"library", "book", "uniform", "bus", "transport", "canteen",
		"principal", "teacher", "staff", "contact", "phone", "email",
		"policy", "rule", "regulation", "procedure", "application",
		"प्रवेश", "फीस", "परीक्षा", "समय-सारणी", "पाठ्यक्रम", "छुट्टी",
		"परिणाम", "अंक", "छात्रवृत्ति", "पुस्तकालय", "पुस्तक", "वर्दी",
	}
}

func mathematicsKeywords() []string {
	return []string{
		"math", "mathematics", "number", "calculate", "equation", "algebra",
		"geometry", "fraction", "decimal", "percentage", "addition",
		"subtraction", "multiplication", "division", "problem", "solve",
		"formula", "graph", "triangle", "circle", "area", "volume", "angle",
		"coordinate",
		"गणित", "संख्या", "गुणा", "भाग", "जोड़", "घटाव", "समीकरण",
	}
}

func scienceKeywords() []string {
	return []string{
		"science", "physics", "chemistry", "biology", "experiment", "lab",
		"atom", "molecule", "energy", "force", "motion", "gravity", "light",
		"sound", "heat", "electricity", "plant", "animal", "cell", "dna",
		"ecosystem", "environment", "climate", "weather", "earth", "space",
		"विज्ञान", "भौतिकी", "रसायन", "जीव", "प्रयोग", "ऊर्जा", "बल",
	}
}

func englishKeywords() []string {
	return []string{
		"english", "grammar", "sentence", "noun", "verb", "adjective",
		"essay", "story", "poem", "reading", "writing", "spelling",
		"vocabulary", "literature", "comprehension", "paragraph",
		"punctuation", "tense", "subject", "predicate", "clause", "phrase",
		"metaphor", "simile",
		"अंग्रेजी", "व्याकरण", "वाक्य", "कहानी", "कविता", "लेखन", "पढ़ना",
	}
}

func socialStudiesKeywords() []string {
	return []string{
		"history", "geography", "civics", "politics", "government",
		"constitution", "rights", "duties", "democracy", "culture",
		"tradition", "heritage", "civilization", "ancient", "medieval",
		"modern", "independence", "freedom", "country", "state", "city",
		"village", "population",
		"इतिहास", "भूगोल", "नागरिकशास्त्र", "सरकार", "संविधान", "अधिकार",
	}
}
