package content

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// NoContentMessage is returned when a corpus is empty.
const NoContentMessage = "No content available for this topic."

// topPassages caps how many matching paragraphs a relevance query returns.
const topPassages = 3

var headingMarker = regexp.MustCompile(`(?m)^#{1,6}\s+`)

type scoredPassage struct {
	text  string
	score int
}

// FindRelevant picks the corpus paragraphs that best match the query by
// word-set overlap. Paragraph boundaries are blank lines. Scoring is the raw
// intersection size between the lower-cased word sets of the query and the
// paragraph; no normalization by length is applied. Equal scores keep corpus
// order.
//
// When nothing overlaps, the first few substantial paragraphs are returned
// instead, then a prefix of the raw corpus, so the caller always gets text
// back. maxPassages is accepted for callers that tune the fallback breadth;
// the matched-passage cap is fixed.
func FindRelevant(query, corpus string, maxPassages int) string {
	if strings.TrimSpace(corpus) == "" {
		return NoContentMessage
	}

	queryWords := wordSet(query)
	paragraphs := strings.Split(corpus, "\n\n")

	var scored []scoredPassage
	for _, paragraph := range paragraphs {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		overlap := overlapSize(queryWords, paragraph)
		if overlap == 0 {
			continue
		}
		if cleaned := Clean(paragraph); cleaned != "" {
			scored = append(scored, scoredPassage{text: cleaned, score: overlap})
		}
	}

	if len(scored) > 0 {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].score > scored[j].score
		})
		n := topPassages
		if len(scored) < n {
			n = len(scored)
		}
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			parts[i] = scored[i].text
		}
		return strings.Join(parts, "\n\n")
	}

	// No overlap anywhere: fall back to the first substantial paragraphs.
	limit := 5
	if len(paragraphs) < limit {
		limit = len(paragraphs)
	}
	var meaningful []string
	for _, paragraph := range paragraphs[:limit] {
		cleaned := Clean(paragraph)
		if len([]rune(cleaned)) > 50 {
			meaningful = append(meaningful, cleaned)
		}
	}
	if len(meaningful) > 0 {
		return strings.Join(meaningful, "\n\n")
	}

	runes := []rune(corpus)
	if len(runes) > 1000 {
		return string(runes[:1000])
	}
	return corpus
}

// Clean strips markdown heading markers and normalizes whitespace while
// preserving single blank lines between paragraphs.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = headingMarker.ReplaceAllString(text, "")

	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		} else if len(cleaned) > 0 && cleaned[len(cleaned)-1] != "" {
			cleaned = append(cleaned, "")
		}
	}

	out := strings.Join(cleaned, "\n")
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(out)
}

// normalizeWord strips punctuation from token edges so "addition?" and
// "addition" count as the same word.
func normalizeWord(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if word = normalizeWord(word); word != "" {
			set[word] = struct{}{}
		}
	}
	return set
}

func overlapSize(queryWords map[string]struct{}, paragraph string) int {
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(paragraph)) {
		if word = normalizeWord(word); word == "" {
			continue
		}
		if _, ok := queryWords[word]; ok {
			seen[word] = struct{}{}
		}
	}
	return len(seen)
}
