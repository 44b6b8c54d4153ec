package chatbot

import (
	"regexp"
	"sort"
	"strings"
)

var summarySentenceSplit = regexp.MustCompile(`[.!?।]\s+`)

// ExtractiveSummarizer scores sentences by the frequency of their words
// across the whole text and keeps the strongest ones in original order.
type ExtractiveSummarizer struct{}

func (ExtractiveSummarizer) Summarize(text string, sentences int) string {
	if sentences <= 0 {
		return ""
	}

	parts := summarySentenceSplit.Split(strings.TrimSpace(text), -1)
	var candidates []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len([]rune(part)) > 20 {
			candidates = append(candidates, part)
		}
	}
	if len(candidates) <= sentences {
		return text
	}

	freq := make(map[string]int)
	for _, sentence := range candidates {
		for _, word := range strings.Fields(strings.ToLower(sentence)) {
			if len([]rune(word)) > 3 {
				freq[word]++
			}
		}
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(candidates))
	for i, sentence := range candidates {
		words := strings.Fields(strings.ToLower(sentence))
		total := 0
		for _, word := range words {
			total += freq[word]
		}
		score := 0.0
		if len(words) > 0 {
			score = float64(total) / float64(len(words))
		}
		ranked[i] = scored{index: i, score: score}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	keep := ranked[:sentences]
	sort.Slice(keep, func(i, j int) bool { return keep[i].index < keep[j].index })

	var b strings.Builder
	for i, s := range keep {
		if i > 0 {
			b.WriteString(" ")
		}
		sentence := candidates[s.index]
		if !strings.HasSuffix(sentence, ".") && !strings.HasSuffix(sentence, "!") &&
			!strings.HasSuffix(sentence, "?") && !strings.HasSuffix(sentence, "।") {
			sentence += "."
		}
		b.WriteString(sentence)
	}
	return b.String()
}
