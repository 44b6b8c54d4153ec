package audio

import (
	"regexp"
	"strings"

	"github.com/tatvax/edubot/internal/language"
)

const (
	// Free TTS endpoints choke on long inputs, so prepared text is held to a
	// sentence budget rather than cut mid-word.
	ttsSentenceBudget = 300
	ttsHardLimit      = 250
)

var (
	ttsBold       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	ttsItalic     = regexp.MustCompile(`\*(.*?)\*`)
	ttsCode       = regexp.MustCompile("`(.*?)`")
	ttsHTMLTag    = regexp.MustCompile(`<[^>]+>`)
	ttsHeader     = regexp.MustCompile(`#{1,6}\s*`)
	ttsBullet     = regexp.MustCompile(`(?m)^[\-*+]\s*`)
	ttsNumbered   = regexp.MustCompile(`(?m)^\d+\.\s*`)
	ttsSpecial    = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:\-()।]`)
	ttsMultiSpace = regexp.MustCompile(`\s+`)
	ttsDoublePunc = regexp.MustCompile(`([।.!?])([।.!?])+`)

	hindiPauseAfter  = regexp.MustCompile(`([।!?])\s*`)
	hindiConjunction = regexp.MustCompile(`(और|तथा|एवं|लेकिन|परंतु|किंतु)`)
	indicPauseAfter  = regexp.MustCompile(`([।!?.])`)
	englishPause     = regexp.MustCompile(`([.!?])`)
	englishConnector = regexp.MustCompile(`\b(and|but|or|however|therefore)\b`)

	sentenceSplit = regexp.MustCompile(`[.।!?]`)
)

// PrepareText rewrites a chat response into something a TTS voice can read
// naturally: no markup, language-appropriate pauses, and a bounded length.
func PrepareText(text string, lang language.Code) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	clean := ttsBold.ReplaceAllString(text, "$1")
	clean = ttsItalic.ReplaceAllString(clean, "$1")
	clean = ttsCode.ReplaceAllString(clean, "$1")
	clean = ttsHTMLTag.ReplaceAllString(clean, "")
	clean = ttsHeader.ReplaceAllString(clean, "")
	clean = ttsBullet.ReplaceAllString(clean, "")
	clean = ttsNumbered.ReplaceAllString(clean, "")

	switch lang {
	case language.Hindi:
		clean = strings.ReplaceAll(clean, ".", "।")
		clean = hindiPauseAfter.ReplaceAllString(clean, "$1 ")
		clean = hindiConjunction.ReplaceAllString(clean, "$1, ")

	case language.Bengali, language.Tamil, language.Telugu, language.Gujarati, language.Kannada, language.Marathi:
		clean = indicPauseAfter.ReplaceAllString(clean, "$1 ")

	case language.English:
		clean = englishPause.ReplaceAllString(clean, "$1 ")
		clean = englishConnector.ReplaceAllString(clean, ", $1")
	}

	clean = ttsSpecial.ReplaceAllString(clean, " ")
	clean = ttsMultiSpace.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)

	if len([]rune(clean)) > 200 {
		clean = truncateBySentence(clean, lang)
	}

	clean = strings.TrimSpace(clean)
	if clean != "" && !strings.HasSuffix(clean, "।") && !strings.HasSuffix(clean, ".") &&
		!strings.HasSuffix(clean, "!") && !strings.HasSuffix(clean, "?") {
		if lang == language.Hindi {
			clean += "।"
		} else {
			clean += "."
		}
	}
	return ttsDoublePunc.ReplaceAllString(clean, "$1")
}

// truncateBySentence keeps whole leading sentences up to the budget; when
// even the first sentence is too long it falls back to a rune cut.
func truncateBySentence(text string, lang language.Code) string {
	sentences := sentenceSplit.Split(text, -1)
	if len(sentences) <= 1 {
		return runePrefix(text, ttsHardLimit)
	}

	var kept []string
	total := 0
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		runes := len([]rune(sentence))
		if total+runes >= ttsSentenceBudget {
			break
		}
		kept = append(kept, sentence)
		total += runes
	}

	if len(kept) == 0 {
		return runePrefix(text, ttsHardLimit)
	}
	if lang == language.Hindi {
		return strings.Join(kept, "। ") + "।"
	}
	return strings.Join(kept, ". ") + "."
}

func runePrefix(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
