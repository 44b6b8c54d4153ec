package translation

import (
	"regexp"
	"strings"

	"github.com/tatvax/edubot/internal/language"
)

var (
	boldMarker    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicMarker  = regexp.MustCompile(`\*(.*?)\*`)
	codeMarker    = regexp.MustCompile("`(.*?)`")
	headerMarker  = regexp.MustCompile(`#{1,6}\s*`)
	lineBreaks    = regexp.MustCompile(`[\r\n\t]+`)
	multiSpace    = regexp.MustCompile(`\s+`)
	spaceBeforeHi  = regexp.MustCompile(`\s+([।?!])`)
	noSpaceAfterHi = regexp.MustCompile(`([।?!])([^\s])`)
	spaceBeforeIn  = regexp.MustCompile(`\s+([।?!.])`)
	noSpaceAfterIn = regexp.MustCompile(`([।?!.])([^\s])`)
	spaceBeforeEn  = regexp.MustCompile(`\s+([.?!,;:])`)
	noSpaceAfterEn = regexp.MustCompile(`([.?!:])([^\s])`)
)

// cleanForTranslation flattens markdown and whitespace so provider APIs see
// plain prose, and makes sure the text ends like a sentence.
func cleanForTranslation(text string) string {
	clean := boldMarker.ReplaceAllString(text, "$1")
	clean = italicMarker.ReplaceAllString(clean, "$1")
	clean = codeMarker.ReplaceAllString(clean, "$1")
	clean = headerMarker.ReplaceAllString(clean, "")
	clean = lineBreaks.ReplaceAllString(clean, " ")
	clean = multiSpace.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)

	if clean != "" && !strings.HasSuffix(clean, ".") && !strings.HasSuffix(clean, "!") &&
		!strings.HasSuffix(clean, "?") && !strings.HasSuffix(clean, "।") {
		clean += "."
	}
	return clean
}

// postProcess normalizes punctuation spacing per target language and applies
// the curated pronunciation fixes.
func postProcess(translated string, target language.Code, fixes map[language.Code]Dictionary) string {
	if translated == "" {
		return translated
	}

	result := strings.TrimSpace(translated)

	switch target {
	case language.Hindi:
		result = strings.ReplaceAll(result, "।।", "।")
		result = strings.ReplaceAll(result, "..", ".")
		result = strings.ReplaceAll(result, " ।", "।")
		if !strings.HasSuffix(result, "।") && !strings.HasSuffix(result, "?") && !strings.HasSuffix(result, "!") {
			result += "।"
		}
		result = spaceBeforeHi.ReplaceAllString(result, "$1")
		result = noSpaceAfterHi.ReplaceAllString(result, "$1 $2")

	case language.Bengali, language.Telugu, language.Tamil, language.Gujarati, language.Kannada:
		result = spaceBeforeIn.ReplaceAllString(result, "$1")
		result = noSpaceAfterIn.ReplaceAllString(result, "$1 $2")

	default:
		if !strings.HasSuffix(result, ".") && !strings.HasSuffix(result, "?") && !strings.HasSuffix(result, "!") {
			result += "."
		}
		result = spaceBeforeEn.ReplaceAllString(result, "$1")
		result = noSpaceAfterEn.ReplaceAllString(result, "$1 $2")
	}

	if table, ok := fixes[target]; ok {
		for original, fixed := range table {
			result = strings.ReplaceAll(result, original, fixed)
		}
	}

	return strings.TrimSpace(result)
}

// pronunciationFixes holds manually curated substring replacements applied
// after a translation is accepted. Kept deliberately small; entries are added
// as real mispronunciations are reported.
func pronunciationFixes() map[language.Code]Dictionary {
	return map[language.Code]Dictionary{
		language.Hindi: {
			"पांच": "पाँच",
		},
	}
}
