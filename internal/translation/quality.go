package translation

import (
	"strings"

	"github.com/tatvax/edubot/internal/language"
)

// Substrings that mark a provider response as an error page rather than a
// translation.
var errorIndicators = []string{"error", "failed", "timeout", "invalid", "could not", "unable to"}

var apiErrorIndicators = []string{"api key", "rate limit", "quota exceeded", "service unavailable"}

// validateQuality decides whether a provider result is usable. A rejection is
// treated exactly like a provider failure and the chain moves on.
func validateQuality(original, translated string, source, target language.Code) bool {
	if strings.TrimSpace(translated) == "" {
		return false
	}

	// A result identical to the input means the provider did nothing.
	if strings.EqualFold(strings.TrimSpace(original), strings.TrimSpace(translated)) {
		return false
	}

	// Suspiciously short results are usually truncation.
	originalLen := len([]rune(original))
	if originalLen > 50 && len([]rune(translated))*10 < originalLen*3 {
		return false
	}

	lower := strings.ToLower(translated)
	for _, indicator := range errorIndicators {
		if strings.Contains(lower, indicator) {
			return false
		}
	}
	for _, indicator := range apiErrorIndicators {
		if strings.Contains(lower, indicator) {
			return false
		}
	}

	// Hindi output of any real length must contain Devanagari.
	if target == language.Hindi && len([]rune(translated)) > 10 {
		if countDevanagari(translated) == 0 {
			return false
		}
	}

	return true
}

func countDevanagari(text string) int {
	count := 0
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			count++
		}
	}
	return count
}
