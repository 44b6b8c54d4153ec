package language

import "strings"

// detectThreshold is the minimum fraction of non-space characters that must
// fall in one script block before we trust the script signal.
const detectThreshold = 0.15

// scriptBlock is a Unicode block the detector counts characters against.
// Slice order is the tie-break: when two blocks score equally, the earlier
// one wins, so detection stays deterministic.
type scriptBlock struct {
	name string
	lo   rune
	hi   rune
	code Code
}

var scriptBlocks = []scriptBlock{
	{name: "devanagari", lo: 0x0900, hi: 0x097F, code: Hindi}, // Hindi, Marathi
	{name: "bengali", lo: 0x0980, hi: 0x09FF, code: Bengali},
	{name: "tamil", lo: 0x0B80, hi: 0x0BFF, code: Tamil},
	{name: "telugu", lo: 0x0C00, hi: 0x0C7F, code: Telugu},
	{name: "gujarati", lo: 0x0A80, hi: 0x0AFF, code: Gujarati},
	{name: "kannada", lo: 0x0C80, hi: 0x0CFF, code: Kannada},
}

// marathiMarkers are Marathi-exclusive words used to split Marathi from Hindi
// when the winning script is Devanagari.
var marathiMarkers = []string{"आहे", "माझे", "तुझे", "काय", "कसे", "कुठे", "केव्हा", "कोण"}

// Detect classifies the language the text is written in by counting
// characters per script block. It never fails; text with no script signal is
// reported as English.
func Detect(text string) Code {
	if strings.TrimSpace(text) == "" {
		return English
	}

	counts := make([]int, len(scriptBlocks))
	total := 0
	for _, r := range text {
		if r == ' ' {
			continue
		}
		total++
		for i, block := range scriptBlocks {
			if r >= block.lo && r <= block.hi {
				counts[i]++
				break
			}
		}
	}
	if total == 0 {
		return English
	}

	best := 0
	for i := 1; i < len(scriptBlocks); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}

	if float64(counts[best])/float64(total) <= detectThreshold {
		return English
	}

	detected := scriptBlocks[best].code
	if scriptBlocks[best].name == "devanagari" {
		for _, marker := range marathiMarkers {
			if strings.Contains(text, marker) {
				return Marathi
			}
		}
	}
	return detected
}
