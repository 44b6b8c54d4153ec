package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rankerCorpus = `# Guide

**Addition**
Addition means combining two or more numbers to get their sum.
Example: 5 + 3 = 8

**Subtraction**
Subtraction means finding the difference between two numbers.

**Multiplication**
Multiplication is repeated addition of the same number.

**Division**
Division is splitting a number into equal parts.`

func TestFindRelevantRanksByOverlap(t *testing.T) {
	got := FindRelevant("addition means", rankerCorpus, 5)

	require.NotEmpty(t, got)
	// The addition paragraph shares two words with the query; every other
	// hit shares at most one, so it must lead the result.
	first := strings.Split(got, "\n\n")[0]
	assert.Contains(t, first, "combining two or more numbers")
}

func TestFindRelevantCapsAtThreePassages(t *testing.T) {
	got := FindRelevant("number numbers addition subtraction division multiplication", rankerCorpus, 99)
	assert.LessOrEqual(t, len(strings.Split(got, "\n\n")), 3)
}

func TestFindRelevantIsIdempotent(t *testing.T) {
	a := FindRelevant("addition of numbers", rankerCorpus, 5)
	b := FindRelevant("addition of numbers", rankerCorpus, 5)
	assert.Equal(t, a, b)
}

func TestFindRelevantNeverFabricates(t *testing.T) {
	queries := []string{"addition", "zzz unmatched words", "division parts"}
	for _, q := range queries {
		got := FindRelevant(q, rankerCorpus, 5)
		assert.LessOrEqual(t, len(got), len(rankerCorpus), "query %q", q)
	}
}

func TestFindRelevantEmptyCorpus(t *testing.T) {
	assert.Equal(t, NoContentMessage, FindRelevant("anything", "", 5))
	assert.Equal(t, NoContentMessage, FindRelevant("anything", "   \n\n  ", 5))
}

func TestFindRelevantNoOverlapUsesLeadingParagraphs(t *testing.T) {
	corpus := "This opening paragraph is certainly longer than fifty characters in total.\n\nshort\n\nAnother substantial paragraph that also exceeds the fifty character floor easily."
	got := FindRelevant("qqq www eee", corpus, 5)

	assert.Contains(t, got, "opening paragraph")
	assert.Contains(t, got, "Another substantial paragraph")
	assert.NotContains(t, got, "short\n")
}

func TestFindRelevantNoOverlapFloorCountsRunes(t *testing.T) {
	// 18 runes of Devanagari is over 50 bytes; the floor must measure
	// characters, not bytes, so this paragraph stays below it.
	short := "गणित एक रोचक विषय है"
	long := "जोड़ का अर्थ है दो या दो से अधिक संख्याओं को मिलाकर उनका योग निकालना, और यह गणित की सबसे पहली क्रिया है।"
	require.Greater(t, len(short), 50)
	require.Greater(t, len([]rune(long)), 50)

	got := FindRelevant("qqq www eee", short+"\n\n"+long, 5)

	assert.Equal(t, long, got)
	assert.NotContains(t, got, short)
}

func TestFindRelevantNoOverlapShortParagraphsFallsBackToPrefix(t *testing.T) {
	// Every paragraph is under the 50-char floor, so the raw prefix wins.
	corpus := "tiny one\n\ntiny two\n\ntiny three"
	got := FindRelevant("qqq", corpus, 5)
	assert.Equal(t, corpus, got)

	// First five paragraphs are all under the floor; the long sixth is
	// never inspected, so the 1000-rune prefix fallback applies.
	long := "t1\n\nt2\n\nt3\n\nt4\n\nt5\n\n" + strings.Repeat("य", 1500)
	got = FindRelevant("qqq", long, 5)
	assert.Equal(t, 1000, len([]rune(got)))
}

func TestFindRelevantStableForEqualScores(t *testing.T) {
	corpus := "alpha topic one\n\nalpha topic two\n\nalpha topic three\n\nalpha topic four"
	got := FindRelevant("alpha", corpus, 5)
	assert.Equal(t, "alpha topic one\n\nalpha topic two\n\nalpha topic three", got)
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "heading stripped", in: "## Chapter 1: Numbers\nBody line", want: "Chapter 1: Numbers\nBody line"},
		{name: "line whitespace trimmed", in: "  padded line  \n\tanother  ", want: "padded line\nanother"},
		{name: "triple newlines collapse", in: "a\n\n\n\nb", want: "a\n\nb"},
		{name: "keeps single blank separator", in: "first\n\nsecond", want: "first\n\nsecond"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestFindRelevantIgnoresEdgePunctuation(t *testing.T) {
	got := FindRelevant("What is addition?", rankerCorpus, 5)

	assert.Contains(t, strings.ToLower(got), "addition means combining")
}
