package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tatvax/edubot/internal/language"
)

func TestCleanForTranslationStripsMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold and italic markers",
			in:   "**Photosynthesis** is how *plants* make food.",
			want: "Photosynthesis is how plants make food.",
		},
		{
			name: "inline code",
			in:   "Use the `area` formula.",
			want: "Use the area formula.",
		},
		{
			name: "headers and line breaks",
			in:   "## Fractions\nA fraction has\ta numerator.",
			want: "Fractions A fraction has a numerator.",
		},
		{
			name: "collapses runs of spaces",
			in:   "The   school   opens at 8.",
			want: "The school opens at 8.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanForTranslation(tt.in))
		})
	}
}

func TestCleanForTranslationEnsuresTerminalPunctuation(t *testing.T) {
	assert.Equal(t, "Hello there.", cleanForTranslation("Hello there"))
	assert.Equal(t, "What is gravity?", cleanForTranslation("What is gravity?"))
	assert.Equal(t, "नमस्ते।", cleanForTranslation("नमस्ते।"))
	assert.Equal(t, "", cleanForTranslation("   "))
}

func TestPostProcessHindi(t *testing.T) {
	fixes := pronunciationFixes()

	// Doubled and orphaned dandas collapse, and a missing one is appended.
	assert.Equal(t, "यह एक वाक्य है।", postProcess("यह एक वाक्य है।।", language.Hindi, fixes))
	assert.Equal(t, "यह एक वाक्य है।", postProcess("यह एक वाक्य है ।", language.Hindi, fixes))
	assert.Equal(t, "यह एक वाक्य है।", postProcess("यह एक वाक्य है", language.Hindi, fixes))

	// Questions keep their mark.
	assert.Equal(t, "क्या आप समझे?", postProcess("क्या आप समझे?", language.Hindi, fixes))
}

func TestPostProcessAppliesPronunciationFixes(t *testing.T) {
	got := postProcess("पांच किताबें", language.Hindi, pronunciationFixes())
	assert.Equal(t, "पाँच किताबें।", got)
}

func TestPostProcessEnglishSpacing(t *testing.T) {
	fixes := pronunciationFixes()

	assert.Equal(t, "Hello, world.", postProcess("Hello , world", language.English, fixes))
	assert.Equal(t, "First. Second.", postProcess("First.Second", language.English, fixes))
	assert.Equal(t, "", postProcess("", language.English, fixes))
}

func TestPostProcessIndicScripts(t *testing.T) {
	got := postProcess("এটি একটি বাক্য ।", language.Bengali, pronunciationFixes())
	assert.Equal(t, "এটি একটি বাক্য।", got)
}
