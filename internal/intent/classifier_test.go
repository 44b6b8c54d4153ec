package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name        string
		query       string
		wantKind    Kind
		wantSubject string
	}{
		{
			name:        "addition routes to mathematics",
			query:       "What is addition?",
			wantKind:    Subject,
			wantSubject: "mathematics",
		},
		{
			name:        "fee routes institutional",
			query:       "When is the fee deadline",
			wantKind:    Institutional,
			wantSubject: GeneralSubject,
		},
		{
			name:        "institutional beats subject keywords",
			query:       "When is the mathematics exam schedule",
			wantKind:    Institutional,
			wantSubject: GeneralSubject,
		},
		{
			name:        "science keywords",
			query:       "explain gravity and force in an experiment",
			wantKind:    Subject,
			wantSubject: "science",
		},
		{
			name:        "english keywords",
			query:       "help me with grammar and sentence structure",
			wantKind:    Subject,
			wantSubject: "english",
		},
		{
			name:        "social studies keywords",
			query:       "tell me about democracy and the constitution",
			wantKind:    Subject,
			wantSubject: "social_studies",
		},
		{
			name:        "hindi institutional keyword",
			query:       "मुझे फीस के बारे में बताओ",
			wantKind:    Institutional,
			wantSubject: GeneralSubject,
		},
		{
			name:        "hindi subject keyword",
			query:       "गणित समझाओ",
			wantKind:    Subject,
			wantSubject: "mathematics",
		},
		{
			name:        "no keywords at all",
			query:       "tell me a joke",
			wantKind:    Subject,
			wantSubject: GeneralSubject,
		},
		{
			name:        "empty query",
			query:       "",
			wantKind:    Subject,
			wantSubject: GeneralSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, subject := c.Classify(tt.query)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantSubject, subject)
		})
	}
}

func TestClassifyTieBreakIsStable(t *testing.T) {
	c := NewClassifier(nil)

	// "graph" (mathematics) and "plant" (science) score one each; the
	// first-declared subject must win the tie every time.
	for i := 0; i < 20; i++ {
		kind, subject := c.Classify("graph a plant")
		assert.Equal(t, Subject, kind)
		assert.Equal(t, "mathematics", subject)
	}
}

func TestSubjectsOrder(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, []string{"mathematics", "science", "english", "social_studies"}, c.Subjects())
}
