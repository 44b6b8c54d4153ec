// Package speech defines the speech-to-text boundary for voice chat.
package speech

import (
	"context"
	"errors"
	"time"

	"github.com/tatvax/edubot/internal/language"
)

var (
	// ErrNoSpeech means nothing was heard before the timeout elapsed.
	ErrNoSpeech = errors.New("no speech detected within timeout period")
	// ErrNotUnderstood means audio was captured but no language produced a
	// transcription.
	ErrNotUnderstood = errors.New("could not understand the audio")
	// ErrUnavailable means no recognition backend is configured.
	ErrUnavailable = errors.New("speech recognition is not available")
)

// Recognizer captures one utterance and returns its transcription together
// with the language it was recognized in. Implementations try each supported
// language's recognition locale in order and return the first hit.
type Recognizer interface {
	Listen(ctx context.Context, timeout, phraseTimeout time.Duration) (string, language.Code, error)
}

// Unavailable is the default Recognizer on servers without audio capture.
type Unavailable struct{}

func (Unavailable) Listen(ctx context.Context, timeout, phraseTimeout time.Duration) (string, language.Code, error) {
	return "", language.English, ErrUnavailable
}
