// Package audio covers the voice side of the chatbot: speech synthesis via
// the Google Translate TTS endpoint, server-side playback, and the lifecycle
// of the temporary mp3 files both of them share.
package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tatvax/edubot/internal/language"
)

const ttsUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

// Synthesizer turns prepared text into mp3 bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voice string) ([]byte, error)
}

// GoogleTTS calls the unauthenticated Google Translate TTS endpoint.
type GoogleTTS struct {
	baseURL string
	client  *http.Client
}

func NewGoogleTTS(baseURL string, timeout time.Duration) *GoogleTTS {
	if baseURL == "" {
		baseURL = "https://translate.google.com/translate_tts"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &GoogleTTS{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *GoogleTTS) Synthesize(ctx context.Context, text string, voice string) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", voice)
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building tts request: %w", err)
	}
	req.Header.Set("User-Agent", ttsUserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tts endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("reading tts response: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("tts endpoint returned no audio")
	}
	return data, nil
}

// VoiceFor maps a response language to the synthesizer voice. Marathi has no
// dedicated voice on the free endpoint, so it borrows Hindi.
func VoiceFor(lang language.Code) string {
	return language.TTSVoice(lang)
}
