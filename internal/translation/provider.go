package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tatvax/edubot/internal/language"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Provider is one external translation backend in the fallthrough chain.
// Attempt returns the raw translated text; any transport, status, or payload
// problem is an error the pipeline treats as a plain "no result".
type Provider interface {
	Name() string
	MaxChars() int
	Attempt(ctx context.Context, text string, source, target language.Code) (string, error)
}

var errEmptyResult = errors.New("translation: provider returned empty result")

// GoogleFreeProvider calls the free Google translate endpoint.
type GoogleFreeProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewGoogleFreeProvider creates the first-priority provider. A zero timeout
// defaults to 10s.
func NewGoogleFreeProvider(baseURL string, timeout time.Duration) *GoogleFreeProvider {
	if baseURL == "" {
		baseURL = "https://translate.googleapis.com/translate_a/single"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleFreeProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *GoogleFreeProvider) Name() string { return "google_free" }

func (p *GoogleFreeProvider) MaxChars() int { return 5000 }

func (p *GoogleFreeProvider) Attempt(ctx context.Context, text string, source, target language.Code) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", string(source))
	params.Set("tl", string(target))
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("translation: build google request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	body, err := doRequest(p.httpClient, req)
	if err != nil {
		return "", err
	}

	// Payload shape: [[["translated","original",...],...],...]
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("translation: parse google payload: %w", err)
	}
	if len(payload) == 0 {
		return "", errEmptyResult
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("translation: parse google segments: %w", err)
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var piece string
		if err := json.Unmarshal(segment[0], &piece); err != nil {
			continue
		}
		sb.WriteString(piece)
	}
	if sb.Len() == 0 {
		return "", errEmptyResult
	}
	return sb.String(), nil
}

// MyMemoryProvider calls the MyMemory community endpoint.
type MyMemoryProvider struct {
	baseURL    string
	email      string
	httpClient *http.Client
}

// NewMyMemoryProvider creates the second-priority provider. The optional
// email raises the endpoint's daily quota.
func NewMyMemoryProvider(baseURL, email string, timeout time.Duration) *MyMemoryProvider {
	if baseURL == "" {
		baseURL = "https://api.mymemory.translated.net/get"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MyMemoryProvider{
		baseURL:    baseURL,
		email:      email,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *MyMemoryProvider) Name() string { return "mymemory" }

func (p *MyMemoryProvider) MaxChars() int { return 1000 }

func (p *MyMemoryProvider) Attempt(ctx context.Context, text string, source, target language.Code) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", fmt.Sprintf("%s|%s", source, target))
	if p.email != "" {
		params.Set("de", p.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("translation: build mymemory request: %w", err)
	}

	body, err := doRequest(p.httpClient, req)
	if err != nil {
		return "", err
	}

	var payload struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("translation: parse mymemory payload: %w", err)
	}

	translated := payload.ResponseData.TranslatedText
	if strings.TrimSpace(translated) == "" || translated == text {
		return "", errEmptyResult
	}
	return translated, nil
}

// LibreTranslateProvider calls a LibreTranslate-compatible endpoint.
type LibreTranslateProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewLibreTranslateProvider creates the third-priority provider. Its default
// timeout is longer because self-hosted instances respond slowly.
func NewLibreTranslateProvider(baseURL string, timeout time.Duration) *LibreTranslateProvider {
	if baseURL == "" {
		baseURL = "https://translate.disroot.org/translate"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &LibreTranslateProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *LibreTranslateProvider) Name() string { return "libretranslate" }

func (p *LibreTranslateProvider) MaxChars() int { return 2000 }

func (p *LibreTranslateProvider) Attempt(ctx context.Context, text string, source, target language.Code) (string, error) {
	payload := map[string]string{
		"q":      text,
		"source": string(source),
		"target": string(target),
		"format": "text",
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("translation: marshal libretranslate payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, strings.NewReader(string(data)))
	if err != nil {
		return "", fmt.Errorf("translation: build libretranslate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := doRequest(p.httpClient, req)
	if err != nil {
		return "", err
	}

	var result struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("translation: parse libretranslate payload: %w", err)
	}

	if strings.TrimSpace(result.TranslatedText) == "" || result.TranslatedText == text {
		return "", errEmptyResult
	}
	return result.TranslatedText, nil
}

func doRequest(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translation: %s %s: %w", req.Method, req.URL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("translation: %s returned status %d", req.URL.Host, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("translation: read response from %s: %w", req.URL.Host, err)
	}
	return body, nil
}
