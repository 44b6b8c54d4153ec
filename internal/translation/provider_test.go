package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatvax/edubot/internal/language"
)

func TestGoogleFreeProviderParsesSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gtx", r.URL.Query().Get("client"))
		assert.Equal(t, "en", r.URL.Query().Get("sl"))
		assert.Equal(t, "hi", r.URL.Query().Get("tl"))
		assert.Equal(t, "Hello world", r.URL.Query().Get("q"))
		w.Write([]byte(`[[["नमस्ते ","Hello ",null,null,10],["दुनिया","world",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	p := NewGoogleFreeProvider(srv.URL, time.Second)
	got, err := p.Attempt(context.Background(), "Hello world", language.English, language.Hindi)

	require.NoError(t, err)
	assert.Equal(t, "नमस्ते दुनिया", got)
}

func TestGoogleFreeProviderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewGoogleFreeProvider(srv.URL, time.Second)
	_, err := p.Attempt(context.Background(), "Hello", language.English, language.Hindi)
	assert.Error(t, err)
}

func TestGoogleFreeProviderMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>captcha</html>`))
	}))
	defer srv.Close()

	p := NewGoogleFreeProvider(srv.URL, time.Second)
	_, err := p.Attempt(context.Background(), "Hello", language.English, language.Hindi)
	assert.Error(t, err)
}

func TestMyMemoryProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Hello", r.URL.Query().Get("q"))
		assert.Equal(t, "en|hi", r.URL.Query().Get("langpair"))
		assert.Equal(t, "quota@example.com", r.URL.Query().Get("de"))
		json.NewEncoder(w).Encode(map[string]any{
			"responseData": map[string]any{"translatedText": "नमस्ते"},
		})
	}))
	defer srv.Close()

	p := NewMyMemoryProvider(srv.URL, "quota@example.com", time.Second)
	got, err := p.Attempt(context.Background(), "Hello", language.English, language.Hindi)

	require.NoError(t, err)
	assert.Equal(t, "नमस्ते", got)
}

func TestMyMemoryProviderEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"responseData": map[string]any{"translatedText": ""},
		})
	}))
	defer srv.Close()

	p := NewMyMemoryProvider(srv.URL, "", time.Second)
	_, err := p.Attempt(context.Background(), "Hello", language.English, language.Hindi)
	assert.Error(t, err)
}

func TestLibreTranslateProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Hello", req["q"])
		assert.Equal(t, "en", req["source"])
		assert.Equal(t, "hi", req["target"])
		json.NewEncoder(w).Encode(map[string]string{"translatedText": "नमस्ते"})
	}))
	defer srv.Close()

	p := NewLibreTranslateProvider(srv.URL, time.Second)
	got, err := p.Attempt(context.Background(), "Hello", language.English, language.Hindi)

	require.NoError(t, err)
	assert.Equal(t, "नमस्ते", got)
}

func TestProviderLimits(t *testing.T) {
	assert.Equal(t, 5000, NewGoogleFreeProvider("", 0).MaxChars())
	assert.Equal(t, 1000, NewMyMemoryProvider("", "", 0).MaxChars())
	assert.Equal(t, 2000, NewLibreTranslateProvider("", 0).MaxChars())
}

func TestProviderContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	p := NewGoogleFreeProvider(srv.URL, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Attempt(ctx, "Hello", language.English, language.Hindi)
	assert.Error(t, err)
}
