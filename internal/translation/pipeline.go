// Package translation renders text between the supported languages by
// walking a chain of external providers and falling back to a curated
// bilingual dictionary when none of them produce a usable result.
package translation

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tatvax/edubot/internal/language"
	"github.com/tatvax/edubot/internal/observability/metrics"
	"github.com/tatvax/edubot/pkg/logging"
)

// Auto asks the pipeline to detect the source language itself.
const Auto = language.Code("auto")

// Config wires a Pipeline.
type Config struct {
	// Providers in ascending priority order; the first accepted result wins.
	Providers  []Provider
	Logger     *logging.Logger
	Metrics    *metrics.TranslationMetrics
	BatchDelay time.Duration
}

// Stats describes the pipeline for the status endpoint.
type Stats struct {
	SupportedLanguages int      `json:"supported_languages"`
	FallbackTerms      int      `json:"fallback_terms"`
	ActiveProviders    []string `json:"active_providers"`
}

// Pipeline is the translation service. Translate never fails: ordinary
// provider trouble is absorbed by the fallthrough chain and the worst case
// is the input echoed back.
type Pipeline struct {
	providers  []Provider
	dicts      map[string]Dictionary
	fixes      map[language.Code]Dictionary
	logger     *logging.Logger
	tracer     trace.Tracer
	metrics    *metrics.TranslationMetrics
	batchDelay time.Duration
}

// NewPipeline builds the pipeline with the default dictionaries and
// pronunciation fixes.
func NewPipeline(cfg Config) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	batchDelay := cfg.BatchDelay
	if batchDelay <= 0 {
		batchDelay = 500 * time.Millisecond
	}
	return &Pipeline{
		providers:  cfg.Providers,
		dicts:      defaultDictionaries(),
		fixes:      pronunciationFixes(),
		logger:     logger.Component("translation"),
		tracer:     otel.Tracer("edubot.internal.translation"),
		metrics:    cfg.Metrics,
		batchDelay: batchDelay,
	}
}

// DefaultProviders returns the production chain in priority order.
func DefaultProviders(googleURL, myMemoryURL, myMemoryEmail, libreURL string, timeout time.Duration) []Provider {
	return []Provider{
		NewGoogleFreeProvider(googleURL, timeout),
		NewMyMemoryProvider(myMemoryURL, myMemoryEmail, timeout),
		NewLibreTranslateProvider(libreURL, timeout+5*time.Second),
	}
}

// Translate renders text into the target language. source may be Auto.
func (p *Pipeline) Translate(ctx context.Context, text string, target, source language.Code) string {
	if isBlank(text) {
		return text
	}

	ctx, span := p.tracer.Start(ctx, "translation.translate")
	defer span.End()

	if source == Auto || source == "" {
		source = language.Detect(text)
	}
	if source == target {
		return text
	}

	clean := cleanForTranslation(text)
	cleanLen := len([]rune(clean))

	for _, provider := range p.providers {
		if cleanLen > provider.MaxChars() {
			p.metrics.ObserveAttempt(provider.Name(), "skipped")
			continue
		}

		result, err := provider.Attempt(ctx, clean, source, target)
		if err != nil {
			p.metrics.ObserveAttempt(provider.Name(), "failed")
			p.logger.Warn("translation provider failed",
				"provider", provider.Name(),
				"source", source,
				"target", target,
				"error", err,
			)
			continue
		}

		if !validateQuality(clean, result, source, target) {
			p.metrics.ObserveAttempt(provider.Name(), "rejected")
			p.logger.Debug("translation rejected by quality check", "provider", provider.Name())
			continue
		}

		p.metrics.ObserveAttempt(provider.Name(), "accepted")
		return postProcess(result, target, p.fixes)
	}

	// Every provider skipped, failed, or was rejected: substitute terms
	// from the curated dictionary. This path never fails; with no table
	// for the pair the input comes back untouched.
	p.metrics.ObserveFallback()
	p.logger.Info("using dictionary fallback", "source", source, "target", target)
	return p.dictionaryFallback(text, source, target)
}

// TranslateBatch translates texts one by one, pausing between requests so
// free endpoints do not rate-limit us.
func (p *Pipeline) TranslateBatch(ctx context.Context, texts []string, target, source language.Code) []string {
	results := make([]string, len(texts))
	for i, text := range texts {
		if i > 0 {
			select {
			case <-ctx.Done():
				copy(results[i:], texts[i:])
				return results
			case <-time.After(p.batchDelay):
			}
		}
		results[i] = p.Translate(ctx, text, target, source)
	}
	return results
}

// PrepareQuery renders a user query into English for the content pipeline.
func (p *Pipeline) PrepareQuery(ctx context.Context, text string, detected language.Code) string {
	if detected == language.English {
		return text
	}
	return p.Translate(ctx, text, language.English, detected)
}

// Stats reports pipeline shape for the status endpoint.
func (p *Pipeline) Stats() Stats {
	terms := 0
	for _, dict := range p.dicts {
		terms += len(dict)
	}
	names := make([]string, len(p.providers))
	for i, provider := range p.providers {
		names[i] = provider.Name()
	}
	return Stats{
		SupportedLanguages: len(language.All()),
		FallbackTerms:      terms,
		ActiveProviders:    names,
	}
}

func (p *Pipeline) dictionaryFallback(text string, source, target language.Code) string {
	dict, ok := p.dicts[dictionaryKey(source, target)]
	if !ok {
		return text
	}
	return dict.Apply(text)
}

func isBlank(text string) bool {
	for _, r := range text {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
