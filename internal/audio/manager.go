package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tatvax/edubot/internal/language"
	"github.com/tatvax/edubot/internal/observability/metrics"
	"github.com/tatvax/edubot/pkg/logging"
)

// Generated filenames look like tts_hi_<uuid>.mp3; anything else is refused
// when resolving, which also blocks path traversal.
var filenamePattern = regexp.MustCompile(`^tts_[a-z]{2}_[0-9a-f-]{36}\.mp3$`)

// Manager owns the temp audio directory: it generates files through a
// Synthesizer, resolves requested filenames safely, plays them, and cleans
// them up.
type Manager struct {
	dir     string
	synth   Synthesizer
	player  *Player
	logger  *logging.Logger
	tracer  trace.Tracer
	metrics *metrics.ChatMetrics
}

func NewManager(dir string, synth Synthesizer, player *Player, logger *logging.Logger, m *metrics.ChatMetrics) (*Manager, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating audio dir %s: %w", dir, err)
	}
	return &Manager{
		dir:     dir,
		synth:   synth,
		player:  player,
		logger:  logger.Component("audio"),
		tracer:  otel.Tracer("edubot.internal.audio"),
		metrics: m,
	}, nil
}

// Generate synthesizes speech for the text and stores it as a temp mp3,
// returning the bare filename. Marathi responses use the Hindi voice.
func (m *Manager) Generate(ctx context.Context, text string, lang language.Code) (string, error) {
	ctx, span := m.tracer.Start(ctx, "audio.generate")
	defer span.End()

	prepared := PrepareText(text, lang)
	if prepared == "" {
		m.metrics.ObserveAudioSynthesis("empty")
		return "", fmt.Errorf("nothing to synthesize")
	}

	voice := VoiceFor(lang)
	data, err := m.synth.Synthesize(ctx, prepared, voice)
	if err != nil {
		m.metrics.ObserveAudioSynthesis("failed")
		return "", fmt.Errorf("synthesizing %s audio: %w", voice, err)
	}

	filename := fmt.Sprintf("tts_%s_%s.mp3", voice, uuid.NewString())
	if err := os.WriteFile(filepath.Join(m.dir, filename), data, 0o644); err != nil {
		m.metrics.ObserveAudioSynthesis("failed")
		return "", fmt.Errorf("writing audio file: %w", err)
	}

	m.metrics.ObserveAudioSynthesis("ok")
	m.logger.Info("audio generated", "filename", filename, "voice", voice, "chars", len([]rune(prepared)))
	return filename, nil
}

// Resolve validates a requested filename and returns its absolute path.
func (m *Manager) Resolve(filename string) (string, error) {
	if !filenamePattern.MatchString(filename) {
		return "", fmt.Errorf("invalid audio filename %q", filename)
	}
	path := filepath.Join(m.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("audio file not found: %w", err)
	}
	return path, nil
}

// Play starts server-side playback of a generated file.
func (m *Manager) Play(filename string) error {
	path, err := m.Resolve(filename)
	if err != nil {
		return err
	}
	return m.player.Play(path)
}

func (m *Manager) Stop() bool      { return m.player.Stop() }
func (m *Manager) IsPlaying() bool { return m.player.IsPlaying() }

// CleanOld removes generated files older than maxAge and reports how many
// were deleted. A zero maxAge purges everything.
func (m *Manager) CleanOld(maxAge time.Duration) int {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		m.logger.Warn("audio cleanup failed", "error", err)
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !filenamePattern.MatchString(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if maxAge > 0 && info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(m.dir, entry.Name())); err != nil {
			m.logger.Warn("failed to remove audio file", "filename", entry.Name(), "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		m.logger.Info("cleaned old audio files", "removed", removed)
	}
	return removed
}

// Purge deletes every generated file, used when a conversation is cleared.
func (m *Manager) Purge() int {
	return m.CleanOld(0)
}

// StartJanitor cleans on an interval until ctx is done.
func (m *Manager) StartJanitor(ctx context.Context, interval, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.CleanOld(maxAge)
			}
		}
	}()
}
