package audio

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatvax/edubot/internal/language"
)

type fakeSynth struct {
	data  []byte
	err   error
	voice string
	text  string
}

func (f *fakeSynth) Synthesize(ctx context.Context, text string, voice string) ([]byte, error) {
	f.text = text
	f.voice = voice
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func newTestManager(t *testing.T, synth Synthesizer) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir(), synth, NewPlayer("", nil), nil, nil)
	require.NoError(t, err)
	return m
}

func TestGenerateWritesFile(t *testing.T) {
	synth := &fakeSynth{data: []byte("mp3-bytes")}
	m := newTestManager(t, synth)

	filename, err := m.Generate(context.Background(), "Plants make food using sunlight.", language.Hindi)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "tts_hi_"))
	assert.True(t, strings.HasSuffix(filename, ".mp3"))
	assert.Equal(t, "hi", synth.voice)

	path, err := m.Resolve(filename)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), data)
}

func TestGenerateMarathiUsesHindiVoice(t *testing.T) {
	synth := &fakeSynth{data: []byte("x")}
	m := newTestManager(t, synth)

	filename, err := m.Generate(context.Background(), "झाडे अन्न तयार करतात", language.Marathi)
	require.NoError(t, err)

	assert.Equal(t, "hi", synth.voice)
	assert.True(t, strings.HasPrefix(filename, "tts_hi_"))
}

func TestGenerateSynthesizerFailure(t *testing.T) {
	m := newTestManager(t, &fakeSynth{err: errors.New("endpoint down")})

	_, err := m.Generate(context.Background(), "some text", language.English)
	assert.Error(t, err)
}

func TestGenerateEmptyText(t *testing.T) {
	m := newTestManager(t, &fakeSynth{data: []byte("x")})

	_, err := m.Generate(context.Background(), "   ", language.English)
	assert.Error(t, err)
}

func TestResolveRejectsTraversal(t *testing.T) {
	m := newTestManager(t, &fakeSynth{data: []byte("x")})

	for _, name := range []string{
		"../../etc/passwd",
		"tts_hi_../../secret.mp3",
		"notes.txt",
		"tts_hi_short.mp3",
	} {
		_, err := m.Resolve(name)
		assert.Error(t, err, "name %q must be rejected", name)
	}
}

func TestResolveMissingFile(t *testing.T) {
	m := newTestManager(t, &fakeSynth{data: []byte("x")})

	_, err := m.Resolve("tts_hi_aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee.mp3")
	assert.Error(t, err)
}

func TestCleanOldRemovesExpiredFiles(t *testing.T) {
	synth := &fakeSynth{data: []byte("x")}
	m := newTestManager(t, synth)

	old, err := m.Generate(context.Background(), "old file", language.English)
	require.NoError(t, err)
	fresh, err := m.Generate(context.Background(), "fresh file", language.English)
	require.NoError(t, err)

	oldPath, err := m.Resolve(old)
	require.NoError(t, err)
	stale := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, stale, stale))

	removed := m.CleanOld(2 * time.Hour)

	assert.Equal(t, 1, removed)
	_, err = m.Resolve(old)
	assert.Error(t, err)
	_, err = m.Resolve(fresh)
	assert.NoError(t, err)
}

func TestPurgeRemovesEverything(t *testing.T) {
	synth := &fakeSynth{data: []byte("x")}
	m := newTestManager(t, synth)

	_, err := m.Generate(context.Background(), "one", language.English)
	require.NoError(t, err)
	_, err = m.Generate(context.Background(), "two", language.Hindi)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Purge())

	entries, err := os.ReadDir(m.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlayerUnavailable(t *testing.T) {
	player := NewPlayer("", nil)

	assert.False(t, player.Available())
	assert.Error(t, player.Play("/tmp/whatever.mp3"))
	assert.False(t, player.IsPlaying())
	assert.True(t, player.Stop())
}

func TestPlayerStartStop(t *testing.T) {
	// "sleep" with the path as its only argument stands in for a real
	// media player.
	player := NewPlayer("sleep", nil)

	require.NoError(t, player.Play("5"))
	assert.True(t, player.IsPlaying())

	assert.True(t, player.Stop())
	assert.False(t, player.IsPlaying())
}

func TestPlayerClearsFlagWhenProcessExits(t *testing.T) {
	player := NewPlayer("sleep", nil)

	require.NoError(t, player.Play("0.05"))
	assert.Eventually(t, func() bool { return !player.IsPlaying() }, 2*time.Second, 20*time.Millisecond)
}

func TestPlayerConcurrentPlaysKeepOneProcess(t *testing.T) {
	if _, err := exec.LookPath("pgrep"); err != nil {
		t.Skip("pgrep not available")
	}

	player := NewPlayer("sleep", nil)
	t.Cleanup(func() { player.Stop() })

	// A duration unlikely to collide with unrelated sleep processes.
	const marker = "6.283"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, player.Play(marker))
		}()
	}
	wg.Wait()

	assert.True(t, player.IsPlaying())

	// Preempted processes are killed and reaped by their watchers;
	// exactly one player must remain.
	assert.Eventually(t, func() bool {
		out, err := exec.Command("pgrep", "-c", "-f", "sleep "+marker).Output()
		if err != nil {
			return false
		}
		return strings.TrimSpace(string(out)) == "1"
	}, 3*time.Second, 50*time.Millisecond)
}
