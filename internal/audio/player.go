package audio

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/tatvax/edubot/pkg/logging"
)

// Player runs a local media player process for server-side playback. At most
// one file plays at a time; starting a new one preempts the current one.
type Player struct {
	mu      sync.Mutex
	cmd     *exec.Cmd
	playing bool
	done    chan struct{}

	playerCmd []string
	logger    *logging.Logger
}

// NewPlayer takes the playback command line, e.g. "mpg123 -q". An empty
// command disables playback.
func NewPlayer(command string, logger *logging.Logger) *Player {
	if logger == nil {
		logger = logging.Default()
	}
	return &Player{
		playerCmd: strings.Fields(command),
		logger:    logger.Component("audio_player"),
	}
}

// Available reports whether a playback command is configured.
func (p *Player) Available() bool {
	return len(p.playerCmd) > 0
}

// Play stops any current playback and starts the file.
func (p *Player) Play(path string) error {
	if !p.Available() {
		return fmt.Errorf("audio playback is not configured")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Stop and start under one lock so concurrent Play calls cannot
	// interleave and leave two processes running.
	p.stopLocked()

	args := append(append([]string{}, p.playerCmd[1:]...), path)
	cmd := exec.Command(p.playerCmd[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting player: %w", err)
	}

	p.cmd = cmd
	p.playing = true
	p.done = make(chan struct{})
	p.logger.Info("playback started", "path", path)

	go p.watch(cmd, p.done)
	return nil
}

// watch clears the playing flag once the player process exits.
func (p *Player) watch(cmd *exec.Cmd, done chan struct{}) {
	err := cmd.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-done:
		// Preempted by Stop or a newer Play; that call owns the state.
		return
	default:
	}
	close(done)
	p.playing = false
	p.cmd = nil
	if err != nil {
		p.logger.Warn("player exited with error", "error", err)
		return
	}
	p.logger.Debug("playback completed")
}

// Stop kills the current playback, if any. It always succeeds.
func (p *Player) Stop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	return true
}

// stopLocked kills the current playback. Callers must hold p.mu.
func (p *Player) stopLocked() {
	if !p.playing {
		return
	}

	select {
	case <-p.done:
	default:
		close(p.done)
	}
	if p.cmd != nil && p.cmd.Process != nil {
		if err := p.cmd.Process.Kill(); err != nil {
			p.logger.Warn("failed to kill player process", "error", err)
		}
	}
	p.playing = false
	p.cmd = nil
	p.logger.Info("playback stopped")
}

// IsPlaying reports whether a file is currently playing.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}
