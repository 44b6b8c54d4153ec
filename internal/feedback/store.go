// Package feedback persists user feedback submissions to a flat text file.
package feedback

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tatvax/edubot/pkg/logging"
)

const frame = "============================================================"

// Entry is a single feedback submission. Optional fields are defaulted on
// save so the file stays readable.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Rating    string `json:"rating"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Page      string `json:"currentPage"`
	UserAgent string `json:"userAgent"`
}

// Store appends framed feedback records to a single file.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *logging.Logger
	now    func() time.Time
}

func NewStore(path string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		path:   path,
		logger: logger.Component("feedback"),
		now:    time.Now,
	}
}

// Save appends the entry and returns a timestamp-derived submission id.
// The message is required; everything else gets a placeholder.
func (s *Store) Save(entry Entry) (string, error) {
	if strings.TrimSpace(entry.Message) == "" {
		return "", fmt.Errorf("feedback message is required")
	}

	now := s.now()
	if entry.Timestamp == "" {
		entry.Timestamp = now.Format(time.RFC3339)
	}
	if entry.Rating == "" {
		entry.Rating = "Not rated"
	}
	if entry.Name == "" {
		entry.Name = "Anonymous"
	}
	if entry.Email == "" {
		entry.Email = "Not provided"
	}
	if entry.Page == "" {
		entry.Page = "Unknown"
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return "", fmt.Errorf("creating feedback dir: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening feedback file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(s.format(entry)); err != nil {
		return "", fmt.Errorf("writing feedback: %w", err)
	}

	id := now.Format("20060102_150405")
	s.logger.Info("feedback saved", "name", entry.Name, "rating", entry.Rating, "id", id)
	return id, nil
}

func (s *Store) format(entry Entry) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(frame + "\n")
	b.WriteString("EDUBOT FEEDBACK SUBMISSION\n")
	b.WriteString(frame + "\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", entry.Timestamp)
	fmt.Fprintf(&b, "Rating: %s/5 stars\n", entry.Rating)
	fmt.Fprintf(&b, "Name: %s\n", entry.Name)
	fmt.Fprintf(&b, "Email: %s\n", entry.Email)
	fmt.Fprintf(&b, "Current Page: %s\n", entry.Page)
	b.WriteString("\nFeedback Message:\n")
	b.WriteString(entry.Message + "\n")
	b.WriteString("\n" + frame + "\n\n")
	return b.String()
}
