// Package content owns the flat-file corpus of subject lessons and
// institutional FAQs, and the relevance ranking over it.
package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tatvax/edubot/pkg/logging"
)

// InstitutionalKey is the corpus key for the FAQ document.
const InstitutionalKey = "institutional"

// SubjectInfo is the metadata shown in the subject listing.
type SubjectInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	file        string
}

// SearchResult is one corpus hit from SearchAll.
type SearchResult struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Stats summarizes content availability for the status endpoint.
type Stats struct {
	SubjectsAvailable      int  `json:"subjects_available"`
	SubjectsWithContent    int  `json:"subjects_with_content"`
	InstitutionalAvailable bool `json:"institutional_available"`
	TotalContentSize       int  `json:"total_content_size"`
}

// Store reads corpus documents from disk, synthesizing and persisting canned
// fallback documents when a file is missing or empty. Loads are idempotent;
// the cache only trims repeat disk reads.
type Store struct {
	subjectsDir      string
	institutionalDir string
	subjects         []SubjectInfo
	cache            *gocache.Cache
	logger           *logging.Logger
	tracer           trace.Tracer
}

// NewStore creates the content directory layout and seeds any missing corpus
// files with fallback documents. A failure here is fatal to startup.
func NewStore(contentDir string, cacheTTL time.Duration, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Default()
	}

	s := &Store{
		subjectsDir:      filepath.Join(contentDir, "subjects"),
		institutionalDir: filepath.Join(contentDir, "institutional"),
		subjects: []SubjectInfo{
			{Key: "mathematics", Name: "Mathematics", Description: "Numbers, Algebra, Geometry, and Problem-solving", Icon: "fas fa-calculator", Color: "#3b82f6", file: "mathematics-content.txt"},
			{Key: "science", Name: "Science", Description: "Physics, Chemistry, Biology, and Experiments", Icon: "fas fa-flask", Color: "#10b981", file: "science-content.txt"},
			{Key: "english", Name: "English", Description: "Language, Literature, Grammar, and Writing", Icon: "fas fa-book-open", Color: "#f59e0b", file: "english-content.txt"},
			{Key: "social_studies", Name: "Social Studies", Description: "History, Geography, Civics, and Culture", Icon: "fas fa-globe-asia", Color: "#ef4444", file: "social-studies-content.txt"},
		},
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
		logger: logger.Component("content"),
		tracer: otel.Tracer("edubot.internal.content"),
	}

	for _, dir := range []string{s.subjectsDir, s.institutionalDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("content: create directory %s: %w", dir, err)
		}
	}
	if err := s.seedMissingFiles(); err != nil {
		return nil, err
	}

	return s, nil
}

// Subjects returns subject metadata in listing order.
func (s *Store) Subjects() []SubjectInfo {
	out := make([]SubjectInfo, len(s.subjects))
	copy(out, s.subjects)
	return out
}

// SubjectKeys returns the known subject keys in listing order.
func (s *Store) SubjectKeys() []string {
	out := make([]string, len(s.subjects))
	for i, info := range s.subjects {
		out[i] = info.Key
	}
	return out
}

// HasSubject reports whether key names a known subject.
func (s *Store) HasSubject(key string) bool {
	_, ok := s.subjectInfo(key)
	return ok
}

// LoadSubject returns the corpus document for a subject. A missing or empty
// file yields the canned fallback document, which is also written back to the
// expected path for future reads.
func (s *Store) LoadSubject(ctx context.Context, key string) (string, error) {
	_, span := s.tracer.Start(ctx, "content.load_subject")
	defer span.End()

	info, ok := s.subjectInfo(key)
	if !ok {
		return "", fmt.Errorf("content: unknown subject %q", key)
	}
	return s.load("subject:"+key, filepath.Join(s.subjectsDir, info.file), fallbackSubjectContent(key)), nil
}

// LoadInstitutional returns the FAQ corpus document.
func (s *Store) LoadInstitutional(ctx context.Context) (string, error) {
	_, span := s.tracer.Start(ctx, "content.load_institutional")
	defer span.End()

	return s.load(InstitutionalKey, filepath.Join(s.institutionalDir, "faq-responses.txt"), institutionalFallback), nil
}

// SearchAll ranks the query against every corpus document and returns the
// hits that carry substantial text.
func (s *Store) SearchAll(ctx context.Context, query string) map[string]SearchResult {
	results := make(map[string]SearchResult)

	for _, info := range s.subjects {
		corpus, err := s.LoadSubject(ctx, info.Key)
		if err != nil {
			continue
		}
		relevant := FindRelevant(query, corpus, 4)
		if len([]rune(strings.TrimSpace(relevant))) > 50 {
			results[info.Key] = SearchResult{Type: "subject", Name: info.Name, Content: relevant}
		}
	}

	corpus, err := s.LoadInstitutional(ctx)
	if err == nil {
		relevant := FindRelevant(query, corpus, 5)
		if len([]rune(strings.TrimSpace(relevant))) > 50 {
			results[InstitutionalKey] = SearchResult{Type: InstitutionalKey, Name: "Institutional FAQ", Content: relevant}
		}
	}

	return results
}

// Stats reports content availability for the status endpoint.
func (s *Store) Stats(ctx context.Context) Stats {
	stats := Stats{SubjectsAvailable: len(s.subjects)}

	for _, info := range s.subjects {
		corpus, err := s.LoadSubject(ctx, info.Key)
		if err != nil {
			continue
		}
		if len([]rune(strings.TrimSpace(corpus))) > 100 {
			stats.SubjectsWithContent++
			stats.TotalContentSize += len(corpus)
		}
	}

	if corpus, err := s.LoadInstitutional(ctx); err == nil && len([]rune(strings.TrimSpace(corpus))) > 100 {
		stats.InstitutionalAvailable = true
		stats.TotalContentSize += len(corpus)
	}

	return stats
}

func (s *Store) subjectInfo(key string) (SubjectInfo, bool) {
	for _, info := range s.subjects {
		if info.Key == key {
			return info, true
		}
	}
	return SubjectInfo{}, false
}

// load reads path, falling back to (and persisting) the canned document when
// the file is missing or blank.
func (s *Store) load(cacheKey, path, fallback string) string {
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(string)
	}

	data, err := os.ReadFile(path)
	if err != nil || strings.TrimSpace(string(data)) == "" {
		if err != nil && !os.IsNotExist(err) {
			s.logger.Warn("corpus read failed", "path", path, "error", err)
		}
		s.persistFallback(path, fallback)
		s.cache.SetDefault(cacheKey, fallback)
		return fallback
	}

	corpus := string(data)
	s.cache.SetDefault(cacheKey, corpus)
	return corpus
}

func (s *Store) persistFallback(path, fallback string) {
	if fallback == "" {
		return
	}
	if err := os.WriteFile(path, []byte(fallback), 0o644); err != nil {
		s.logger.Warn("could not persist fallback corpus", "path", path, "error", err)
		return
	}
	s.logger.Info("seeded corpus file", "path", path)
}

func (s *Store) seedMissingFiles() error {
	for _, info := range s.subjects {
		path := filepath.Join(s.subjectsDir, info.file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			s.persistFallback(path, fallbackSubjectContent(info.Key))
		}
	}
	path := filepath.Join(s.institutionalDir, "faq-responses.txt")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		s.persistFallback(path, institutionalFallback)
	}
	return nil
}
