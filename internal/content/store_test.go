package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), time.Minute, nil)
	require.NoError(t, err)
	return store
}

func TestNewStoreSeedsCorpusFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := NewStore(dir, time.Minute, nil)
	require.NoError(t, err)

	for _, file := range []string{
		"subjects/mathematics-content.txt",
		"subjects/science-content.txt",
		"subjects/english-content.txt",
		"subjects/social-studies-content.txt",
		"institutional/faq-responses.txt",
	} {
		data, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err, file)
		assert.Greater(t, len(data), 500, "%s should hold a substantial document", file)
	}
}

func TestLoadSubject(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	corpus, err := store.LoadSubject(ctx, "mathematics")
	require.NoError(t, err)
	assert.Contains(t, corpus, "Addition")

	_, err = store.LoadSubject(ctx, "astrology")
	assert.Error(t, err)
}

func TestLoadSubjectPrefersDiskContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "subjects"), 0o755))
	custom := "## Custom\n\nA locally provisioned mathematics lesson about prime numbers."
	require.NoError(t, os.WriteFile(filepath.Join(dir, "subjects", "mathematics-content.txt"), []byte(custom), 0o644))

	store, err := NewStore(dir, time.Minute, nil)
	require.NoError(t, err)

	corpus, err := store.LoadSubject(context.Background(), "mathematics")
	require.NoError(t, err)
	assert.Equal(t, custom, corpus)
}

func TestLoadSubjectRestoresEmptyFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, time.Minute, nil)
	require.NoError(t, err)

	path := filepath.Join(dir, "subjects", "science-content.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o644))

	corpus, err := store.LoadSubject(context.Background(), "science")
	require.NoError(t, err)
	assert.Contains(t, corpus, "photosynthesis")

	// The fallback must be written back for future reads.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "photosynthesis")
}

func TestLoadInstitutional(t *testing.T) {
	store := newTestStore(t)

	corpus, err := store.LoadInstitutional(context.Background())
	require.NoError(t, err)
	assert.Contains(t, corpus, "fee")
}

func TestSearchAll(t *testing.T) {
	store := newTestStore(t)

	results := store.SearchAll(context.Background(), "addition of numbers")
	require.Contains(t, results, "mathematics")
	assert.Equal(t, "subject", results["mathematics"].Type)
	assert.Contains(t, results["mathematics"].Content, "Addition")
}

func TestStats(t *testing.T) {
	store := newTestStore(t)

	stats := store.Stats(context.Background())
	assert.Equal(t, 4, stats.SubjectsAvailable)
	assert.Equal(t, 4, stats.SubjectsWithContent)
	assert.True(t, stats.InstitutionalAvailable)
	assert.Greater(t, stats.TotalContentSize, 1000)
}

func TestStatsContentFloorCountsRunes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "subjects"), 0o755))

	// 50 Devanagari characters exceed 100 bytes but stay under the
	// 100-character floor, so this subject must not count as populated.
	stub := strings.Repeat("गणित ", 10)
	path := filepath.Join(dir, "subjects", "mathematics-content.txt")
	require.NoError(t, os.WriteFile(path, []byte(stub), 0o644))

	store, err := NewStore(dir, time.Minute, nil)
	require.NoError(t, err)

	stats := store.Stats(context.Background())
	assert.Equal(t, 3, stats.SubjectsWithContent)
}

func TestSubjectsMetadata(t *testing.T) {
	store := newTestStore(t)

	subjects := store.Subjects()
	require.Len(t, subjects, 4)
	assert.Equal(t, "mathematics", subjects[0].Key)
	for _, info := range subjects {
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.Icon)
		assert.NotEmpty(t, info.Color)
	}
	assert.True(t, store.HasSubject("english"))
	assert.False(t, store.HasSubject("general"))
	assert.Equal(t, []string{"mathematics", "science", "english", "social_studies"}, store.SubjectKeys())
}
