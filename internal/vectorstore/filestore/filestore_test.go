package filestore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inquiry/internal/domain"
)

func testSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Model: "text-embedding-3-small",
		Records: []domain.Record{
			{ID: "a", Text: "chunk one", Embedding: []float64{1, 0}},
			{ID: "b", Text: "chunk two", Embedding: []float64{0, 1}},
		},
	}
}

func TestReplaceThenLoad_RoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "data", "store.json"))
	require.NoError(t, s.Replace(testSnapshot()))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, testSnapshot(), got)
}

func TestReplace_OverwritesWholesale(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, s.Replace(testSnapshot()))
	require.NoError(t, s.Replace(&domain.Snapshot{Model: "m2", Records: []domain.Record{{ID: "c", Text: "only", Embedding: []float64{1}}}}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "m2", got.Model)
	require.Len(t, got.Records, 1)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoad_MissingIsNotExist(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "absent.json"))
	_, err := s.Load()
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_MalformedWrapsSentinel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path).Load()
	assert.True(t, errors.Is(err, domain.ErrMalformedStore))
}
