package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonfunk08-oss/pitboss-bot/logging"
)

func setupFileStorage(t *testing.T) *FileDocumentStorage {
	t.Helper()
	logging.Log = logrus.New()

	return &FileDocumentStorage{Path: filepath.Join(t.TempDir(), "pitboss.json")}
}

func TestLoadMissingFileReturnsEmptyDocument(t *testing.T) {
	s := setupFileStorage(t)

	doc, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Laps)
	assert.Empty(t, doc.Bindings)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	s := setupFileStorage(t)

	doc := NewDocument()
	doc.Laps["monza"] = map[string]int64{"u1": 107221, "u2": 110000}
	doc.Bindings["monza"] = MessageRef{ChannelID: "c1", MessageID: "m1"}
	require.NoError(t, s.Save(context.Background(), doc))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc.Laps, loaded.Laps)
	assert.Equal(t, doc.Bindings, loaded.Bindings)
}

func TestSaveRewritesWholeDocument(t *testing.T) {
	s := setupFileStorage(t)
	ctx := context.Background()

	first := NewDocument()
	first.Laps["monza"] = map[string]int64{"u1": 110000}
	require.NoError(t, s.Save(ctx, first))

	second := NewDocument()
	second.Laps["imola"] = map[string]int64{"u2": 99000}
	require.NoError(t, s.Save(ctx, second))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, loaded.Laps, "monza")
	assert.Contains(t, loaded.Laps, "imola")
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := setupFileStorage(t)
	require.NoError(t, s.Save(context.Background(), NewDocument()))

	entries, err := os.ReadDir(filepath.Dir(s.Path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(s.Path), entries[0].Name())
}

func TestLoadCorruptDocument(t *testing.T) {
	s := setupFileStorage(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("{not json"), 0o644))

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptDocument)
}
