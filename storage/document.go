package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/leonfunk08-oss/pitboss-bot/logging"
)

// DocumentStorage persists the bot's single state document.
type DocumentStorage interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// FileDocumentStorage keeps the document as one JSON file on local disk.
// Saves rewrite the whole file through a temp-file rename so a crash mid-write
// never leaves a half-written document behind. Concurrent saves are
// serialized.
type FileDocumentStorage struct {
	Path string

	mu sync.Mutex
}

func (s *FileDocumentStorage) Load(_ context.Context) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		logging.Log.Infof("STORE: no document at %s, starting empty", s.Path)
		return NewDocument(), nil
	}
	if err != nil {
		logging.Log.Errorf("STORE: failed to read document: %v", err)
		return nil, err
	}

	doc := NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		logging.Log.Errorf("STORE: failed to decode document: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if doc.Laps == nil {
		doc.Laps = make(map[string]map[string]int64)
	}
	if doc.Bindings == nil {
		doc.Bindings = make(map[string]MessageRef)
	}
	return doc, nil
}

func (s *FileDocumentStorage) Save(_ context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logging.Log.Errorf("STORE: failed to encode document: %v", err)
		return err
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		logging.Log.Errorf("STORE: failed to create temp file: %v", err)
		return err
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		logging.Log.Errorf("STORE: failed to write temp file: %v", err)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		logging.Log.Errorf("STORE: failed to sync temp file: %v", err)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		logging.Log.Errorf("STORE: failed to replace document: %v", err)
		return err
	}
	return nil
}
