// Package repository owns the single persisted document. The document
// lives in memory behind a RW mutex; Update serializes writers and
// snapshots the whole document to disk on success, which is the explicit
// persistence boundary for every mutation in the system.
package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"onemore-backend/internal/entity"
	"onemore-backend/internal/pkg/logger"
)

type DocumentStore struct {
	mu   sync.RWMutex
	path string
	doc  *entity.Document
	log  logger.ILogger
}

func defaultDocument() *entity.Document {
	return &entity.Document{
		Users:              []entity.User{},
		Sessions:           map[string]entity.Session{},
		Exercises:          []entity.Exercise{},
		Foods:              []entity.Food{},
		Records:            []entity.Record{},
		WorkoutLogs:        []entity.WorkoutLog{},
		DailyNutritionLogs: []entity.DailyNutritionLog{},
		Posts:              []entity.Post{},
		AiConversations:    map[string][]entity.Conversation{},
	}
}

// OpenDocumentStore loads the backing file once. A missing file yields a
// fresh default document; a file that is not valid JSON is treated as
// corrupt and overwritten with the default. Availability wins over
// durability here, deliberately.
func OpenDocumentStore(path string, log logger.ILogger) (*DocumentStore, error) {
	s := &DocumentStore{path: path, log: log}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.doc = defaultDocument()
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}

	doc, decodeErr := decodeDocument(data)
	if decodeErr != nil {
		log.Warn("repository", "backing document is corrupt, replacing with defaults", map[string]interface{}{
			"path":  path,
			"error": decodeErr.Error(),
		})
		doc = defaultDocument()
	}

	s.doc = doc
	// Write back so migrations and repairs performed by the decoder are
	// not re-applied on every start.
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// View runs fn with shared read access to the document. fn must not
// retain or mutate anything reachable from doc.
func (s *DocumentStore) View(fn func(doc *entity.Document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.doc)
}

// Update runs fn with exclusive access and snapshots the document to
// disk when fn reports a change. Returning (false, nil) is how read
// paths that merely might repair something avoid a disk write. A change
// is persisted even when fn also returns an error: a failed lookup may
// still have repaired state worth keeping (lazy session expiry relies
// on this).
func (s *DocumentStore) Update(fn func(doc *entity.Document) (changed bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed, err := fn(s.doc)
	if changed {
		if perr := s.persistLocked(); perr != nil && err == nil {
			err = perr
		}
	}
	return err
}

// persistLocked writes an atomic snapshot: marshal, write to a temp file
// in the same directory, rename over the old one.
func (s *DocumentStore) persistLocked() error {
	normalizeDocument(s.doc)

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("swap snapshot: %w", err)
	}
	return nil
}
