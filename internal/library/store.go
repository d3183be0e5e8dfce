// Package library provides the Store over the on-disk content document.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// document is the on-disk shape: a single JSON object holding every record.
type document struct {
	Content []Content `json:"content"`
}

// Store provides access to the content catalog. Every operation is one
// full read-modify-write pass over the document; a mutex serializes all
// access so concurrent calls cannot interleave read and write phases.
type Store struct {
	path   string
	logger *slog.Logger

	mu   sync.Mutex
	coll *collate.Collator // guarded by mu; Collator is not concurrency-safe
}

// NewStore creates a catalog store backed by the document at path.
// The document need not exist yet; an unreadable document reads as an
// empty library.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:   path,
		logger: logger,
		coll:   collate.New(language.Und, collate.Loose),
	}
}

// readDocument loads and parses the full document.
func (s *Store) readDocument() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

// readOrEmpty degrades a missing or corrupt document to an empty library.
// Mutating operations then persist a fresh document on their next write.
func (s *Store) readOrEmpty() *document {
	doc, err := s.readDocument()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("content document unreadable, treating library as empty",
				"path", s.path, "error", err)
		}
		return &document{}
	}
	return doc
}

// writeDocument persists the full document, replacing the previous one.
func (s *Store) writeDocument(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
