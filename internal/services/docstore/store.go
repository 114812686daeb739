// Package docstore persists documents on disk: markdown bodies as plain
// files plus a JSON index of metadata. It is a collaborator of the
// overlay layer, consumed only through this narrow CRUD surface.
package docstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hollisbeck/vellum/internal/domain"
)

const indexFile = "index.json"

// Store manages documents under a root directory
type Store struct {
	root   string
	logger *slog.Logger
}

// NewStore creates a store rooted at dir, creating it if needed
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &domain.StoreError{Op: "init", Err: err}
	}
	return &Store{root: dir, logger: logger}, nil
}

// List returns index entries for all documents, most recently updated first
func (s *Store) List() ([]domain.Summary, error) {
	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	sort.Slice(index, func(i, j int) bool {
		return index[i].UpdatedAt.After(index[j].UpdatedAt)
	})
	return index, nil
}

// Create makes a new empty document with the given title
func (s *Store) Create(title string) (domain.Document, error) {
	now := time.Now()
	doc := domain.Document{
		ID:        uuid.NewString(),
		Title:     title,
		Filename:  fmt.Sprintf("%s.md", uuid.NewString()[:8]),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.writeBody(doc); err != nil {
		return domain.Document{}, err
	}
	if err := s.updateIndex(doc.Summary()); err != nil {
		return domain.Document{}, err
	}

	s.logger.Debug("document created", "id", doc.ID, "title", title)
	return doc, nil
}

// Load reads a document and its body by id
func (s *Store) Load(id string) (domain.Document, error) {
	index, err := s.readIndex()
	if err != nil {
		return domain.Document{}, err
	}

	for _, entry := range index {
		if entry.ID != id {
			continue
		}
		body, err := os.ReadFile(filepath.Join(s.root, entry.Filename))
		if err != nil {
			return domain.Document{}, &domain.StoreError{Op: "load", DocID: id, Err: err}
		}
		return domain.Document{
			ID:        entry.ID,
			Title:     entry.Title,
			Filename:  entry.Filename,
			Body:      string(body),
			UpdatedAt: entry.UpdatedAt,
		}, nil
	}
	return domain.Document{}, &domain.StoreError{Op: "load", DocID: id, Err: domain.ErrNotFound}
}

// Save writes the document body and refreshes its index entry
func (s *Store) Save(doc domain.Document) error {
	doc.UpdatedAt = time.Now()
	if err := s.writeBody(doc); err != nil {
		return err
	}
	if err := s.updateIndex(doc.Summary()); err != nil {
		return err
	}
	s.logger.Debug("document saved", "id", doc.ID, "bytes", len(doc.Body))
	return nil
}

// Delete removes a document and its index entry
func (s *Store) Delete(id string) error {
	index, err := s.readIndex()
	if err != nil {
		return err
	}

	kept := index[:0]
	var removed *domain.Summary
	for _, entry := range index {
		if entry.ID == id {
			e := entry
			removed = &e
			continue
		}
		kept = append(kept, entry)
	}
	if removed == nil {
		return &domain.StoreError{Op: "delete", DocID: id, Err: domain.ErrNotFound}
	}

	if err := os.Remove(filepath.Join(s.root, removed.Filename)); err != nil && !os.IsNotExist(err) {
		return &domain.StoreError{Op: "delete", DocID: id, Err: err}
	}
	return s.writeIndex(kept)
}

func (s *Store) writeBody(doc domain.Document) error {
	path := filepath.Join(s.root, doc.Filename)
	if err := os.WriteFile(path, []byte(doc.Body), 0644); err != nil {
		return &domain.StoreError{Op: "save", DocID: doc.ID, Err: err}
	}
	return nil
}

func (s *Store) readIndex() ([]domain.Summary, error) {
	data, err := os.ReadFile(filepath.Join(s.root, indexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Summary{}, nil
		}
		return nil, &domain.StoreError{Op: "index", Err: err}
	}

	var index []domain.Summary
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, &domain.StoreError{Op: "index", Err: err}
	}
	return index, nil
}

func (s *Store) writeIndex(index []domain.Summary) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return &domain.StoreError{Op: "index", Err: err}
	}
	if err := os.WriteFile(filepath.Join(s.root, indexFile), data, 0644); err != nil {
		return &domain.StoreError{Op: "index", Err: err}
	}
	return nil
}

func (s *Store) updateIndex(entry domain.Summary) error {
	index, err := s.readIndex()
	if err != nil {
		return err
	}

	replaced := false
	for i := range index {
		if index[i].ID == entry.ID {
			index[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		index = append(index, entry)
	}
	return s.writeIndex(index)
}
