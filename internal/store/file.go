// Package store persists confirmed expense records. Each backend keeps
// an ordered, append-only collection; uniqueness comes from the record
// id, ordering from insertion.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pradnya8113/expenses/internal/domain"
)

// FileStore keeps the collection as a single JSON array on disk, the
// whole file rewritten on every append. This is a single-writer design:
// concurrent writers would be last-write-wins on the entire file, which
// is an accepted limitation for a single-user tool.
type FileStore struct {
	path string
}

// NewFileStore creates a store over the given path. The file does not
// need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append adds one record to the collection and rewrites the file.
// A missing or unreadable file, and content that does not decode as
// records, are all treated as an empty collection: the store self-heals
// by being rewritten, and nothing that was readable before this run is
// lost.
func (s *FileStore) Append(ctx context.Context, rec domain.ExpenseRecord) error {
	records := s.load()
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("FileStore.Append: marshal records: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("FileStore.Append: write %q: %w", s.path, err)
	}
	return nil
}

// Load returns the current collection in insertion order. Absent or
// corrupt content reads as empty, same as Append sees it.
func (s *FileStore) Load(ctx context.Context) ([]domain.ExpenseRecord, error) {
	return s.load(), nil
}

func (s *FileStore) load() []domain.ExpenseRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	return decodeRecords(data)
}

// decodeRecords decodes stored content into a record list. A single
// bare record (a legacy or partial store) is upgraded to a one-element
// list; anything else that fails to decode reads as empty.
func decodeRecords(data []byte) []domain.ExpenseRecord {
	var records []domain.ExpenseRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records
	}

	var single domain.ExpenseRecord
	if err := json.Unmarshal(data, &single); err == nil {
		return []domain.ExpenseRecord{single}
	}

	return nil
}
