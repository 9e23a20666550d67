package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/filelock"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/google/uuid"
)

// FileStore keeps the history as a JSON array in a single file. Writers take
// an exclusive lock on path+".lock" and replace the file atomically.
type FileStore struct {
	path       string
	maxRecords int
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string, maxRecords int) *FileStore {
	return &FileStore{path: path, maxRecords: maxRecords}
}

// Append adds one record. A corrupt file is replaced rather than appended to.
func (s *FileStore) Append(ctx context.Context, scores models.DimensionScores, ts time.Time) error {
	record := models.StoredResult{
		ID:              uuid.NewString(),
		DimensionScores: scores,
		Timestamp:       ts.UTC(),
	}
	err := filelock.Update(ctx, s.path, func(current []byte) ([]byte, error) {
		records, err := decodeRecords(current)
		if err != nil {
			records = nil
		}
		records = trim(append(records, record), s.maxRecords)
		return json.MarshalIndent(records, "", "  ")
	})
	if err != nil {
		return fmt.Errorf("append history record: %w", err)
	}
	return nil
}

// Records returns every stored record, oldest first.
func (s *FileStore) Records(ctx context.Context) ([]models.StoredResult, error) {
	data, err := filelock.Read(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	records, err := decodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return records, nil
}

// Clear deletes the history file.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := filelock.Remove(ctx, s.path); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open during individual calls.
func (s *FileStore) Close() error {
	return nil
}

func decodeRecords(data []byte) ([]models.StoredResult, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var records []models.StoredResult
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return records, nil
}
