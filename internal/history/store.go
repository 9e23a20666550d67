// Package history keeps a bounded local record of past dimension scores so
// a new result can be compared against the average of earlier respondents.
//
// The scoring engine never touches this package. Callers hold a Store and
// decide when to append; every read path used for display goes through
// Statistics, which turns storage failures into "no data".
package history

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrCorrupt marks stored data that could not be decoded.
var ErrCorrupt = errors.New("history data is corrupt")

// Store is the persistence port for past results.
type Store interface {
	// Append records scores observed at ts, dropping the oldest records
	// beyond the store's limit.
	Append(ctx context.Context, scores models.DimensionScores, ts time.Time) error
	// Records returns the stored results, oldest first.
	Records(ctx context.Context) ([]models.StoredResult, error)
	// Clear removes every record.
	Clear(ctx context.Context) error
	Close() error
}

// Counter is implemented by stores that can count records without decoding
// them.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Logger receives warnings about degraded reads.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Options selects and configures a Store.
type Options struct {
	Backend    string
	Path       string
	MaxRecords int
}

// Open returns the Store described by opts.
func Open(opts Options) (Store, error) {
	if opts.MaxRecords <= 0 {
		opts.MaxRecords = models.MaxStoredResults
	}
	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.Path, opts.MaxRecords), nil
	case BackendSQLite:
		return NewSQLiteStore(opts.Path, opts.MaxRecords)
	default:
		return nil, fmt.Errorf("unknown history backend %q", opts.Backend)
	}
}

// Stats summarises the stored history.
type Stats struct {
	Count   int                     `json:"count"`
	Average *models.DimensionScores `json:"average_scores"`
}

// Statistics reads the history and averages it. Any storage error is logged
// and reported as an empty history. Stores implementing Counter report their
// count even when the records cannot be decoded.
func Statistics(ctx context.Context, store Store, log Logger) Stats {
	if store == nil {
		return Stats{}
	}
	var stats Stats
	records, err := store.Records(ctx)
	if err != nil {
		warn(log, "history unavailable: %v", err)
	} else {
		stats.Count = len(records)
		stats.Average = Average(records)
	}

	if counter, ok := store.(Counter); ok {
		n, err := counter.Count(ctx)
		if err != nil {
			warn(log, "history count unavailable: %v", err)
		} else {
			stats.Count = n
		}
	}
	return stats
}

func warn(log Logger, format string, args ...interface{}) {
	if log != nil {
		log.Warnf(format, args...)
	}
}

// Average returns the per-dimension mean rounded to one decimal place, or nil
// when records is empty.
func Average(records []models.StoredResult) *models.DimensionScores {
	if len(records) == 0 {
		return nil
	}

	totals := make(map[models.Dimension]float64, len(models.Dimensions))
	for _, r := range records {
		for _, d := range models.Dimensions {
			totals[d] += r.DimensionScores.Get(d)
		}
	}

	var avg models.DimensionScores
	count := float64(len(records))
	for _, d := range models.Dimensions {
		avg = avg.With(d, roundTenth(totals[d]/count))
	}
	return &avg
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// trim keeps the most recent max records.
func trim(records []models.StoredResult, max int) []models.StoredResult {
	if max > 0 && len(records) > max {
		return records[len(records)-max:]
	}
	return records
}
