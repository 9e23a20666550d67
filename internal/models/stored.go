package models

import "time"

// MaxStoredResults bounds the history kept for averaging.
const MaxStoredResults = 1000

// StoredResult is one dimension-score snapshot kept in the local history.
type StoredResult struct {
	ID              string          `json:"id,omitempty"`
	DimensionScores DimensionScores `json:"dimension_scores"`
	Timestamp       time.Time       `json:"timestamp"`
}
