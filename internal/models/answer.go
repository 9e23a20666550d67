package models

import (
	"fmt"
	"sort"
)

// Question ids run from FirstQuestionID to LastQuestionID inclusive.
const (
	FirstQuestionID = 1
	LastQuestionID  = 10
	QuestionCount   = LastQuestionID - FirstQuestionID + 1
)

// Raw per-question scores. Every option in the catalog carries one of these.
const (
	ScoreNone   = 0
	ScoreLow    = 3
	ScoreMedium = 7
	ScoreHigh   = 10
)

// ValidScores lists the raw scores an option may carry, highest first.
var ValidScores = []int{ScoreHigh, ScoreMedium, ScoreLow, ScoreNone}

// AnswerSet maps a question id to the raw score of the chosen option.
// A missing question reads as 0.
type AnswerSet map[int]int

// Score returns the raw score for a question, 0 when unanswered.
func (a AnswerSet) Score(questionID int) int {
	if a == nil {
		return 0
	}
	return a[questionID]
}

// Has reports whether the question was answered.
func (a AnswerSet) Has(questionID int) bool {
	_, ok := a[questionID]
	return ok
}

// Complete reports whether every question id has an answer.
func (a AnswerSet) Complete() bool {
	return len(a.Missing()) == 0
}

// Missing returns the unanswered question ids in ascending order.
func (a AnswerSet) Missing() []int {
	var missing []int
	for id := FirstQuestionID; id <= LastQuestionID; id++ {
		if !a.Has(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// Clone returns an independent copy.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// IDs returns the answered question ids in ascending order.
func (a AnswerSet) IDs() []int {
	ids := make([]int, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Validate checks question ids and raw scores. The scoring engine does not
// call this; input layers use it to reject typos before scoring.
func (a AnswerSet) Validate() error {
	for _, id := range a.IDs() {
		if id < FirstQuestionID || id > LastQuestionID {
			return fmt.Errorf("question %d: id out of range %d-%d", id, FirstQuestionID, LastQuestionID)
		}
		if !IsValidScore(a[id]) {
			return fmt.Errorf("question %d: score %d must be one of %v", id, a[id], ValidScores)
		}
	}
	return nil
}

// IsValidScore reports whether score is one of ValidScores.
func IsValidScore(score int) bool {
	for _, s := range ValidScores {
		if s == score {
			return true
		}
	}
	return false
}
