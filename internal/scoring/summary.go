package scoring

import "github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"

// Total score cut points, inclusive lower bounds.
const (
	ResilientMin   = 75
	ApproachingMin = 60
	FragileMin     = 40
)

// Summarize returns the total raw score and its level.
func Summarize(answers models.AnswerSet) (int, models.Level) {
	total := TotalScore(answers)
	return total, LevelFor(total)
}

// TotalScore sums the raw scores of questions 1-10. Other keys are ignored.
func TotalScore(answers models.AnswerSet) int {
	total := 0
	for id := models.FirstQuestionID; id <= models.LastQuestionID; id++ {
		total += answers.Score(id)
	}
	return total
}

// LevelFor buckets a total score.
func LevelFor(total int) models.Level {
	switch {
	case total >= ResilientMin:
		return models.LevelResilient
	case total >= ApproachingMin:
		return models.LevelApproaching
	case total >= FragileMin:
		return models.LevelFragile
	default:
		return models.LevelHighlyFragile
	}
}
