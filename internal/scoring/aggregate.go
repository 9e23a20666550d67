// Package scoring turns questionnaire answers into a resilience profile.
//
// Every function in this package is pure: answers in, values out, no I/O and
// no shared state. Classification is expressed as ordered rule tables that
// are evaluated first-match-wins, so the tables in structure.go and animal.go
// are the authoritative definition of each category.
package scoring

import "github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"

// DimensionMapping lists the questions averaged into each dimension.
var DimensionMapping = map[models.Dimension][]int{
	models.DimensionIncome:        {1, 2},
	models.DimensionReserve:       {3, 5},
	models.DimensionDebt:          {4, 6},
	models.DimensionMoney:         {7, 8},
	models.DimensionSupport:       {9},
	models.DimensionPsychological: {10},
}

// dimensionScale converts an average raw score (0-10) to the 0-100 scale.
const dimensionScale = 10

// Aggregate computes the six dimension scores. Unanswered questions count as 0.
func Aggregate(answers models.AnswerSet) models.DimensionScores {
	var scores models.DimensionScores
	for _, d := range models.Dimensions {
		scores = scores.With(d, averageOf(answers, DimensionMapping[d])*dimensionScale)
	}
	return scores
}

func averageOf(answers models.AnswerSet, ids []int) float64 {
	if len(ids) == 0 {
		return 0
	}
	sum := 0
	for _, id := range ids {
		sum += answers.Score(id)
	}
	return float64(sum) / float64(len(ids))
}
