package scoring

import (
	"testing"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
)

// bandScore is a representative score inside each band.
var bandScore = map[byte]float64{
	'r': 20,
	'o': 45,
	'y': 65,
	'g': 90,
}

// scoresFrom builds dimension scores from six band letters in display order
// (income, reserve, debt, money, support, psychological), e.g. "grgrrr".
func scoresFrom(t *testing.T, bands string) models.DimensionScores {
	t.Helper()
	if len(bands) != len(models.Dimensions) {
		t.Fatalf("band string %q must have %d letters", bands, len(models.Dimensions))
	}
	var scores models.DimensionScores
	for i, d := range models.Dimensions {
		v, ok := bandScore[bands[i]]
		if !ok {
			t.Fatalf("unknown band letter %q in %q", bands[i], bands)
		}
		scores = scores.With(d, v)
	}
	return scores
}

func uniformAnswers(score int) models.AnswerSet {
	answers := models.AnswerSet{}
	for id := models.FirstQuestionID; id <= models.LastQuestionID; id++ {
		answers[id] = score
	}
	return answers
}

// everyProfile calls fn with every combination of representative band scores.
func everyProfile(fn func(models.DimensionScores)) {
	letters := []float64{bandScore['r'], bandScore['o'], bandScore['y'], bandScore['g']}
	var walk func(i int, scores models.DimensionScores)
	walk = func(i int, scores models.DimensionScores) {
		if i == len(models.Dimensions) {
			fn(scores)
			return
		}
		for _, v := range letters {
			walk(i+1, scores.With(models.Dimensions[i], v))
		}
	}
	walk(0, models.DimensionScores{})
}
