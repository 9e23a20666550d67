package scoring

import (
	"testing"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		total int
		want  models.Level
	}{
		{100, models.LevelResilient},
		{75, models.LevelResilient},
		{74, models.LevelApproaching},
		{60, models.LevelApproaching},
		{59, models.LevelFragile},
		{40, models.LevelFragile},
		{39, models.LevelHighlyFragile},
		{0, models.LevelHighlyFragile},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.total), "total %d", tt.total)
	}
}

func TestSummarize(t *testing.T) {
	t.Run("sums provided answers", func(t *testing.T) {
		total, level := Summarize(models.AnswerSet{1: 10, 2: 7, 3: 3, 4: 0, 5: 10, 6: 10, 7: 7, 8: 7, 9: 3, 10: 10})
		assert.Equal(t, 67, total)
		assert.Equal(t, models.LevelApproaching, level)
	})

	t.Run("missing answers are zero", func(t *testing.T) {
		total, level := Summarize(models.AnswerSet{1: 10, 2: 10})
		assert.Equal(t, 20, total)
		assert.Equal(t, models.LevelHighlyFragile, level)
	})

	t.Run("ignores unknown question ids", func(t *testing.T) {
		answers := uniformAnswers(models.ScoreHigh)
		answers[11] = 10
		answers[0] = 10
		total, _ := Summarize(answers)
		assert.Equal(t, 100, total)
	})
}
