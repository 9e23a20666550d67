package scoring

import (
	"testing"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPriorities(t *testing.T) {
	t.Run("none when every answer is strong", func(t *testing.T) {
		got := ExtractPriorities(uniformAnswers(models.ScoreMedium))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("all in catalog order when every answer is weak", func(t *testing.T) {
		assert.Equal(t, models.Priorities, ExtractPriorities(uniformAnswers(models.ScoreLow)))
	})

	t.Run("either question of a pair triggers once", func(t *testing.T) {
		answers := uniformAnswers(models.ScoreHigh)
		answers[1] = models.ScoreLow
		answers[5] = models.ScoreNone
		answers[8] = models.ScoreNone
		assert.Equal(t, []models.Priority{models.PriorityEmergencyAid, models.PriorityEducation}, ExtractPriorities(answers))
	})

	t.Run("missing answer is flagged", func(t *testing.T) {
		answers := uniformAnswers(models.ScoreHigh)
		delete(answers, 10)
		assert.Equal(t, []models.Priority{models.PriorityPsychological}, ExtractPriorities(answers))
	})
}

func TestPriorityRules_Catalog(t *testing.T) {
	require.Len(t, PriorityRules, len(models.Priorities))
	for i, rule := range PriorityRules {
		assert.Equal(t, models.Priorities[i], rule.Priority)
		assert.NotEmpty(t, rule.QuestionIDs)
	}
}

func TestExtractPriorities_Monotonic(t *testing.T) {
	bases := []models.AnswerSet{
		uniformAnswers(models.ScoreHigh),
		uniformAnswers(models.ScoreMedium),
		{1: 10, 2: 3, 3: 7, 4: 0, 5: 10, 6: 7, 7: 10, 8: 3, 9: 7, 10: 10},
		{1: 0, 2: 10, 3: 10, 4: 10, 5: 7, 6: 3, 7: 7, 8: 7, 9: 10, 10: 3},
	}

	for _, base := range bases {
		before := ExtractPriorities(base)
		for id := models.FirstQuestionID; id <= models.LastQuestionID; id++ {
			for _, weak := range []int{models.ScoreLow, models.ScoreNone} {
				lowered := base.Clone()
				lowered[id] = weak
				after := ExtractPriorities(lowered)
				for _, p := range before {
					assert.Contains(t, after, p, "lowering q%d to %d dropped %q", id, weak, p)
				}
			}
		}
	}
}
