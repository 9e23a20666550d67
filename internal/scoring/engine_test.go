package scoring

import (
	"testing"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculate_AllMaximum(t *testing.T) {
	result := Calculate(uniformAnswers(models.ScoreHigh))

	assert.Equal(t, 100, result.TotalScore)
	assert.Equal(t, models.LevelResilient, result.Level)
	for _, d := range models.Dimensions {
		assert.Equal(t, 100.0, result.DimensionScores.Get(d), d)
	}
	assert.Equal(t, models.StructureMature, result.StructureType)
	assert.Equal(t, models.AnimalHorse, result.AnimalType)
	assert.Empty(t, result.Priorities)
}

func TestCalculate_AllZero(t *testing.T) {
	result := Calculate(uniformAnswers(models.ScoreNone))

	assert.Equal(t, 0, result.TotalScore)
	assert.Equal(t, models.LevelHighlyFragile, result.Level)
	assert.Equal(t, models.DimensionScores{}, result.DimensionScores)
	assert.Equal(t, models.StructureCycle, result.StructureType)
	assert.Equal(t, models.AnimalCat, result.AnimalType)
	assert.Equal(t, models.Priorities, result.Priorities)
}

func TestCalculate_IncomeOnly(t *testing.T) {
	answers := models.AnswerSet{
		1: 10, 2: 10,
		3: 0, 5: 0,
		4: 10, 6: 10,
		7: 0, 8: 0,
		9:  0,
		10: 0,
	}
	result := Calculate(answers)

	assert.Equal(t, 40, result.TotalScore)
	assert.Equal(t, models.LevelFragile, result.Level)
	assert.Equal(t, 100.0, result.DimensionScores.Income)
	assert.Equal(t, 100.0, result.DimensionScores.Debt)
	assert.Equal(t, models.StructureSingle, result.StructureType)
	assert.Equal(t, []models.Priority{
		models.PriorityEmergencyAid,
		models.PrioritySavings,
		models.PriorityEducation,
		models.PrioritySocialNetwork,
		models.PriorityPsychological,
	}, result.Priorities)
}

func TestCalculate_EmptyAnswers(t *testing.T) {
	result := Calculate(models.AnswerSet{})
	assert.Equal(t, Calculate(uniformAnswers(models.ScoreNone)), result)
}

func TestCalculate_Idempotent(t *testing.T) {
	answers := models.AnswerSet{1: 7, 2: 3, 3: 10, 4: 7, 5: 3, 6: 0, 7: 10, 8: 7, 9: 10, 10: 7}
	first := Calculate(answers)
	second := Calculate(answers)
	assert.Equal(t, first, second)
	assert.Equal(t, models.AnswerSet{1: 7, 2: 3, 3: 10, 4: 7, 5: 3, 6: 0, 7: 10, 8: 7, 9: 10, 10: 7}, answers)
}

func TestExplain(t *testing.T) {
	exp := Explain(scoresFrom(t, "grrrrr"))
	assert.Equal(t, models.BandGreen, exp.Bands[models.DimensionIncome])
	assert.Equal(t, models.BandRed, exp.Bands[models.DimensionReserve])
	assert.Equal(t, "cycle", exp.StructureRules[0])
	assert.Equal(t, "cat", exp.AnimalRules[0])
}
