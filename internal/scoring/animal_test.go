package scoring

import (
	"testing"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyAnimal_EachRule(t *testing.T) {
	// Band letters in order: income, reserve, debt, money, support, psychological.
	tests := []struct {
		bands string
		want  models.AnimalType
	}{
		{"rrrryy", models.AnimalCat},
		{"oryryy", models.AnimalAnt},
		{"yoryyy", models.AnimalElephant},
		{"goyoyy", models.AnimalOx},
		{"oyyyyy", models.AnimalCamel},
		{"oooygg", models.AnimalOtter},
		{"googgg", models.AnimalMonkey},
		{"gyoggg", models.AnimalSquirrel},
		{"gyoggy", models.AnimalBear},
		{"yyyyyy", models.AnimalDog},
		{"gyyyyg", models.AnimalEagle},
		{"ggyyyy", models.AnimalTurtle},
		{"gggggg", models.AnimalHorse},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAnimal(scoresFrom(t, tt.bands)))
		})
	}
}

func TestClassifyAnimal_Fallback(t *testing.T) {
	scores := scoresFrom(t, "yoyyoy")
	assert.Empty(t, AnimalRules.Matching(NewProfile(scores)))
	assert.Equal(t, models.AnimalTurtle, ClassifyAnimal(scores))
}

func TestClassifyAnimal_Precedence(t *testing.T) {
	t.Run("bear never overlaps monkey", func(t *testing.T) {
		p := NewProfile(scoresFrom(t, "googgg"))
		assert.Equal(t, []string{"monkey"}, AnimalRules.Matching(p))
	})

	t.Run("cat wins over ant", func(t *testing.T) {
		p := NewProfile(scoresFrom(t, "yrrryy"))
		assert.Equal(t, []string{"cat", "ant", "elephant", "ox"}, AnimalRules.Matching(p))
		assert.Equal(t, models.AnimalCat, AnimalRules.Classify(p))
	})

	t.Run("ox wins over otter", func(t *testing.T) {
		p := NewProfile(scoresFrom(t, "yooogg"))
		assert.Equal(t, []string{"ox", "otter", "bear"}, AnimalRules.Matching(p))
		assert.Equal(t, models.AnimalOx, AnimalRules.Classify(p))
	})

	t.Run("dog wins over turtle", func(t *testing.T) {
		p := NewProfile(scoresFrom(t, "yyyyyy"))
		assert.Equal(t, []string{"dog", "turtle"}, AnimalRules.Matching(p))
	})
}

func TestClassifyAnimal_Total(t *testing.T) {
	everyProfile(func(scores models.DimensionScores) {
		got := ClassifyAnimal(scores)
		if !got.Valid() {
			t.Fatalf("invalid animal type %q for %s", got, scores)
		}
	})

	assert.Equal(t, models.AnimalCat, ClassifyAnimal(models.DimensionScores{}))
	assert.Equal(t, models.AnimalHorse, ClassifyAnimal(Aggregate(uniformAnswers(models.ScoreHigh))))
}

func TestAnimalRules_TableOrder(t *testing.T) {
	names := make([]models.AnimalType, 0, len(AnimalRules.Rules))
	for _, r := range AnimalRules.Rules {
		assert.Equal(t, string(r.Result), r.Name)
		names = append(names, r.Result)
	}
	assert.Equal(t, models.AnimalTypes, names)
	assert.Equal(t, models.AnimalTurtle, AnimalRules.Fallback)
}
