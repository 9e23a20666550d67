package scoring

import "github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"

// Calculate scores a submission. Identical answers always yield identical
// results.
func Calculate(answers models.AnswerSet) models.QuestionnaireResult {
	dimensions := Aggregate(answers)
	total, level := Summarize(answers)
	return models.QuestionnaireResult{
		TotalScore:      total,
		Level:           level,
		DimensionScores: dimensions,
		StructureType:   ClassifyStructure(dimensions),
		AnimalType:      ClassifyAnimal(dimensions),
		Priorities:      ExtractPriorities(answers),
	}
}

// Explanation lists every rule a profile satisfies alongside the bands, so a
// caller can see why the first match won.
type Explanation struct {
	Bands          map[models.Dimension]models.Band `json:"bands"`
	StructureRules []string                         `json:"structure_rules"`
	AnimalRules    []string                         `json:"animal_rules"`
}

// Explain reports the bands and all matching rules for scores.
func Explain(scores models.DimensionScores) Explanation {
	p := NewProfile(scores)
	bands := make(map[models.Dimension]models.Band, len(models.Dimensions))
	for _, d := range models.Dimensions {
		bands[d] = p.Band(d)
	}
	return Explanation{
		Bands:          bands,
		StructureRules: StructureRules.Matching(p),
		AnimalRules:    AnimalRules.Matching(p),
	}
}
