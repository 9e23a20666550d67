package scoring

import "github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"

func isMature(p Profile) bool {
	return p.Greens() >= 3 && p.Greens(reserve, support, psych) >= 2 &&
		p.Reds() == 0 && p.AllAtLeast(models.BandYellow)
}

// StructureRules is evaluated top to bottom, most fragile archetype first.
// Several predicates overlap; table order is the tie-break.
var StructureRules = Cascade[models.StructureType]{
	Rules: []Rule[models.StructureType]{
		{
			Name:   "cycle",
			Result: models.StructureCycle,
			Match: func(p Profile) bool {
				return p.Is(reserve, red...) && p.Is(debt, red...) &&
					p.Is(money, orangeOrRed...) && p.Is(psych, orangeOrRed...) && p.Is(support, orangeOrRed...)
			},
		},
		{
			Name:   "single",
			Result: models.StructureSingle,
			Match: func(p Profile) bool {
				return p.Is(income, green...) && p.Lagging(reserve, support, psych) >= 2
			},
		},
		{
			Name:   "struggling",
			Result: models.StructureStruggling,
			Match: func(p Profile) bool {
				return p.Is(reserve, orange...) && p.Is(money, orange...) &&
					p.Is(psych, orangeOrYellow...) && p.Reds() <= 1
			},
		},
		{
			Name:   "stuck",
			Result: models.StructureStuck,
			Match: func(p Profile) bool {
				return p.Is(income, yellowOrGreen...) &&
					p.Is(reserve, orangeOrRed...) && p.Is(money, orangeOrRed...) && p.Is(psych, orangeOrRed...)
			},
		},
		{
			// Profiles that already qualify as mature are left to that rule.
			Name:   "supported",
			Result: models.StructureSupported,
			Match: func(p Profile) bool {
				return p.Is(support, green...) && p.Is(psych, green...) &&
					p.Lagging(income, reserve, debt, money) <= 2 && !isMature(p)
			},
		},
		{
			Name:   "stable",
			Result: models.StructureStable,
			Match: func(p Profile) bool {
				return p.Is(income, yellowOrGreen...) && p.Is(money, yellow...) && p.Is(psych, yellow...) &&
					p.Is(reserve, orangeOrYellow...) && p.Is(support, orangeOrYellow...) && p.Reds() <= 1
			},
		},
		{
			Name:   "growing",
			Result: models.StructureGrowing,
			Match: func(p Profile) bool {
				return p.Is(psych, green...) && p.Is(money, yellowOrGreen...) && p.Is(support, yellowOrGreen...) &&
					p.Is(reserve, orangeOrYellow...) && p.Reds() <= 1
			},
		},
		{
			Name:   "mature",
			Result: models.StructureMature,
			Match:  isMature,
		},
	},
	Fallback: models.StructureStable,
}

// ClassifyStructure assigns exactly one structure type.
func ClassifyStructure(scores models.DimensionScores) models.StructureType {
	return StructureRules.Classify(NewProfile(scores))
}
