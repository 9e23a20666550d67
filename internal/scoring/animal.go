package scoring

import "github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"

// criticalDimensions is the financial base the fragile rules and the
// support-propped rules count over.
var criticalDimensions = []models.Dimension{income, reserve, debt, money}

func isMonkey(p Profile) bool {
	return p.Is(support, green...) && p.Is(psych, green...) && p.Lagging(criticalDimensions...) == 2
}

// AnimalRules is evaluated top to bottom. The first five rules read the
// income and reserve bands and red counts, the next four need a green support
// network, the last four describe self-sufficient profiles.
var AnimalRules = Cascade[models.AnimalType]{
	Rules: []Rule[models.AnimalType]{
		{
			Name:   "cat",
			Result: models.AnimalCat,
			Match: func(p Profile) bool {
				return p.Reds(criticalDimensions...) >= 3
			},
		},
		{
			Name:   "ant",
			Result: models.AnimalAnt,
			Match: func(p Profile) bool {
				return p.Is(reserve, red...) && p.Reds() >= 2 && !p.Is(income, red...)
			},
		},
		{
			Name:   "elephant",
			Result: models.AnimalElephant,
			Match: func(p Profile) bool {
				return p.Is(debt, red...) && p.Is(income, yellowOrGreen...)
			},
		},
		{
			Name:   "ox",
			Result: models.AnimalOx,
			Match: func(p Profile) bool {
				return p.Is(income, yellowOrGreen...) && p.Is(reserve, orangeOrRed...) && p.Is(money, orangeOrRed...)
			},
		},
		{
			Name:   "camel",
			Result: models.AnimalCamel,
			Match: func(p Profile) bool {
				return p.Is(income, orangeOrRed...) && p.Is(reserve, yellowOrGreen...)
			},
		},
		{
			Name:   "otter",
			Result: models.AnimalOtter,
			Match: func(p Profile) bool {
				return p.Is(support, green...) && p.Is(psych, green...) && p.Lagging(criticalDimensions...) >= 3
			},
		},
		{
			Name:   "monkey",
			Result: models.AnimalMonkey,
			Match:  isMonkey,
		},
		{
			Name:   "squirrel",
			Result: models.AnimalSquirrel,
			Match: func(p Profile) bool {
				return p.Is(support, green...) && p.Is(psych, green...) &&
					p.Lagging(criticalDimensions...) == 1 && p.Is(reserve, yellowOrGreen...)
			},
		},
		{
			Name:   "bear",
			Result: models.AnimalBear,
			Match: func(p Profile) bool {
				return p.Is(support, green...) && p.Lagging(criticalDimensions...) >= 1 && !isMonkey(p)
			},
		},
		{
			Name:   "dog",
			Result: models.AnimalDog,
			Match: func(p Profile) bool {
				return p.Is(support, yellowOrGreen...) && p.Reds() == 0 && p.Greens() <= 1
			},
		},
		{
			Name:   "eagle",
			Result: models.AnimalEagle,
			Match: func(p Profile) bool {
				return p.Is(income, green...) && p.Is(psych, green...) &&
					p.Is(support, orangeOrYellow...) && p.Reds() == 0
			},
		},
		{
			Name:   "turtle",
			Result: models.AnimalTurtle,
			Match: func(p Profile) bool {
				return p.AllAtLeast(models.BandYellow) && p.Greens() < 4
			},
		},
		{
			Name:   "horse",
			Result: models.AnimalHorse,
			Match: func(p Profile) bool {
				return p.AllAtLeast(models.BandYellow) && p.Greens() >= 4
			},
		},
	},
	Fallback: models.AnimalTurtle,
}

// ClassifyAnimal assigns exactly one animal type.
func ClassifyAnimal(scores models.DimensionScores) models.AnimalType {
	return AnimalRules.Classify(NewProfile(scores))
}
