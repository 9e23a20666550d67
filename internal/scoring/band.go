package scoring

import "github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"

// Band cut points, inclusive lower bounds on the 0-100 dimension scale.
// red [0,35), orange [35,55), yellow [55,75), green [75,100].
const (
	BandOrangeMin = 35.0
	BandYellowMin = 55.0
	BandGreenMin  = 75.0
)

// BandFor maps a dimension score to its band.
func BandFor(score float64) models.Band {
	switch {
	case score >= BandGreenMin:
		return models.BandGreen
	case score >= BandYellowMin:
		return models.BandYellow
	case score >= BandOrangeMin:
		return models.BandOrange
	default:
		return models.BandRed
	}
}

// Profile is the band of every dimension. Rules only ever look at bands.
type Profile struct {
	bands map[models.Dimension]models.Band
}

// NewProfile bands each dimension score.
func NewProfile(scores models.DimensionScores) Profile {
	bands := make(map[models.Dimension]models.Band, len(models.Dimensions))
	for _, d := range models.Dimensions {
		bands[d] = BandFor(scores.Get(d))
	}
	return Profile{bands: bands}
}

// Band returns the band of d.
func (p Profile) Band(d models.Dimension) models.Band {
	return p.bands[d]
}

// Is reports whether d falls in one of bands.
func (p Profile) Is(d models.Dimension, bands ...models.Band) bool {
	return p.Band(d).In(bands...)
}

// Count returns how many of dims fall in one of bands. With no dims it
// counts across all six dimensions.
func (p Profile) Count(bands []models.Band, dims ...models.Dimension) int {
	if len(dims) == 0 {
		dims = models.Dimensions
	}
	n := 0
	for _, d := range dims {
		if p.Is(d, bands...) {
			n++
		}
	}
	return n
}

// Reds counts red dimensions among dims (all six when dims is empty).
func (p Profile) Reds(dims ...models.Dimension) int {
	return p.Count(red, dims...)
}

// Greens counts green dimensions among dims (all six when dims is empty).
func (p Profile) Greens(dims ...models.Dimension) int {
	return p.Count(green, dims...)
}

// Lagging counts orange-or-red dimensions among dims (all six when empty).
func (p Profile) Lagging(dims ...models.Dimension) int {
	return p.Count(orangeOrRed, dims...)
}

// AllAtLeast reports whether every dimension is b or healthier.
func (p Profile) AllAtLeast(b models.Band) bool {
	for _, d := range models.Dimensions {
		if !p.Band(d).AtLeast(b) {
			return false
		}
	}
	return true
}

// Band groups used throughout the rule tables.
var (
	red            = []models.Band{models.BandRed}
	orange         = []models.Band{models.BandOrange}
	yellow         = []models.Band{models.BandYellow}
	green          = []models.Band{models.BandGreen}
	orangeOrRed    = []models.Band{models.BandRed, models.BandOrange}
	orangeOrYellow = []models.Band{models.BandOrange, models.BandYellow}
	yellowOrGreen  = []models.Band{models.BandYellow, models.BandGreen}
)

// Shorthand dimension names for the rule tables.
const (
	income  = models.DimensionIncome
	reserve = models.DimensionReserve
	debt    = models.DimensionDebt
	money   = models.DimensionMoney
	support = models.DimensionSupport
	psych   = models.DimensionPsychological
)
