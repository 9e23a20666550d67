package scoring

import (
	"testing"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		score float64
		want  models.Band
	}{
		{0, models.BandRed},
		{30, models.BandRed},
		{34.9, models.BandRed},
		{35, models.BandOrange},
		{50, models.BandOrange},
		{54.9, models.BandOrange},
		{55, models.BandYellow},
		{70, models.BandYellow},
		{74.9, models.BandYellow},
		{75, models.BandGreen},
		{100, models.BandGreen},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.score), "score %.1f", tt.score)
	}
}

func TestProfileCounts(t *testing.T) {
	p := NewProfile(scoresFrom(t, "groyrg"))

	assert.Equal(t, 2, p.Reds())
	assert.Equal(t, 1, p.Reds(income, reserve, debt))
	assert.Equal(t, 2, p.Greens())
	assert.Equal(t, 3, p.Lagging())
	assert.Equal(t, 1, p.Lagging(income, reserve))
	assert.True(t, p.Is(debt, orangeOrYellow...))
	assert.False(t, p.AllAtLeast(models.BandYellow))
	assert.True(t, NewProfile(scoresFrom(t, "yggyyg")).AllAtLeast(models.BandYellow))
}
