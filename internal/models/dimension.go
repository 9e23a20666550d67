package models

import (
	"fmt"
	"strings"
)

// Dimension names one facet of financial resilience.
type Dimension string

// The six dimensions, in display order.
const (
	DimensionIncome        Dimension = "income_stability"
	DimensionReserve       Dimension = "reserve_capacity"
	DimensionDebt          Dimension = "debt_protection"
	DimensionMoney         Dimension = "money_management"
	DimensionSupport       Dimension = "support_network"
	DimensionPsychological Dimension = "psychological_outlook"
)

// Dimensions lists every dimension in display order.
var Dimensions = []Dimension{
	DimensionIncome,
	DimensionReserve,
	DimensionDebt,
	DimensionMoney,
	DimensionSupport,
	DimensionPsychological,
}

var dimensionLabels = map[Dimension]string{
	DimensionIncome:        "Income stability",
	DimensionReserve:       "Reserve capacity",
	DimensionDebt:          "Debt & protection",
	DimensionMoney:         "Money management",
	DimensionSupport:       "Support network",
	DimensionPsychological: "Psychological outlook",
}

// Label returns the human readable dimension name.
func (d Dimension) Label() string {
	if label, ok := dimensionLabels[d]; ok {
		return label
	}
	return string(d)
}

// DimensionScores holds one 0-100 score per dimension.
type DimensionScores struct {
	Income        float64 `json:"income_stability" yaml:"income_stability"`
	Reserve       float64 `json:"reserve_capacity" yaml:"reserve_capacity"`
	Debt          float64 `json:"debt_protection" yaml:"debt_protection"`
	Money         float64 `json:"money_management" yaml:"money_management"`
	Support       float64 `json:"support_network" yaml:"support_network"`
	Psychological float64 `json:"psychological_outlook" yaml:"psychological_outlook"`
}

// Get returns the score for d. Unknown dimensions read as 0.
func (s DimensionScores) Get(d Dimension) float64 {
	switch d {
	case DimensionIncome:
		return s.Income
	case DimensionReserve:
		return s.Reserve
	case DimensionDebt:
		return s.Debt
	case DimensionMoney:
		return s.Money
	case DimensionSupport:
		return s.Support
	case DimensionPsychological:
		return s.Psychological
	default:
		return 0
	}
}

// With returns a copy of s with d set to score.
func (s DimensionScores) With(d Dimension, score float64) DimensionScores {
	switch d {
	case DimensionIncome:
		s.Income = score
	case DimensionReserve:
		s.Reserve = score
	case DimensionDebt:
		s.Debt = score
	case DimensionMoney:
		s.Money = score
	case DimensionSupport:
		s.Support = score
	case DimensionPsychological:
		s.Psychological = score
	}
	return s
}

// Validate checks that every score is within [0,100].
func (s DimensionScores) Validate() error {
	for _, d := range Dimensions {
		v := s.Get(d)
		if v < 0 || v > 100 {
			return fmt.Errorf("%s: score %.1f out of range 0-100", d, v)
		}
	}
	return nil
}

// String renders the scores in display order.
func (s DimensionScores) String() string {
	parts := make([]string, len(Dimensions))
	for i, d := range Dimensions {
		parts[i] = fmt.Sprintf("%s=%.1f", d, s.Get(d))
	}
	return strings.Join(parts, " ")
}
