package models

// Level buckets the total score into one of four severities.
type Level string

// Level constants, most resilient first.
const (
	LevelResilient     Level = "resilient"
	LevelApproaching   Level = "approaching"
	LevelFragile       Level = "fragile"
	LevelHighlyFragile Level = "highly-fragile"
)

// LevelInfo is the display copy for a level.
type LevelInfo struct {
	Label    string
	Feedback string
}

var levelInfo = map[Level]LevelInfo{
	LevelResilient: {
		Label: "Financially resilient",
		Feedback: "Your answers show a household with some stability and room to adjust when money pressure or surprises arrive.\n" +
			"Even when things change, there is usually time to think and respond.\n" +
			"Keep an eye on what is already working, and gradually prepare for long-term goals and risks.",
	},
	LevelApproaching: {
		Label: "Approaching resilience",
		Feedback: "Your household already has part of a financial foundation, but some situations still feel heavy.\n" +
			"This is a pivotal stage: adjusting a few weak spots can measurably lower future risk.\n" +
			"Start with the lowest-scoring area and focus on one change at a time.",
	},
	LevelFragile: {
		Label: "Financially fragile",
		Feedback: "Your answers show considerable pressure when income changes or emergencies happen, with limited options.\n" +
			"This does not mean you are doing badly; you are carrying a lot of real pressure.\n" +
			"With someone to help sort through the finances, the risk can be lowered.",
	},
	LevelHighlyFragile: {
		Label: "Highly fragile",
		Feedback: "Financial and emotional pressure on the household is high right now, and many things can only be endured.\n" +
			"This is not a situation to face alone.\n" +
			"Reach out early to trusted professional or community support to find a workable next step together.",
	},
}

// Info returns the display copy for the level.
func (l Level) Info() LevelInfo {
	if info, ok := levelInfo[l]; ok {
		return info
	}
	return LevelInfo{Label: string(l)}
}

// Band is the ordinal severity tier of a single dimension score.
type Band int

// Bands from most to least severe.
const (
	BandRed Band = iota
	BandOrange
	BandYellow
	BandGreen
)

var bandNames = [...]string{"red", "orange", "yellow", "green"}

func (b Band) String() string {
	if b < BandRed || b > BandGreen {
		return "unknown"
	}
	return bandNames[b]
}

// MarshalText renders the band by name.
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// AtLeast reports whether b is as healthy as other or healthier.
func (b Band) AtLeast(other Band) bool {
	return b >= other
}

// In reports whether b is one of bands.
func (b Band) In(bands ...Band) bool {
	for _, other := range bands {
		if b == other {
			return true
		}
	}
	return false
}

// QuestionnaireResult is the complete output of scoring one submission.
type QuestionnaireResult struct {
	TotalScore      int             `json:"total_score"`
	Level           Level           `json:"level"`
	DimensionScores DimensionScores `json:"dimension_scores"`
	StructureType   StructureType   `json:"structure_type"`
	AnimalType      AnimalType      `json:"animal_type"`
	Priorities      []Priority      `json:"priorities"`
}
