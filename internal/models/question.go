package models

import (
	"fmt"
	"strings"
)

// Option is one selectable answer to a question.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"` // option letter, A-D
	Score int    `json:"score" yaml:"score"`
}

// Question is one item of the survey.
type Question struct {
	ID      int      `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Options []Option `json:"options" yaml:"options"`
}

// Option returns the option with the given letter (case-insensitive).
func (q Question) Option(value string) (Option, bool) {
	value = strings.ToUpper(strings.TrimSpace(value))
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

func options(a, b, c, d string) []Option {
	return []Option{
		{Label: a, Value: "A", Score: ScoreHigh},
		{Label: b, Value: "B", Score: ScoreMedium},
		{Label: c, Value: "C", Score: ScoreLow},
		{Label: d, Value: "D", Score: ScoreNone},
	}
}

// Questions is the fixed survey, ordered by id.
var Questions = []Question{
	{
		ID:   1,
		Text: "If the household's main income suddenly dropped by half, life over the next three months would be:",
		Options: options(
			"Basic living could continue without borrowing",
			"Spending would need clear cuts, but we could manage",
			"Hardship would appear quickly",
			"We could barely afford to live almost immediately",
		),
	},
	{
		ID:   2,
		Text: "The household's main source of income is:",
		Options: options(
			"Stable, fixed income",
			"Mostly stable with occasional swings",
			"Temporary, freelance or gig work",
			"No stable income at the moment",
		),
	},
	{
		ID:   3,
		Text: "If income stopped now, household savings would cover:",
		Options: options(
			"More than 3 months of living costs",
			"1-3 months",
			"Less than 1 month",
			"Almost no savings",
		),
	},
	{
		ID:   4,
		Text: "The household's current debt situation is:",
		Options: options(
			"Almost no debt, or fully under control",
			"Some debt, repaid normally",
			"Debt often affects daily plans",
			"Debt causes heavy pressure or is overdue",
		),
	},
	{
		ID:   5,
		Text: "If an emergency expense of one to three weeks' income came up suddenly:",
		Options: options(
			"Savings or an emergency fund would cover it",
			"We would need help from family or friends",
			"We would need to borrow or use a credit card",
			"We could hardly handle it",
		),
	},
	{
		ID:   6,
		Text: "Facing illness, accidents or major risks:",
		Options: options(
			"Enough insurance or arrangements, fairly reassured",
			"Basic coverage, but still worried",
			"Only public health insurance",
			"Almost no preparation",
		),
	},
	{
		ID:   7,
		Text: "Using banks and financial services:",
		Options: options(
			"Comfortable with transfers, bill payments and accounts",
			"Can handle the basics or have regular help",
			"Not very comfortable, often find it hard",
			"Hardly use them at all",
		),
	},
	{
		ID:   8,
		Text: "How household money is managed:",
		Options: options(
			"A budget, or a clear view of spending",
			"Occasionally tracked or discussed",
			"Mostly by feel",
			"Often find out at month end that money has run out",
		),
	},
	{
		ID:   9,
		Text: "When the household runs into financial difficulty:",
		Options: options(
			"There are trusted people or organisations to consult",
			"A few people can help",
			"Almost nobody to rely on",
			"We carry it entirely on our own",
		),
	},
	{
		ID:   10,
		Text: "Overall, how do you feel about the household's financial future?",
		Options: options(
			"Some pressure, but with direction and hope",
			"Somewhat uneasy, but holding on",
			"Often anxious or powerless",
			"Very worried or hopeless about the future",
		),
	},
}

// QuestionByID returns the catalog question with the given id.
func QuestionByID(id int) (Question, error) {
	for _, q := range Questions {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, fmt.Errorf("unknown question id %d", id)
}
