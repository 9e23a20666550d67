package scoring

import "github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"

// PriorityThreshold is the highest raw score still considered weak.
const PriorityThreshold = models.ScoreLow

// PriorityRule flags Priority when any of QuestionIDs scores at or below
// PriorityThreshold.
type PriorityRule struct {
	QuestionIDs []int
	Priority    models.Priority
}

// PriorityRules is evaluated in declaration order.
var PriorityRules = []PriorityRule{
	{QuestionIDs: []int{1, 5}, Priority: models.PriorityEmergencyAid},
	{QuestionIDs: []int{4}, Priority: models.PriorityDebtManagement},
	{QuestionIDs: []int{3}, Priority: models.PrioritySavings},
	{QuestionIDs: []int{7, 8}, Priority: models.PriorityEducation},
	{QuestionIDs: []int{2}, Priority: models.PriorityEmployment},
	{QuestionIDs: []int{6}, Priority: models.PriorityFinancialServices},
	{QuestionIDs: []int{9}, Priority: models.PrioritySocialNetwork},
	{QuestionIDs: []int{10}, Priority: models.PriorityPsychological},
}

// ExtractPriorities returns the flagged priorities without duplicates, in
// rule order. Unanswered questions score 0 and are therefore flagged.
func ExtractPriorities(answers models.AnswerSet) []models.Priority {
	priorities := []models.Priority{}
	seen := make(map[models.Priority]bool)
	for _, rule := range PriorityRules {
		if seen[rule.Priority] || !rule.triggered(answers) {
			continue
		}
		seen[rule.Priority] = true
		priorities = append(priorities, rule.Priority)
	}
	return priorities
}

func (r PriorityRule) triggered(answers models.AnswerSet) bool {
	for _, id := range r.QuestionIDs {
		if answers.Score(id) <= PriorityThreshold {
			return true
		}
	}
	return false
}
