package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/display"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/history"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/scoring"
)

// NewScoreCommand creates the 'resilience score' command
func NewScoreCommand() *cobra.Command {
	var answersFile string
	var answerFlags []string
	var opts presentOptions

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a set of answers",
		Long: `Score answers read from a file and/or given on the command line.

Answers are raw scores (10, 7, 3, 0) or option letters (A-D). Files may be
YAML, JSON or Markdown; --answer values override the file.

Examples:
  # Score a YAML answers file
  resilience score --answers answers.yaml

  # Score individual answers and keep the result in history
  resilience score --answer 1=A --answer 2=7 --answer 3=C --save

  # Machine readable output with the rules that matched
  resilience score --answers answers.json --json --explain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			answers, err := collectAnswers(answersFile, answerFlags)
			if err != nil {
				return err
			}
			return present(cmd, env, answers, opts)
		},
	}

	cmd.Flags().StringVar(&answersFile, "answers", "", "Answers file (.yaml, .yml, .json, .md)")
	cmd.Flags().StringArrayVar(&answerFlags, "answer", nil, "Single answer as ID=VALUE (repeatable)")
	addPresentFlags(cmd, &opts)

	return cmd
}

// presentOptions controls how a scored result is shown and kept.
type presentOptions struct {
	jsonOutput bool
	save       bool
	explain    bool
}

func addPresentFlags(cmd *cobra.Command, opts *presentOptions) {
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Append the dimension scores to the local history")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Show bands and every matching classification rule")
}

// scoreOutput is the --json document.
type scoreOutput struct {
	Result       models.QuestionnaireResult `json:"result"`
	Average      *models.DimensionScores    `json:"average_scores,omitempty"`
	HistoryCount int                        `json:"history_count"`
	Explanation  *scoring.Explanation       `json:"explanation,omitempty"`
}

// present scores answers, compares them with the history average and prints
// the result. History problems are logged and never fail the command.
func present(cmd *cobra.Command, env *environment, answers models.AnswerSet, opts presentOptions) error {
	ctx := cmd.Context()

	if missing := answers.Missing(); len(missing) > 0 {
		display.WarnUnanswered(missing).Display(cmd.ErrOrStderr(), env.errColor)
	}

	result := scoring.Calculate(answers)
	env.log.LogResult(result)

	store, err := env.openHistory()
	if err != nil {
		env.log.Warnf("%v", err)
	}
	if store != nil {
		defer store.Close()
	}

	var stats history.Stats
	if store != nil && env.cfg.Display.CompareAverage {
		// Averages cover earlier respondents only, so read before saving.
		stats = history.Statistics(ctx, store, env.log)
		env.log.LogDebug(fmt.Sprintf("history: %d stored results", stats.Count))
	}

	if opts.save {
		if store == nil {
			env.log.LogWarn("history is disabled or unavailable; result not saved")
		} else if err := store.Append(ctx, result.DimensionScores, time.Now()); err != nil {
			env.log.Warnf("failed to save result: %v", err)
		} else {
			env.log.LogInfo("result saved to history")
		}
	}

	var explanation *scoring.Explanation
	if opts.explain {
		e := scoring.Explain(result.DimensionScores)
		explanation = &e
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(scoreOutput{
			Result:       result,
			Average:      stats.Average,
			HistoryCount: stats.Count,
			Explanation:  explanation,
		})
	}

	r := display.NewRenderer(cmd.OutOrStdout(), env.useColor)
	r.Result(result, stats.Average)
	if explanation != nil {
		r.Explanation(*explanation)
	}
	return nil
}
