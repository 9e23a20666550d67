package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/display"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
)

// NewSurveyCommand creates the 'resilience survey' command
func NewSurveyCommand() *cobra.Command {
	var force bool
	var opts presentOptions

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Answer the survey interactively",
		Long: `Ask the ten survey questions one at a time and score the answers.

Each question is answered with its option letter (A-D). An empty reply
repeats the question.

Examples:
  # Take the survey and keep the result
  resilience survey --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if !force && !isInteractive(in) {
				return fmt.Errorf("survey needs an interactive terminal; use 'resilience score' for piped answers or pass --force")
			}

			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			answers, err := askQuestions(in, cmd.OutOrStdout(), env.useColor)
			if err != nil {
				return err
			}
			return present(cmd, env, answers, opts)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Read answers even when stdin is not a terminal")
	addPresentFlags(cmd, &opts)

	return cmd
}

// isInteractive reports whether r is a terminal
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// askQuestions walks the catalog, re-asking until each reply names an option.
func askQuestions(in io.Reader, out io.Writer, useColor bool) (models.AnswerSet, error) {
	scanner := bufio.NewScanner(in)
	progress := display.NewProgressIndicator(out, len(models.Questions), useColor)
	answers := make(models.AnswerSet, len(models.Questions))

	progress.Start()
	for _, q := range models.Questions {
		progress.Step(q.Text)
		for _, opt := range q.Options {
			fmt.Fprintf(out, "  %s) %s\n", opt.Value, opt.Label)
		}

		for {
			fmt.Fprintf(out, "Answer [A-D]: ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("read answer: %w", err)
				}
				return nil, fmt.Errorf("survey aborted at question %d: no more input", q.ID)
			}
			reply := strings.TrimSpace(scanner.Text())
			if reply == "" {
				continue
			}
			opt, ok := q.Option(reply)
			if !ok {
				fmt.Fprintf(out, "Please answer with A, B, C or D.\n")
				continue
			}
			answers[q.ID] = opt.Score
			break
		}
	}
	progress.Complete()

	return answers, nil
}
