package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/history"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/report"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/scoring"
)

// NewReportCommand creates the 'resilience report' command
func NewReportCommand() *cobra.Command {
	var answersFile string
	var answerFlags []string
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a result as Markdown, HTML or JSON",
		Long: `Score answers and export a narrative report.

The format defaults to the --out file extension, then to Markdown. Without
--out the report is written to stdout.

Examples:
  resilience report --answers answers.yaml --out report.html
  resilience report --answer 1=A --answer 2=B --format markdown`,
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

			rep := &report.Report{
				Result:      scoring.Calculate(answers),
				GeneratedAt: time.Now(),
			}
			env.log.LogResult(rep.Result)

			if env.cfg.Display.CompareAverage {
				store, err := env.openHistory()
				if err != nil {
					env.log.Warnf("%v", err)
				}
				if store != nil {
					rep.Average = history.Statistics(cmd.Context(), store, env.log).Average
					store.Close()
				}
			}

			if format == "" {
				format = report.FormatFromPath(outPath)
			}

			if outPath == "" {
				content, err := report.ExportToString(rep, format)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			if err := report.ExportToFile(rep, outPath, format); err != nil {
				return err
			}
			env.log.Infof("report written to %s", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&answersFile, "answers", "", "Answers file (.yaml, .yml, .json, .md)")
	cmd.Flags().StringArrayVar(&answerFlags, "answer", nil, "Single answer as ID=VALUE (repeatable)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: markdown, html or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the report to this file")

	return cmd
}
