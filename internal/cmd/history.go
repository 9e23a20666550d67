package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/display"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/history"
)

// NewHistoryCommand creates the 'resilience history' command group
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear stored results",
		Long: `The history keeps the dimension scores of saved results (at most
history.max_records, oldest dropped first) so new results can be compared
with the average of earlier respondents.`,
	}

	cmd.AddCommand(newHistoryStatsCommand())
	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

// newHistoryStatsCommand creates the 'resilience history stats' command
func newHistoryStatsCommand() *cobra.Command {
	var jsonOutput bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the stored result count and dimension averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			store, err := env.openHistory()
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "History is disabled (history.enabled: false)")
				return nil
			}
			defer store.Close()

			show := func() error {
				stats := history.Statistics(cmd.Context(), store, env.log)
				return writeStats(cmd.OutOrStdout(), stats, jsonOutput, env.useColor)
			}
			if err := show(); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			path := env.cfg.HistoryPath(env.home)
			env.log.Infof("watching %s for changes (Ctrl-C to stop)", path)
			return history.Watch(cmd.Context(), path, history.DefaultWatchDelay, func() {
				fmt.Fprintln(cmd.OutOrStdout())
				if err := show(); err != nil {
					env.log.Warnf("render statistics: %v", err)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print statistics as JSON")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Print statistics again whenever the history changes")

	return cmd
}

func writeStats(out io.Writer, stats history.Stats, jsonOutput, useColor bool) error {
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}
	display.NewRenderer(out, useColor).Stats(stats)
	return nil
}

// newHistoryClearCommand creates the 'resilience history clear' command
func newHistoryClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored result",
		Long: `Delete every stored result from the history.

Examples:
  # Clear with confirmation prompt
  resilience history clear

  # Clear without prompting
  resilience history clear --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := cmd.OutOrStdout()

			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			store, err := env.openHistory()
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(output, "History is disabled (history.enabled: false)")
				return nil
			}
			defer store.Close()

			if !yes {
				fmt.Fprintf(output, "WARNING: This will delete ALL stored results.\n")
				if !confirmAction(cmd.InOrStdin(), output) {
					fmt.Fprintf(output, "Operation cancelled.\n")
					return nil
				}
			}

			count := history.Statistics(cmd.Context(), store, env.log).Count
			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}

			recordText := "record"
			if count != 1 {
				recordText = "records"
			}
			fmt.Fprintf(output, "Deleted %d %s.\n", count, recordText)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
