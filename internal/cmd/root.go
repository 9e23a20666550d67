package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for resilience
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resilience",
		Short: "Household financial resilience survey",
		Long: `Resilience scores a ten-question household finance survey into a
six-dimension resilience profile.

Each result carries a total score and level, a support structure type, an
animal persona and a list of suggested priorities. Results can be kept in a
local history to compare a respondent with earlier ones.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: $RESILIENCE_HOME/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("history-backend", "", "History backend: file or sqlite")
	cmd.PersistentFlags().String("history-path", "", "Path to the history file or database")

	cmd.AddCommand(NewScoreCommand())
	cmd.AddCommand(NewSurveyCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewQuestionsCommand())

	return cmd
}
