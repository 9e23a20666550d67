package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/display"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
)

// NewQuestionsCommand creates the 'resilience questions' command
func NewQuestionsCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the survey questions and option scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(models.Questions)
			}

			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			display.NewRenderer(cmd.OutOrStdout(), env.useColor).Questions(models.Questions)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the catalog as JSON")

	return cmd
}
