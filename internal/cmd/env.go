package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/config"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/display"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/history"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/logger"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/parser"
)

// environment is the configuration shared by every subcommand.
type environment struct {
	cfg      *config.Config
	home     string
	log      logger.Logger
	useColor bool // stdout
	errColor bool // stderr
}

// loadEnvironment loads the config file, applies the persistent flags and
// builds the logger. The logger writes to the command's error stream.
func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	home, err := config.GetHome()
	if err != nil {
		return nil, err
	}

	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromHome()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Build flag pointers for merge (only flags the user set)
	var logLevelPtr, backendPtr, pathPtr *string
	var noColorPtr *bool
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}
	if cmd.Flags().Changed("no-color") {
		v, _ := cmd.Flags().GetBool("no-color")
		noColorPtr = &v
	}
	if cmd.Flags().Changed("history-backend") {
		v, _ := cmd.Flags().GetString("history-backend")
		backendPtr = &v
	}
	if cmd.Flags().Changed("history-path") {
		v, _ := cmd.Flags().GetString("history-path")
		pathPtr = &v
	}
	cfg.MergeWithFlags(logLevelPtr, noColorPtr, backendPtr, pathPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	errColor := display.UseColor(cfg.Display.Color, cmd.ErrOrStderr())
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log.SetColor(errColor)
	log.LogTrace(fmt.Sprintf("config: home=%s log_level=%s history=%t/%s color=%s",
		home, cfg.LogLevel, cfg.History.Enabled, cfg.History.Backend, cfg.Display.Color))

	return &environment{
		cfg:      cfg,
		home:     home,
		log:      log,
		useColor: display.UseColor(cfg.Display.Color, cmd.OutOrStdout()),
		errColor: errColor,
	}, nil
}

// openHistory opens the configured store, or returns nil when history is
// disabled.
func (e *environment) openHistory() (history.Store, error) {
	if !e.cfg.History.Enabled {
		return nil, nil
	}
	path := e.cfg.HistoryPath(e.home)
	e.log.LogDebug(fmt.Sprintf("history: %s backend at %s", e.cfg.History.Backend, path))
	store, err := history.Open(history.Options{
		Backend:    e.cfg.History.Backend,
		Path:       path,
		MaxRecords: e.cfg.History.MaxRecords,
	})
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

// collectAnswers reads the answers file (if any) and overlays --answer flags.
func collectAnswers(answersFile string, answerFlags []string) (models.AnswerSet, error) {
	answers := models.AnswerSet{}
	if answersFile != "" {
		fromFile, err := parser.ParseFile(answersFile)
		if err != nil {
			return nil, err
		}
		answers = fromFile
	}
	if len(answerFlags) > 0 {
		fromFlags, err := parser.ParseAnswerFlags(answerFlags)
		if err != nil {
			return nil, err
		}
		answers = parser.Merge(answers, fromFlags)
	}
	if answersFile == "" && len(answerFlags) == 0 {
		return nil, fmt.Errorf("no answers given: use --answers FILE or --answer ID=VALUE")
	}
	return answers, nil
}

// confirmAction prompts on out and reads a yes/no reply from in
func confirmAction(in io.Reader, out io.Writer) bool {
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Continue? [y/N]: ")

	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return response == "y" || response == "yes"
}
