package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/cmd"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/logger"
)

// Version is the current version of the resilience application
const Version = "1.0.0"

func main() {
	if cmd.Version == "dev" {
		cmd.Version = Version
	}
	rootCmd := cmd.NewRootCommand()

	// Ctrl-C ends `history stats --watch` cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError writes the "Error: ..." line through an error-level logger.
func reportError(w io.Writer, err error) {
	logger.NewConsoleLogger(w, "error").LogError(fmt.Sprintf("Error: %v", err))
}
