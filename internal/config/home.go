package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the survey home directory.
const HomeEnv = "RESILIENCE_HOME"

// GetHome returns the directory holding config.yaml and the history.
// Priority order:
//  1. RESILIENCE_HOME environment variable (if set)
//  2. $HOME/.resilience
//  3. .resilience under the current working directory
//
// The directory is created if it doesn't exist.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create survey home directory: %w", err)
		}
		return home, nil
	}

	base, err := os.UserHomeDir()
	if err != nil || base == "" {
		base, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	home := filepath.Join(base, ".resilience")
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create survey home directory: %w", err)
	}
	return home, nil
}
