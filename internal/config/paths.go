package config

import (
	"os"
	"path/filepath"
)

// TaskpalPath returns the root directory for taskpal data.
// It uses $TASKPAL_PATH if set, otherwise defaults to ~/.taskpal.
func TaskpalPath() string {
	if v := os.Getenv("TASKPAL_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".taskpal")
	}
	return filepath.Join(home, ".taskpal")
}

// ConfigPath returns the path to the taskpal config file.
func ConfigPath() string {
	return filepath.Join(TaskpalPath(), "config.jsonc")
}

// DotenvPath returns the path to the taskpal .env file.
func DotenvPath() string {
	return filepath.Join(TaskpalPath(), ".env")
}
