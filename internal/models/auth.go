package models

import (
	"fmt"
	"os"
	"strings"

	"github.com/mbriand/taskpal/internal/config"
)

// ResolveAuth resolves the API key for a provider.
// Resolution order: direct api_key → ${ENV_VAR} indirection → driver default env.
func ResolveAuth(cfg config.ProviderConfig) (string, error) {
	key := strings.TrimSpace(cfg.Auth.APIKey)
	if strings.HasPrefix(key, "${") && strings.HasSuffix(key, "}") {
		key = os.Getenv(key[2 : len(key)-1])
	}
	if key != "" {
		return key, nil
	}

	// Default env vars per driver
	switch strings.ToLower(cfg.Driver) {
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return key, nil
		}
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	case "anthropic":
		if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
			return key, nil
		}
		return "", fmt.Errorf("ANTHROPIC_API_KEY not set")
	}
	return "", fmt.Errorf("no API key configured for driver %s", cfg.Driver)
}
