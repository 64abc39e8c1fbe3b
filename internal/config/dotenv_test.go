package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotenv(t *testing.T) {
	content := `# Credentials
OPENAI_API_KEY=sk-test-123

QUOTED="quoted-value"
SINGLE='single-quoted'
SPACED_KEY = spaced_value
`

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	os.Unsetenv("OPENAI_API_KEY")
	os.Unsetenv("QUOTED")
	os.Unsetenv("SINGLE")
	os.Unsetenv("SPACED_KEY")

	if err := LoadDotenv(path); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key, want string
	}{
		{"OPENAI_API_KEY", "sk-test-123"},
		{"QUOTED", "quoted-value"},
		{"SINGLE", "single-quoted"},
		{"SPACED_KEY", "spaced_value"},
	}

	for _, tt := range tests {
		if got := os.Getenv(tt.key); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLoadDotenvNoOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(`EXISTING_VAR=new-value`), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("EXISTING_VAR", "original")

	if err := LoadDotenv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("EXISTING_VAR"); got != "original" {
		t.Errorf("existing var overridden: got %q", got)
	}
}

func TestLoadDotenvMissingFile(t *testing.T) {
	if err := LoadDotenv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing file should not error: %v", err)
	}
}

func TestTaskpalPathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKPAL_PATH", dir)

	if got := TaskpalPath(); got != dir {
		t.Errorf("TaskpalPath: got %q, want %q", got, dir)
	}
	if got := ConfigPath(); got != filepath.Join(dir, "config.jsonc") {
		t.Errorf("ConfigPath: got %q", got)
	}
	if got := DotenvPath(); got != filepath.Join(dir, ".env") {
		t.Errorf("DotenvPath: got %q", got)
	}
}
