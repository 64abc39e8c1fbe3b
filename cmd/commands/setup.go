package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mbriand/taskpal/internal/agent"
	"github.com/mbriand/taskpal/internal/config"
	"github.com/mbriand/taskpal/internal/models"
	"github.com/mbriand/taskpal/internal/tasks"
)

func setupLogging(cmd *cli.Command) {
	if cmd.Bool("debug") {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openStore(cmd *cli.Command, cfg *config.Config) (*tasks.Manager, error) {
	path := cmd.String("tasks")
	if path == "" {
		path = cfg.Tasks.File
	}
	store, err := tasks.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	return store, nil
}

// newDispatcher builds the model-backed dispatcher. The model is created
// here, lazily per command: a missing credential surfaces on first use, not
// at startup.
func newDispatcher(ctx context.Context, cfg *config.Config, store *tasks.Manager) (*agent.Dispatcher, error) {
	name, provider := cfg.DefaultProvider()
	if provider.Driver == "" {
		return nil, fmt.Errorf("no model provider configured")
	}
	slog.Debug("creating model", "provider", name, "driver", provider.Driver, "model", provider.Model)

	chatModel, err := models.CreateModel(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("create model %s: %w", name, err)
	}

	negotiator := agent.NewModelNegotiator(chatModel, cfg.Agent.SystemPrompt)
	return agent.NewDispatcher(negotiator, agent.NewRegistry(store)), nil
}
