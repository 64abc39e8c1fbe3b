// Package commands defines the taskpal CLI surface.
package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/mbriand/taskpal/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "taskpal",
		Usage: "A conversational task manager",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.StringFlag{
				Name:  "tasks",
				Usage: "Path to the task snapshot file (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewChatCommand(),
			NewAskCommand(),
			NewTasksCommand(),
		},
		DefaultCommand: "chat",
	}
}
