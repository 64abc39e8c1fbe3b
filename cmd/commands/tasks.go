package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/mbriand/taskpal/internal/tasks"
)

// NewTasksCommand returns the tasks subcommand — direct store access without
// the model.
func NewTasksCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "Manage the task list directly",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all tasks",
				Action: runTasksList,
			},
			{
				Name:      "add",
				Usage:     "Add a task",
				ArgsUsage: "<title>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "priority",
						Aliases: []string{"p"},
						Usage:   "Priority (high, medium, low)",
					},
				},
				Action: runTasksAdd,
			},
			{
				Name:      "done",
				Usage:     "Mark a task as completed",
				ArgsUsage: "<task_id>",
				Action:    runTasksDone,
			},
			{
				Name:   "stats",
				Usage:  "Show completion statistics",
				Action: runTasksStats,
			},
			{
				Name:  "export",
				Usage: "Write the task collection to stdout",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format (json or yaml)",
						Value: "json",
					},
				},
				Action: runTasksExport,
			},
		},
		DefaultCommand: "list",
	}
}

func commandStore(cmd *cli.Command) (*tasks.Manager, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return openStore(cmd, cfg)
}

func runTasksList(_ context.Context, cmd *cli.Command) error {
	store, err := commandStore(cmd)
	if err != nil {
		return err
	}

	all := store.All()
	if len(all) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tCREATED\tTITLE")
	for _, t := range all {
		status := "open"
		if t.Completed {
			status = "done"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, status, t.Priority, t.CreatedAt, t.Title)
	}
	return w.Flush()
}

func runTasksAdd(_ context.Context, cmd *cli.Command) error {
	title := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if title == "" {
		return fmt.Errorf("usage: taskpal tasks add <title>")
	}

	store, err := commandStore(cmd)
	if err != nil {
		return err
	}

	msg, err := store.Add(title, cmd.String("priority"))
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func runTasksDone(_ context.Context, cmd *cli.Command) error {
	id, err := strconv.Atoi(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("usage: taskpal tasks done <task_id>")
	}

	store, err := commandStore(cmd)
	if err != nil {
		return err
	}

	msg, err := store.Complete(id)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func runTasksStats(_ context.Context, cmd *cli.Command) error {
	store, err := commandStore(cmd)
	if err != nil {
		return err
	}
	fmt.Println(store.Stats())
	return nil
}

func runTasksExport(_ context.Context, cmd *cli.Command) error {
	store, err := commandStore(cmd)
	if err != nil {
		return err
	}

	all := store.All()
	switch format := cmd.String("format"); format {
	case "json":
		data, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(all)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
