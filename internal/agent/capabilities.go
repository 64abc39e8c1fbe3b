package agent

import (
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/schema"

	"github.com/mbriand/taskpal/internal/tasks"
)

// Capability pairs a menu entry with the executor that runs it. The raw JSON
// argument string comes straight from the provider.
type Capability struct {
	Info *schema.ToolInfo
	Run  func(argumentsInJSON string) (string, error)
}

// Registry is the closed set of capabilities offered to the model.
type Registry struct {
	caps  map[string]Capability
	order []string
}

type addTaskArgs struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

type completeTaskArgs struct {
	TaskID int `json:"task_id"`
}

// NewRegistry builds the capability menu over a task store: add_task,
// list_tasks, complete_task, get_stats.
func NewRegistry(store *tasks.Manager) *Registry {
	r := &Registry{caps: make(map[string]Capability)}

	r.register(Capability{
		Info: &schema.ToolInfo{
			Name: "add_task",
			Desc: "Add a new task to the task manager",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"title": {
					Type:     schema.String,
					Desc:     "The title or description of the task",
					Required: true,
				},
				"priority": {
					Type: schema.String,
					Desc: "The priority level of the task (high, medium, or low)",
					Enum: []string{"high", "medium", "low"},
				},
			}),
		},
		Run: func(args string) (string, error) {
			var a addTaskArgs
			if err := json.Unmarshal([]byte(args), &a); err != nil {
				return "", fmt.Errorf("add_task: parse arguments: %w", err)
			}
			return store.Add(a.Title, a.Priority)
		},
	})

	r.register(Capability{
		Info: &schema.ToolInfo{
			Name: "list_tasks",
			Desc: "Get a formatted list of all tasks with their status and priority",
		},
		Run: func(string) (string, error) {
			return store.List(), nil
		},
	})

	r.register(Capability{
		Info: &schema.ToolInfo{
			Name: "complete_task",
			Desc: "Mark a specific task as completed",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"task_id": {
					Type:     schema.Integer,
					Desc:     "The ID of the task to mark as completed",
					Required: true,
				},
			}),
		},
		Run: func(args string) (string, error) {
			var a completeTaskArgs
			if err := json.Unmarshal([]byte(args), &a); err != nil {
				return "", fmt.Errorf("complete_task: parse arguments: %w", err)
			}
			return store.Complete(a.TaskID)
		},
	})

	r.register(Capability{
		Info: &schema.ToolInfo{
			Name: "get_stats",
			Desc: "Get productivity statistics and encouraging messages about task completion",
		},
		Run: func(string) (string, error) {
			return store.Stats(), nil
		},
	})

	return r
}

func (r *Registry) register(c Capability) {
	r.caps[c.Info.Name] = c
	r.order = append(r.order, c.Info.Name)
}

// Menu returns the capability descriptors in registration order.
func (r *Registry) Menu() []*schema.ToolInfo {
	menu := make([]*schema.ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		menu = append(menu, r.caps[name].Info)
	}
	return menu
}

// Lookup returns the capability registered under name.
func (r *Registry) Lookup(name string) (Capability, bool) {
	c, ok := r.caps[name]
	return c, ok
}
