package agent

import (
	"strings"
	"testing"
)

func TestRegistryMenu(t *testing.T) {
	r := NewRegistry(newTestStore(t))

	menu := r.Menu()
	want := []string{"add_task", "list_tasks", "complete_task", "get_stats"}
	if len(menu) != len(want) {
		t.Fatalf("menu: got %d entries, want %d", len(menu), len(want))
	}
	for i, name := range want {
		if menu[i].Name != name {
			t.Errorf("menu[%d]: got %q, want %q", i, menu[i].Name, name)
		}
		if menu[i].Desc == "" {
			t.Errorf("menu[%d] %q: empty description", i, menu[i].Name)
		}
	}

	if _, ok := r.Lookup("add_task"); !ok {
		t.Error("Lookup add_task: not found")
	}
	if _, ok := r.Lookup("drop_table"); ok {
		t.Error("Lookup drop_table: should not exist")
	}
}

func TestAddTaskDefaultsPriority(t *testing.T) {
	store := newTestStore(t)
	r := NewRegistry(store)

	c, _ := r.Lookup("add_task")
	msg, err := c.Run(`{"title":"Write report"}`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(msg, "medium") {
		t.Errorf("confirmation %q should mention the default priority", msg)
	}
	if got := store.All()[0].Priority; got != "medium" {
		t.Errorf("stored priority: got %q, want medium", got)
	}
}

func TestCompleteTaskDecodesID(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Add("first", "low"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	r := NewRegistry(store)

	c, _ := r.Lookup("complete_task")
	msg, err := c.Run(`{"task_id":1}`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(msg, "first") {
		t.Errorf("success message %q should include the title", msg)
	}
	if !store.All()[0].Completed {
		t.Error("task should be completed")
	}
}

func TestCapabilityRejectsMalformedArguments(t *testing.T) {
	r := NewRegistry(newTestStore(t))

	c, _ := r.Lookup("complete_task")
	if _, err := c.Run(`{"task_id":"one"}`); err == nil {
		t.Error("expected error for malformed arguments")
	}
}

func TestNoArgumentCapabilities(t *testing.T) {
	store := newTestStore(t)
	r := NewRegistry(store)

	list, _ := r.Lookup("list_tasks")
	if out, err := list.Run(`{}`); err != nil || !strings.Contains(out, "No tasks found") {
		t.Errorf("list_tasks: out %q, err %v", out, err)
	}

	stats, _ := r.Lookup("get_stats")
	if out, err := stats.Run(`{}`); err != nil || !strings.Contains(out, "No tasks yet") {
		t.Errorf("get_stats: out %q, err %v", out, err)
	}
}
