package tasks

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := Open(filepath.Join(t.TempDir(), "tasks.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	m.now = func() time.Time {
		return time.Date(2026, 2, 19, 12, 30, 0, 0, time.UTC)
	}
	return m
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	m := newTestManager(t)
	if got := m.List(); got != "📝 No tasks found!" {
		t.Errorf("List on empty store: got %q", got)
	}
	if got := len(m.All()); got != 0 {
		t.Errorf("All on empty store: got %d tasks", got)
	}
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	m := newTestManager(t)

	titles := []string{"Buy milk", "Write report", "Call dentist", "Pay rent"}
	for _, title := range titles {
		if _, err := m.Add(title, ""); err != nil {
			t.Fatalf("Add %q: %v", title, err)
		}
	}

	all := m.All()
	if len(all) != len(titles) {
		t.Fatalf("All: got %d tasks, want %d", len(all), len(titles))
	}
	for i, task := range all {
		if task.ID != i+1 {
			t.Errorf("task %d: ID = %d, want %d", i, task.ID, i+1)
		}
		if task.Completed {
			t.Errorf("task %d: completed at creation", i)
		}
	}
}

func TestAddDefaultsToMediumPriority(t *testing.T) {
	m := newTestManager(t)

	msg, err := m.Add("Write report", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !strings.Contains(msg, "medium") {
		t.Errorf("confirmation %q does not mention medium", msg)
	}
	if got := m.All()[0].Priority; got != "medium" {
		t.Errorf("stored priority: got %q, want medium", got)
	}
}

func TestAddEchoesOriginalPrioritySpelling(t *testing.T) {
	m := newTestManager(t)

	msg, err := m.Add("Buy milk", "HIGH")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !strings.Contains(msg, "HIGH") {
		t.Errorf("confirmation %q should echo the caller's spelling", msg)
	}
	if got := m.All()[0].Priority; got != "high" {
		t.Errorf("stored priority: got %q, want high", got)
	}
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Add("   ", "high"); err == nil {
		t.Fatal("expected error for blank title")
	}
	if got := len(m.All()); got != 0 {
		t.Errorf("store changed after rejected add: %d tasks", got)
	}
}

func TestListOrderingQuirk(t *testing.T) {
	m := newTestManager(t)

	// Lexicographic priority order is high < low < medium, and incomplete
	// tasks come before completed ones.
	mustAdd(t, m, "medium task", "medium")
	mustAdd(t, m, "high task", "high")
	mustAdd(t, m, "low task", "low")
	mustAdd(t, m, "done task", "high")
	if _, err := m.Complete(4); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	lines := strings.Split(m.List(), "\n")
	want := []string{"high task", "low task", "medium task", "done task"}
	if len(lines) != len(want) {
		t.Fatalf("List: got %d lines, want %d", len(lines), len(want))
	}
	for i, title := range want {
		if !strings.Contains(lines[i], title) {
			t.Errorf("line %d = %q, want title %q", i, lines[i], title)
		}
	}
	if !strings.HasPrefix(lines[3], "✅") {
		t.Errorf("completed task line %q should start with ✅", lines[3])
	}
}

func TestListGlyphs(t *testing.T) {
	m := newTestManager(t)

	mustAdd(t, m, "urgent", "high")
	mustAdd(t, m, "someday", "whenever")

	out := m.List()
	if !strings.Contains(out, "🔴") {
		t.Errorf("List %q: missing high-priority glyph", out)
	}
	if !strings.Contains(out, "⚪") {
		t.Errorf("List %q: unrecognized priority should use the neutral glyph", out)
	}
	if !strings.Contains(out, "Task 1: urgent") {
		t.Errorf("List %q: missing ID and title", out)
	}
}

func TestCompleteUnknownIDLeavesStateUntouched(t *testing.T) {
	m := newTestManager(t)
	mustAdd(t, m, "only task", "low")

	msg, err := m.Complete(999)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !strings.Contains(msg, "999") || !strings.Contains(msg, "not found") {
		t.Errorf("not-found message %q should name the ID", msg)
	}
	if m.All()[0].Completed {
		t.Error("task 1 should remain incomplete")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	m := newTestManager(t)
	mustAdd(t, m, "repeatable", "medium")

	first, err := m.Complete(1)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	second, err := m.Complete(1)
	if err != nil {
		t.Fatalf("Complete again: %v", err)
	}
	if first != second {
		t.Errorf("repeat completion: got %q, want %q", second, first)
	}
	if !m.All()[0].Completed {
		t.Error("task should stay completed")
	}
}

func TestCompleteOnlyTouchesTargetTask(t *testing.T) {
	m := newTestManager(t)
	mustAdd(t, m, "first", "high")
	mustAdd(t, m, "second", "low")

	msg, err := m.Complete(2)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !strings.Contains(msg, "second") {
		t.Errorf("success message %q should include the title", msg)
	}

	all := m.All()
	if all[0].Completed {
		t.Error("task 1 should be untouched")
	}
	if !all[1].Completed {
		t.Error("task 2 should be completed")
	}
	if all[0].Title != "first" || all[0].Priority != "high" {
		t.Errorf("task 1 fields changed: %+v", all[0])
	}
}

func TestStatsEmpty(t *testing.T) {
	m := newTestManager(t)
	if got := m.Stats(); !strings.Contains(got, "No tasks yet") {
		t.Errorf("Stats on empty store: got %q", got)
	}
}

func TestStatsLadder(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		completed int
		wantRate  string
		wantMsg   string
	}{
		{"perfect", 3, 3, "100.0%", "Perfect score"},
		{"great", 4, 3, "75.0%", "Great progress"},
		{"halfway", 4, 2, "50.0%", "Halfway there"},
		{"starting", 5, 1, "20.0%", "single step"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestManager(t)
			for i := 0; i < tc.total; i++ {
				mustAdd(t, m, "task", "medium")
			}
			for i := 1; i <= tc.completed; i++ {
				if _, err := m.Complete(i); err != nil {
					t.Fatalf("Complete %d: %v", i, err)
				}
			}

			got := m.Stats()
			if !strings.Contains(got, tc.wantRate) {
				t.Errorf("Stats %q: want rate %s", got, tc.wantRate)
			}
			if !strings.Contains(got, tc.wantMsg) {
				t.Errorf("Stats %q: want message %q", got, tc.wantMsg)
			}
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := m.Add("Buy milk", "high"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	out := reloaded.List()
	if !strings.Contains(out, "Buy milk") || !strings.Contains(out, "🔴") {
		t.Errorf("reloaded List %q: missing persisted task", out)
	}

	all := reloaded.All()
	if len(all) != 1 {
		t.Fatalf("reloaded All: got %d tasks, want 1", len(all))
	}
	if all[0].Completed {
		t.Error("persisted task should be incomplete")
	}
	if all[0].Priority != "high" {
		t.Errorf("persisted priority: got %q, want high", all[0].Priority)
	}
	if all[0].CreatedAt == "" {
		t.Error("persisted task missing created_at")
	}
}

func mustAdd(t *testing.T, m *Manager, title, priority string) {
	t.Helper()
	if _, err := m.Add(title, priority); err != nil {
		t.Fatalf("Add %q: %v", title, err)
	}
}
