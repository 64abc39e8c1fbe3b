package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Manager owns the in-memory task collection and its JSON snapshot on disk.
// Access is strictly single-threaded: one utterance is fully processed before
// the next is read, so there is no locking.
type Manager struct {
	path  string
	tasks []Task
	now   func() time.Time
}

// Open loads the snapshot at path. A missing file means an empty collection,
// not an error; a malformed one is an error.
func Open(path string) (*Manager, error) {
	m := &Manager{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, nil
		}
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	if err := json.Unmarshal(data, &m.tasks); err != nil {
		return nil, fmt.Errorf("parse tasks %s: %w", path, err)
	}
	return m, nil
}

// Add appends a new task and persists the snapshot. IDs are positional:
// len(tasks)+1. An empty priority defaults to medium; the stored value is
// lowercased but the confirmation echoes the caller's exact spelling.
func (m *Manager) Add(title, priority string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("task title must not be empty")
	}
	if priority == "" {
		priority = PriorityMedium
	}

	m.tasks = append(m.tasks, Task{
		ID:        len(m.tasks) + 1,
		Title:     title,
		Priority:  strings.ToLower(priority),
		CreatedAt: m.now().Format(time.RFC3339),
	})
	if err := m.save(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Task '%s' added with %s priority", title, priority), nil
}

// List renders one line per task: status glyph, priority glyph, ID, title.
// The sort key is (completed, priority-as-text); plain string comparison puts
// high before low before medium. Historical key, kept as is.
func (m *Manager) List() string {
	if len(m.tasks) == 0 {
		return "📝 No tasks found!"
	}

	sorted := make([]Task, len(m.tasks))
	copy(sorted, m.tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Completed != sorted[j].Completed {
			return !sorted[i].Completed
		}
		return sorted[i].Priority < sorted[j].Priority
	})

	var sb strings.Builder
	for i, t := range sorted {
		if i > 0 {
			sb.WriteByte('\n')
		}
		status := "⏳"
		if t.Completed {
			status = "✅"
		}
		fmt.Fprintf(&sb, "%s %s Task %d: %s", status, priorityGlyph(t.Priority), t.ID, t.Title)
	}
	return sb.String()
}

// Complete marks the first task with the given ID as done and persists.
// An unknown ID is not an error: it is reported in the returned text and the
// collection stays untouched. Completing an already-completed task still
// reports success.
func (m *Manager) Complete(id int) (string, error) {
	for i := range m.tasks {
		if m.tasks[i].ID != id {
			continue
		}
		m.tasks[i].Completed = true
		if err := m.save(); err != nil {
			return "", err
		}
		return fmt.Sprintf("Task '%s' marked as completed! 🎉", m.tasks[i].Title), nil
	}
	return fmt.Sprintf("Task with ID %d not found! ❌", id), nil
}

// Stats reports totals, the completion rate at one decimal, and an
// encouragement picked by rate: 100, >=75, >=50, below.
func (m *Manager) Stats() string {
	total := len(m.tasks)
	if total == 0 {
		return "📊 No tasks yet! Time to get started! 🚀"
	}

	completed := 0
	for _, t := range m.tasks {
		if t.Completed {
			completed++
		}
	}
	rate := float64(completed) / float64(total) * 100

	var message string
	switch {
	case rate == 100:
		message = "🎉 Perfect score! You're on fire! 🔥"
	case rate >= 75:
		message = "🌟 Great progress! Keep up the momentum! 💪"
	case rate >= 50:
		message = "👍 Halfway there! You're doing great! 🌈"
	default:
		message = "🌱 Every journey starts with a single step! Keep going! 💫"
	}

	return fmt.Sprintf(
		"📊 Task Statistics:\n------------------\nTotal Tasks: %d\nCompleted: %d\nCompletion Rate: %.1f%%\n\n%s",
		total, completed, rate, message)
}

// All returns a copy of the collection in insertion order.
func (m *Manager) All() []Task {
	out := make([]Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// save rewrites the full snapshot via temp file + rename.
func (m *Manager) save() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create tasks dir: %w", err)
	}

	data, err := json.MarshalIndent(m.tasks, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, filepath.Base(m.path)+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, m.path)
}
