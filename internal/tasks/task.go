// Package tasks provides the persisted task list behind the assistant's
// capabilities. Every public operation returns human-readable text rather
// than raw data: the results are handed back to the language model, which
// phrases the final reply.
package tasks

import "strings"

// Priority levels recognized by the store. Anything else is stored verbatim
// and rendered with a neutral glyph.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task is a single to-do record. Tasks are append-only: the only mutation is
// flipping Completed to true.
type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

func priorityGlyph(p string) string {
	switch strings.ToLower(p) {
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟡"
	case PriorityLow:
		return "🟢"
	default:
		return "⚪"
	}
}
