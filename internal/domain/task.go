package domain

import "strings"

// Task is a single entry on the task list.
// ID is assigned by the store on insert and never changes afterwards.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TaskChanges carries the fields a client may supply when editing a task.
type TaskChanges struct {
	Text      string
	Completed bool
}

// NewTask builds an unsaved task. Text must contain at least one
// non-whitespace character.
func NewTask(text string, completed bool) (*Task, error) {
	task := &Task{
		Text:      text,
		Completed: completed,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that the task can be persisted.
func (t *Task) Validate() error {
	if IsBlank(t.Text) {
		return NewValidationError("text", "cannot be empty", ErrEmptyTaskText)
	}
	return nil
}

// Apply merges changes into the task. Blank text leaves the current text in
// place; Completed is always overwritten.
func (t *Task) Apply(changes TaskChanges) {
	if !IsBlank(changes.Text) {
		t.Text = changes.Text
	}
	t.Completed = changes.Completed
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
