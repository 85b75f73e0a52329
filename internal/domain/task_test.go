package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		completed bool
		wantErr   bool
	}{
		{name: "valid", text: "Buy milk", completed: false},
		{name: "valid_completed", text: "Write report", completed: true},
		{name: "surrounding_whitespace_kept", text: "  padded  "},
		{name: "empty", text: "", wantErr: true},
		{name: "spaces_only", text: "   ", wantErr: true},
		{name: "tabs_and_newlines", text: "\t\n\r ", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := NewTask(tt.text, tt.completed)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, task)
				assert.True(t, errors.Is(err, ErrValidation))
				assert.True(t, errors.Is(err, ErrEmptyTaskText))

				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "text", validationErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Zero(t, task.ID, "id is assigned by the store")
			assert.Equal(t, tt.text, task.Text)
			assert.Equal(t, tt.completed, task.Completed)
		})
	}
}

func TestTaskApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		start         Task
		changes       TaskChanges
		wantText      string
		wantCompleted bool
	}{
		{
			name:          "replaces_text_and_completed",
			start:         Task{ID: 1, Text: "Buy milk"},
			changes:       TaskChanges{Text: "Buy oat milk", Completed: true},
			wantText:      "Buy oat milk",
			wantCompleted: true,
		},
		{
			name:          "blank_text_is_noop",
			start:         Task{ID: 1, Text: "Buy milk"},
			changes:       TaskChanges{Text: "", Completed: true},
			wantText:      "Buy milk",
			wantCompleted: true,
		},
		{
			name:          "whitespace_text_is_noop",
			start:         Task{ID: 1, Text: "Buy milk", Completed: true},
			changes:       TaskChanges{Text: "   ", Completed: true},
			wantText:      "Buy milk",
			wantCompleted: true,
		},
		{
			name:          "completed_can_go_back_to_false",
			start:         Task{ID: 1, Text: "Buy milk", Completed: true},
			changes:       TaskChanges{Text: "", Completed: false},
			wantText:      "Buy milk",
			wantCompleted: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task := tt.start
			task.Apply(tt.changes)

			assert.Equal(t, tt.start.ID, task.ID, "id must not change")
			assert.Equal(t, tt.wantText, task.Text)
			assert.Equal(t, tt.wantCompleted, task.Completed)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewValidationError("text", "cannot be empty", nil)
	assert.Equal(t, "text cannot be empty", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
}
