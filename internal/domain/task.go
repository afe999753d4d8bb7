package domain

// Task represents a to-do entry in the domain model.
// This is a pure domain model without database or widget concerns.
type Task struct {
	ID        int64
	Text      string
	Completed bool
}

// NewTask creates a new, not yet completed Task with the given text.
func NewTask(text string) Task {
	return Task{
		Text: text,
	}
}
