package controller

import "todo-list/internal/domain"

// InputState describes how the task entry should present itself
type InputState int

const (
	// InputNormal shows the regular placeholder
	InputNormal InputState = iota
	// InputEmpty follows a blank submission: error styling and the empty placeholder
	InputEmpty
	// InputTooLong follows a submission over the maximum length
	InputTooLong
)

// String returns the string representation of the input state
func (s InputState) String() string {
	switch s {
	case InputNormal:
		return "normal"
	case InputEmpty:
		return "empty"
	case InputTooLong:
		return "too_long"
	default:
		return "unknown"
	}
}

// Row is the presentation state of one task in the list
type Row struct {
	ID        int64
	Text      string // stored text
	Completed bool   // checkbox state
	Display   string // text as shown, struck through when completed
}

// RenderRow builds the row shown for a task
func RenderRow(task domain.Task) Row {
	return Row{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		Display:   domain.DisplayText(task),
	}
}

// View is implemented by every frontend. The controller calls it on the
// goroutine that delivered the user event.
type View interface {
	ClearInput()
	SetInputState(state InputState)
	ClearRows()
	AppendRow(row Row)
	UpdateRow(row Row)
	RemoveRow(id int64)
}
