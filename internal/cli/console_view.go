package cli

import "todo-list/internal/controller"

// consoleView records what the controller asks a view to show so one-shot
// commands can print it afterwards.
type consoleView struct {
	rows    []controller.Row
	updated []controller.Row
	removed []int64
	state   controller.InputState
	cleared bool
}

func newConsoleView() *consoleView {
	return &consoleView{}
}

func (v *consoleView) ClearInput() {
	v.cleared = true
}

func (v *consoleView) SetInputState(state controller.InputState) {
	v.state = state
}

func (v *consoleView) ClearRows() {
	v.rows = v.rows[:0]
}

func (v *consoleView) AppendRow(row controller.Row) {
	v.rows = append(v.rows, row)
}

func (v *consoleView) UpdateRow(row controller.Row) {
	for i := range v.rows {
		if v.rows[i].ID == row.ID {
			v.rows[i] = row
		}
	}
	v.updated = append(v.updated, row)
}

func (v *consoleView) RemoveRow(id int64) {
	for i := range v.rows {
		if v.rows[i].ID == id {
			v.rows = append(v.rows[:i], v.rows[i+1:]...)
			break
		}
	}
	v.removed = append(v.removed, id)
}
