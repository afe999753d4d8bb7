// Package tui provides the terminal frontend.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-list/internal/config"
	"todo-list/internal/controller"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the bubbletea model of the task list. It is also the
// controller's view: the controller only calls it from Update.
type Model struct {
	ctx  context.Context
	ctrl *controller.Controller

	title            string
	placeholder      string
	emptyPlaceholder string

	input  textinput.Model
	rows   []controller.Row
	cursor int
	focus  focus
	state  controller.InputState
	status string
	err    error
}

// New creates the terminal frontend
func New(cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = cfg.Display.Placeholder
	ti.PlaceholderStyle = placeholderStyle
	ti.CharLimit = cfg.Validation.TextMaxLength
	ti.Width = cfg.Validation.TextMaxLength
	ti.Focus()

	return &Model{
		ctx:              context.Background(),
		title:            cfg.Display.Title,
		placeholder:      cfg.Display.Placeholder,
		emptyPlaceholder: cfg.Display.EmptyPlaceholder,
		input:            ti,
		focus:            focusInput,
	}
}

// Run loads the list and runs the program until the user quits or a
// storage error occurs
func (m *Model) Run(ctx context.Context, ctrl *controller.Controller) error {
	if err := m.bind(ctx, ctrl); err != nil {
		return err
	}

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}
	return m.err
}

func (m *Model) bind(ctx context.Context, ctrl *controller.Controller) error {
	m.ctx = ctx
	m.ctrl = ctrl
	m.input.CharLimit = ctrl.MaxTextLength()
	return ctrl.RefreshList(ctx)
}

// Err returns the error that stopped the program, if any
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		if w := msg.Width - 4; w > 0 && w < m.input.CharLimit {
			m.input.Width = w
		}
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.status = ""
		return m, m.handle(m.ctrl.AddTask(m.ctx, m.input.Value()))
	case "tab", "esc", "down":
		if len(m.rows) > 0 {
			m.focus = focusList
			m.input.Blur()
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case " ", "x":
		if row, ok := m.selected(); ok {
			return m, m.handle(m.ctrl.ToggleTask(m.ctx, row.ID))
		}
	case "d", "delete":
		if row, ok := m.selected(); ok {
			return m, m.handle(m.ctrl.DeleteTask(m.ctx, row.ID))
		}
	case "tab", "a", "i", "esc":
		m.focus = focusInput
		return m, m.input.Focus()
	}
	return m, nil
}

// handle reports recoverable errors in the status line and stops the
// program on storage errors
func (m *Model) handle(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if errors.IsFatal(err) {
		logging.Default().Error("storage failure", "err", err)
		m.err = err
		return tea.Quit
	}
	m.status = errors.GetUserMessage(err)
	return nil
}

func (m *Model) selected() (controller.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return controller.Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, row := range m.rows {
		prefix := "  "
		if m.focus == focusList && i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		line := row.Display
		if row.Completed {
			mark = "[x]"
			line = doneStyle.Render(line)
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, mark, line)
	}

	help := "enter: add • tab: list • ctrl+c: quit"
	if m.focus == focusList {
		help = "space: conclude task • d: delete task • tab: new task • q: quit"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func (m *Model) ClearInput() {
	m.input.SetValue("")
}

func (m *Model) SetInputState(state controller.InputState) {
	m.state = state
	switch state {
	case controller.InputEmpty:
		m.input.SetValue("")
		m.input.Placeholder = m.emptyPlaceholder
		m.input.PlaceholderStyle = errorStyle
	default:
		m.input.Placeholder = m.placeholder
		m.input.PlaceholderStyle = placeholderStyle
	}
}

func (m *Model) ClearRows() {
	m.rows = m.rows[:0]
}

func (m *Model) AppendRow(row controller.Row) {
	m.rows = append(m.rows, row)
	m.clampCursor()
}

func (m *Model) UpdateRow(row controller.Row) {
	for i := range m.rows {
		if m.rows[i].ID == row.ID {
			m.rows[i] = row
			return
		}
	}
}

func (m *Model) RemoveRow(id int64) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			break
		}
	}
	m.clampCursor()
	if len(m.rows) == 0 && m.focus == focusList {
		m.focus = focusInput
		m.input.Focus()
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
