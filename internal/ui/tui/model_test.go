package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/config"
	"todo-list/internal/controller"
	"todo-list/internal/domain"
	apperrors "todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/services"
)

func setupModel(t *testing.T) (*Model, services.TaskService) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	cfg := config.NewConfig()
	service := services.NewTaskServiceWithConfig(repo, cfg)

	m := New(cfg)
	require.NoError(t, m.bind(context.Background(), controller.New(service, m)))
	return m, service
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func pressRune(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func TestModel_AddTask(t *testing.T) {
	m, service := setupModel(t)

	typeText(m, "buy milk")
	assert.Equal(t, "buy milk", m.input.Value())

	press(m, tea.KeyEnter)
	assert.Empty(t, m.input.Value())
	require.Len(t, m.rows, 1)
	assert.Equal(t, "buy milk", m.rows[0].Text)

	typeText(m, "call mom")
	press(m, tea.KeyEnter)
	require.Len(t, m.rows, 2)
	assert.Equal(t, "call mom", m.rows[0].Text, "newest task is first")

	tasks, err := service.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestModel_EmptyInput(t *testing.T) {
	m, _ := setupModel(t)

	typeText(m, "   ")
	press(m, tea.KeyEnter)

	assert.Equal(t, controller.InputEmpty, m.state)
	assert.Equal(t, "Empty input", m.input.Placeholder)
	assert.Empty(t, m.input.Value(), "blank text is cleared so the placeholder shows")
	assert.Empty(t, m.rows)

	typeText(m, "next")
	press(m, tea.KeyEnter)
	assert.Equal(t, controller.InputNormal, m.state)
	assert.Equal(t, "Enter a task", m.input.Placeholder)
}

func TestModel_InputLimitedToMaxLength(t *testing.T) {
	m, _ := setupModel(t)

	typeText(m, strings.Repeat("a", 60))
	assert.Len(t, m.input.Value(), 50)
}

func TestModel_ToggleAndDelete(t *testing.T) {
	m, service := setupModel(t)
	ctx := context.Background()

	for _, text := range []string{"first", "second"} {
		typeText(m, text)
		press(m, tea.KeyEnter)
	}

	press(m, tea.KeyTab)
	assert.Equal(t, focusList, m.focus)

	pressRune(m, 'j')
	assert.Equal(t, 1, m.cursor)

	press(m, tea.KeySpace)
	assert.True(t, m.rows[1].Completed)
	assert.Equal(t, domain.StrikeThrough("first"), m.rows[1].Display)

	press(m, tea.KeySpace)
	assert.False(t, m.rows[1].Completed)
	assert.Equal(t, "first", m.rows[1].Display)

	pressRune(m, 'k')
	pressRune(m, 'd')
	require.Len(t, m.rows, 1)
	assert.Equal(t, "first", m.rows[0].Text)
	assert.Equal(t, 0, m.cursor)

	tasks, err := service.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "first", tasks[0].Text)

	pressRune(m, 'd')
	assert.Empty(t, m.rows)
	assert.Equal(t, focusInput, m.focus, "focus returns to the entry when the list empties")
}

func TestModel_QuitKeys(t *testing.T) {
	m, _ := setupModel(t)

	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	typeText(m, "q")
	assert.Equal(t, "q", m.input.Value(), "q is text while the entry has focus")
}

type failingService struct {
	services.TaskService
}

func (f failingService) ToggleTask(ctx context.Context, id int64) error {
	return apperrors.NewDatabaseError("toggle task", errors.New("disk I/O error"))
}

func TestModel_StorageErrorStopsProgram(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	cfg := config.NewConfig()
	service := services.NewTaskServiceWithConfig(repo, cfg)
	_, err = service.CreateTask(context.Background(), "task")
	require.NoError(t, err)

	m := New(cfg)
	require.NoError(t, m.bind(context.Background(), controller.New(failingService{service}, m)))

	press(m, tea.KeyTab)
	cmd := press(m, tea.KeySpace)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, apperrors.IsErrorType(m.Err(), apperrors.ErrorTypeDatabase))
}

func TestModel_View(t *testing.T) {
	m, _ := setupModel(t)

	typeText(m, "abc")
	press(m, tea.KeyEnter)
	press(m, tea.KeyTab)
	press(m, tea.KeySpace)

	out := m.View()
	assert.Contains(t, out, "Task List")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "d: delete task")
}
