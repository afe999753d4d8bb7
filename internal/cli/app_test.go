package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"todo-list/internal/config"
	"todo-list/internal/controller"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/services"
)

// setupTestApp creates an App backed by an in-memory store
func setupTestApp(t *testing.T) (*App, *bytes.Buffer, func()) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)

	cfg := config.NewConfig()
	out := &bytes.Buffer{}
	app := NewApp(services.NewServiceContainer(repo, cfg), cfg, out)

	cleanup := func() {
		repo.Close()
	}
	return app, out, cleanup
}

// addTasks stores tasks directly through the service layer
func addTasks(t *testing.T, app *App, texts ...string) {
	t.Helper()
	for _, text := range texts {
		_, err := app.services.TaskService.CreateTask(context.Background(), text)
		require.NoError(t, err)
	}
}

// fakeFrontend records the rows it was asked to show and runs a script
// against the controller instead of an event loop
type fakeFrontend struct {
	consoleView
	script func(ctx context.Context, ctrl *controller.Controller) error
	ran    bool
}

func (f *fakeFrontend) Run(ctx context.Context, ctrl *controller.Controller) error {
	f.ran = true
	if err := ctrl.RefreshList(ctx); err != nil {
		return err
	}
	if f.script != nil {
		return f.script(ctx, ctrl)
	}
	return nil
}
