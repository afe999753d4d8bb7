// Package desktop provides the Gio window frontend.
package desktop

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"todo-list/internal/config"
	"todo-list/internal/controller"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
)

var (
	hintColor  = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	errorColor = color.NRGBA{R: 0xD0, G: 0x30, B: 0x30, A: 0xFF}
)

type rowWidgets struct {
	check  widget.Bool
	remove widget.Clickable
}

// Window is the desktop frontend. All fields are owned by the event loop
// goroutine; the controller calls the view methods from that goroutine.
type Window struct {
	ctx   context.Context
	ctrl  *controller.Controller
	theme *material.Theme
	exit  func(error)

	title            string
	placeholder      string
	emptyPlaceholder string

	editor    widget.Editor
	addButton widget.Clickable
	list      widget.List
	hint      string
	hintColor color.NRGBA
	status    string

	rows    []controller.Row
	widgets map[int64]*rowWidgets
	err     error
}

// Option configures a Window
type Option func(*Window)

// WithExitHandler replaces the function called when the window closes. It
// receives the storage error that closed the window, if any. The default
// handler exits the process.
func WithExitHandler(fn func(error)) Option {
	return func(w *Window) {
		w.exit = fn
	}
}

// New creates the desktop frontend
func New(cfg *config.Config, opts ...Option) *Window {
	theme := material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	w := &Window{
		ctx:              context.Background(),
		theme:            theme,
		exit:             exitProcess,
		title:            cfg.Display.Title,
		placeholder:      cfg.Display.Placeholder,
		emptyPlaceholder: cfg.Display.EmptyPlaceholder,
		hint:             cfg.Display.Placeholder,
		hintColor:        hintColor,
		widgets:          make(map[int64]*rowWidgets),
	}
	w.editor.SingleLine = true
	w.editor.Submit = true
	w.editor.MaxLen = cfg.Validation.TextMaxLength
	w.list.Axis = layout.Vertical

	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run loads the list, opens the window and hands the main goroutine to
// Gio. It does not return; the exit handler runs when the window closes.
func (w *Window) Run(ctx context.Context, ctrl *controller.Controller) error {
	if err := w.bind(ctx, ctrl); err != nil {
		return err
	}

	go func() {
		window := new(app.Window)
		window.Option(app.Title(w.title), app.Size(unit.Dp(480), unit.Dp(640)))
		w.exit(w.loop(ctx, window))
	}()
	app.Main()
	return nil
}

func (w *Window) bind(ctx context.Context, ctrl *controller.Controller) error {
	w.ctx = ctx
	w.ctrl = ctrl
	w.editor.MaxLen = ctrl.MaxTextLength()
	return ctrl.RefreshList(ctx)
}

func (w *Window) loop(ctx context.Context, window *app.Window) error {
	stop := context.AfterFunc(ctx, func() {
		window.Perform(system.ActionClose)
	})
	defer stop()

	var ops op.Ops
	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			if w.err != nil {
				return w.err
			}
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.update(gtx)
			if w.err != nil {
				window.Perform(system.ActionClose)
			}
			w.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// update dispatches the widget events of the last frame to the controller
func (w *Window) update(gtx layout.Context) {
	for {
		ev, ok := w.editor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.SubmitEvent); ok {
			w.submit()
		}
	}
	if w.addButton.Clicked(gtx) {
		w.submit()
	}

	rows := append([]controller.Row(nil), w.rows...)
	for _, row := range rows {
		rw := w.widgetsFor(row.ID)
		if rw.check.Update(gtx) {
			w.toggle(row.ID)
		}
		if rw.remove.Clicked(gtx) {
			w.remove(row.ID)
		}
	}
}

func (w *Window) submit() {
	w.status = ""
	w.handle(w.ctrl.AddTask(w.ctx, w.editor.Text()))
}

func (w *Window) toggle(id int64) {
	w.handle(w.ctrl.ToggleTask(w.ctx, id))
}

func (w *Window) remove(id int64) {
	w.handle(w.ctrl.DeleteTask(w.ctx, id))
}

// handle shows recoverable errors under the entry and records storage
// errors so the loop closes the window
func (w *Window) handle(err error) {
	if err == nil {
		return
	}
	if errors.IsFatal(err) {
		logging.Default().Error("storage failure", "err", err)
		w.err = err
		return
	}
	w.status = errors.GetUserMessage(err)
}

func (w *Window) widgetsFor(id int64) *rowWidgets {
	rw, ok := w.widgets[id]
	if !ok {
		rw = &rowWidgets{}
		w.widgets[id] = rw
	}
	return rw
}

// Err returns the storage error that closed the window, if any
func (w *Window) Err() error {
	return w.err
}

func (w *Window) ClearInput() {
	w.editor.SetText("")
}

func (w *Window) SetInputState(state controller.InputState) {
	switch state {
	case controller.InputEmpty:
		w.editor.SetText("")
		w.hint = w.emptyPlaceholder
		w.hintColor = errorColor
	default:
		w.hint = w.placeholder
		w.hintColor = hintColor
	}
}

func (w *Window) ClearRows() {
	w.rows = w.rows[:0]
	w.widgets = make(map[int64]*rowWidgets)
}

func (w *Window) AppendRow(row controller.Row) {
	w.rows = append(w.rows, row)
	w.widgetsFor(row.ID).check.Value = row.Completed
}

func (w *Window) UpdateRow(row controller.Row) {
	for i := range w.rows {
		if w.rows[i].ID == row.ID {
			w.rows[i] = row
			w.widgetsFor(row.ID).check.Value = row.Completed
			return
		}
	}
}

func (w *Window) RemoveRow(id int64) {
	for i := range w.rows {
		if w.rows[i].ID == id {
			w.rows = append(w.rows[:i], w.rows[i+1:]...)
			break
		}
	}
	delete(w.widgets, id)
}

func exitProcess(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetUserMessage(err))
		os.Exit(1)
	}
	os.Exit(0)
}
