package desktop

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

func (w *Window) layout(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.H5(w.theme, w.title).Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(w.layoutEntry),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if w.status == "" {
					return layout.Dimensions{}
				}
				label := material.Caption(w.theme, w.status)
				label.Color = errorColor
				return layout.Inset{Top: unit.Dp(4)}.Layout(gtx, label.Layout)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Flexed(1, w.layoutRows),
		)
	})
}

func (w *Window) layoutEntry(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			border := widget.Border{Color: w.hintColor, CornerRadius: unit.Dp(4), Width: unit.Dp(1)}
			return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					ed := material.Editor(w.theme, &w.editor, w.hint)
					ed.HintColor = w.hintColor
					return ed.Layout(gtx)
				})
			})
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Button(w.theme, &w.addButton, "Add").Layout(gtx)
		}),
	)
}

func (w *Window) layoutRows(gtx layout.Context) layout.Dimensions {
	return material.List(w.theme, &w.list).Layout(gtx, len(w.rows), func(gtx layout.Context, i int) layout.Dimensions {
		row := w.rows[i]
		rw := w.widgetsFor(row.ID)
		return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					box := material.CheckBox(w.theme, &rw.check, row.Display)
					if row.Completed {
						box.Color = hintColor
					}
					return box.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					btn := material.Button(w.theme, &rw.remove, "Delete Task")
					btn.Background = errorColor
					return btn.Layout(gtx)
				}),
			)
		})
	})
}
