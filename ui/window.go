package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/zephyrtronium/deskcalc/calculator"
)

const (
	// Title is the window title.
	Title = "Calculator"
	// Heading is the label above the display.
	Heading = "CALCULATOR"
)

// Window is a calculator window showing a calculator.State.
type Window struct {
	app   fyne.App
	win   fyne.Window
	state *calculator.State

	display *displayEntry
	status  *widget.Label
	bg      *canvas.Rectangle
	keys    map[string]*key

	// syncing is set while the display entry is updated from the state so
	// that the change does not flow back.
	syncing bool
	theme   calculator.Theme
}

type key struct {
	btn  *widget.Button
	rect *canvas.Rectangle
	role calculator.Role
}

// New creates the window for a calculator in app a. The window is not shown.
func New(a fyne.App, s *calculator.State) *Window {
	w := &Window{
		app:   a,
		win:   a.NewWindow(Title),
		state: s,
		keys:  make(map[string]*key),
		theme: s.Theme(),
	}

	heading := widget.NewLabelWithStyle(Heading, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	w.display = newDisplayEntry(w)
	w.display.OnChanged = func(text string) {
		if w.syncing {
			return
		}
		w.state.SetDisplay(text)
	}

	w.status = widget.NewLabel("")
	w.bg = canvas.NewRectangle(PaletteFor(w.theme).Background)

	// Some drivers drop the title passed to NewWindow.
	w.win.SetTitle(Title)

	body := container.NewBorder(
		container.NewVBox(heading, w.display),
		w.status,
		nil, nil,
		w.keypad(),
	)
	w.win.SetContent(container.NewStack(w.bg, container.NewPadded(body)))
	w.win.Resize(fyne.NewSize(320, 460))
	w.win.SetFixedSize(true)

	c := w.win.Canvas()
	c.SetOnTypedRune(w.TypedRune)
	c.SetOnTypedKey(w.TypedKey)
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyT, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		w.Key(calculator.Key{Name: string(fyne.KeyT), Ctrl: true})
	})

	w.applyTheme()
	w.refresh(nil)

	return w
}

func (w *Window) keypad() fyne.CanvasObject {
	cells := make([]fyne.CanvasObject, calculator.Rows*calculator.Columns)
	for i := range cells {
		cells[i] = layout.NewSpacer()
	}

	for _, b := range calculator.Keypad(w.state.Config().Variant) {
		cmd := b.Command
		k := &key{
			btn:  widget.NewButton(b.Label, func() { w.Dispatch(cmd) }),
			role: b.Role,
		}

		var obj fyne.CanvasObject = k.btn
		if b.Role == calculator.EqualsKey {
			k.btn.Importance = widget.HighImportance
		} else {
			k.btn.Importance = widget.LowImportance
			k.rect = canvas.NewRectangle(nil)
			obj = container.NewStack(k.rect, k.btn)
		}

		w.keys[b.Label] = k
		cells[b.Row*calculator.Columns+b.Col] = obj
	}

	return container.NewGridWithColumns(calculator.Columns, cells...)
}

// Dispatch applies a command to the calculator and updates the window.
// Errors are shown in the status line.
func (w *Window) Dispatch(cmd calculator.Command) {
	err := w.state.Dispatch(cmd)
	if err != nil {
		tlog.Printw("command failed", "cmd", cmd, "err", err)
	}

	if w.state.Theme() != w.theme {
		w.theme = w.state.Theme()
		w.applyTheme()
	}

	w.refresh(err)
}

// Key handles a key press through the calculator's key bindings.
func (w *Window) Key(k calculator.Key) {
	cmd, ok := calculator.KeyCommand(k, w.state.Config())
	if !ok {
		return
	}

	w.Dispatch(cmd)
}

// TypedRune handles characters typed while the display is not focused.
func (w *Window) TypedRune(r rune) {
	w.Key(calculator.Key{Rune: r})
}

// TypedKey handles named keys pressed while the display is not focused.
func (w *Window) TypedKey(ev *fyne.KeyEvent) {
	w.Key(calculator.Key{Name: string(ev.Name)})
}

func (w *Window) refresh(err error) {
	if w.display.Text != w.state.Display() {
		w.syncing = true
		w.display.SetText(w.state.Display())
		w.syncing = false
	}

	var status string
	if w.state.Memory() != 0 {
		status = "M"
	}

	switch {
	case err == nil:
	case errors.Is(err, calculator.ErrUnsupported):
		status = join(status, "not available")
	default:
		status = join(status, err.Error())
	}

	w.status.SetText(status)
}

func (w *Window) applyTheme() {
	p := PaletteFor(w.theme)

	w.app.Settings().SetTheme(NewTheme(w.theme))

	w.bg.FillColor = p.Background
	w.bg.Refresh()

	for _, k := range w.keys {
		if k.rect == nil {
			continue
		}

		k.rect.FillColor = p.ButtonColor(k.role)
		k.rect.Refresh()
	}
}

// Display returns the text in the display entry.
func (w *Window) Display() string {
	return w.display.Text
}

// Status returns the text of the status line.
func (w *Window) Status() string {
	return w.status.Text
}

// Button returns the keypad control with the given label, or nil.
func (w *Window) Button(label string) *widget.Button {
	if k := w.keys[label]; k != nil {
		return k.btn
	}

	return nil
}

// Entry returns the display entry, which applies the same key bindings as
// the window while it has focus.
func (w *Window) Entry() fyne.Focusable {
	return w.display
}

// Window returns the underlying fyne window.
func (w *Window) Window() fyne.Window {
	return w.win
}

// ShowAndRun shows the window and runs the application until it is closed.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

func join(a, b string) string {
	if a == "" {
		return b
	}

	return a + "  " + b
}
