package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/zephyrtronium/deskcalc/calculator"
)

// displayEntry is the display widget. A focused entry receives key events
// before the canvas, so it applies the window's key bindings itself and
// leaves only unbound input to ordinary editing.
type displayEntry struct {
	widget.Entry

	w *Window
}

func newDisplayEntry(w *Window) *displayEntry {
	e := &displayEntry{w: w}
	e.Wrapping = fyne.TextTruncate
	e.ExtendBaseWidget(e)
	return e
}

func (e *displayEntry) bound(k calculator.Key) bool {
	_, ok := calculator.KeyCommand(k, e.w.state.Config())
	return ok
}

// TypedRune appends bound characters to the end of the display, like the
// keypad, and inserts anything else at the cursor.
func (e *displayEntry) TypedRune(r rune) {
	k := calculator.Key{Rune: r}
	if !e.bound(k) {
		e.Entry.TypedRune(r)
		return
	}

	e.w.Key(k)
	e.CursorColumn = len([]rune(e.Text))
	e.Refresh()
}

func (e *displayEntry) TypedKey(ev *fyne.KeyEvent) {
	k := calculator.Key{Name: string(ev.Name)}
	if !e.bound(k) {
		e.Entry.TypedKey(ev)
		return
	}

	e.w.Key(k)
}

func (e *displayEntry) TypedShortcut(s fyne.Shortcut) {
	cs, ok := s.(*desktop.CustomShortcut)
	if !ok || cs.Modifier != fyne.KeyModifierControl {
		e.Entry.TypedShortcut(s)
		return
	}

	k := calculator.Key{Name: string(cs.KeyName), Ctrl: true}
	if !e.bound(k) {
		e.Entry.TypedShortcut(s)
		return
	}

	e.w.Key(k)
}
