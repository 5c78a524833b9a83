// Package ui shows a calculator in a fyne window.
//
// The window has a heading, an editable display and the keypad of the
// calculator's variant. Buttons, the keyboard and edits to the display all
// go through calculator.State.Dispatch; a status line below the keypad shows
// whether memory holds a value and the last command error.
package ui
