// Package calculator is the state machine behind the calculator window.
//
// A State holds the display text, the memory register and the theme. Every
// button and key binding becomes a Command, and State.Dispatch is the only
// way commands change the state. Keypad and KeyCommand are the static tables
// mapping controls and key presses to commands for each Variant.
package calculator
