package calculator

import "strconv"

// CommandKind identifies what a Command does.
type CommandKind int

const (
	CommandNone CommandKind = iota
	// Append inserts Command.Char at the end of the display.
	Append
	// Clear empties the display.
	Clear
	// Equals replaces the display with the result of evaluating it.
	Equals
	// MemoryClear resets the memory register to zero.
	MemoryClear
	// MemoryAdd adds the number on the display to the memory register.
	MemoryAdd
	// MemorySub subtracts the number on the display from the memory
	// register.
	MemorySub
	// ToggleTheme switches between the light and dark themes.
	ToggleTheme
)

var commandNames = [...]string{
	CommandNone: "none",
	Append:      "append",
	Clear:       "clear",
	Equals:      "equals",
	MemoryClear: "mc",
	MemoryAdd:   "m+",
	MemorySub:   "m-",
	ToggleTheme: "theme",
}

func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(commandNames) {
		return commandNames[k]
	}
	return "CommandKind(" + itoa(int(k)) + ")"
}

// Command is an action on a calculator's state.
type Command struct {
	Kind CommandKind
	// Char is the character to append for Append commands.
	Char rune
}

// AppendChar returns a command appending r to the display.
func AppendChar(r rune) Command {
	return Command{Kind: Append, Char: r}
}

func (c Command) String() string {
	if c.Kind == Append {
		return "append " + strconv.QuoteRune(c.Char)
	}
	return c.Kind.String()
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
