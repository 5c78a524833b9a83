package calculator

import "unicode"

// Role is the visual role of a keypad control.
type Role int

const (
	// Digit controls are digits and the decimal point.
	Digit Role = iota
	// Operator controls are the arithmetic operators and clear.
	Operator
	// EqualsKey is the equals control.
	EqualsKey
	// Memory controls operate the memory register.
	Memory
)

func (r Role) String() string {
	switch r {
	case Digit:
		return "digit"
	case Operator:
		return "operator"
	case EqualsKey:
		return "equals"
	case Memory:
		return "memory"
	default:
		return "Role(" + itoa(int(r)) + ")"
	}
}

// Button is one control on the keypad.
type Button struct {
	Label   string
	Row     int
	Col     int
	Command Command
	Role    Role
}

// Columns is the width of the keypad grid.
const Columns = 4

// Rows is the height of the keypad grid.
const Rows = 5

var keypad = []Button{
	{"MC", 0, 0, Command{Kind: MemoryClear}, Memory},
	{"M+", 0, 1, Command{Kind: MemoryAdd}, Memory},
	{"M-", 0, 2, Command{Kind: MemorySub}, Memory},
	{"/", 0, 3, AppendChar('/'), Operator},
	{"7", 1, 0, AppendChar('7'), Digit},
	{"8", 1, 1, AppendChar('8'), Digit},
	{"9", 1, 2, AppendChar('9'), Digit},
	{"*", 1, 3, AppendChar('*'), Operator},
	{"4", 2, 0, AppendChar('4'), Digit},
	{"5", 2, 1, AppendChar('5'), Digit},
	{"6", 2, 2, AppendChar('6'), Digit},
	{"-", 2, 3, AppendChar('-'), Operator},
	{"1", 3, 0, AppendChar('1'), Digit},
	{"2", 3, 1, AppendChar('2'), Digit},
	{"3", 3, 2, AppendChar('3'), Digit},
	{"+", 3, 3, AppendChar('+'), Operator},
	{"0", 4, 0, AppendChar('0'), Digit},
	{".", 4, 1, AppendChar('.'), Digit},
	{"C", 4, 2, Command{Kind: Clear}, Operator},
	{"=", 4, 3, Command{Kind: Equals}, EqualsKey},
}

// Keypad returns the controls of a variant in row-major order. Cells of the
// Rows×Columns grid that have no control are left empty.
func Keypad(v Variant) []Button {
	r := make([]Button, 0, len(keypad))
	for _, b := range keypad {
		if v.Supports(b.Command.Kind) {
			r = append(r, b)
		}
	}
	return r
}

// Names of non-character keys, matching the names the window toolkit uses.
const (
	KeyReturn = "Return"
	KeyEnter  = "KP_Enter"
	KeyEscape = "Escape"
)

// Key is a key press. Either Name is a key name like KeyReturn or Rune is the
// typed character.
type Key struct {
	Name string
	Rune rune
	Ctrl bool
}

// KeyCommand returns the command bound to a key press. The boolean is false
// if the key has no binding under cfg.
func KeyCommand(k Key, cfg Config) (Command, bool) {
	if k.Ctrl {
		if k.Name == "T" || unicode.ToLower(k.Rune) == 't' {
			return Command{Kind: ToggleTheme}, cfg.Variant.Supports(ToggleTheme)
		}
		return Command{}, false
	}
	switch k.Name {
	case "":
		// typed character
	case KeyReturn, KeyEnter:
		return Command{Kind: Equals}, true
	case KeyEscape:
		return Command{Kind: Clear}, true
	default:
		return Command{}, false
	}
	switch k.Rune {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '-', '*', '/', '.':
		return AppendChar(k.Rune), true
	case '^':
		return AppendChar('^'), cfg.Power
	case '=':
		return Command{Kind: Equals}, true
	}
	return Command{}, false
}
