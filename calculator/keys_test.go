package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(bs []Button) []string {
	r := make([]string, len(bs))
	for i, b := range bs {
		r[i] = b.Label
	}
	return r
}

func TestKeypad(t *testing.T) {
	ext := Keypad(Extended)
	assert.Equal(t, []string{
		"MC", "M+", "M-", "/",
		"7", "8", "9", "*",
		"4", "5", "6", "-",
		"1", "2", "3", "+",
		"0", ".", "C", "=",
	}, labels(ext))

	basic := Keypad(Basic)
	assert.Equal(t, []string{
		"/",
		"7", "8", "9", "*",
		"4", "5", "6", "-",
		"1", "2", "3", "+",
		"0", ".", "C", "=",
	}, labels(basic))
}

func TestKeypadGrid(t *testing.T) {
	seen := map[[2]int]string{}

	for _, b := range Keypad(Extended) {
		require.True(t, b.Row >= 0 && b.Row < Rows, "%s row %d", b.Label, b.Row)
		require.True(t, b.Col >= 0 && b.Col < Columns, "%s col %d", b.Label, b.Col)

		at := [2]int{b.Row, b.Col}
		if prev, ok := seen[at]; ok {
			t.Errorf("%s and %s share cell %v", prev, b.Label, at)
		}
		seen[at] = b.Label
	}
}

func TestKeypadRoles(t *testing.T) {
	want := map[string]Role{
		"/": Operator, "*": Operator, "-": Operator, "+": Operator, "C": Operator,
		"=":  EqualsKey,
		"MC": Memory, "M+": Memory, "M-": Memory,
		"0": Digit, "5": Digit, ".": Digit,
	}

	for _, b := range Keypad(Extended) {
		if r, ok := want[b.Label]; ok {
			assert.Equal(t, r, b.Role, "role of %s", b.Label)
		}

		if b.Command.Kind == Append {
			assert.Equal(t, b.Label, string(b.Command.Char))
		}
	}
}

func TestKeyCommand(t *testing.T) {
	ext := DefaultConfig()
	basic := Config{Variant: Basic}
	pow := DefaultConfig()
	pow.Power = true

	cases := []struct {
		name string
		key  Key
		cfg  Config
		cmd  Command
		ok   bool
	}{
		{"digit", Key{Rune: '7'}, ext, AppendChar('7'), true},
		{"zero", Key{Rune: '0'}, basic, AppendChar('0'), true},
		{"plus", Key{Rune: '+'}, ext, AppendChar('+'), true},
		{"dot", Key{Rune: '.'}, basic, AppendChar('.'), true},
		{"slash", Key{Rune: '/'}, ext, AppendChar('/'), true},
		{"equals", Key{Rune: '='}, ext, Command{Kind: Equals}, true},
		{"return", Key{Name: KeyReturn}, ext, Command{Kind: Equals}, true},
		{"enter", Key{Name: KeyEnter}, basic, Command{Kind: Equals}, true},
		{"escape", Key{Name: KeyEscape}, basic, Command{Kind: Clear}, true},
		{"ctrl-t", Key{Rune: 't', Ctrl: true}, ext, Command{Kind: ToggleTheme}, true},
		{"ctrl-T", Key{Name: "T", Ctrl: true}, ext, Command{Kind: ToggleTheme}, true},
		{"ctrl-t-basic", Key{Rune: 't', Ctrl: true}, basic, Command{Kind: ToggleTheme}, false},
		{"ctrl-7", Key{Rune: '7', Ctrl: true}, ext, Command{}, false},
		{"caret", Key{Rune: '^'}, ext, AppendChar('^'), false},
		{"caret-pow", Key{Rune: '^'}, pow, AppendChar('^'), true},
		{"letter", Key{Rune: 'x'}, ext, Command{}, false},
		{"paren", Key{Rune: '('}, ext, Command{}, false},
		{"tab", Key{Name: "Tab"}, ext, Command{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cmd, ok := KeyCommand(c.key, c.cfg)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.cmd, cmd)
		})
	}
}

func TestParseConfig(t *testing.T) {
	v, err := ParseVariant("Basic")
	require.NoError(t, err)
	assert.Equal(t, Basic, v)

	v, err = ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, Extended, v)

	_, err = ParseVariant("scientific")
	assert.Error(t, err)

	th, err := ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, th)
	assert.Equal(t, Light, th.Toggled())

	_, err = ParseTheme("solarized")
	assert.Error(t, err)

	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{Variant: Basic, Theme: Dark}.Validate())
	assert.Error(t, Config{Variant: Variant(7)}.Validate())
}
