package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/zephyrtronium/deskcalc/calculator"
)

// Palette is the set of colors for one theme. Foreground is shared by the
// display text and the keypad labels.
type Palette struct {
	Background color.Color
	DisplayBg  color.Color
	Foreground color.Color
	ButtonBg   color.Color
	OperatorBg color.Color
	EqualsBg   color.Color
}

var palettes = map[calculator.Theme]Palette{
	calculator.Light: {
		Background: rgb(0xffffff),
		DisplayBg:  rgb(0xffffff),
		Foreground: rgb(0x000000),
		ButtonBg:   rgb(0xf2f2f2),
		OperatorBg: rgb(0xe6e6e6),
		EqualsBg:   rgb(0x1976d2),
	},
	calculator.Dark: {
		Background: rgb(0x1e1e1e),
		DisplayBg:  rgb(0x1e1e1e),
		Foreground: rgb(0xffffff),
		ButtonBg:   rgb(0x2b2b2b),
		OperatorBg: rgb(0x3c3c3c),
		EqualsBg:   rgb(0x1565c0),
	},
}

// PaletteFor returns the palette of a theme. Unknown themes get the light
// palette.
func PaletteFor(t calculator.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[calculator.Light]
}

// ButtonColor returns the background color of a control with the given role.
// The equals key is drawn by fyne in the primary color, which contrasts with
// its label.
func (p Palette) ButtonColor(r calculator.Role) color.Color {
	switch r {
	case calculator.EqualsKey:
		return p.EqualsBg
	case calculator.Operator:
		return p.OperatorBg
	default:
		return p.ButtonBg
	}
}

func rgb(x uint32) color.NRGBA {
	return color.NRGBA{R: uint8(x >> 16), G: uint8(x >> 8), B: uint8(x), A: 0xff}
}

// Theme applies a Palette to fyne widgets. Fonts, icons and sizes come from
// the default theme.
type Theme struct {
	Palette Palette
	Variant calculator.Theme
}

var _ fyne.Theme = (*Theme)(nil)

// NewTheme returns the fyne theme for a calculator theme.
func NewTheme(t calculator.Theme) *Theme {
	return &Theme{Palette: PaletteFor(t), Variant: t}
}

func (t *Theme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	p := t.Palette

	switch n {
	case theme.ColorNameBackground:
		return p.Background
	case theme.ColorNameInputBackground:
		return p.DisplayBg
	case theme.ColorNameForeground:
		return p.Foreground
	case theme.ColorNameButton:
		return p.ButtonBg
	case theme.ColorNamePrimary:
		return p.EqualsBg
	}

	return theme.DefaultTheme().Color(n, t.fyneVariant())
}

func (t *Theme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (t *Theme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t *Theme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameText {
		return theme.DefaultTheme().Size(n) * 1.5
	}
	return theme.DefaultTheme().Size(n)
}

func (t *Theme) fyneVariant() fyne.ThemeVariant {
	if t.Variant == calculator.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}
