package calculator

import (
	"strings"

	"tlog.app/go/errors"

	"github.com/zephyrtronium/deskcalc"
)

// Variant selects which controls a calculator has.
type Variant int

const (
	// Basic has digits, the four operators, decimal point, clear and equals.
	Basic Variant = iota
	// Extended adds the memory register and the theme toggle.
	Extended
)

// ParseVariant parses a variant name, "basic" or "extended".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return Basic, nil
	case "extended", "":
		return Extended, nil
	}
	return 0, errors.New("unknown variant %q", s)
}

func (v Variant) String() string {
	switch v {
	case Basic:
		return "basic"
	case Extended:
		return "extended"
	default:
		return "Variant(" + itoa(int(v)) + ")"
	}
}

// Supports reports whether the variant handles commands of kind k.
func (v Variant) Supports(k CommandKind) bool {
	switch k {
	case Append, Clear, Equals:
		return true
	case MemoryClear, MemoryAdd, MemorySub, ToggleTheme:
		return v == Extended
	default:
		return false
	}
}

// Theme is a color scheme selection.
type Theme int

const (
	Light Theme = iota
	Dark
)

// ParseTheme parses a theme name, "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return 0, errors.New("unknown theme %q", s)
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "Theme(" + itoa(int(t)) + ")"
	}
}

// Config is the configuration of a calculator.
type Config struct {
	// Variant selects the available controls.
	Variant Variant
	// Theme is the initial theme.
	Theme Theme
	// Prec is the precision of evaluation in bits. Zero means
	// deskcalc.DefaultPrec.
	Prec uint
	// Power enables the ^ operator in the display and from the keyboard.
	Power bool
}

// DefaultConfig returns the configuration of the extended calculator.
func DefaultConfig() Config {
	return Config{
		Variant: Extended,
		Theme:   Light,
		Prec:    deskcalc.DefaultPrec,
	}
}

// Validate checks that the configuration can be used.
func (cfg Config) Validate() error {
	if cfg.Variant != Basic && cfg.Variant != Extended {
		return errors.New("invalid variant %v", cfg.Variant)
	}
	if cfg.Theme != Light && cfg.Theme != Dark {
		return errors.New("invalid theme %v", cfg.Theme)
	}
	if cfg.Variant == Basic && cfg.Theme != Light {
		return errors.New("the basic variant has no %v theme", cfg.Theme)
	}
	if cfg.Prec > 1<<16 {
		return errors.New("precision %d is too large", cfg.Prec)
	}
	return nil
}

func (cfg Config) parseOptions() []deskcalc.ParseOption {
	if cfg.Power {
		return []deskcalc.ParseOption{deskcalc.AllowPower()}
	}
	return nil
}

func (cfg Config) contextOptions() []deskcalc.ContextOption {
	if cfg.Prec == 0 {
		return nil
	}
	return []deskcalc.ContextOption{deskcalc.Prec(cfg.Prec)}
}
