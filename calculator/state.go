package calculator

import (
	"math"
	"strconv"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/zephyrtronium/deskcalc"
)

// ErrUnsupported is returned for commands the calculator's variant lacks.
var ErrUnsupported = errors.New("command not supported by this variant")

// State is the state of one calculator: its display, memory register and
// theme. It is not safe for concurrent use.
type State struct {
	cfg     Config
	ctx     *deskcalc.Context
	display string
	memory  float64
	theme   Theme
	last    deskcalc.Result
}

// New creates a calculator with an empty display and zero memory.
func New(cfg Config) *State {
	return &State{
		cfg:   cfg,
		ctx:   deskcalc.NewContext(cfg.contextOptions()...),
		theme: cfg.Theme,
	}
}

// Config returns the configuration the calculator was created with.
func (s *State) Config() Config {
	return s.cfg
}

// Display returns the display text.
func (s *State) Display() string {
	return s.display
}

// SetDisplay replaces the display text, as when the user edits it directly.
func (s *State) SetDisplay(text string) {
	s.display = text
}

// Memory returns the value of the memory register.
func (s *State) Memory() float64 {
	return s.memory
}

// Theme returns the current theme.
func (s *State) Theme() Theme {
	return s.theme
}

// LastResult returns the result of the most recent Equals command.
func (s *State) LastResult() deskcalc.Result {
	return s.last
}

// Dispatch applies a command. Commands that the variant does not support
// return ErrUnsupported. Memory commands on a display that is not a number
// return a *MemoryError. In both cases the state is unchanged.
func (s *State) Dispatch(cmd Command) error {
	if !s.cfg.Variant.Supports(cmd.Kind) {
		return errors.Wrap(ErrUnsupported, "%v on %v calculator", cmd, s.cfg.Variant)
	}

	tlog.V("dispatch").Printw("dispatch", "cmd", cmd, "display", s.display, "memory", s.memory)

	switch cmd.Kind {
	case Append:
		if cmd.Char == 0 {
			return errors.New("append of no character")
		}
		s.display += string(cmd.Char)
	case Clear:
		s.display = ""
	case Equals:
		s.equals()
	case MemoryClear:
		s.memory = 0
	case MemoryAdd:
		return s.accumulate(cmd.Kind, 1)
	case MemorySub:
		return s.accumulate(cmd.Kind, -1)
	case ToggleTheme:
		s.theme = s.theme.Toggled()
	}
	return nil
}

func (s *State) equals() {
	r := s.ctx.Evaluate(s.display, s.cfg.parseOptions()...)
	if !r.Ok() {
		tlog.V("dispatch").Printw("evaluation failed", "display", s.display, "kind", r.Kind(), "err", r.Err)
	}
	s.last = r
	s.display = r.Text()
}

func (s *State) accumulate(op CommandKind, sign float64) error {
	v, err := deskcalc.ParseNumber(s.display)
	if err != nil {
		return &MemoryError{Op: op, Display: s.display, Err: err}
	}
	m := s.memory + sign*v
	if math.IsInf(m, 0) || math.IsNaN(m) {
		return &MemoryError{Op: op, Display: s.display, Err: errOverflow}
	}
	s.memory = m
	return nil
}

var errOverflow = errors.New("memory overflow")

// MemoryError is an error returned when a memory command cannot use the
// display.
type MemoryError struct {
	// Op is the memory command.
	Op CommandKind
	// Display is the display text at the time of the command.
	Display string
	// Err is the reason the display could not be used.
	Err error
}

func (err *MemoryError) Error() string {
	return err.Op.String() + ": cannot use " + strconv.Quote(err.Display) + ": " + err.Err.Error()
}

func (err *MemoryError) Unwrap() error {
	return err.Err
}
