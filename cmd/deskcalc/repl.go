package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/peterh/liner"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/calculator"
)

const historyFile = ".deskcalc_history"

const replHelp = `Type an expression to append it to the display and press equals.
The display keeps the result, so "+4" continues from it.
  :c      clear the display
  :mc     clear memory
  :m+     add the display to memory
  :m-     subtract the display from memory
  :mem    show memory
  :theme  toggle the theme
  :quit   exit`

var replCommands = map[string]calculator.CommandKind{
	":c":     calculator.Clear,
	":mc":    calculator.MemoryClear,
	":m+":    calculator.MemoryAdd,
	":m-":    calculator.MemorySub,
	":theme": calculator.ToggleTheme,
}

func runREPL(s *calculator.State) (err error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(err, "home dir")
	}

	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	r := &repl{s: s, out: os.Stdout}

	for {
		line, err := ln.Prompt(r.prompt())
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			return errors.Wrap(err, "prompt")
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}

		if r.line(line) {
			break
		}
	}

	f, err := os.Create(histPath)
	if err != nil {
		tlog.Printw("save history", "path", histPath, "err", err)
		return nil
	}

	defer func() {
		e := f.Close()
		if err == nil && e != nil {
			err = errors.Wrap(e, "close history")
		}
	}()

	if _, err = ln.WriteHistory(f); err != nil {
		return errors.Wrap(err, "write history")
	}

	return nil
}

// repl runs console lines against a calculator.
type repl struct {
	s   *calculator.State
	out io.Writer
}

func (r *repl) prompt() string {
	if r.s.Memory() != 0 {
		return "M> "
	}

	return "> "
}

// line handles one console line and reports whether the session is over.
func (r *repl) line(line string) (quit bool) {
	line = strings.TrimSpace(line)

	switch line {
	case "":
		return false
	case ":quit", ":q":
		return true
	case ":help", ":h":
		fmt.Fprintln(r.out, replHelp)
		return false
	case ":mem":
		fmt.Fprintln(r.out, deskcalc.Format(big.NewFloat(r.s.Memory())))
		return false
	}

	if kind, ok := replCommands[line]; ok {
		if !r.dispatch(calculator.Command{Kind: kind}) {
			return false
		}

		switch kind {
		case calculator.ToggleTheme:
			fmt.Fprintln(r.out, "theme:", r.s.Theme())
		case calculator.MemoryAdd, calculator.MemorySub:
			fmt.Fprintln(r.out, "memory:", deskcalc.Format(big.NewFloat(r.s.Memory())))
		}

		return false
	}

	if strings.HasPrefix(line, ":") {
		fmt.Fprintln(r.out, "unknown command", strconv.Quote(line), "(try :help)")
		return false
	}

	for _, c := range line {
		if unicode.IsSpace(c) {
			continue
		}

		if !r.dispatch(calculator.AppendChar(c)) {
			return false
		}
	}

	r.dispatch(calculator.Command{Kind: calculator.Equals})
	fmt.Fprintln(r.out, r.s.Display())

	return false
}

func (r *repl) dispatch(cmd calculator.Command) bool {
	err := r.s.Dispatch(cmd)
	if err == nil {
		return true
	}

	tlog.V("dispatch").Printw("command failed", "cmd", cmd, "err", err)
	fmt.Fprintln(r.out, "error:", err)

	return false
}
