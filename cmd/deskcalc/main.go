package main

import (
	"bufio"
	"io"
	"os"

	"fyne.io/fyne/v2/app"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/calculator"
	"github.com/zephyrtronium/deskcalc/ui"
)

const appID = "io.github.zephyrtronium.deskcalc"

func main() {
	windowCmd := &cli.Command{
		Name:        "window",
		Description: "open the calculator window",
		Action:      windowAct,
	}

	evalCmd := &cli.Command{
		Name:        "eval",
		Description: "evaluate expressions from arguments, a file or stdin",
		Action:      evalAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("in", "", "input file (default stdin if no args given)"),
			cli.NewFlag("lines,n", false, "evaluate separate input lines as separate expressions"),
			cli.NewFlag("echo", false, "print parse trees"),
		},
	}

	replCmd := &cli.Command{
		Name:        "repl",
		Description: "drive the calculator from the terminal",
		Action:      replAct,
	}

	root := &cli.Command{
		Name:        "deskcalc",
		Description: "deskcalc is a desktop calculator",
		Action:      windowAct,
		Flags: []*cli.Flag{
			cli.NewFlag("variant", "extended", "calculator variant: basic or extended"),
			cli.NewFlag("theme", "light", "initial theme: light or dark"),
			cli.NewFlag("prec", deskcalc.DefaultPrec, "precision of calculations in bits"),
			cli.NewFlag("pow", false, "allow ^ for exponentiation"),
			cli.NewFlag("verbosity,v", "", "logger verbosity topics (e.g. dispatch)"),
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			windowCmd,
			evalCmd,
			replCmd,
		},
	}

	cli.RunAndExit(root, os.Args, os.Environ())
}

// setup reads the calculator configuration from the shared flags.
func setup(c *cli.Command) (cfg calculator.Config, err error) {
	tlog.SetVerbosity(c.String("verbosity"))

	cfg.Variant, err = calculator.ParseVariant(c.String("variant"))
	if err != nil {
		return cfg, errors.Wrap(err, "variant")
	}

	cfg.Theme, err = calculator.ParseTheme(c.String("theme"))
	if err != nil {
		return cfg, errors.Wrap(err, "theme")
	}

	prec := c.Int("prec")
	if prec <= 0 {
		return cfg, errors.New("precision (%d) must be positive", prec)
	}

	cfg.Prec = uint(prec)
	cfg.Power = c.Bool("pow")

	if err = cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "config")
	}

	return cfg, nil
}

func windowAct(c *cli.Command) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}

	tlog.Printw("open window", "variant", cfg.Variant, "theme", cfg.Theme, "prec", cfg.Prec, "pow", cfg.Power)

	w := ui.New(app.NewWithID(appID), calculator.New(cfg))
	w.ShowAndRun()

	return nil
}

func evalAct(c *cli.Command) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}

	e := &evaluator{
		ctx:  deskcalc.NewContext(deskcalc.Prec(cfg.Prec)),
		echo: c.Bool("echo"),
		out:  os.Stdout,
	}
	if cfg.Power {
		e.opts = append(e.opts, deskcalc.AllowPower())
	}

	f, err := infile(c.String("in"), len(c.Args) == 0)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	if f != nil {
		defer f.Close()

		if c.Bool("lines") {
			err = e.lines(bufio.NewReader(f))
		} else {
			err = e.stream(bufio.NewReader(f))
		}
		if err != nil {
			return errors.Wrap(err, "input")
		}
	}

	for _, a := range c.Args {
		e.text(a)
	}

	return nil
}

func replAct(c *cli.Command) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}

	return runREPL(calculator.New(cfg))
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}

	return nil, nil
}
