package main

import (
	"fmt"
	"io"
	"unicode"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/zephyrtronium/deskcalc"
)

// evaluator prints the display text of expressions.
type evaluator struct {
	ctx  *deskcalc.Context
	opts []deskcalc.ParseOption
	echo bool
	out  io.Writer
}

// text evaluates a single expression.
func (e *evaluator) text(src string) {
	a, err := deskcalc.ParseString(src, e.opts...)
	if err != nil {
		e.fail(src, err)
		return
	}

	e.expr(a)
}

// lines evaluates each non-blank line of in as its own expression. A line
// that fails to parse prints the error text, and evaluation continues with
// the next line.
func (e *evaluator) lines(in io.RuneScanner) error {
	ls := &lineScanner{RuneScanner: in}
	opts := append(e.opts[:len(e.opts):len(e.opts)], deskcalc.StopOn('\n'))

	for {
		if err := skipSpace(ls); err != nil {
			if err == io.EOF {
				return nil
			}

			return errors.Wrap(err, "read")
		}

		a, err := deskcalc.Parse(ls, opts...)
		if err != nil {
			e.fail("", err)

			if err := ls.skipLine(); err != nil {
				if err == io.EOF {
					return nil
				}

				return errors.Wrap(err, "read")
			}

			continue
		}

		e.expr(a)
	}
}

// stream evaluates the expression in in, which may span lines. A parse error
// prints the error text and ends the input.
func (e *evaluator) stream(in io.RuneScanner) error {
	for {
		if err := skipSpace(in); err != nil {
			if err == io.EOF {
				return nil
			}

			return errors.Wrap(err, "read")
		}

		a, err := deskcalc.Parse(in, e.opts...)
		if err != nil {
			e.fail("", err)
			return nil
		}

		e.expr(a)
	}
}

func (e *evaluator) expr(a *deskcalc.Expr) {
	if e.echo {
		fmt.Fprintf(e.out, "%v : ", a)
	}

	r := e.ctx.EvalResult(a)
	if !r.Ok() {
		tlog.Printw("evaluate", "expr", a.String(), "kind", r.Kind(), "err", r.Err)
	}

	fmt.Fprintln(e.out, r.Text())
}

func (e *evaluator) fail(src string, err error) {
	tlog.Printw("parse", "src", src, "kind", deskcalc.KindOf(err), "err", err)

	if e.echo && src != "" {
		fmt.Fprintf(e.out, "%q : ", src)
	}

	fmt.Fprintln(e.out, deskcalc.ErrorText)
}

// skipSpace consumes leading whitespace. It returns io.EOF if nothing else
// remains.
func skipSpace(in io.RuneScanner) error {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			return err
		}

		if !unicode.IsSpace(r) {
			return in.UnreadRune()
		}
	}
}

// lineScanner tracks whether the last rune read ended a line, so that the
// rest of a line that failed to parse can be discarded.
type lineScanner struct {
	io.RuneScanner

	eol, prev bool
}

func (s *lineScanner) ReadRune() (rune, int, error) {
	r, n, err := s.RuneScanner.ReadRune()
	if err == nil {
		s.prev, s.eol = s.eol, r == '\n'
	}

	return r, n, err
}

func (s *lineScanner) UnreadRune() error {
	err := s.RuneScanner.UnreadRune()
	if err == nil {
		s.eol = s.prev
	}

	return err
}

// skipLine discards input through the end of the current line.
func (s *lineScanner) skipLine() error {
	for !s.eol {
		if _, _, err := s.ReadRune(); err != nil {
			return err
		}
	}

	return nil
}
