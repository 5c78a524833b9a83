package deskcalc

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	powopt struct{}
	eofopt struct {
		ws string
	}
)

// parsectx holds general data for parsing.
type parsectx struct {
	// pow indicates whether ^ is accepted as a binary operator.
	pow bool
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
}

// AllowPower enables the right-associative exponentiation operator ^, which
// binds more tightly than unary minus: "-2^2" is "-(2^2)". Without it, ^ is
// an unknown operator.
func AllowPower() ParseOption {
	return powopt{}
}

func (powopt) parseOption(p parsectx) parsectx {
	p.pow = true
	return p
}

// StopOn tells the parser to treat a list of whitespace characters as ending
// the expression. Whitespace does not end an expression where a term is
// expected, e.g. at the beginning of an expression or following an operator
// or bracket.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("deskcalc: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	return &eofopt{ws: string(v)}
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.wseof = o.ws
	return p
}
