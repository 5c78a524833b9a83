package deskcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal literal.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators. The
// exponentiation operator ^ is always scanned, but the parser rejects it
// unless AllowPower is given.
const Operators = "+-*/^×÷"

// OpenBracket and CloseBracket group subexpressions.
const (
	OpenBracket  = "("
	CloseBracket = ")"
)

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	eof  bool
	// toks is the number of non-EOF tokens scanned.
	toks int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push makes tok the next result of next. Only one token can be pushed.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("deskcalc: double push")
	}
	l.p = tok
}

// must takes back the pushed token, which must exist.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("deskcalc: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune steps back over the last rune read.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans one token. The end of input, or any rune of wseof outside a
// token, gives a tokenEOF token once; after that next returns io.EOF unless
// the EOF token was pushed back.
func (l *lexer) next(wseof string) (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
		case r == '(':
			tok.text = OpenBracket
			tok.kind = tokenOpen
		case r == ')':
			tok.text = CloseBracket
			tok.kind = tokenClose
		default:
			k := strings.IndexRune(Operators, r)
			if k < 0 {
				// The rejected rune is the error text.
				l.buf.WriteRune(r)
				return tok, l.error("")
			}
			tok.text = operstrs[k]
			tok.kind = tokenOp
		}
		l.toks++
		return tok, nil
	}
}

// scanNum scans a decimal literal: digits with at most one decimal point,
// optionally followed by an exponent marker, a sign, and exponent digits.
func (l *lexer) scanNum() error {
	var dig, dot, e, le, ed bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if unicode.IsSpace(r) {
			l.unreadRune()
			break
		}
		if r == '+' || r == '-' {
			// A sign belongs to the literal only directly after the marker.
			if !le {
				l.unreadRune()
				break
			}
			le = false
			l.buf.WriteRune(r)
			continue
		}
		if strings.ContainsRune(Operators+OpenBracket+CloseBracket, r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch {
		case r == '.':
			if dot || e {
				return l.error("number")
			}
			dot = true
			le = false
		case r == 'e' || r == 'E':
			if !dig || e {
				return l.error("number")
			}
			e = true
			le = true
		case '0' <= r && r <= '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return l.error("number")
		}
	}
	if !dig || (e && !ed) {
		return l.error("number")
	}
	return nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError reports a rune that cannot start or continue a token. It
// implements InputError.
type LexError struct {
	// Text is the partial token ending with the rejected rune.
	Text string
	// Kind is "number" inside a literal and empty elsewhere.
	Kind string
	// Col is the column of the last rune the lexer read.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) ErrorKind() ErrorKind {
	return KindSyntax
}
