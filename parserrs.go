package deskcalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies the reason an expression could not produce a value.
type ErrorKind int8

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindEmpty is an expression with no terms at all.
	KindEmpty
	// KindSyntax is any input that the grammar rejects.
	KindSyntax
	// KindDivision is a division by zero.
	KindDivision
	// KindDomain is an exponentiation with no real result.
	KindDomain
	// KindRange is a result too large to display.
	KindRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindEmpty:
		return "empty"
	case KindSyntax:
		return "syntax"
	case KindDivision:
		return "division"
	case KindDomain:
		return "domain"
	case KindRange:
		return "range"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// KindOf returns the kind of the first error in err's chain that has one.
// Errors that carry no kind are syntax errors.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var k interface{ ErrorKind() ErrorKind }
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	return KindSyntax
}

// OperatorError is an error indicating an operator token that is not
// understood by the parser. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) ErrorKind() ErrorKind {
	return KindSyntax
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the bracket or end of input.
	Col int
	// Left is the opening bracket, if any.
	Left string
	// Right is the closing bracket, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) ErrorKind() ErrorKind {
	return KindSyntax
}

// TokenError is an error indicating a term that follows another term with no
// operator between them, as in "2(3)" or "2 3". It implements InputError.
type TokenError struct {
	// Col is the position of the unexpected token.
	Col int
	// Token is the text of the unexpected token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "expected operator before "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) ErrorKind() ErrorKind {
	return KindSyntax
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
	// Blank is true when the entire input held no tokens.
	Blank bool
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Blank {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) ErrorKind() ErrorKind {
	if err.Blank {
		return KindEmpty
	}
	return KindSyntax
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*DivisionError)(nil)
)
