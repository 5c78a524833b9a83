package deskcalc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrorText is the display text of every failed evaluation.
const ErrorText = "Error"

// Result is the outcome of evaluating display text. Exactly one of Value and
// Err is non-nil.
type Result struct {
	// Value is the computed value.
	Value *big.Float
	// Err describes why no value could be computed.
	Err error
}

// Ok reports whether the evaluation produced a value.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Kind returns the kind of the evaluation error, or KindNone.
func (r Result) Kind() ErrorKind {
	return KindOf(r.Err)
}

// Text returns the display text for the result: the formatted value, or
// ErrorText for any failure.
func (r Result) Text() string {
	if r.Err != nil {
		return ErrorText
	}
	return Format(r.Value)
}

// Float64 returns the value as a float64. The result is NaN for a failed
// evaluation.
func (r Result) Float64() float64 {
	if r.Err != nil {
		return math.NaN()
	}
	f, _ := r.Value.Float64()
	return f
}

// Evaluate parses and evaluates display text with a fresh default context.
func Evaluate(src string, opts ...ParseOption) Result {
	return NewContext().Evaluate(src, opts...)
}

// Evaluate parses and evaluates display text. The returned value is not
// aliased by ctx. Results that cannot be represented as a finite float64 are
// range errors.
func (ctx *Context) Evaluate(src string, opts ...ParseOption) Result {
	a, err := Parse(strings.NewReader(src), opts...)
	if err != nil {
		return Result{Err: err}
	}
	return ctx.EvalResult(a)
}

// EvalResult evaluates a parsed expression like Evaluate.
func (ctx *Context) EvalResult(a *Expr) Result {
	v := ctx.Eval(a)
	if v == nil {
		return Result{Err: ctx.Err()}
	}
	v = new(big.Float).Copy(v)
	if f, _ := v.Float64(); math.IsInf(f, 0) {
		return Result{Err: &RangeError{X: v}}
	}
	return Result{Value: v}
}

// Format formats a value for display. Zero is "0" regardless of sign, values
// that are integers of magnitude below 1e21 print without a fractional part,
// and all others use the shortest decimal form that identifies the nearest
// float64.
func Format(v *big.Float) string {
	f, _ := v.Float64()
	if f == 0 {
		// Covers negative zero and values too small for a float64.
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseNumber parses display text as a single number with at most one sign,
// such as "12", "-0.5" or "+3.". Surrounding whitespace is ignored and blank
// text is zero. Operators other than a leading sign make the text invalid.
func ParseNumber(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	a, err := Parse(strings.NewReader(s))
	if err != nil {
		return 0, &NumberError{Text: s, Err: err}
	}
	n := a.n
	if n.kind == nodeNeg || n.kind == nodeNop {
		n = n.left
	}
	if n.kind != nodeNum {
		return 0, &NumberError{Text: s}
	}
	r := Evaluate(s)
	if !r.Ok() {
		return 0, &NumberError{Text: s, Err: r.Err}
	}
	return r.Float64(), nil
}

// NumberError is an error returned when text is not a single number.
type NumberError struct {
	// Text is the text that was parsed.
	Text string
	// Err is the underlying parse or range error, if any.
	Err error
}

func (err *NumberError) Error() string {
	if err.Err != nil {
		return "not a number: " + strconv.Quote(err.Text) + ": " + err.Err.Error()
	}
	return "not a number: " + strconv.Quote(err.Text)
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) ErrorKind() ErrorKind {
	if err.Err != nil {
		return KindOf(err.Err)
	}
	return KindSyntax
}
