package deskcalc

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision in bits used by contexts that are not given
// one.
const DefaultPrec = 64

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is DefaultPrec.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: DefaultPrec}
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. a division by zero, then the result is nil and ctx.Err returns the
// error.
func (ctx *Context) Eval(e *Expr) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		panic("deskcalc: Eval during Eval")
	}
	err := e.n.eval(ctx)
	ctx.err = err
	if err != nil {
		ctx.stack = ctx.stack[:0]
		return nil
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("deskcalc: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("deskcalc: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error that occurred during the last evaluation with ctx, if
// any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no Result and is safe to use to evaluate an expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		nums:  make(map[string]*big.Float, len(ctx.nums)),
		prec:  ctx.prec,
	}
	// Loop backward so we apply the last precision.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	// Copy numbers only if the new precision is no higher than the old, so
	// that we always use the precision we need.
	if n.prec <= ctx.prec {
		for k, v := range ctx.nums {
			n.nums[k] = new(big.Float).SetPrec(n.prec).Set(v)
		}
	}
	for _, opt := range opts {
		switch opt.(type) {
		case nil, precopt: // do nothing
		default:
			panic("deskcalc: unknown option type")
		}
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from its text. The only literals the
// lexer produces that fail to parse have exponents too large for a big.Float.
func (ctx *Context) num(s string) (*big.Float, bool) {
	if r := ctx.nums[s]; r != nil {
		return r, true
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	if err != nil {
		return nil, false
	}
	ctx.nums[s] = r
	return r, true
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		v, ok := ctx.num(n.name)
		if !ok {
			return &RangeError{Col: n.pos}
		}
		ctx.push().Set(v)
		return nil
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v := ctx.top()
		v.Neg(v)
		return nil
	case nodeNop:
		return n.left.eval(ctx)
	}
	if err := n.left.eval(ctx); err != nil {
		return err
	}
	if err := n.right.eval(ctx); err != nil {
		return err
	}
	r := ctx.pop()
	l := ctx.top()
	switch n.kind {
	case nodeAdd:
		l.Add(l, r)
	case nodeSub:
		l.Sub(l, r)
	case nodeMul:
		l.Mul(l, r)
	case nodeDiv:
		if r.Sign() == 0 {
			return &DivisionError{Col: n.pos, X: new(big.Float).Copy(l)}
		}
		l.Quo(l, r)
	case nodePow:
		if err := pow(l, r); err != nil {
			return err
		}
	default:
		panic("deskcalc: invalid AST node " + n.kind.String())
	}
	if l.IsInf() {
		// Only ^ can take finite operands to infinity.
		return &RangeError{Col: n.pos}
	}
	return nil
}

// pow sets l to l^r. Negative bases are allowed only with integer exponents,
// and zero may not be raised to a negative power.
func pow(l, r *big.Float) (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		err = DomainError{X: new(big.Float).Copy(r), Arg: 2, Func: "^"}
	}()
	switch {
	case r.Sign() == 0:
		l.SetInt64(1)
	case l.Sign() == 0:
		switch r.Sign() {
		case -1:
			return DomainError{X: new(big.Float).Copy(r), Arg: 2, Func: "^"}
		case 0:
			l.SetInt64(1)
		default:
			l.SetInt64(0)
		}
	case l.Sign() < 0:
		if !r.IsInt() {
			return DomainError{X: new(big.Float).Copy(l), Arg: 1, Func: "^"}
		}
		i, _ := r.Int(nil)
		l.Neg(l)
		l.Set(bigfloat.Pow(new(big.Float).SetPrec(l.Prec()), l, r))
		if i.Bit(0) == 1 {
			l.Neg(l)
		}
	default:
		// Pow doesn't always write its result into its first argument.
		l.Set(bigfloat.Pow(new(big.Float).SetPrec(l.Prec()), l, r))
	}
	return nil
}

// DivisionError is an error returned when the right operand of a division is
// zero. It implements InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X *big.Float
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division of "+err.X.String()+" by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

func (err *DivisionError) ErrorKind() ErrorKind {
	return KindDivision
}

// DomainError is an error returned when an operator is applied to arguments
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the operator.
	Func string
}

func (err DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

func (err DomainError) ErrorKind() ErrorKind {
	return KindDomain
}

// RangeError is an error returned when a value exceeds the range that can be
// computed or displayed.
type RangeError struct {
	// Col is the position of the operator or literal that overflowed, or 0 if the
	// overflow happened when converting the final result.
	Col int
	// X is the result that could not be represented, if known.
	X *big.Float
}

func (err *RangeError) Error() string {
	msg := "value out of range"
	if err.X != nil {
		msg = err.X.Text('g', 10) + " out of range"
	}
	if err.Col > 0 {
		return errpos(err.Col, msg)
	}
	return msg
}

func (err *RangeError) ErrorKind() ErrorKind {
	return KindRange
}
