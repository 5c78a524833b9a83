package deskcalc

import (
	"fmt"
	"strings"
	"testing"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two ASTs are equal. If any node is nodeNone, it is returned. Positions
// are not compared.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.kind == nodeNone || m.kind == nodeNone {
		return n, m
	}
	if n.kind != m.kind {
		return n, m
	}
	switch n.kind {
	case nodeNum:
		if n.name != m.name {
			return n, m
		}
	case nodeNeg, nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow, nodeNop:
		if d, e := n.left.diff(m.left); d != nil || e != nil {
			return d, e
		}
		if d, e := n.right.diff(m.right); d != nil || e != nil {
			return d, e
		}
	default:
		panic(fmt.Errorf("invalid node kind: n=%+v m=%+v", n, m))
	}
	return nil, nil
}

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		b := binop(string(r))
		u := unop(string(r))
		if b.op == nodeNone && u.op == nodeNone {
			t.Errorf("no operator for %c", r)
		}
	}
}

func TestPrecedenceOrder(t *testing.T) {
	add, mul, pow := binop("+"), binop("*"), binop("^")
	neg := unop("-")
	if !mul.moreBinding(add) {
		t.Errorf("* (%d) should bind more tightly than + (%d)", mul.prec, add.prec)
	}
	if !neg.moreBinding(mul) {
		t.Errorf("unary - (%d) should bind more tightly than * (%d)", neg.prec, mul.prec)
	}
	if !pow.moreBinding(neg) {
		t.Errorf("^ (%d) should bind more tightly than unary - (%d)", pow.prec, neg.prec)
	}
	if add.moreBinding(add) || mul.moreBinding(mul) {
		t.Error("+ and * should be left-associative")
	}
	if !pow.moreBinding(pow) {
		t.Error("^ should be right-associative")
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(1)", "1"},
		{"multi", "((((1))))", "1"},

		{"plus", "+1", "(+(1))"},
		{"neg", "-1", "(-(1))"},
		{"add", "1+2", "((1)+(2))"},
		{"sub", "1-2", "((1)-(2))"},
		{"mul", "1*2", "((1)*(2))"},
		{"div", "1/2", "((1)/(2))"},
		{"pow", "1^2", "((1)^(2))"},
		{"altmul", "1×2", "1*2"},
		{"altdiv", "1÷2", "1/2"},
		{"spaces", " 1 +\t2 ", "1+2"},

		{"add4", "1+2+3+4", "((1+2)+3)+4"},
		{"sub4", "1-2-3-4", "((1-2)-3)-4"},
		{"mul4", "1*2*3*4", "((1*2)*3)*4"},
		{"div4", "1/2/3/4", "((1/2)/3)/4"},
		{"pow4", "1^2^3^4", "1^(2^(3^4))"},
		{"addsub", "1+2-3+4", "((1+2)-3)+4"},
		{"muldiv", "1*2/3*4", "((1*2)/3)*4"},

		{"desc", "1^2*3+4", "((1^2)*3)+4"},
		{"asc", "1+2*3^4", "1+(2*(3^4))"},
		{"mixed", "1+2*3-4/5", "(1+(2*3))-(4/5)"},
		{"group", "(1+2)*3", "(1+2)*3"},
		{"negpow", "-1^2", "-(1^2)"},
		{"negneg", "--1", "-(-1)"},
		{"negsub", "-1-1", "(-1)-1"},
		{"mulneg", "2*-3", "2*(-3)"},
		{"subneg", "2--3", "2-(-3)"},
		{"powneg", "2^-1", "2^(-1)"},
		{"powmul", "2^-1*3", "(2^(-1))*3"},
		{"pownegpow", "2^-3^-4", "2^(-(3^(-4)))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.a, AllowPower())
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.a, err)
			}
			b, err := ParseString(c.b, AllowPower())
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.b, err)
			}
			d, e := a.n.diff(b.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.a, a.n, d, c.b, b.n, e)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    *node
	}{
		{
			name: "num",
			src:  "12.5",
			n:    &node{kind: nodeNum, name: "12.5"},
		},
		{
			name: "sum",
			src:  "7*8",
			n: &node{
				kind:  nodeMul,
				left:  &node{kind: nodeNum, name: "7"},
				right: &node{kind: nodeNum, name: "8"},
			},
		},
		{
			name: "neg",
			src:  "-.5",
			n: &node{
				kind: nodeNeg,
				left: &node{kind: nodeNum, name: ".5"},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			d, e := a.n.diff(c.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\twant %v which has %v\n\tgot  %v which has %v from %q", c.n, e, a.n, d, c.src)
			}
		})
	}
}

func TestParsePositions(t *testing.T) {
	a, err := ParseString("12 / 3")
	if err != nil {
		t.Fatal(err)
	}
	if a.n.pos != 4 {
		t.Errorf("division should be at column 4, got %d", a.n.pos)
	}
	if a.n.right.pos != 6 {
		t.Errorf("divisor should be at column 6, got %d", a.n.right.pos)
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "(1)"},
		{"neg", "-1", "(-(1))"},
		{"plus", "+1", "(+(1))"},
		{"add", "1+2*3", "((1) + ((2) * (3)))"},
		{"altmul", "1×2", "((1) * (2))"},
		{"pow", "2^3^4", "((2) ^ ((3) ^ (4)))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src, AllowPower())
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			s := a.String()
			if s != c.want {
				t.Errorf("%q formatted as %q, want %q", c.src, s, c.want)
			}
			b, err := ParseString(s, AllowPower())
			if err != nil {
				t.Fatalf("%q -> %q failed to parse: %v", c.src, s, err)
			}
			if d, e := a.n.diff(b.n); d != nil || e != nil {
				t.Errorf("%q -> %q changed the tree: %v vs %v", c.src, s, d, e)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", &EmptyExpressionError{Col: 1, Blank: true}},
		{"blank", "  ", &EmptyExpressionError{Col: 3, Blank: true}},
		{"plus", "+", &EmptyExpressionError{Col: 2}},
		{"trailing", "1+", &EmptyExpressionError{Col: 3}},
		{"emptyparen", "()", &EmptyExpressionError{Col: 2, End: ")"}},
		{"emptyrhs", "(1+)", &EmptyExpressionError{Col: 4, End: ")"}},
		{"emptyneg", "(-)", &EmptyExpressionError{Col: 3, End: ")"}},
		{"starstar", "5**", &OperatorError{Col: 3, Operator: "*", Unary: true}},
		{"unarydiv", "/2", &OperatorError{Col: 1, Operator: "/", Unary: true}},
		{"nopow", "2^3", &OperatorError{Col: 2, Operator: "^", Unary: false}},
		{"unclosed", "(1", &BracketError{Col: 3, Left: "(", Right: ""}},
		{"unopened", "1)", &BracketError{Col: 2, Left: "", Right: ")"}},
		{"close", ")", &BracketError{Col: 1, Left: "", Right: ")"}},
		{"implicit", "2(3)", &TokenError{Col: 2, Token: "("}},
		{"juxtaposed", "2 3", &TokenError{Col: 3, Token: "3"}},
		{"ident", "abc", &LexError{Text: "a", Col: 2}},
		{"exponent", "1e", &LexError{Text: "1e", Kind: "number", Col: 2}},
		{"exponent-sign", "1e+", &LexError{Text: "1e+", Kind: "number", Col: 3}},
		{"exponent-letter", "1ex", &LexError{Text: "1ex", Kind: "number", Col: 3}},
		{"dots", "1..2", &LexError{Text: "1..", Kind: "number", Col: 4}},
		{"equals", "7=", &LexError{Text: "7=", Kind: "number", Col: 3}},
		{"letter", "7+x", &LexError{Text: "x", Col: 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err == nil {
				t.Fatalf("%q parsed as %v", c.src, a)
			}
			if err.Error() != c.err.Error() {
				t.Errorf("%q gave wrong error:\n\twant %v\n\tgot  %v", c.src, c.err, err)
			}
			if fmt.Sprintf("%T", err) != fmt.Sprintf("%T", c.err) {
				t.Errorf("%q gave error of type %T, want %T", c.src, err, c.err)
			}
			ie, ok := err.(InputError)
			if !ok {
				t.Fatalf("%T does not implement InputError", err)
			}
			if ie.Pos() != c.err.(InputError).Pos() {
				t.Errorf("%q: error at %d, want %d", c.src, ie.Pos(), c.err.(InputError).Pos())
			}
		})
	}
}

func TestParseStopOn(t *testing.T) {
	src := strings.NewReader("1 + 2\n3*\n4")
	a, err := Parse(src, StopOn('\n'))
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "((1) + (2))" {
		t.Errorf("first expression was %v", a)
	}
	b, err := Parse(src, StopOn('\n'))
	if err != nil {
		t.Fatal(err)
	}
	if b.String() != "((3) * (4))" {
		t.Errorf("second expression was %v", b)
	}
}

func TestStopOnRejectsNonSpace(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("StopOn(',') did not panic")
		}
	}()
	StopOn(',')
}
