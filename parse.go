package mathematics

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Expr = num | name | const | Call | Neg | Plus | Add | Sub | Mul | Div | Pow | '(' Expr ')' | '[' Expr ']' | '{' Expr '}'
// Call = funcname ArgList | trigname '^' '-' '1' ArgList
// ArgList = '(' Expr { ',' Expr } ')' | '[' Expr { ',' Expr } ']' | '{' Expr { ',' Expr } '}'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Pow = Expr '^' Expr
// Equation = Expr '=' Expr

// Parse parses an expression. The given options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	p := newparsectx(opts)
	n, err := parseexpr(scan, &p)
	if err != nil {
		return nil, err
	}
	if err := p.end(scan.must()); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseString parses an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// ParseEquation parses an equation, which is two expressions separated by
// exactly one equals sign.
func ParseEquation(src io.RuneScanner, opts ...ParseOption) (*Equation, error) {
	scan := lex(src)
	p := newparsectx(opts)
	l, err := parseexpr(scan, &p)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	if tok.kind != tokenOp || tok.text != "=" {
		if err := p.end(tok); err != nil {
			return nil, err
		}
		return nil, &EquationError{Col: tok.pos, Count: 0}
	}
	r, err := parseexpr(scan, &p)
	if err != nil {
		return nil, err
	}
	tok = scan.must()
	if tok.kind == tokenOp && tok.text == "=" {
		return nil, &EquationError{Col: tok.pos, Count: 2}
	}
	if err := p.end(tok); err != nil {
		return nil, err
	}
	return &Equation{Left: l, Right: r}, nil
}

// ParseEquationString parses an equation from a string.
func ParseEquationString(src string, opts ...ParseOption) (*Equation, error) {
	return ParseEquation(strings.NewReader(src), opts...)
}

// parseexpr parses a complete, non-empty subexpression. Like parseterm, it
// pushes the last token it scans.
func parseexpr(scan *lexer, p *parsectx) (*Expr, error) {
	n, err := parseterm(scan, p, exprprec)
	if err != nil {
		return nil, err
	}
	if n == nil {
		tok := scan.must()
		if tok.kind == tokenClose {
			return nil, itShouldNotHaveEndedThisWay(tok, -1)
		}
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	}
	return n, nil
}

// end checks the token that ends a top-level expression.
func (p *parsectx) end(tok lexToken) error {
	switch {
	case tok.kind == tokenEOF:
		return nil
	case tok.kind == tokenSep && p.ceof:
		return nil
	default:
		return itShouldNotHaveEndedThisWay(tok, -1)
	}
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (*Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxdepth {
		return nil, &DepthError{Col: scan.col, Max: p.maxdepth}
	}
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	if n.height > p.maxdepth {
		return nil, &DepthError{Col: scan.col, Max: p.maxdepth}
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum, tokenIdent, tokenOpen:
			// There is no implicit multiplication, so a term here ends the
			// expression. The caller reports it.
			scan.push(tok)
			return n, nil
		case tokenOp:
			if tok.text == "=" {
				scan.push(tok)
				return n, nil
			}
			prec := binop(tok.text)
			if prec.op == opNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = prec.op.apply(n, rhs)
			// Chains of left-associative operators fold here without
			// recursing, so the tree they build is measured instead.
			if n.height > p.maxdepth {
				return nil, &DepthError{Col: tok.pos, Max: p.maxdepth}
			}
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("mathematics: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// any encountered token must be valid as the start of a subexpression, and
// whitespace normally lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx, until operator) (*Expr, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return Num(parseNumber(tok.text).Float64()), nil
	case tokenIdent:
		if k := p.fn(tok.text); k != KindNone {
			n, err := parsecall(scan, p, tok.text, k)
			if err != nil {
				return nil, err
			}
			if n != nil {
				return n, nil
			}
		}
		if c, ok := p.constant(tok.text); ok {
			return Const(c), nil
		}
		return Var(tok.text), nil
	case tokenOp:
		if tok.text == "=" {
			return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
		}
		prec := unop(tok.text)
		if prec.op == opNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		return prec.op.apply(nil, rhs), nil
	case tokenOpen:
		match := rightbracket(tok.text)
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose || end.text != brackets[match].close {
			return nil, itShouldNotHaveEndedThisWay(end, match)
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		return rhs, nil
	case tokenClose:
		// Let the caller decide what to do.
		scan.push(tok)
		return nil, nil
	case tokenSep:
		if p.ceof {
			scan.push(tok)
			return nil, nil
		}
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("mathematics: unknown token: " + tok.String())
	}
}

// parsecall parses a call to a function of kind k. If the name is not followed
// by an argument list, the result is nil with no error and the name should be
// parsed as a variable instead.
func parsecall(scan *lexer, p *parsectx, name string, k Kind) (*Expr, error) {
	// We respect whitespace here so that sin\n(x) doesn't string together
	// expressions.
	tok, err := scan.next(p.wseof)
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenOpen {
		return parseargs(scan, p, name, k, tok)
	}
	scan.push(tok)
	inv, ok := inverses[k]
	if !ok {
		return nil, nil
	}
	open, ok, err := inverseCall(scan, p)
	if err != nil || !ok {
		return nil, err
	}
	return parseargs(scan, p, name+"^-1", inv, open)
}

// inverseCall checks for the ^-1( that spells an inverse trig function. If
// the tokens match, inverseCall consumes them and returns the open bracket.
// Otherwise, it pushes back everything it scanned.
func inverseCall(scan *lexer, p *parsectx) (lexToken, bool, error) {
	want := [...]lexToken{
		{text: "^", kind: tokenOp},
		{text: "-", kind: tokenOp},
		{text: "1", kind: tokenNum},
	}
	read := make([]lexToken, 0, len(want)+1)
	unread := func() {
		for i := len(read) - 1; i >= 0; i-- {
			scan.push(read[i])
		}
	}
	for _, w := range want {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return lexToken{}, false, err
		}
		read = append(read, tok)
		if tok.kind != w.kind || tok.text != w.text {
			unread()
			return lexToken{}, false, nil
		}
	}
	tok, err := scan.next(p.wseof)
	if err != nil {
		return lexToken{}, false, err
	}
	if tok.kind != tokenOpen {
		read = append(read, tok)
		unread()
		return lexToken{}, false, nil
	}
	return tok, true, nil
}

// parseargs parses the argument list of a call following its open bracket and
// builds the call node.
func parseargs(scan *lexer, p *parsectx, name string, k Kind, open lexToken) (*Expr, error) {
	match := rightbracket(open.text)
	args, err := parsearglist(scan, p, open.text)
	if err != nil {
		return nil, err
	}
	end := scan.must()
	if end.kind != tokenClose {
		panic("mathematics: parsearglist ended on " + end.String() + " instead of close bracket")
	}
	if end.text != brackets[match].close {
		return nil, &BracketError{Col: end.pos, Left: open.text, Right: end.text}
	}
	if !canCall(k, len(args)) {
		return nil, &CallError{Col: open.pos, Func: name, Len: len(args)}
	}
	if k == KindLog {
		if len(args) == 1 {
			return Log(Num(10), args[0]), nil
		}
		return Log(args[1], args[0]), nil
	}
	return Apply(k, args[0]), nil
}

// parsearglist parses a bracketed list of zero or more args.
func parsearglist(scan *lexer, p *parsectx, open string) ([]*Expr, error) {
	var args []*Expr
	for {
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			// As a special case, reporting mismatched brackets is more helpful
			// than empty expression at the end of input.
			if ee, _ := err.(*EmptyExpressionError); ee != nil && ee.End == "" {
				err = &BracketError{Col: ee.Col, Left: open}
			}
			return nil, err
		}
		end := scan.must()
		switch end.kind {
		case tokenClose:
			// Caller checks that brackets match.
			scan.push(end)
			if rhs == nil {
				// func() is a call with no arguments, but func(a,) is an
				// empty argument.
				if len(args) != 0 {
					return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
				}
				return nil, nil
			}
			return append(args, rhs), nil
		case tokenSep:
			if rhs == nil {
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			args = append(args, rhs)
		case tokenEOF:
			return nil, &BracketError{Col: end.pos, Left: open, Right: ""}
		default:
			return nil, itShouldNotHaveEndedThisWay(end, rightbracket(open))
		}
	}
}

// rightbracket gets the closing bracket index for an opening bracket.
func rightbracket(left string) int {
	r, sz := utf8.DecodeRuneInString(left)
	k := strings.IndexRune(OpenBrackets, r)
	if k < 0 || sz != len(left) {
		panic("mathematics: invalid bracket " + strconv.Quote(left))
	}
	return k
}

// leftbracket gets the opening bracket matching right. If right is no bracket,
// then the result is the empty string.
func leftbracket(right int) string {
	if right == -1 {
		return ""
	}
	return brackets[right].open
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. match is the bracket rune index that
// the expression should have matched, or -1 if none.
func itShouldNotHaveEndedThisWay(tok lexToken, match int) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, Left: leftbracket(match), Right: ""}
	case tokenClose:
		// A bracket could be the wrong bracket for the opening brace or any
		// bracket at the end of an input.
		return &BracketError{Col: tok.pos, Left: leftbracket(match), Right: tok.text}
	case tokenSep:
		// Separator outside a function call.
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenOp:
		if tok.text == "=" && match == -1 {
			return &EquationError{Col: tok.pos, Count: 1}
		}
		fallthrough
	case tokenNum, tokenIdent, tokenOpen:
		expect := "end of input"
		if match != -1 {
			expect = strconv.Quote(brackets[match].close)
		}
		return &TrailingInputError{Col: tok.pos, Found: tok.text, Expected: expect}
	default:
		panic("mathematics: it really should not have ended this way: " + tok.String())
	}
}

// opcode selects the node an operator builds.
type opcode int8

const (
	opNone opcode = iota
	opAdd
	opSub
	opMul
	opDiv
	opPow
	opNeg
	opPlus
)

// apply builds the node for an operator. Unary operators ignore l.
func (o opcode) apply(l, r *Expr) *Expr {
	switch o {
	case opAdd:
		return Add(l, r)
	case opSub:
		return Add(l, Neg(r))
	case opMul:
		return Multiply(l, r)
	case opDiv:
		return Multiply(l, Inv(r))
	case opPow:
		return Pow(l, r)
	case opNeg:
		return Neg(r)
	case opPlus:
		return r
	default:
		panic("mathematics: invalid opcode " + strconv.Itoa(int(o)))
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node to build when this operator is selected.
	op opcode
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of opNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, opAdd}
	case "-":
		return operator{1, false, opSub}
	case "*", "×":
		return operator{5, false, opMul}
	case "/", "÷":
		return operator{5, false, opDiv}
	case "^":
		return operator{15, false, opPow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of opNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, opPlus}
	case "-":
		return operator{10, true, opNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, opNone}
