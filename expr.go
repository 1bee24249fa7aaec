package main

import (
	"strconv"
)

//
// Expression trees.  A node is a CONSTANT (value), an IDENT (name), or
// one of the binary operators PLUS, MINUS, STAR and SLASH with both
// operands set.  Trees are built once by the parser and never changed
//

func makeConstant(value int) *exprNode {

	return &exprNode{token: CONSTANT, value: value}
}

func makeIdent(name string) *exprNode {

	return &exprNode{token: IDENT, name: name}
}

func makeBinary(op int, left, right *exprNode) *exprNode {

	return &exprNode{token: op, left: left, right: right}
}

//
// Evaluate the tree against env.  Nothing in env is modified
//

func (e *exprNode) eval(env *environment) (int, error) {

	switch e.token {
	case CONSTANT:
		return e.value, nil

	case IDENT:
		return env.get(e.name)
	}

	lval, err := e.left.eval(env)
	if err != nil {
		return 0, err
	}

	rval, err := e.right.eval(env)
	if err != nil {
		return 0, err
	}

	switch e.token {
	case PLUS:
		return lval + rval, nil

	case MINUS:
		return lval - rval, nil

	case STAR:
		return lval * rval, nil

	case SLASH:
		if rval == 0 {
			return 0, newError(errDivisionByZero, "%d / 0", lval)
		}

		return lval / rval, nil
	}

	panic("unexpected expression token " + strconv.Itoa(e.token))
}

//
// Render the tree back to BASIC text, fully parenthesized.  Used by
// the trace output
//

func (e *exprNode) String() string {

	switch e.token {
	case CONSTANT:
		return strconv.Itoa(e.value)

	case IDENT:
		return e.name
	}

	return "(" + e.left.String() + " " + opNames[e.token] + " " +
		e.right.String() + ")"
}

//
// Parse a complete expression: the whole rest of the line must be
// consumed
//

func parseExp(ts *tokenScanner) (*exprNode, error) {

	exp, err := readE(ts)
	if err != nil {
		return nil, err
	}

	if err = expectEOL(ts); err != nil {
		return nil, err
	}

	return exp, nil
}

//
// Recursive descent, two precedence levels:
//
//   E -> T { ('+' | '-') T }
//   T -> F { ('*' | '/') F }
//   F -> number | variable | '(' E ')' | '-' F
//
// readE stops at the first token that cannot continue the expression
// and pushes it back, so IF can pick up its comparator
//

func readE(ts *tokenScanner) (*exprNode, error) {

	exp, err := readT(ts)
	if err != nil {
		return nil, err
	}

	for {
		t := ts.nextToken()

		op := binaryOp(t, "+", "-")
		if op == 0 {
			ts.saveToken(t)
			return exp, nil
		}

		rhs, err := readT(ts)
		if err != nil {
			return nil, err
		}

		exp = makeBinary(op, exp, rhs)
	}
}

func readT(ts *tokenScanner) (*exprNode, error) {

	exp, err := readF(ts)
	if err != nil {
		return nil, err
	}

	for {
		t := ts.nextToken()

		op := binaryOp(t, "*", "/")
		if op == 0 {
			ts.saveToken(t)
			return exp, nil
		}

		rhs, err := readF(ts)
		if err != nil {
			return nil, err
		}

		exp = makeBinary(op, exp, rhs)
	}
}

func readF(ts *tokenScanner) (*exprNode, error) {

	t := ts.nextToken()

	switch t.kind {
	case NUMBER:
		n, err := tokenToInt(t)
		if err != nil {
			return nil, err
		}

		return makeConstant(n), nil

	case WORD:
		if isKeyword(t.text) {
			return nil, syntaxError("keyword %s used as a variable", t.text)
		}

		return makeIdent(t.text), nil

	case OPERATOR:
		switch t.text {
		case "(":
			exp, err := readE(ts)
			if err != nil {
				return nil, err
			}

			if err = expectToken(ts, ")"); err != nil {
				return nil, err
			}

			return exp, nil

		//
		// Unary minus has no node of its own, -F is built as 0 - F
		//

		case "-":
			exp, err := readF(ts)
			if err != nil {
				return nil, err
			}

			return makeBinary(MINUS, makeConstant(0), exp), nil
		}
	}

	return nil, syntaxError("illegal term %s in expression", describeToken(t))
}

//
// Map an operator token to its node tag, if it is one of the allowed
// operators at this precedence level
//

func binaryOp(t token, allowed ...string) int {

	if t.kind != OPERATOR {
		return 0
	}

	for _, a := range allowed {
		if t.text != a {
			continue
		}

		switch a {
		case "+":
			return PLUS

		case "-":
			return MINUS

		case "*":
			return STAR

		case "/":
			return SLASH
		}
	}

	return 0
}
