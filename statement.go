package main

import (
	"errors"
	"fmt"
	"io"
)

//
// Statement parsing.  parseStatement is handed a token scanner
// positioned at the statement keyword, and every parse routine must
// consume the rest of the line, anything left over is a syntax error.
// REM is the one exception: it never looks past its keyword
//

func parseStatement(ts *tokenScanner) (*stmtNode, error) {

	t := ts.nextToken()
	if t.kind != WORD {
		return nil, syntaxError("statement expected, found %s", describeToken(t))
	}

	switch t.text {
	case "REM":
		return &stmtNode{token: REM}, nil

	case "LET":
		return parseLet(ts)

	case "PRINT":
		return parsePrint(ts)

	case "INPUT":
		return parseInput(ts)

	case "END":
		return parseEnd(ts)

	case "GOTO":
		return parseGoto(ts)

	case "IF":
		return parseIf(ts)
	}

	return nil, syntaxError("unknown statement %s", describeToken(t))
}

func parseVariable(ts *tokenScanner) (string, error) {

	t := ts.nextToken()
	if !isVariableName(t) {
		return "", syntaxError("variable name expected, found %s",
			describeToken(t))
	}

	return t.text, nil
}

func parseLet(ts *tokenScanner) (*stmtNode, error) {

	name, err := parseVariable(ts)
	if err != nil {
		return nil, err
	}

	if err = expectToken(ts, "="); err != nil {
		return nil, err
	}

	exp, err := parseExp(ts)
	if err != nil {
		return nil, err
	}

	return &stmtNode{token: LET, varName: name, expr: exp}, nil
}

func parsePrint(ts *tokenScanner) (*stmtNode, error) {

	exp, err := parseExp(ts)
	if err != nil {
		return nil, err
	}

	return &stmtNode{token: PRINT, expr: exp}, nil
}

func parseInput(ts *tokenScanner) (*stmtNode, error) {

	name, err := parseVariable(ts)
	if err != nil {
		return nil, err
	}

	if err = expectEOL(ts); err != nil {
		return nil, err
	}

	return &stmtNode{token: INPUT, varName: name}, nil
}

func parseEnd(ts *tokenScanner) (*stmtNode, error) {

	if err := expectEOL(ts); err != nil {
		return nil, err
	}

	return &stmtNode{token: END}, nil
}

func parseGoto(ts *tokenScanner) (*stmtNode, error) {

	target, err := tokenToInt(ts.nextToken())
	if err != nil {
		return nil, err
	}

	if err = expectEOL(ts); err != nil {
		return nil, err
	}

	return &stmtNode{token: GOTO, target: target}, nil
}

//
// IF <expr> <cmp> <expr> THEN <line>
//

func parseIf(ts *tokenScanner) (*stmtNode, error) {

	lhs, err := readE(ts)
	if err != nil {
		return nil, err
	}

	t := ts.nextToken()

	cmp := comparator(t)
	if cmp == 0 {
		return nil, syntaxError("comparison operator expected, found %s",
			describeToken(t))
	}

	rhs, err := readE(ts)
	if err != nil {
		return nil, err
	}

	if err = expectToken(ts, "THEN"); err != nil {
		return nil, err
	}

	target, err := tokenToInt(ts.nextToken())
	if err != nil {
		return nil, err
	}

	if err = expectEOL(ts); err != nil {
		return nil, err
	}

	return &stmtNode{token: IF, lhs: lhs, cmp: cmp, rhs: rhs,
		target: target}, nil
}

func comparator(t token) int {

	if t.kind != OPERATOR {
		return 0
	}

	switch t.text {
	case "=":
		return EQ

	case "<":
		return LT

	case ">":
		return GT
	}

	return 0
}

//
// Statements that are legal without a line number
//

func isDirectStatement(t token) bool {

	if t.kind != WORD {
		return false
	}

	switch t.text {
	case "REM", "LET", "PRINT", "INPUT":
		return true
	}

	return false
}

//
// Execution.  Every statement reports what should happen next; only
// GOTO, IF and END ever ask for something other than effectContinue.
// Statements never look at the program store, so a jump target is
// not validated here
//

func continueEffect() controlEffect {

	return controlEffect{kind: effectContinue}
}

func jumpTo(line int) controlEffect {

	return controlEffect{kind: effectJump, line: line}
}

func haltEffect() controlEffect {

	return controlEffect{kind: effectHalt}
}

func (stmt *stmtNode) execute(env *environment, con *console) (controlEffect, error) {

	switch stmt.token {
	default:
		panic(fmt.Sprintf("unexpected statement token %d", stmt.token))

	case REM:
		// nothing to do

	case LET:
		val, err := stmt.expr.eval(env)
		if err != nil {
			return continueEffect(), err
		}

		env.set(stmt.varName, val)

	case PRINT:
		val, err := stmt.expr.eval(env)
		if err != nil {
			return continueEffect(), err
		}

		fmt.Fprintln(con.out, val)

	case INPUT:
		if err := executeInput(stmt, env, con); err != nil {
			return continueEffect(), err
		}

	case END:
		return haltEffect(), nil

	case GOTO:
		return jumpTo(stmt.targetLine()), nil

	case IF:
		ok, err := stmt.evaluateCondition(env)
		if err != nil {
			return continueEffect(), err
		}

		if ok {
			return jumpTo(stmt.targetLine()), nil
		}
	}

	return continueEffect(), nil
}

func (stmt *stmtNode) evaluateCondition(env *environment) (bool, error) {

	lval, err := stmt.lhs.eval(env)
	if err != nil {
		return false, err
	}

	rval, err := stmt.rhs.eval(env)
	if err != nil {
		return false, err
	}

	switch stmt.cmp {
	case EQ:
		return lval == rval, nil

	case LT:
		return lval < rval, nil

	case GT:
		return lval > rval, nil
	}

	panic(fmt.Sprintf("unexpected comparator %d", stmt.cmp))
}

//
// Target line of a GOTO or IF.  Zero for anything else
//

func (stmt *stmtNode) targetLine() int {

	return stmt.target
}

//
// Keep prompting until the reply is exactly one integer.  A bad reply
// is not an error, the user just gets asked again
//

func executeInput(stmt *stmtNode, env *environment, con *console) error {

	for {
		line, err := con.in.readLine(con.inputPrompt, false)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return newError(errEndOfInput, "INPUT %s", stmt.varName)
			}

			return err
		}

		if n, ok := parseInputNumber(line); ok {
			env.set(stmt.varName, n)
			return nil
		}

		fmt.Fprintln(con.out, invalidNumberMsg)
	}
}

func parseInputNumber(line string) (int, bool) {

	ts := newTokenScanner(line)

	n, err := tokenToInt(ts.nextToken())
	if err != nil || ts.hasMoreTokens() {
		return 0, false
	}

	return n, true
}

func stmtName(token int) string {

	if token > 0 && token < len(stmtNames) {
		return stmtNames[token]
	}

	return fmt.Sprintf("token(%d)", token)
}

//
// Render a statement back to canonical BASIC text
//

func (stmt *stmtNode) String() string {

	switch stmt.token {
	case LET:
		return fmt.Sprintf("LET %s = %s", stmt.varName, stmt.expr)

	case PRINT:
		return fmt.Sprintf("PRINT %s", stmt.expr)

	case INPUT:
		return fmt.Sprintf("INPUT %s", stmt.varName)

	case GOTO:
		return fmt.Sprintf("GOTO %d", stmt.target)

	case IF:
		return fmt.Sprintf("IF %s %s %s THEN %d", stmt.lhs, opNames[stmt.cmp],
			stmt.rhs, stmt.target)
	}

	return stmtName(stmt.token)
}
