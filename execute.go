package main

import (
	"fmt"
	"math"
)

//
// RUN.  Walk the program in line number order starting from the
// lowest line.  Lines with no parsed statement are skipped.  Every
// statement reports a control effect, and that alone decides where
// we go next: the successor line, a jump target (which must exist),
// or a halt.  Running off the end of the program also halts.
// A program that loops forever runs forever
//

func (sess *session) executeRun() error {

	sess.resetStatistics()

	sess.initClock()

	err := sess.executeRunInternal()

	if sess.printStats {
		sess.printStatistics()
	}

	return err
}

func (sess *session) executeRunInternal() error {

	prog := &sess.program

	curLine, ok := prog.getFirstLineNumber()

	for ok {
		stmt := prog.getParsedStatement(curLine)
		if stmt == nil {
			curLine, ok = prog.getNextLineNumber(curLine)
			continue
		}

		if sess.traceExec {
			fmt.Fprintln(sess.con.out, prog.getSourceLine(curLine))
		}

		sess.stats.numStatements++

		effect, err := stmt.execute(sess.env, sess.con)
		if err != nil {
			return atLine(err, curLine)
		}

		switch effect.kind {
		default:
			panic(fmt.Sprintf("unexpected control effect %d", effect.kind))

		case effectContinue:
			curLine, ok = prog.getNextLineNumber(curLine)

		case effectJump:
			if !prog.hasLine(effect.line) {
				return &basicError{base: errUnknownLine,
					detail: fmt.Sprintf("%s to non-existent line %d",
						stmtName(stmt.token), effect.line),
					line: curLine}
			}

			curLine = effect.line

		case effectHalt:
			return nil
		}
	}

	return nil
}

//
// LIST, LIST n, or LIST n-m
//

func (sess *session) executeList(ts *tokenScanner) error {

	first, last := 0, math.MaxInt

	if ts.hasMoreTokens() {
		n, err := tokenToInt(ts.nextToken())
		if err != nil {
			return err
		}

		first, last = n, n

		t := ts.nextToken()
		if t.kind == OPERATOR && t.text == "-" {
			if last, err = tokenToInt(ts.nextToken()); err != nil {
				return err
			}
		} else {
			ts.saveToken(t)
		}

		if first > last {
			return syntaxError("invalid line range %d-%d", first, last)
		}
	}

	if err := expectEOL(ts); err != nil {
		return err
	}

	sess.program.forEachInRange(first, last, func(line *lineNode) {
		fmt.Fprintln(sess.con.out, line.source)
	})

	return nil
}

//
// CLEAR throws away both the program and every variable
//

func (sess *session) executeClear() {

	sess.program.clear()

	sess.env.clear()
}

func (sess *session) executeVars() {

	sess.env.ascend(func(name string, value int) bool {
		fmt.Fprintf(sess.con.out, "%s = %d\n", name, value)
		return true
	})
}

func (sess *session) executeStats() {

	sess.printStats = !sess.printStats

	fmt.Fprintf(sess.con.out, "Statistics %s\n", switchSetting(sess.printStats))
}

//
// Toggle trace flags.  With no argument, show what is on
//

func (sess *session) executeTrace(ts *tokenScanner) error {

	out := sess.con.out

	t := ts.nextToken()

	if t.kind == EOL {
		fmt.Fprintf(out, "traceExec %s\n", switchSetting(sess.traceExec))
		fmt.Fprintf(out, "traceVars %s\n", switchSetting(sess.env.traceVars))
		fmt.Fprintf(out, "traceDump %s\n", switchSetting(sess.traceDump))
		return nil
	}

	if err := expectEOL(ts); err != nil {
		return err
	}

	switch {
	case t.kind == WORD && t.text == "EXEC":
		sess.traceExec = !sess.traceExec
		fmt.Fprintf(out, "toggling traceExec %s\n", switchSetting(sess.traceExec))

	case t.kind == WORD && t.text == "VARS":
		sess.env.traceVars = !sess.env.traceVars
		fmt.Fprintf(out, "toggling traceVars %s\n",
			switchSetting(sess.env.traceVars))

	case t.kind == WORD && t.text == "DUMP":
		sess.traceDump = !sess.traceDump
		fmt.Fprintf(out, "toggling traceDump %s\n", switchSetting(sess.traceDump))

	case isVariableName(t):
		fmt.Fprintf(out, "Tracing variable %q ", t.text)
		if sess.env.toggleTracedVar(t.text) {
			fmt.Fprintln(out, "enabled")
		} else {
			fmt.Fprintln(out, "disabled")
		}

	default:
		return syntaxError("cannot trace %s", describeToken(t))
	}

	return nil
}

func (sess *session) executeQuit() {

	sess.exiting = true
}
