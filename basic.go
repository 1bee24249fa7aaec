package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goforj/godump"
)

func main() {

	setupLogging(os.Stderr, "")

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(optionsExitCode(err))
	}

	interactive := isTerminal()

	cfg, err := buildConfig(opts, interactive)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	setupLogging(os.Stderr, cfg.LogLevel)

	var in lineReader

	if interactive {
		in = newLinerReader(cfg.HistoryFile)
	} else {
		in = newPlainReader(os.Stdin, os.Stdout)
	}

	//
	// Make sure the terminal is back in cooked mode however we leave
	//

	defer func() {
		if err := in.close(); err != nil {
			slog.Warn("closing input", "err", err)
		}
	}()

	sess := newSession(cfg, os.Stdout, in)

	slog.Debug("session started", "interactive", interactive,
		"script", opts.script)

	if interactive {
		printVersionInfo(os.Stdout)
	}

	if opts.script != "" {
		if err := sess.executeScript(opts.script); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}

	sess.commandLoop()

	slog.Debug("session ended")
}

func newSession(cfg config, out io.Writer, in lineReader) *session {

	sess := &session{
		env:        newEnvironment(),
		con:        &console{out: out, in: in, inputPrompt: cfg.InputPrompt},
		prompt:     cfg.Prompt,
		traceExec:  cfg.Trace.Exec,
		traceDump:  cfg.Trace.Dump,
		printStats: cfg.Stats,
	}

	sess.env.setTraceOutput(out)
	sess.env.traceVars = cfg.Trace.Vars

	return sess
}

func printVersionInfo(w io.Writer) {

	if buildTimestampStr != "" {
		fmt.Fprintf(w, "MINIBASIC version %s - built %s\n", VERSION,
			buildTimestampStr)
	} else {
		fmt.Fprintf(w, "MINIBASIC version %s\n", VERSION)
	}
}

//
// Read commands until QUIT or end of input.  An error aborts only the
// command that raised it
//

func (sess *session) commandLoop() {

	for !sess.exiting {
		line, err := sess.con.in.readLine(sess.prompt, true)
		if err != nil {
			if errors.Is(err, errInterrupted) {
				continue
			}

			if !errors.Is(err, io.EOF) {
				slog.Error("reading command", "err", err)
			}

			return
		}

		if err := sess.processLine(line); err != nil {
			sess.reportError(err)
		}
	}
}

//
// Feed every line of a file through processLine, as if typed.  Errors
// are reported and the next line is processed
//

func (sess *session) executeScript(filename string) error {

	f, err := os.Open(filename)
	if err != nil {
		return err
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	for scanner.Scan() && !sess.exiting {
		if err := sess.processLine(scanner.Text()); err != nil {
			sess.reportError(err)
		}
	}

	return scanner.Err()
}

//
// Print the bare error message.  With exec tracing on, also say which
// line RUN was executing and what exactly went wrong
//

func (sess *session) reportError(err error) {

	if !sess.traceExec {
		fmt.Fprintln(sess.con.out, err.Error())
		return
	}

	if lineNo := errorLine(err); lineNo > 0 {
		fmt.Fprintf(sess.con.out, "%s at line %d\n", err.Error(), lineNo)
	} else {
		fmt.Fprintln(sess.con.out, err.Error())
	}

	if detail := errorDetail(err); detail != "" {
		fmt.Fprintln(sess.con.out, detail)
	}
}

//
// Handle one line of user input: a numbered program line, a command,
// or a direct mode statement
//

func (sess *session) processLine(line string) error {

	ts := newTokenScanner(line)

	t := ts.nextToken()

	switch t.kind {
	case EOL:
		return nil

	case NUMBER:
		return sess.processProgramLine(ts, t)

	case WORD:
		if handled, err := sess.processCommand(ts, t); handled {
			return err
		}
	}

	if !isDirectStatement(t) {
		return syntaxError("%s is not a command or direct statement",
			describeToken(t))
	}

	ts.saveToken(t)

	stmt, err := parseStatement(ts)
	if err != nil {
		return err
	}

	sess.dumpStmt(stmt)

	_, err = stmt.execute(sess.env, sess.con)

	return err
}

//
// A line number on its own deletes that line.  Otherwise the line is
// stored as typed, then parsed, so a line that fails to parse is kept
// (and listed) but has no statement for RUN to execute
//

func (sess *session) processProgramLine(ts *tokenScanner, t token) error {

	lineNo, err := tokenToInt(t)
	if err != nil {
		return err
	}

	if lineNo <= 0 {
		return syntaxError("line number %d out of range", lineNo)
	}

	if !ts.hasMoreTokens() {
		sess.program.removeSourceLine(lineNo)
		return nil
	}

	sess.program.addSourceLine(lineNo, strings.TrimSpace(ts.line))

	stmt, err := parseStatement(ts)
	if err != nil {
		return err
	}

	sess.dumpStmt(stmt)

	return sess.program.setParsedStatement(lineNo, stmt)
}

//
// Commands that act on the session rather than being BASIC statements
//

func (sess *session) processCommand(ts *tokenScanner, t token) (bool, error) {

	switch t.text {
	case "RUN":
		if err := expectEOL(ts); err != nil {
			return true, err
		}

		return true, sess.executeRun()

	case "LIST":
		return true, sess.executeList(ts)

	case "CLEAR":
		if err := expectEOL(ts); err != nil {
			return true, err
		}

		sess.executeClear()

	case "QUIT":
		if err := expectEOL(ts); err != nil {
			return true, err
		}

		sess.executeQuit()

	case "HELP":
		return true, executeHelp(sess.con.out, ts)

	case "VARS":
		if err := expectEOL(ts); err != nil {
			return true, err
		}

		sess.executeVars()

	case "STATS":
		if err := expectEOL(ts); err != nil {
			return true, err
		}

		sess.executeStats()

	case "TRACE":
		return true, sess.executeTrace(ts)

	default:
		return false, nil
	}

	return true, nil
}

func (sess *session) dumpStmt(stmt *stmtNode) {

	if sess.traceDump {
		godump.Fdump(sess.con.out, stmt)
	}
}
