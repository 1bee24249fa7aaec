package main

import (
	"fmt"
	"io"
)

var helpTopics = []struct {
	name string
	text []string
}{
	{"CLEAR", []string{"Erase the current program and all variables"}},
	{"END", []string{"Stop the running program"}},
	{"GOTO", []string{"Continue execution at the given line", "\tGOTO <line>"}},
	{"HELP", []string{"Show this list, or help for one command",
		"\tHELP <command>"}},
	{"IF", []string{"Jump to a line when a comparison holds",
		"\tIF <expr> =|<|> <expr> THEN <line>"}},
	{"INPUT", []string{"Read an integer into a variable", "\tINPUT <variable>"}},
	{"LET", []string{"Assign an expression to a variable",
		"\tLET <variable> = <expr>"}},
	{"LIST", []string{"List the program, one line, or a range of lines",
		"\tLIST", "\tLIST <line>", "\tLIST <first>-<last>"}},
	{"PRINT", []string{"Print the value of an expression", "\tPRINT <expr>"}},
	{"QUIT", []string{"Exit from the interpreter"}},
	{"REM", []string{"Comment, the rest of the line is ignored"}},
	{"RUN", []string{"Execute the current program from its first line"}},
	{"STATS", []string{"Toggle printing execution statistics when a" +
		" program stops"}},
	{"TRACE", []string{"Toggle tracing of statement execution, variable" +
		" changes or parsed statements",
		"\tTRACE EXEC", "\tTRACE VARS", "\tTRACE DUMP",
		"\tTRACE <variable name>"}},
	{"VARS", []string{"List all variables and their values"}},
}

func executeHelp(w io.Writer, ts *tokenScanner) error {

	t := ts.nextToken()

	if t.kind == EOL {
		for _, topic := range helpTopics {
			fmt.Fprintln(w, topic.name)
		}

		return nil
	}

	if err := expectEOL(ts); err != nil {
		return err
	}

	for _, topic := range helpTopics {
		if topic.name != t.text {
			continue
		}

		for _, line := range topic.text {
			fmt.Fprintln(w, line)
		}

		return nil
	}

	return syntaxError("no help for %s", describeToken(t))
}
