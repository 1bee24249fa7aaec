package main

import (
	"errors"
	"fmt"
)

//
// Manifest constants for the error messages the interpreter prints.
// These are the classic upper case texts; the detail string in a
// basicError carries anything more specific
//

const (
	ESYNTAX         = "SYNTAX ERROR"
	ENOSUCHLINE     = "NO SUCH LINE"
	ELINENUMBER     = "LINE NUMBER ERROR"
	EUNDEFINED      = "VARIABLE NOT DEFINED"
	EDIVISIONBYZERO = "DIVIDE BY ZERO"
	EENDOFINPUT     = "END OF INPUT"
	EINTERRUPTED    = "INTERRUPTED"
)

var errSyntax = errors.New(ESYNTAX)
var errNoSuchLine = errors.New(ENOSUCHLINE)
var errUnknownLine = errors.New(ELINENUMBER)
var errUndefined = errors.New(EUNDEFINED)
var errDivisionByZero = errors.New(EDIVISIONBYZERO)
var errEndOfInput = errors.New(EENDOFINPUT)
var errInterrupted = errors.New(EINTERRUPTED)

//
// Every failure raised by the core is a basicError wrapping one of the
// sentinels above, so callers can test with errors.Is.  line is zero
// unless the error was raised while RUN was executing a stored line.
// The message itself never includes the line
//

type basicError struct {
	base   error
	detail string
	line   int
}

func (e *basicError) Error() string {

	return e.base.Error()
}

func (e *basicError) Unwrap() error {

	return e.base
}

func newError(base error, f string, args ...any) error {

	return &basicError{base: base, detail: fmt.Sprintf(f, args...)}
}

func syntaxError(f string, args ...any) error {

	return newError(errSyntax, f, args...)
}

//
// Tag an error with the line RUN was executing.  Errors that already
// carry a line number keep it
//

func atLine(err error, lineNo int) error {

	var be *basicError

	if errors.As(err, &be) && be.line == 0 {
		be.line = lineNo
	}

	return err
}

func errorLine(err error) int {

	var be *basicError

	if errors.As(err, &be) {
		return be.line
	}

	return 0
}

func errorDetail(err error) string {

	var be *basicError

	if errors.As(err, &be) {
		return be.detail
	}

	return ""
}
