package main

import (
	"strconv"
	"strings"
	"text/scanner"
)

//
// The tokenizer hands out one token at a time from a single input
// line.  Scanning is lazy: nothing past the last token asked for is
// ever looked at, which is what lets REM swallow arbitrary text
//

type tokenScanner struct {
	s     scanner.Scanner
	line  string
	saved []token
	pos   int
}

func newTokenScanner(line string) *tokenScanner {

	ts := &tokenScanner{line: line}

	ts.s.Init(strings.NewReader(line))
	ts.s.Mode = scanner.ScanIdents | scanner.ScanInts
	ts.s.Error = dummyScannerError

	return ts
}

func (ts *tokenScanner) hasMoreTokens() bool {

	t := ts.nextToken()
	ts.saveToken(t)

	return t.kind != EOL
}

//
// Once the line is exhausted, every call returns an EOL token
//

func (ts *tokenScanner) nextToken() token {

	var t token

	if n := len(ts.saved); n > 0 {
		t = ts.saved[n-1]
		ts.saved = ts.saved[:n-1]
	} else {
		t = getLexeme(&ts.s)
	}

	ts.pos = t.offset + len(t.text)

	return t
}

//
// Push a token back so the next nextToken returns it again
//

func (ts *tokenScanner) saveToken(t token) {

	ts.saved = append(ts.saved, t)
	ts.pos = t.offset
}

//
// Byte offset into the line just past the last token handed out
//

func (ts *tokenScanner) getPosition() int {

	return ts.pos
}

func getTokenType(t token) int {

	return t.kind
}

func getLexeme(s *scanner.Scanner) token {

	tok := s.Scan()

	switch tok {
	case scanner.EOF:
		return token{kind: EOL, offset: s.Pos().Offset}

	case scanner.Ident:
		return token{text: s.TokenText(), kind: WORD, offset: s.Position.Offset}

	case scanner.Int:
		return token{text: s.TokenText(), kind: NUMBER, offset: s.Position.Offset}

	default:
		return token{text: s.TokenText(), kind: OPERATOR, offset: s.Position.Offset}
	}
}

//
// This is a dummy to suppress reporting of errors by the scanner.
// Malformed numbers still come back as NUMBER tokens, and are
// rejected by tokenToInt
//

func dummyScannerError(s *scanner.Scanner, msg string) {
}

func isKeyword(word string) bool {

	return keywordMap[word]
}

//
// A variable name is any WORD that is not reserved
//

func isVariableName(t token) bool {

	return t.kind == WORD && !isKeyword(t.text)
}

//
// Convert a NUMBER token to an int.  text/scanner also accepts hex,
// octal and binary literals, and '_' separators; BASIC only has
// plain decimal integers
//

func tokenToInt(t token) (int, error) {

	if t.kind != NUMBER {
		return 0, syntaxError("number expected, found %s", describeToken(t))
	}

	n, err := strconv.ParseInt(t.text, 10, strconv.IntSize)
	if err != nil {
		return 0, syntaxError("invalid number %q", t.text)
	}

	return int(n), nil
}

func describeToken(t token) string {

	if t.kind == EOL {
		return "end of line"
	}

	return strconv.Quote(t.text)
}

//
// Consume the next token, which must be exactly text
//

func expectToken(ts *tokenScanner, text string) error {

	t := ts.nextToken()
	if t.text != text || t.kind == EOL {
		return syntaxError("expected %q, found %s", text, describeToken(t))
	}

	return nil
}

func expectEOL(ts *tokenScanner) error {

	if t := ts.nextToken(); t.kind != EOL {
		return syntaxError("unexpected %s", describeToken(t))
	}

	return nil
}
