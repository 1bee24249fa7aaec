package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(line string) []token {

	var toks []token

	ts := newTokenScanner(line)

	for {
		t := ts.nextToken()
		if t.kind == EOL {
			return toks
		}

		toks = append(toks, t)
	}
}

func TestTokenKinds(t *testing.T) {

	toks := collectTokens("LET X1 = (10 + Y) * 3")

	texts := make([]string, len(toks))
	kinds := make([]int, len(toks))

	for i, tok := range toks {
		texts[i] = tok.text
		kinds[i] = getTokenType(tok)
	}

	assert.Equal(t, []string{"LET", "X1", "=", "(", "10", "+", "Y", ")", "*", "3"}, texts)
	assert.Equal(t, []int{WORD, WORD, OPERATOR, OPERATOR, NUMBER, OPERATOR,
		WORD, OPERATOR, OPERATOR, NUMBER}, kinds)
}

func TestTokenScannerSaveToken(t *testing.T) {

	ts := newTokenScanner("PRINT 42")

	first := ts.nextToken()
	require.Equal(t, "PRINT", first.text)
	assert.Equal(t, 5, ts.getPosition())

	ts.saveToken(first)
	assert.Equal(t, 0, ts.getPosition())

	again := ts.nextToken()
	assert.Equal(t, first, again)

	assert.True(t, ts.hasMoreTokens())
	assert.Equal(t, "42", ts.nextToken().text)
	assert.False(t, ts.hasMoreTokens())

	// EOL is sticky
	assert.Equal(t, EOL, ts.nextToken().kind)
	assert.Equal(t, EOL, ts.nextToken().kind)
}

func TestTokenScannerPosition(t *testing.T) {

	ts := newTokenScanner("10   REM  anything \"at all\"")

	require.Equal(t, "10", ts.nextToken().text)
	require.True(t, ts.hasMoreTokens())
	assert.Equal(t, "REM  anything \"at all\"", ts.line[ts.getPosition():])
}

func TestTokenToInt(t *testing.T) {

	n, err := tokenToInt(token{text: "1234", kind: NUMBER})
	require.NoError(t, err)
	assert.Equal(t, 1234, n)

	for _, tok := range []token{
		{text: "0x1F", kind: NUMBER},
		{text: "1_000", kind: NUMBER},
		{text: "X", kind: WORD},
		{kind: EOL},
	} {
		_, err := tokenToInt(tok)
		assert.True(t, errors.Is(err, errSyntax), "token %q", tok.text)
	}
}

func TestIsVariableName(t *testing.T) {

	assert.True(t, isVariableName(token{text: "X", kind: WORD}))
	assert.True(t, isVariableName(token{text: "total", kind: WORD}))
	assert.False(t, isVariableName(token{text: "LET", kind: WORD}))
	assert.False(t, isVariableName(token{text: "THEN", kind: WORD}))
	assert.False(t, isVariableName(token{text: "10", kind: NUMBER}))
}

func TestExpectHelpers(t *testing.T) {

	ts := newTokenScanner("= 5")
	assert.NoError(t, expectToken(ts, "="))
	assert.Error(t, expectEOL(ts))

	ts = newTokenScanner("")
	assert.True(t, errors.Is(expectToken(ts, ")"), errSyntax))
	assert.NoError(t, expectEOL(ts))
}
