package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteScript(t *testing.T) {

	path := writeTempFile(t, "count.bas", `10 LET I = 3
20 PRINT I
30 LET I = I - 1
40 IF I > 0 THEN 20
50 PRINT 10 / I
RUN
PRINT 99
QUIT
PRINT 100
`)

	sess, out := newTestSession("")

	require.NoError(t, sess.executeScript(path))

	assert.Equal(t, "3\n2\n1\nDIVIDE BY ZERO\n99\n", out.String())
	assert.True(t, sess.exiting)

	assert.Error(t, sess.executeScript(path+".missing"))
}

func TestHelp(t *testing.T) {

	sess, out := newTestSession("")

	require.NoError(t, sess.processLine("HELP"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(helpTopics))
	assert.Contains(t, lines, "GOTO")
	assert.Contains(t, lines, "TRACE")

	out.Reset()
	require.NoError(t, sess.processLine("HELP LET"))
	assert.Equal(t, "Assign an expression to a variable\n\tLET <variable> = <expr>\n", out.String())

	assert.True(t, errors.Is(sess.processLine("HELP FOO"), errSyntax))
	assert.True(t, errors.Is(sess.processLine("HELP LET PRINT"), errSyntax))
}

func TestPrintVersionInfo(t *testing.T) {

	var out bytes.Buffer

	printVersionInfo(&out)

	assert.Equal(t, "MINIBASIC version "+VERSION+"\n", out.String())
}
