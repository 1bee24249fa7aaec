package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineChain(prog *program) []int {

	var lines []int

	n, ok := prog.getFirstLineNumber()

	for ok {
		lines = append(lines, n)
		n, ok = prog.getNextLineNumber(n)
	}

	return lines
}

func TestProgramOrdering(t *testing.T) {

	var prog program

	_, ok := prog.getFirstLineNumber()
	assert.False(t, ok)

	for _, n := range []int{30, 10, 50, 20, 40} {
		prog.addSourceLine(n, "")
	}

	assert.Equal(t, []int{10, 20, 30, 40, 50}, lineChain(&prog))
	assert.Equal(t, 5, prog.len())

	_, ok = prog.getNextLineNumber(50)
	assert.False(t, ok)

	// No successor for a line that is not stored
	_, ok = prog.getNextLineNumber(25)
	assert.False(t, ok)
}

func TestProgramOverwriteDiscardsStatement(t *testing.T) {

	var prog program

	prog.addSourceLine(10, "10 PRINT 1")
	require.NoError(t, prog.setParsedStatement(10, &stmtNode{token: END}))
	require.NotNil(t, prog.getParsedStatement(10))

	prog.addSourceLine(10, "10 PRINT 2")

	assert.Equal(t, "10 PRINT 2", prog.getSourceLine(10))
	assert.Nil(t, prog.getParsedStatement(10))
	assert.Equal(t, 1, prog.len())
}

func TestProgramRemove(t *testing.T) {

	var prog program

	prog.addSourceLine(10, "10 REM")
	prog.addSourceLine(20, "20 REM")
	prog.addSourceLine(30, "30 REM")

	prog.removeSourceLine(20)
	assert.Equal(t, []int{10, 30}, lineChain(&prog))

	// Removing something that is not there is not an error
	prog.removeSourceLine(20)
	prog.removeSourceLine(99)
	assert.Equal(t, []int{10, 30}, lineChain(&prog))
	assert.Equal(t, 2, prog.len())

	assert.False(t, prog.hasLine(20))
	assert.Equal(t, "", prog.getSourceLine(20))
	assert.Nil(t, prog.getParsedStatement(20))
}

func TestProgramSetParsedStatementMissingLine(t *testing.T) {

	var prog program

	err := prog.setParsedStatement(10, &stmtNode{token: END})
	assert.True(t, errors.Is(err, errNoSuchLine))
	assert.False(t, prog.hasLine(10))
}

func TestProgramRangeAndClear(t *testing.T) {

	var prog program

	for _, n := range []int{5, 15, 25, 35} {
		prog.addSourceLine(n, "")
	}

	var seen []int

	prog.forEachInRange(10, 30, func(line *lineNode) {
		seen = append(seen, line.lineNo)
	})

	assert.Equal(t, []int{15, 25}, seen)

	prog.clear()
	assert.Equal(t, 0, prog.len())
	assert.Nil(t, lineChain(&prog))

	prog.addSourceLine(1, "1 END")
	assert.Equal(t, []int{1}, lineChain(&prog))
}
