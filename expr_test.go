package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpString(s string) (*exprNode, error) {

	return parseExp(newTokenScanner(s))
}

func TestEvalArithmetic(t *testing.T) {

	env := newEnvironment()
	env.set("X", 6)

	tests := []struct {
		src  string
		want int
	}{
		{"3 + 4 * 2", 11},
		{"(3 + 4) * 2", 14},
		{"10 - 2 - 3", 5},
		{"100 / 10 / 5", 2},
		{"7 / 2", 3},
		{"-7 / 2", -3},
		{"2 * -3", -6},
		{"-(1 + 2)", -3},
		{"X * X - 1", 35},
		{"((X))", 6},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			exp, err := parseExpString(tt.src)
			require.NoError(t, err)

			got, err := exp.eval(env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalErrors(t *testing.T) {

	env := newEnvironment()
	env.set("Z", 0)

	exp, err := parseExpString("7 / 0")
	require.NoError(t, err)

	_, err = exp.eval(env)
	assert.True(t, errors.Is(err, errDivisionByZero))
	assert.Equal(t, EDIVISIONBYZERO, err.Error())

	exp, err = parseExpString("1 / Z")
	require.NoError(t, err)

	_, err = exp.eval(env)
	assert.True(t, errors.Is(err, errDivisionByZero))

	exp, err = parseExpString("Y + 1")
	require.NoError(t, err)

	_, err = exp.eval(env)
	assert.True(t, errors.Is(err, errUndefined))

	// Evaluation never creates a binding
	assert.False(t, env.isDefined("Y"))
}

func TestParseExpSyntaxErrors(t *testing.T) {

	for _, src := range []string{
		"",
		"(1 + 2",
		"1 +",
		"1 2",
		")",
		"* 3",
		"LET + 1",
		"1 + 2)",
		"0x10",
	} {
		_, err := parseExpString(src)
		assert.True(t, errors.Is(err, errSyntax), "expression %q", src)
	}
}

func TestExprString(t *testing.T) {

	exp, err := parseExpString("1 + 2 * X - -3")
	require.NoError(t, err)

	assert.Equal(t, "((1 + (2 * X)) - (0 - 3))", exp.String())
}
