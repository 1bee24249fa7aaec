package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicError(t *testing.T) {

	err := newError(errUndefined, "%s is not defined", "X")

	assert.True(t, errors.Is(err, errUndefined))
	assert.False(t, errors.Is(err, errSyntax))
	assert.Equal(t, EUNDEFINED, err.Error())
	assert.Equal(t, "X is not defined", errorDetail(err))

	assert.Zero(t, errorLine(err))

	err = atLine(err, 30)
	assert.Equal(t, EUNDEFINED, err.Error())
	assert.Equal(t, 30, errorLine(err))

	// The first line recorded wins
	err = atLine(err, 40)
	assert.Equal(t, 30, errorLine(err))
}

func TestAtLineForeignError(t *testing.T) {

	plain := fmt.Errorf("disk on fire")

	assert.Equal(t, plain, atLine(plain, 10))
	assert.Equal(t, "", errorDetail(plain))
	assert.Zero(t, errorLine(plain))
}
