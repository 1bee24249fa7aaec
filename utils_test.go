package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProcStat(t *testing.T) {

	stat := "4321 (mini basic) S 1 2 3 4 5 6 7 8 9 10 500 300 0 0 20 0 1"

	utime, stime := parseProcStat(stat, 100)
	assert.Equal(t, int64(5), utime)
	assert.Equal(t, int64(3), stime)

	utime, stime = parseProcStat("garbage", 100)
	assert.Zero(t, utime)
	assert.Zero(t, stime)

	utime, stime = parseProcStat("1 (x) S 1 2", 100)
	assert.Zero(t, utime)
	assert.Zero(t, stime)
}

func TestFormatCPUTime(t *testing.T) {

	assert.Equal(t, "00:00:00", formatCPUTime(0))
	assert.Equal(t, "00:01:05", formatCPUTime(65))
	assert.Equal(t, "01:02:05", formatCPUTime(3725))
}

func TestSmallHelpers(t *testing.T) {

	assert.Equal(t, "ON", switchSetting(true))
	assert.Equal(t, "OFF", switchSetting(false))
	assert.Equal(t, "statement", pluralize("statement", 1))
	assert.Equal(t, "statements", pluralize("statement", 0))
	assert.Equal(t, "statements", pluralize("statement", 2))
}

func TestPlainReader(t *testing.T) {

	var out bytes.Buffer

	pr := newPlainReader(strings.NewReader("one\r\ntwo\nthree"), &out)

	s, err := pr.readLine("> ", true)
	require.NoError(t, err)
	assert.Equal(t, "one", s)

	s, err = pr.readLine("", false)
	require.NoError(t, err)
	assert.Equal(t, "two", s)

	s, err = pr.readLine("> ", false)
	require.NoError(t, err)
	assert.Equal(t, "three", s)

	_, err = pr.readLine("", false)
	assert.True(t, errors.Is(err, io.EOF))

	assert.Equal(t, "> > ", out.String())
	assert.NoError(t, pr.close())
}
