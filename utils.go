package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/danswartzendruber/liner"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/term"
)

//
// Are we talking to a person?  Line editing only makes sense if both
// standard input and standard output are terminals
//

func isTerminal() bool {

	return term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))
}

//
// Interactive input goes through liner, for editing and a scrollback
// history.  Only command lines are added to the history, not replies
// to INPUT
//

type linerReader struct {
	state       *liner.State
	historyFile string
}

func newLinerReader(historyFile string) *linerReader {

	l := liner.NewLiner()

	l.SetCtrlCAborts(true)

	lr := &linerReader{state: l, historyFile: historyFile}

	lr.loadHistory()

	return lr
}

func (lr *linerReader) readLine(prompt string, history bool) (string, error) {

	s, err := lr.state.Prompt(prompt)

	//
	// ^C at a prompt aborts whatever is waiting on it.  ^D at the
	// start of a line shows up as io.EOF
	//

	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", errInterrupted
		}

		return "", err
	}

	if history && strings.TrimSpace(s) != "" {
		lr.state.AppendHistory(s)
	}

	return s, nil
}

func (lr *linerReader) loadHistory() {

	if lr.historyFile == "" {
		return
	}

	f, err := os.Open(lr.historyFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("cannot read history", "file", lr.historyFile, "err", err)
		}

		return
	}

	defer f.Close()

	if n, err := lr.state.ReadHistory(f); err != nil {
		slog.Warn("cannot read history", "file", lr.historyFile, "err", err)
	} else {
		slog.Debug("history loaded", "file", lr.historyFile, "lines", n)
	}
}

func (lr *linerReader) saveHistory() {

	if lr.historyFile == "" {
		return
	}

	f, err := os.Create(lr.historyFile)
	if err != nil {
		slog.Warn("cannot save history", "file", lr.historyFile, "err", err)
		return
	}

	defer f.Close()

	if _, err = lr.state.WriteHistory(f); err != nil {
		slog.Warn("cannot save history", "file", lr.historyFile, "err", err)
	}
}

//
// Save the history, then put the terminal back the way we found it
//

func (lr *linerReader) close() error {

	lr.saveHistory()

	return lr.state.Close()
}

//
// Non-interactive input: pipes, script files, tests.  The prompt is
// still written, so a transcript reads the same as a terminal session
//

type plainReader struct {
	r   *bufio.Reader
	out io.Writer
}

func newPlainReader(r io.Reader, out io.Writer) *plainReader {

	return &plainReader{r: bufio.NewReader(r), out: out}
}

func (pr *plainReader) readLine(prompt string, history bool) (string, error) {

	if prompt != "" && pr.out != nil {
		fmt.Fprint(pr.out, prompt)
	}

	s, err := pr.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(s) > 0 {
			return strings.TrimRight(s, "\r\n"), nil
		}

		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

func (pr *plainReader) close() error {

	return nil
}

func switchSetting(b bool) string {

	if b {
		return "ON"
	} else {
		return "OFF"
	}
}

func pluralize(str string, num int64) string {

	//
	// Oddity: 0 is considered plural
	//

	if num != 1 {
		return str + "s"
	}

	return str
}

//
// Run statistics
//

func (sess *session) resetStatistics() {

	sess.stats = statistics{}
}

func (sess *session) initClock() {

	sess.stats.elapsed = time.Now()
	sess.stats.utime, sess.stats.stime = getCPUInfo()
}

func (sess *session) printStatistics() {

	out := sess.con.out

	fmt.Fprintln(out)
	sess.printCpuUsage()
	fmt.Fprintf(out, "%d %s executed\n", sess.stats.numStatements,
		pluralize("statement", sess.stats.numStatements))
}

func (sess *session) printCpuUsage() {

	elapsed := time.Since(sess.stats.elapsed)
	utime, stime := getCPUInfo()

	fmt.Fprintf(sess.con.out,
		"CPU Usage: elapsed = %s / user = %s / system = %s\n",
		formatCPUTime(int64(elapsed.Seconds())),
		formatCPUTime(utime-sess.stats.utime),
		formatCPUTime(stime-sess.stats.stime))
}

func formatCPUTime(t int64) string {

	var h, m int64

	if t >= 3600 {
		h = t / 3600
		t = t % 3600
	}

	if t >= 60 {
		m = t / 60
		t = t % 60
	}

	return fmt.Sprintf("%02d:%02d:%02d", h, m, t)
}

//
// User and system CPU seconds used by this process so far.  Both are
// zero where /proc is not available
//

func getCPUInfo() (int64, int64) {

	clktck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || clktck <= 0 {
		slog.Debug("sysconf failed", "err", err)
		return 0, 0
	}

	contents, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		slog.Debug("cannot read process stats", "err", err)
		return 0, 0
	}

	return parseProcStat(string(contents), clktck)
}

//
// The command name (field 2) is parenthesized and may contain blanks,
// so count fields from the closing parenthesis.  utime and stime are
// fields 14 and 15
//

func parseProcStat(contents string, clktck int64) (int64, int64) {

	idx := strings.LastIndexByte(contents, ')')
	if idx < 0 {
		return 0, 0
	}

	fields := strings.Fields(contents[idx+1:])
	if len(fields) < 13 {
		return 0, 0
	}

	utime, err := strconv.ParseInt(fields[11], 10, 64)
	if err != nil {
		return 0, 0
	}

	stime, err := strconv.ParseInt(fields[12], 10, 64)
	if err != nil {
		return 0, 0
	}

	return utime / clktck, stime / clktck
}
