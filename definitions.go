package main

import (
	"io"
	"time"

	"github.com/danswartzendruber/avl"
	"github.com/google/btree"
)

//
// Constants
//

const VERSION = "1.0.0"

const defaultPrompt = "% "

const defaultInputPrompt = " ? "

const defaultConfigName = ".minibasic.yaml"

const invalidNumberMsg = "INVALID NUMBER"

const btreeDegree = 8

//
// Token kinds handed out by the tokenizer
//

const (
	WORD = iota + 1
	NUMBER
	OPERATOR
	EOL
)

//
// Statement tags.  Keep these in the same order as stmtNames
//

const (
	REM = iota + 1
	LET
	PRINT
	INPUT
	END
	GOTO
	IF
)

//
// Expression node tags, followed by the IF comparators
//

const (
	CONSTANT = iota + 1
	IDENT
	PLUS
	MINUS
	STAR
	SLASH
	EQ
	LT
	GT
)

//
// What the engine does after a statement has run
//

const (
	effectContinue = iota
	effectJump
	effectHalt
)

//
// Type definitions
//

type token struct {
	text   string
	kind   int
	offset int
}

type exprNode struct {
	token int
	value int
	name  string
	left  *exprNode
	right *exprNode
}

//
// A stmtNode is one parsed BASIC statement.  Which fields are
// meaningful depends on the token:
//
//   LET    varName, expr
//   PRINT  expr
//   INPUT  varName
//   GOTO   target
//   IF     lhs, cmp, rhs, target
//
// REM and END carry nothing
//

type stmtNode struct {
	token   int
	varName string
	expr    *exprNode
	lhs     *exprNode
	rhs     *exprNode
	cmp     int
	target  int
}

type controlEffect struct {
	kind int
	line int
}

//
// One numbered program line.  The AVL header must stay embedded, the
// tree hands us back the owning lineNode
//

type lineNode struct {
	avl    avl.AvlNode
	lineNo int
	source string
	stmt   *stmtNode
}

type program struct {
	root  *avl.AvlNode
	count int
}

type binding struct {
	name  string
	value int
}

type environment struct {
	vars       *btree.BTreeG[binding]
	traceOut   io.Writer
	traceVars  bool
	tracedVars map[string]bool
}

type lineReader interface {
	readLine(prompt string, history bool) (string, error)
	close() error
}

type console struct {
	out         io.Writer
	in          lineReader
	inputPrompt string
}

type statistics struct {
	elapsed       time.Time
	utime         int64
	stime         int64
	numStatements int64
}

type traceConfig struct {
	Exec bool `yaml:"exec"`
	Vars bool `yaml:"vars"`
	Dump bool `yaml:"dump"`
}

type config struct {
	Prompt      string      `yaml:"prompt"`
	InputPrompt string      `yaml:"input_prompt"`
	HistoryFile string      `yaml:"history_file"`
	Stats       bool        `yaml:"stats"`
	Trace       traceConfig `yaml:"trace"`
	LogLevel    string      `yaml:"log_level"`
}

//
// This structure holds everything one interpreter session owns: the
// stored program, the variables, and where text comes from and goes to
//

type session struct {
	program    program
	env        *environment
	con        *console
	prompt     string
	traceExec  bool
	traceDump  bool
	printStats bool
	exiting    bool
	stats      statistics
}

//
// Global variables
//

var buildTimestampStr string

//
// Reserved words.  None of these may be used as a variable name
//

var keywordMap = map[string]bool{
	"REM": true, "LET": true, "PRINT": true, "INPUT": true,
	"END": true, "GOTO": true, "IF": true, "THEN": true,
	"RUN": true, "LIST": true, "CLEAR": true, "QUIT": true,
	"HELP": true, "TRACE": true, "STATS": true, "VARS": true,
}

var stmtNames = []string{"", "REM", "LET", "PRINT", "INPUT", "END",
	"GOTO", "IF"}

var opNames = []string{"", "CONSTANT", "IDENT", "+", "-", "*", "/",
	"=", "<", ">"}
