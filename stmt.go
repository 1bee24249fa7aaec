package main

import (
	"fmt"

	"github.com/danswartzendruber/avl"
)

//
// The program store: one lineNode per line number, kept in an AVL
// tree so traversal is always in ascending line order no matter what
// order lines were typed in.  This is the only code that talks to the
// AVL package
//

func cmpLineKey(key any, node any) int {

	return cmpLineItems(key.(int), node.(*lineNode).lineNo)
}

func cmpLineNode(node1, node2 any) int {

	return cmpLineItems(node1.(*lineNode).lineNo, node2.(*lineNode).lineNo)
}

func cmpLineItems(item1, item2 int) int {

	if item1 < item2 {
		return -1
	} else if item1 > item2 {
		return 1
	} else {
		return 0
	}
}

func (prog *program) lineAvlTreeLookup(lineNo int) *lineNode {

	p := avl.AvlTreeLookup(prog.root, lineNo, cmpLineKey)
	if p != nil {
		return p.(*lineNode)
	} else {
		return nil
	}
}

func (prog *program) lineAvlTreeFirstInOrder() *lineNode {

	p := avl.AvlTreeFirstInOrder(prog.root)
	if p != nil {
		return p.(*lineNode)
	} else {
		return nil
	}
}

func lineAvlTreeNextInOrder(line *lineNode) *lineNode {

	p := avl.AvlTreeNextInOrder(&line.avl)
	if p != nil {
		return p.(*lineNode)
	} else {
		return nil
	}
}

func (prog *program) lineAvlTreeInsert(line *lineNode) {

	p := avl.AvlTreeInsert(&prog.root, &line.avl, line, cmpLineNode)
	if p != nil {
		panic(fmt.Sprintf("line %d already in tree", line.lineNo))
	}

	prog.count++
}

func (prog *program) lineAvlTreeRemove(line *lineNode) {

	avl.AvlTreeRemove(&prog.root, &line.avl)

	prog.count--
}

//
// Insert or replace the source text for lineNo.  Replacing a line
// throws away whatever statement was parsed for the old text
//

func (prog *program) addSourceLine(lineNo int, text string) {

	if line := prog.lineAvlTreeLookup(lineNo); line != nil {
		line.source = text
		line.stmt = nil
		return
	}

	prog.lineAvlTreeInsert(&lineNode{lineNo: lineNo, source: text})
}

func (prog *program) removeSourceLine(lineNo int) {

	if line := prog.lineAvlTreeLookup(lineNo); line != nil {
		prog.lineAvlTreeRemove(line)
	}
}

func (prog *program) getSourceLine(lineNo int) string {

	if line := prog.lineAvlTreeLookup(lineNo); line != nil {
		return line.source
	}

	return ""
}

func (prog *program) hasLine(lineNo int) bool {

	return prog.lineAvlTreeLookup(lineNo) != nil
}

func (prog *program) setParsedStatement(lineNo int, stmt *stmtNode) error {

	line := prog.lineAvlTreeLookup(lineNo)
	if line == nil {
		return newError(errNoSuchLine, "no source line at line number %d",
			lineNo)
	}

	line.stmt = stmt

	return nil
}

func (prog *program) getParsedStatement(lineNo int) *stmtNode {

	if line := prog.lineAvlTreeLookup(lineNo); line != nil {
		return line.stmt
	}

	return nil
}

func (prog *program) getFirstLineNumber() (int, bool) {

	if line := prog.lineAvlTreeFirstInOrder(); line != nil {
		return line.lineNo, true
	}

	return 0, false
}

//
// The successor of a line that is not in the store is "none"; we
// cannot resume a sequence from a line we do not know
//

func (prog *program) getNextLineNumber(lineNo int) (int, bool) {

	line := prog.lineAvlTreeLookup(lineNo)
	if line == nil {
		return 0, false
	}

	if next := lineAvlTreeNextInOrder(line); next != nil {
		return next.lineNo, true
	}

	return 0, false
}

func (prog *program) clear() {

	prog.root = nil
	prog.count = 0
}

func (prog *program) len() int {

	return prog.count
}

//
// Call f for each line between first and last inclusive, in order
//

func (prog *program) forEachInRange(first, last int, f func(line *lineNode)) {

	for line := prog.lineAvlTreeFirstInOrder(); line != nil; line = lineAvlTreeNextInOrder(line) {
		if line.lineNo < first {
			continue
		} else if line.lineNo > last {
			break
		}

		f(line)
	}
}
