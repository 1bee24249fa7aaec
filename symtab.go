package main

import (
	"fmt"
	"io"

	"github.com/google/btree"
)

//
// The variable environment.  Bindings live in a btree ordered by name,
// which gives VARS a stable listing for free.  Reading a name that was
// never assigned is an error, there is no implicit zero
//

func bindingLess(a, b binding) bool {

	return a.name < b.name
}

func newEnvironment() *environment {

	return &environment{
		vars:       btree.NewG[binding](btreeDegree, bindingLess),
		tracedVars: make(map[string]bool),
	}
}

func (env *environment) get(name string) (int, error) {

	b, ok := env.vars.Get(binding{name: name})
	if !ok {
		return 0, newError(errUndefined, "%s is not defined", name)
	}

	return b.value, nil
}

func (env *environment) set(name string, value int) {

	old, existed := env.vars.ReplaceOrInsert(binding{name: name, value: value})

	env.traceVar(name, old.value, existed, value)
}

func (env *environment) isDefined(name string) bool {

	return env.vars.Has(binding{name: name})
}

func (env *environment) clear() {

	env.vars.Clear(false)
}

func (env *environment) len() int {

	return env.vars.Len()
}

//
// Walk the bindings in name order.  Stop early if f returns false
//

func (env *environment) ascend(f func(name string, value int) bool) {

	env.vars.Ascend(func(b binding) bool {
		return f(b.name, b.value)
	})
}

func (env *environment) setTraceOutput(w io.Writer) {

	env.traceOut = w
}

//
// Toggle tracing for one variable.  Returns the new setting.  Naming
// a specific variable turns off the global variable trace
//

func (env *environment) toggleTracedVar(name string) bool {

	env.traceVars = false
	env.tracedVars[name] = !env.tracedVars[name]

	return env.tracedVars[name]
}

func (env *environment) traceVar(name string, oval int, existed bool, nval int) {

	if env.traceOut == nil || !(env.traceVars || env.tracedVars[name]) {
		return
	}

	if existed {
		fmt.Fprintf(env.traceOut, "Variable %s changed from %d to %d\n",
			name, oval, nval)
	} else {
		fmt.Fprintf(env.traceOut, "Variable %s set to %d\n", name, nval)
	}
}
