package dispatch

import (
	"reflect"

	"github.com/ebitengine/purego"
)

// Bind points the func variable fn at the entry point name. F must be a
// func type whose parameters and results follow the C signature of the GL
// function. Nothing checks this: a wrong signature is undefined behaviour.
// This is the only place a stored address is turned into a typed callable.
//
// If name is unloaded (or unknown), fn is set to a stub that terminates the
// process naming the entry point instead of jumping to the trap address.
func Bind[F any](t *Table, name string, fn *F) {
	c, ok := t.cell(name)
	if !ok || !c.loaded {
		v := reflect.ValueOf(fn).Elem()
		v.Set(reflect.MakeFunc(v.Type(), func([]reflect.Value) []reflect.Value {
			trap(name)
			return nil
		}))
		return
	}
	purego.RegisterFunc(fn, uintptr(c.addr))
}

// Call invokes name with integer or pointer arguments and returns the first
// result register. Use Bind for signatures with floating point values.
func (t *Table) Call(name string, args ...uintptr) uintptr {
	c, ok := t.cell(name)
	if !ok || !c.loaded {
		trap(name)
	}
	r1, _, _ := purego.SyscallN(uintptr(c.addr), args...)
	return r1
}
