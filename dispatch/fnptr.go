package dispatch

import "unsafe"

// FnPtr holds one entry-point address and whether the resolver (or an
// alias) produced it. An unloaded FnPtr points at the trap routine, never
// at nil.
type FnPtr struct {
	addr   unsafe.Pointer
	loaded bool
}

// NewFnPtr wraps a resolver result. A nil address yields an unloaded cell
// pointing at TrapAddr.
func NewFnPtr(addr unsafe.Pointer) FnPtr {
	if addr == nil {
		return FnPtr{addr: TrapAddr(), loaded: false}
	}
	return FnPtr{addr: addr, loaded: true}
}

// Loaded reports whether a real address was found.
func (p FnPtr) Loaded() bool {
	return p.loaded
}

// Addr returns the stored address: the resolved function, or the trap.
func (p FnPtr) Addr() unsafe.Pointer {
	return p.addr
}

// AdoptIfUnloaded replaces p with other when p is unloaded and other is
// loaded. A loaded cell is never overwritten.
func (p *FnPtr) AdoptIfUnloaded(other FnPtr) bool {
	if p.loaded || !other.loaded {
		return false
	}
	*p = other
	return true
}
