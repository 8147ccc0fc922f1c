// Package resolve provides dispatch.Resolver implementations: static maps,
// chains, tracing wrappers, glfw's GetProcAddress and dlsym over a shared
// library.
package resolve

import (
	"unsafe"

	"github.com/apex/log"

	"gl-dispatch/dispatch"
)

// Map resolves names from a fixed table.
func Map(procs map[string]unsafe.Pointer) dispatch.Resolver {
	return func(name string) unsafe.Pointer {
		return procs[name]
	}
}

// Chain asks each resolver in turn and returns the first non-nil address.
// Nil resolvers are skipped.
func Chain(rs ...dispatch.Resolver) dispatch.Resolver {
	return func(name string) unsafe.Pointer {
		for _, r := range rs {
			if r == nil {
				continue
			}
			if p := r(name); p != nil {
				return p
			}
		}
		return nil
	}
}

// Traced logs every lookup at debug level.
func Traced(r dispatch.Resolver) dispatch.Resolver {
	return func(name string) unsafe.Pointer {
		p := r(name)
		ctx := log.WithField("symbol", name)
		if p == nil {
			ctx.Debug("missing")
		} else {
			ctx.WithField("addr", p).Debug("resolved")
		}
		return p
	}
}
