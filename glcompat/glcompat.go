// Package glcompat hands a healed dispatch table to go-gl's generated
// bindings, so code written against github.com/go-gl/gl also picks up
// entry points that only resolved under an alias.
package glcompat

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gl-dispatch/dispatch"
)

// Init initialises go-gl's 4.1 core bindings from t. go-gl asks for every
// 4.1 core symbol it knows, including ones outside t's registry, so
// fallback resolves those; it may be nil.
func Init(t *dispatch.Table, fallback dispatch.Resolver) error {
	if err := gl.InitWithProcAddrFunc(procAddr(t, fallback)); err != nil {
		return fmt.Errorf("failed to initialize go-gl: %w", err)
	}
	return nil
}

func procAddr(t *dispatch.Table, fallback dispatch.Resolver) func(name string) unsafe.Pointer {
	return func(name string) unsafe.Pointer {
		if t.Has(name) {
			return t.ProcAddr(name)
		}
		if fallback != nil {
			return fallback(name)
		}
		return nil
	}
}

// Version reports GL_VERSION through go-gl, for cross-checking a table
// against an independently bound function.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
