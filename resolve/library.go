//go:build darwin || freebsd || linux

package resolve

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/apex/log"
	"github.com/ebitengine/purego"

	"gl-dispatch/dispatch"
)

// DefaultLibraries are tried by Library when no paths are given.
var DefaultLibraries = []string{
	"libGL.so.1",
	"libGL.so",
	"libGLESv2.so.2",
	"/System/Library/Frameworks/OpenGL.framework/OpenGL",
}

// Library opens the first loadable shared library in paths and resolves
// names with dlsym only.
//
// glXGetProcAddress and eglGetProcAddress are not consulted: they hand back
// a dispatch stub for any gl-prefixed name, so they cannot report a missing
// symbol and every alias would look native.
func Library(paths ...string) (dispatch.Resolver, error) {
	if len(paths) == 0 {
		paths = DefaultLibraries
	}
	var errs []error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.WithField("path", path).Debug("opened GL library")
		return dlsym(handle), nil
	}
	return nil, fmt.Errorf("failed to open GL library: %w", errors.Join(errs...))
}

func dlsym(handle uintptr) dispatch.Resolver {
	return func(name string) unsafe.Pointer {
		p, err := purego.Dlsym(handle, name)
		if err != nil || p == 0 {
			return nil
		}
		return *(*unsafe.Pointer)(unsafe.Pointer(&p))
	}
}
