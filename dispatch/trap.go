package dispatch

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/apex/log"
	"github.com/ebitengine/purego"
)

const trapMessage = "gl: called an uninitialized function pointer"

var (
	trapOnce sync.Once
	trapAddr uintptr

	// fatal terminates the process. Replaced in tests.
	fatal = func(msg string) { log.Fatal(msg) }
)

// TrapAddr returns the address of the process-wide trap routine that every
// unloaded cell points at. Calling it from native code aborts the process.
func TrapAddr() unsafe.Pointer {
	trapOnce.Do(func() {
		trapAddr = purego.NewCallback(func() uintptr {
			fail(trapMessage)
			return 0
		})
	})
	return *(*unsafe.Pointer)(unsafe.Pointer(&trapAddr))
}

// trap reports a call through the unloaded entry point name.
func trap(name string) {
	fail(fmt.Sprintf("gl: %s was called but never initialized", name))
}

func fail(msg string) {
	fatal(msg)
	// fatal must not return; a hook that does still never reaches native code.
	panic(msg)
}
