package gl

// Scalar types of the GL C API, as seen by Go callers.
type (
	Enum     = uint32
	Bitfield = uint32
	Boolean  = bool
	Int      = int32
	Uint     = uint32
	Sizei    = int32
	Float    = float32
	Double   = float64
	Intptr   = int
	Sizeiptr = int
	Uint64   = uint64

	// Sync is an opaque fence handle returned by FenceSync.
	Sync uintptr
)
