package gl

import (
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gl-dispatch/dispatch"
)

var (
	extAPPLE = []byte("GL_APPLE_vertex_array_object\x00")
	extKHR   = []byte("GL_KHR_debug\x00")
	glVer    = []byte("2.1 APPLE-18.5.9\x00")
)

func callback(fn any) unsafe.Pointer {
	p := purego.NewCallback(fn)
	return *(*unsafe.Pointer)(unsafe.Pointer(&p))
}

// fakeDriver exports only APPLE vertex array objects plus the queries the
// helpers use, like an old macOS legacy context.
type fakeDriver struct {
	bound []uint32
	procs map[string]unsafe.Pointer
}

func newFakeDriver() *fakeDriver {
	d := &fakeDriver{}
	d.procs = map[string]unsafe.Pointer{
		"glGenVertexArraysAPPLE": callback(func(n uintptr, arrays uintptr) {
			*(*uint32)(unsafe.Pointer(arrays)) = 42
		}),
		"glBindVertexArrayAPPLE": callback(func(array uintptr) {
			d.bound = append(d.bound, uint32(array))
		}),
		"glGetIntegerv": callback(func(pname uintptr, data uintptr) {
			if pname == NUM_EXTENSIONS {
				*(*int32)(unsafe.Pointer(data)) = 2
			}
		}),
		"glGetStringi": callback(func(name, index uintptr) uintptr {
			if index == 0 {
				return uintptr(unsafe.Pointer(&extAPPLE[0]))
			}
			return uintptr(unsafe.Pointer(&extKHR[0]))
		}),
		"glGetString": callback(func(name uintptr) uintptr {
			return uintptr(unsafe.Pointer(&glVer[0]))
		}),
	}
	return d
}

func (d *fakeDriver) resolve(name string) unsafe.Pointer {
	return d.procs[name]
}

func TestFunctionsUseHealedAliases(t *testing.T) {
	d := newFakeDriver()
	f := Load(dispatch.Load(d.resolve))

	require.True(t, f.Has("GenVertexArrays"))
	require.True(t, f.Has("BindVertexArray"))
	assert.False(t, f.Has("DrawArraysInstanced"))

	vao := f.GenVertexArray()
	assert.Equal(t, Uint(42), vao)
	f.BindVertexArray(vao)
	f.BindVertexArray(0)
	assert.Equal(t, []uint32{42, 0}, d.bound)

	assert.Equal(t, "BindVertexArrayAPPLE", f.Table().Healed()["BindVertexArray"])
}

func TestFunctionsExtensions(t *testing.T) {
	f := Load(dispatch.Load(newFakeDriver().resolve))

	assert.Equal(t, []string{"GL_APPLE_vertex_array_object", "GL_KHR_debug"}, f.Extensions())
	assert.True(t, f.HasExtension("GL_KHR_debug"))
	assert.False(t, f.HasExtension("GL_ARB_vertex_array_object"))

	v, err := f.Version()
	require.NoError(t, err)
	assert.False(t, v.ES)
	assert.True(t, v.AtLeast(2, 1))
}

func TestStrs(t *testing.T) {
	ptrs, free := Strs("#version 410 core\n", "void main() {}")
	defer free()
	require.NotNil(t, ptrs)

	arr := unsafe.Slice(ptrs, 2)
	first := unsafe.Slice(arr[0], len("#version 410 core\n")+1)
	assert.Equal(t, "#version 410 core\n", GoStr(first))
	second := unsafe.Slice(arr[1], len("void main() {}")+1)
	assert.Equal(t, "void main() {}", GoStr(second))

	none, freeNone := Strs()
	assert.Nil(t, none)
	freeNone()
}
