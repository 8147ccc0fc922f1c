package resolve

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"gl-dispatch/dispatch"
)

var a, b byte

func TestMap(t *testing.T) {
	r := Map(map[string]unsafe.Pointer{"glClear": unsafe.Pointer(&a)})
	assert.Equal(t, unsafe.Pointer(&a), r("glClear"))
	assert.Nil(t, r("glFlush"))
}

func TestChain(t *testing.T) {
	first := Map(map[string]unsafe.Pointer{"glClear": unsafe.Pointer(&a)})
	second := Map(map[string]unsafe.Pointer{
		"glClear": unsafe.Pointer(&b),
		"glFlush": unsafe.Pointer(&b),
	})
	r := Chain(nil, first, second)

	assert.Equal(t, unsafe.Pointer(&a), r("glClear"))
	assert.Equal(t, unsafe.Pointer(&b), r("glFlush"))
	assert.Nil(t, r("glFinish"))
	assert.Nil(t, Chain()("glClear"))
}

func TestTracedPassesThrough(t *testing.T) {
	var asked []string
	inner := dispatch.Resolver(func(name string) unsafe.Pointer {
		asked = append(asked, name)
		if name == "glClear" {
			return unsafe.Pointer(&a)
		}
		return nil
	})
	r := Traced(inner)

	assert.Equal(t, unsafe.Pointer(&a), r("glClear"))
	assert.Nil(t, r("glFlush"))
	assert.Equal(t, []string{"glClear", "glFlush"}, asked)
}

func TestLoadThroughChain(t *testing.T) {
	core := Map(map[string]unsafe.Pointer{"glClear": unsafe.Pointer(&a)})
	ext := Map(map[string]unsafe.Pointer{"glBindVertexArrayOES": unsafe.Pointer(&b)})
	tbl := dispatch.Load(Traced(Chain(core, ext)))

	assert.True(t, tbl.Loaded("Clear"))
	assert.True(t, tbl.Loaded("BindVertexArray"))
	assert.Equal(t, unsafe.Pointer(&b), tbl.ProcAddr("glBindVertexArray"))
}

func TestStubResolverHidesMissingEntryPoints(t *testing.T) {
	names := []string{"BindVertexArray", "BindVertexArrayAPPLE"}
	pairs := dispatch.Pairs([][]string{names})

	// A GetProcAddress-style lookup answers for every name.
	stub := dispatch.Resolver(func(string) unsafe.Pointer { return unsafe.Pointer(&b) })
	tbl := dispatch.LoadWith(stub, dispatch.Options{Names: names, Aliases: pairs})
	assert.Empty(t, tbl.Missing())
	assert.Empty(t, tbl.Healed())
	assert.Equal(t, unsafe.Pointer(&b), tbl.ProcAddr("BindVertexArray"))

	// A dlsym-style lookup only answers for what is exported, so the
	// alias pass can fill the gap.
	exported := Map(map[string]unsafe.Pointer{"glBindVertexArrayAPPLE": unsafe.Pointer(&a)})
	tbl = dispatch.LoadWith(exported, dispatch.Options{Names: names, Aliases: pairs})
	assert.Empty(t, tbl.Missing())
	assert.Equal(t, map[string]string{"BindVertexArray": "BindVertexArrayAPPLE"}, tbl.Healed())
	assert.Equal(t, unsafe.Pointer(&a), tbl.ProcAddr("BindVertexArray"))
}
