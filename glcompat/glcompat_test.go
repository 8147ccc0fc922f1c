package glcompat

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"gl-dispatch/dispatch"
	"gl-dispatch/resolve"
)

var apple, other byte

func TestProcAddrPrefersHealedTable(t *testing.T) {
	driver := resolve.Map(map[string]unsafe.Pointer{
		"glBindVertexArrayAPPLE": unsafe.Pointer(&apple),
		"glProvokingVertex":      unsafe.Pointer(&other),
	})
	tbl := dispatch.Load(driver)
	lookup := procAddr(tbl, driver)

	// healed through the table
	assert.Equal(t, unsafe.Pointer(&apple), lookup("glBindVertexArray"))
	// in the registry but missing everywhere: the table's answer is final
	assert.Nil(t, lookup("glClear"))
	// outside the registry: handed to the fallback
	assert.Equal(t, unsafe.Pointer(&other), lookup("glProvokingVertex"))
	assert.Nil(t, procAddr(tbl, nil)("glProvokingVertex"))
}
