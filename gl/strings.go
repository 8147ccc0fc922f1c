package gl

import (
	"bytes"
	"runtime"
)

// GoStr converts a NUL-terminated byte buffer filled in by GL to a string.
func GoStr(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

// Strs returns a C array of NUL-terminated copies of strs, for entry points
// taking const GLchar *const *. The memory stays pinned until free is called.
func Strs(strs ...string) (**byte, func()) {
	if len(strs) == 0 {
		return nil, func() {}
	}
	var pinner runtime.Pinner
	ptrs := make([]*byte, len(strs))
	for i, s := range strs {
		b := make([]byte, len(s)+1)
		copy(b, s)
		pinner.Pin(&b[0])
		ptrs[i] = &b[0]
	}
	pinner.Pin(&ptrs[0])
	return &ptrs[0], pinner.Unpin
}
