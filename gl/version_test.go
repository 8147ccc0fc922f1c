package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in    string
		es    bool
		major int
		minor int
	}{
		{"4.6.0 NVIDIA 535.54.03", false, 4, 6},
		{"3.3 (Core Profile) Mesa 23.1.4", false, 3, 3},
		{"2.1 INTEL-20.6.4", false, 2, 1},
		{"OpenGL ES 3.2 Mesa 23.1.4", true, 3, 2},
		{"OpenGL ES 2.0 (ANGLE 2.1.0 git hash: f2280c0c5f93)", true, 2, 0},
		{"OpenGL ES-CM 1.1", true, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVersion(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.es, v.ES)
			seg := v.Segments()
			assert.Equal(t, tt.major, seg[0])
			assert.Equal(t, tt.minor, seg[1])
		})
	}
}

func TestParseVersionRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "unknown", "OpenGL ES", "NVIDIA 4.6"} {
		_, err := ParseVersion(s)
		assert.Error(t, err, s)
	}
}

func TestVersionAtLeast(t *testing.T) {
	v, err := ParseVersion("3.3 (Core Profile) Mesa 23.1.4")
	require.NoError(t, err)

	assert.True(t, v.AtLeast(3, 0))
	assert.True(t, v.AtLeast(3, 3))
	assert.True(t, v.AtLeast(2, 1))
	assert.False(t, v.AtLeast(3, 4))
	assert.False(t, v.AtLeast(4, 0))
	assert.False(t, Version{}.AtLeast(1, 0))

	assert.Equal(t, "3.3.0", v.String())
	es, err := ParseVersion("OpenGL ES 3.2")
	require.NoError(t, err)
	assert.Equal(t, "ES 3.2.0", es.String())
	assert.Equal(t, "unknown", Version{}.String())
}

func TestGoStr(t *testing.T) {
	assert.Equal(t, "link failed", GoStr([]byte("link failed\x00\x00garbage")))
	assert.Equal(t, "no terminator", GoStr([]byte("no terminator")))
	assert.Equal(t, "", GoStr(nil))
}
