package gl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"
)

// Version is a parsed GL_VERSION string.
type Version struct {
	// ES is set for OpenGL ES contexts.
	ES bool
	*version.Version
}

var versionRE = regexp.MustCompile(`^(\d+\.\d+(?:\.\d+)?)`)

// ParseVersion parses desktop ("4.6.0 NVIDIA 535.54") and ES
// ("OpenGL ES 3.2 Mesa 23.1") version strings.
func ParseVersion(s string) (Version, error) {
	rest := strings.TrimSpace(s)
	var es bool
	if strings.HasPrefix(rest, "OpenGL ES") {
		es = true
		rest = strings.TrimPrefix(rest, "OpenGL ES")
		// ES 1.x profiles: "OpenGL ES-CM 1.1", "OpenGL ES-CL 1.1".
		rest = strings.TrimPrefix(rest, "-CM")
		rest = strings.TrimPrefix(rest, "-CL")
		rest = strings.TrimSpace(rest)
	}
	m := versionRE.FindStringSubmatch(rest)
	if m == nil {
		return Version{}, fmt.Errorf("gl: unrecognised version string %q", s)
	}
	v, err := version.NewVersion(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("gl: parse version %q: %w", s, err)
	}
	return Version{ES: es, Version: v}, nil
}

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor int) bool {
	if v.Version == nil {
		return false
	}
	seg := v.Segments()
	if seg[0] != major {
		return seg[0] > major
	}
	return seg[1] >= minor
}

func (v Version) String() string {
	if v.Version == nil {
		return "unknown"
	}
	if v.ES {
		return "ES " + v.Version.String()
	}
	return v.Version.String()
}

// Version parses the context's GL_VERSION string.
func (f *Functions) Version() (Version, error) {
	return ParseVersion(f.GetString(VERSION))
}

// Extensions lists the context's extensions, using the indexed query when
// the context has one and the legacy space-separated string otherwise.
func (f *Functions) Extensions() []string {
	if f.Has("GetStringi") {
		if n := f.GetInteger(NUM_EXTENSIONS); n > 0 {
			exts := make([]string, 0, n)
			for i := Int(0); i < n; i++ {
				exts = append(exts, f.GetStringi(EXTENSIONS, Uint(i)))
			}
			return exts
		}
	}
	return strings.Fields(f.GetString(EXTENSIONS))
}

// HasExtension reports whether the context advertises ext, e.g.
// "GL_APPLE_vertex_array_object".
func (f *Functions) HasExtension(ext string) bool {
	for _, e := range f.Extensions() {
		if e == ext {
			return true
		}
	}
	return false
}
