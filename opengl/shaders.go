package opengl

import (
	"strings"

	"gl-dispatch/gl"
)

// dialect is the GLSL flavour a context accepts.
type dialect struct {
	header     string
	attr       string
	varyingOut string
	varyingIn  string
	fragDecl   string
	fragOut    string
}

var (
	glsl330 = dialect{"#version 330 core", "in", "out", "in", "out vec4 outColor;", "outColor"}
	glsl150 = dialect{"#version 150", "in", "out", "in", "out vec4 outColor;", "outColor"}
	glsl130 = dialect{"#version 130", "in", "out", "in", "out vec4 outColor;", "outColor"}
	glsl120 = dialect{"#version 120", "attribute", "varying", "varying", "", "gl_FragColor"}
	essl300 = dialect{"#version 300 es\nprecision mediump float;", "in", "out", "in", "out vec4 outColor;", "outColor"}
	essl100 = dialect{"#version 100\nprecision mediump float;", "attribute", "varying", "varying", "", "gl_FragColor"}
)

func dialectFor(v gl.Version) dialect {
	switch {
	case v.ES && v.AtLeast(3, 0):
		return essl300
	case v.ES:
		return essl100
	case v.AtLeast(3, 3):
		return glsl330
	case v.AtLeast(3, 2):
		return glsl150
	case v.AtLeast(3, 0):
		return glsl130
	default:
		return glsl120
	}
}

// shaderSources returns the vertex and fragment shaders for v.
func shaderSources(v gl.Version) (vert, frag string) {
	d := dialectFor(v)
	rep := strings.NewReplacer(
		"VARYING_OUT", d.varyingOut,
		"VARYING_IN", d.varyingIn,
		"FRAG_DECL", d.fragDecl,
		"FRAG_OUT", d.fragOut,
		"ATTR", d.attr,
	)
	return d.header + "\n" + rep.Replace(vertBody), d.header + "\n" + rep.Replace(fragBody)
}
