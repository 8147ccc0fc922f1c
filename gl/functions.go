// Package gl exposes typed OpenGL entry points bound through a dispatch
// table. Aliased names (BindVertexArray, BindVertexArrayAPPLE, ...) are
// already healed by the table, so each method here uses the core name.
package gl

import (
	"unsafe"

	"gl-dispatch/dispatch"
)

// Functions is one GL context's worth of entry points.
type Functions struct {
	table *dispatch.Table

	activeTexture            func(texture Enum)
	attachShader             func(program, shader Uint)
	beginQuery               func(target Enum, id Uint)
	bindAttribLocation       func(program, index Uint, name string)
	bindBuffer               func(target Enum, buffer Uint)
	bindFramebuffer          func(target Enum, framebuffer Uint)
	bindTexture              func(target Enum, texture Uint)
	bindVertexArray          func(array Uint)
	blendFunc                func(sfactor, dfactor Enum)
	bufferData               func(target Enum, size Sizeiptr, data unsafe.Pointer, usage Enum)
	bufferSubData            func(target Enum, offset Intptr, size Sizeiptr, data unsafe.Pointer)
	checkFramebufferStatus   func(target Enum) Enum
	clear                    func(mask Bitfield)
	clearColor               func(r, g, b, a Float)
	clientWaitSync           func(sync Sync, flags Bitfield, timeout Uint64) Enum
	compileShader            func(shader Uint)
	createProgram            func() Uint
	createShader             func(typ Enum) Uint
	deleteBuffers            func(n Sizei, buffers *Uint)
	deleteFramebuffers       func(n Sizei, framebuffers *Uint)
	deleteProgram            func(program Uint)
	deleteQueries            func(n Sizei, ids *Uint)
	deleteShader             func(shader Uint)
	deleteSync               func(sync Sync)
	deleteTextures           func(n Sizei, textures *Uint)
	deleteVertexArrays       func(n Sizei, arrays *Uint)
	depthFunc                func(fn Enum)
	disable                  func(cap Enum)
	drawArrays               func(mode Enum, first Int, count Sizei)
	drawArraysInstanced      func(mode Enum, first Int, count, instances Sizei)
	drawElements             func(mode Enum, count Sizei, typ Enum, offset uintptr)
	enable                   func(cap Enum)
	enableVertexAttribArray  func(index Uint)
	endQuery                 func(target Enum)
	fenceSync                func(condition Enum, flags Bitfield) Sync
	finish                   func()
	flush                    func()
	framebufferTexture2D     func(target, attachment, texTarget Enum, texture Uint, level Int)
	genBuffers               func(n Sizei, buffers *Uint)
	genFramebuffers          func(n Sizei, framebuffers *Uint)
	genQueries               func(n Sizei, ids *Uint)
	genTextures              func(n Sizei, textures *Uint)
	genVertexArrays          func(n Sizei, arrays *Uint)
	generateMipmap           func(target Enum)
	getError                 func() Enum
	getIntegerv              func(pname Enum, data *Int)
	getProgramInfoLog        func(program Uint, bufSize Sizei, length *Sizei, infoLog *byte)
	getProgramiv             func(program Uint, pname Enum, params *Int)
	getQueryObjectuiv        func(id Uint, pname Enum, params *Uint)
	getShaderInfoLog         func(shader Uint, bufSize Sizei, length *Sizei, infoLog *byte)
	getShaderiv              func(shader Uint, pname Enum, params *Int)
	getString                func(name Enum) string
	getStringi               func(name Enum, index Uint) string
	getUniformLocation       func(program Uint, name string) Int
	linkProgram              func(program Uint)
	readPixels               func(x, y Int, width, height Sizei, format, typ Enum, pixels unsafe.Pointer)
	shaderSource             func(shader Uint, count Sizei, strings **byte, lengths *Int)
	texImage2D               func(target Enum, level, internalFormat Int, width, height Sizei, border Int, format, typ Enum, pixels unsafe.Pointer)
	texParameteri            func(target, pname Enum, param Int)
	uniform1f                func(location Int, v0 Float)
	uniform4f                func(location Int, v0, v1, v2, v3 Float)
	uniformMatrix4fv         func(location Int, count Sizei, transpose Boolean, value *Float)
	useProgram               func(program Uint)
	vertexAttribDivisor      func(index, divisor Uint)
	vertexAttribPointer      func(index Uint, size Int, typ Enum, normalized Boolean, stride Sizei, offset uintptr)
	viewport                 func(x, y Int, width, height Sizei)
	disableVertexAttribArray func(index Uint)
}

// Load binds every entry point of f to t. Entry points t could not resolve
// are still bound; calling one terminates the process naming it.
func Load(t *dispatch.Table) *Functions {
	f := &Functions{table: t}
	dispatch.Bind(t, "ActiveTexture", &f.activeTexture)
	dispatch.Bind(t, "AttachShader", &f.attachShader)
	dispatch.Bind(t, "BeginQuery", &f.beginQuery)
	dispatch.Bind(t, "BindAttribLocation", &f.bindAttribLocation)
	dispatch.Bind(t, "BindBuffer", &f.bindBuffer)
	dispatch.Bind(t, "BindFramebuffer", &f.bindFramebuffer)
	dispatch.Bind(t, "BindTexture", &f.bindTexture)
	dispatch.Bind(t, "BindVertexArray", &f.bindVertexArray)
	dispatch.Bind(t, "BlendFunc", &f.blendFunc)
	dispatch.Bind(t, "BufferData", &f.bufferData)
	dispatch.Bind(t, "BufferSubData", &f.bufferSubData)
	dispatch.Bind(t, "CheckFramebufferStatus", &f.checkFramebufferStatus)
	dispatch.Bind(t, "Clear", &f.clear)
	dispatch.Bind(t, "ClearColor", &f.clearColor)
	dispatch.Bind(t, "ClientWaitSync", &f.clientWaitSync)
	dispatch.Bind(t, "CompileShader", &f.compileShader)
	dispatch.Bind(t, "CreateProgram", &f.createProgram)
	dispatch.Bind(t, "CreateShader", &f.createShader)
	dispatch.Bind(t, "DeleteBuffers", &f.deleteBuffers)
	dispatch.Bind(t, "DeleteFramebuffers", &f.deleteFramebuffers)
	dispatch.Bind(t, "DeleteProgram", &f.deleteProgram)
	dispatch.Bind(t, "DeleteQueries", &f.deleteQueries)
	dispatch.Bind(t, "DeleteShader", &f.deleteShader)
	dispatch.Bind(t, "DeleteSync", &f.deleteSync)
	dispatch.Bind(t, "DeleteTextures", &f.deleteTextures)
	dispatch.Bind(t, "DeleteVertexArrays", &f.deleteVertexArrays)
	dispatch.Bind(t, "DepthFunc", &f.depthFunc)
	dispatch.Bind(t, "Disable", &f.disable)
	dispatch.Bind(t, "DisableVertexAttribArray", &f.disableVertexAttribArray)
	dispatch.Bind(t, "DrawArrays", &f.drawArrays)
	dispatch.Bind(t, "DrawArraysInstanced", &f.drawArraysInstanced)
	dispatch.Bind(t, "DrawElements", &f.drawElements)
	dispatch.Bind(t, "Enable", &f.enable)
	dispatch.Bind(t, "EnableVertexAttribArray", &f.enableVertexAttribArray)
	dispatch.Bind(t, "EndQuery", &f.endQuery)
	dispatch.Bind(t, "FenceSync", &f.fenceSync)
	dispatch.Bind(t, "Finish", &f.finish)
	dispatch.Bind(t, "Flush", &f.flush)
	dispatch.Bind(t, "FramebufferTexture2D", &f.framebufferTexture2D)
	dispatch.Bind(t, "GenBuffers", &f.genBuffers)
	dispatch.Bind(t, "GenFramebuffers", &f.genFramebuffers)
	dispatch.Bind(t, "GenQueries", &f.genQueries)
	dispatch.Bind(t, "GenTextures", &f.genTextures)
	dispatch.Bind(t, "GenVertexArrays", &f.genVertexArrays)
	dispatch.Bind(t, "GenerateMipmap", &f.generateMipmap)
	dispatch.Bind(t, "GetError", &f.getError)
	dispatch.Bind(t, "GetIntegerv", &f.getIntegerv)
	dispatch.Bind(t, "GetProgramInfoLog", &f.getProgramInfoLog)
	dispatch.Bind(t, "GetProgramiv", &f.getProgramiv)
	dispatch.Bind(t, "GetQueryObjectuiv", &f.getQueryObjectuiv)
	dispatch.Bind(t, "GetShaderInfoLog", &f.getShaderInfoLog)
	dispatch.Bind(t, "GetShaderiv", &f.getShaderiv)
	dispatch.Bind(t, "GetString", &f.getString)
	dispatch.Bind(t, "GetStringi", &f.getStringi)
	dispatch.Bind(t, "GetUniformLocation", &f.getUniformLocation)
	dispatch.Bind(t, "LinkProgram", &f.linkProgram)
	dispatch.Bind(t, "ReadPixels", &f.readPixels)
	dispatch.Bind(t, "ShaderSource", &f.shaderSource)
	dispatch.Bind(t, "TexImage2D", &f.texImage2D)
	dispatch.Bind(t, "TexParameteri", &f.texParameteri)
	dispatch.Bind(t, "Uniform1f", &f.uniform1f)
	dispatch.Bind(t, "Uniform4f", &f.uniform4f)
	dispatch.Bind(t, "UniformMatrix4fv", &f.uniformMatrix4fv)
	dispatch.Bind(t, "UseProgram", &f.useProgram)
	dispatch.Bind(t, "VertexAttribDivisor", &f.vertexAttribDivisor)
	dispatch.Bind(t, "VertexAttribPointer", &f.vertexAttribPointer)
	dispatch.Bind(t, "Viewport", &f.viewport)
	return f
}

// Has reports whether the entry point name resolved, directly or through an
// alias. Check it before calling anything outside the context's version.
func (f *Functions) Has(name string) bool {
	return f.table.Loaded(name)
}

// Table returns the dispatch table f was bound from.
func (f *Functions) Table() *dispatch.Table {
	return f.table
}

func (f *Functions) ActiveTexture(texture Enum) {
	f.activeTexture(texture)
}

func (f *Functions) AttachShader(program, shader Uint) {
	f.attachShader(program, shader)
}

func (f *Functions) BeginQuery(target Enum, id Uint) {
	f.beginQuery(target, id)
}

func (f *Functions) BindAttribLocation(program, index Uint, name string) {
	f.bindAttribLocation(program, index, name)
}

func (f *Functions) BindBuffer(target Enum, buffer Uint) {
	f.bindBuffer(target, buffer)
}

func (f *Functions) BindFramebuffer(target Enum, framebuffer Uint) {
	f.bindFramebuffer(target, framebuffer)
}

func (f *Functions) BindTexture(target Enum, texture Uint) {
	f.bindTexture(target, texture)
}

func (f *Functions) BindVertexArray(array Uint) {
	f.bindVertexArray(array)
}

func (f *Functions) BlendFunc(sfactor, dfactor Enum) {
	f.blendFunc(sfactor, dfactor)
}

func (f *Functions) BufferData(target Enum, size Sizeiptr, data unsafe.Pointer, usage Enum) {
	f.bufferData(target, size, data, usage)
}

func (f *Functions) BufferSubData(target Enum, offset Intptr, size Sizeiptr, data unsafe.Pointer) {
	f.bufferSubData(target, offset, size, data)
}

func (f *Functions) CheckFramebufferStatus(target Enum) Enum {
	return f.checkFramebufferStatus(target)
}

func (f *Functions) Clear(mask Bitfield) {
	f.clear(mask)
}

func (f *Functions) ClearColor(r, g, b, a Float) {
	f.clearColor(r, g, b, a)
}

func (f *Functions) ClientWaitSync(sync Sync, flags Bitfield, timeout Uint64) Enum {
	return f.clientWaitSync(sync, flags, timeout)
}

func (f *Functions) CompileShader(shader Uint) {
	f.compileShader(shader)
}

func (f *Functions) CreateProgram() Uint {
	return f.createProgram()
}

func (f *Functions) CreateShader(typ Enum) Uint {
	return f.createShader(typ)
}

func (f *Functions) DeleteBuffer(buffer Uint) {
	f.deleteBuffers(1, &buffer)
}

func (f *Functions) DeleteFramebuffer(framebuffer Uint) {
	f.deleteFramebuffers(1, &framebuffer)
}

func (f *Functions) DeleteProgram(program Uint) {
	f.deleteProgram(program)
}

func (f *Functions) DeleteQuery(id Uint) {
	f.deleteQueries(1, &id)
}

func (f *Functions) DeleteShader(shader Uint) {
	f.deleteShader(shader)
}

func (f *Functions) DeleteSync(sync Sync) {
	f.deleteSync(sync)
}

func (f *Functions) DeleteTexture(texture Uint) {
	f.deleteTextures(1, &texture)
}

func (f *Functions) DeleteVertexArray(array Uint) {
	f.deleteVertexArrays(1, &array)
}

func (f *Functions) DepthFunc(fn Enum) {
	f.depthFunc(fn)
}

func (f *Functions) Disable(cap Enum) {
	f.disable(cap)
}

func (f *Functions) DisableVertexAttribArray(index Uint) {
	f.disableVertexAttribArray(index)
}

func (f *Functions) DrawArrays(mode Enum, first Int, count Sizei) {
	f.drawArrays(mode, first, count)
}

func (f *Functions) DrawArraysInstanced(mode Enum, first Int, count, instances Sizei) {
	f.drawArraysInstanced(mode, first, count, instances)
}

// DrawElements takes a byte offset into the bound element array buffer.
func (f *Functions) DrawElements(mode Enum, count Sizei, typ Enum, offset uintptr) {
	f.drawElements(mode, count, typ, offset)
}

func (f *Functions) Enable(cap Enum) {
	f.enable(cap)
}

func (f *Functions) EnableVertexAttribArray(index Uint) {
	f.enableVertexAttribArray(index)
}

func (f *Functions) EndQuery(target Enum) {
	f.endQuery(target)
}

func (f *Functions) FenceSync(condition Enum, flags Bitfield) Sync {
	return f.fenceSync(condition, flags)
}

func (f *Functions) Finish() {
	f.finish()
}

func (f *Functions) Flush() {
	f.flush()
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget Enum, texture Uint, level Int) {
	f.framebufferTexture2D(target, attachment, texTarget, texture, level)
}

func (f *Functions) GenBuffer() Uint {
	var b Uint
	f.genBuffers(1, &b)
	return b
}

func (f *Functions) GenFramebuffer() Uint {
	var fb Uint
	f.genFramebuffers(1, &fb)
	return fb
}

func (f *Functions) GenQuery() Uint {
	var q Uint
	f.genQueries(1, &q)
	return q
}

func (f *Functions) GenTexture() Uint {
	var t Uint
	f.genTextures(1, &t)
	return t
}

func (f *Functions) GenVertexArray() Uint {
	var a Uint
	f.genVertexArrays(1, &a)
	return a
}

func (f *Functions) GenerateMipmap(target Enum) {
	f.generateMipmap(target)
}

func (f *Functions) GetError() Enum {
	return f.getError()
}

func (f *Functions) GetInteger(pname Enum) Int {
	var v Int
	f.getIntegerv(pname, &v)
	return v
}

func (f *Functions) GetProgrami(program Uint, pname Enum) Int {
	var v Int
	f.getProgramiv(program, pname, &v)
	return v
}

func (f *Functions) GetProgramInfoLog(program Uint) string {
	n := f.GetProgrami(program, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	f.getProgramInfoLog(program, n, nil, &buf[0])
	return GoStr(buf)
}

func (f *Functions) GetQueryObjectui(id Uint, pname Enum) Uint {
	var v Uint
	f.getQueryObjectuiv(id, pname, &v)
	return v
}

func (f *Functions) GetShaderi(shader Uint, pname Enum) Int {
	var v Int
	f.getShaderiv(shader, pname, &v)
	return v
}

func (f *Functions) GetShaderInfoLog(shader Uint) string {
	n := f.GetShaderi(shader, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	f.getShaderInfoLog(shader, n, nil, &buf[0])
	return GoStr(buf)
}

func (f *Functions) GetString(name Enum) string {
	return f.getString(name)
}

func (f *Functions) GetStringi(name Enum, index Uint) string {
	return f.getStringi(name, index)
}

func (f *Functions) GetUniformLocation(program Uint, name string) Int {
	return f.getUniformLocation(program, name)
}

func (f *Functions) LinkProgram(program Uint) {
	f.linkProgram(program)
}

func (f *Functions) ReadPixels(x, y Int, width, height Sizei, format, typ Enum, pixels unsafe.Pointer) {
	f.readPixels(x, y, width, height, format, typ, pixels)
}

// ShaderSource sets the source of shader to the concatenation of srcs.
func (f *Functions) ShaderSource(shader Uint, srcs ...string) {
	ptrs, free := Strs(srcs...)
	defer free()
	f.shaderSource(shader, Sizei(len(srcs)), ptrs, nil)
}

func (f *Functions) TexImage2D(target Enum, level, internalFormat Int, width, height Sizei, border Int, format, typ Enum, pixels unsafe.Pointer) {
	f.texImage2D(target, level, internalFormat, width, height, border, format, typ, pixels)
}

func (f *Functions) TexParameteri(target, pname Enum, param Int) {
	f.texParameteri(target, pname, param)
}

func (f *Functions) Uniform1f(location Int, v0 Float) {
	f.uniform1f(location, v0)
}

func (f *Functions) Uniform4f(location Int, v0, v1, v2, v3 Float) {
	f.uniform4f(location, v0, v1, v2, v3)
}

// UniformMatrix4fv uploads count column-major 4x4 matrices starting at value.
func (f *Functions) UniformMatrix4fv(location Int, count Sizei, transpose Boolean, value *Float) {
	f.uniformMatrix4fv(location, count, transpose, value)
}

func (f *Functions) UseProgram(program Uint) {
	f.useProgram(program)
}

func (f *Functions) VertexAttribDivisor(index, divisor Uint) {
	f.vertexAttribDivisor(index, divisor)
}

// VertexAttribPointer takes a byte offset into the bound array buffer.
func (f *Functions) VertexAttribPointer(index Uint, size Int, typ Enum, normalized Boolean, stride Sizei, offset uintptr) {
	f.vertexAttribPointer(index, size, typ, normalized, stride, offset)
}

func (f *Functions) Viewport(x, y Int, width, height Sizei) {
	f.viewport(x, y, width, height)
}
