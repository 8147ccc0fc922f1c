package dispatch

// Registry is every entry point the default table loads, without the "gl"
// prefix: the core commands followed by each alias spelling.
var Registry = registry()

// Aliases is the pairwise expansion of AliasClasses.
var Aliases = Pairs(AliasClasses)

// AliasClasses groups entry points that are interchangeable at the ABI
// level. The core name comes first, then the ARB, EXT, OES, KHR and vendor
// spellings the function shipped under before it was promoted.
var AliasClasses = [][]string{
	// vertex arrays
	{"BindVertexArray", "BindVertexArrayAPPLE", "BindVertexArrayOES"},
	{"DeleteVertexArrays", "DeleteVertexArraysAPPLE", "DeleteVertexArraysOES"},
	{"GenVertexArrays", "GenVertexArraysAPPLE", "GenVertexArraysOES"},
	{"IsVertexArray", "IsVertexArrayAPPLE", "IsVertexArrayOES"},
	{"VertexAttribDivisor", "VertexAttribDivisorARB", "VertexAttribDivisorANGLE", "VertexAttribDivisorEXT", "VertexAttribDivisorNV"},

	// buffers
	{"BindBuffer", "BindBufferARB"},
	{"BufferData", "BufferDataARB"},
	{"BufferSubData", "BufferSubDataARB"},
	{"DeleteBuffers", "DeleteBuffersARB"},
	{"GenBuffers", "GenBuffersARB"},
	{"IsBuffer", "IsBufferARB"},
	{"MapBuffer", "MapBufferARB", "MapBufferOES"},
	{"UnmapBuffer", "UnmapBufferARB", "UnmapBufferOES"},
	{"MapBufferRange", "MapBufferRangeEXT"},
	{"FlushMappedBufferRange", "FlushMappedBufferRangeEXT"},
	{"BindBufferBase", "BindBufferBaseEXT", "BindBufferBaseNV"},
	{"BindBufferRange", "BindBufferRangeEXT", "BindBufferRangeNV"},

	// framebuffers and renderbuffers
	{"BindFramebuffer", "BindFramebufferEXT", "BindFramebufferOES"},
	{"BindRenderbuffer", "BindRenderbufferEXT", "BindRenderbufferOES"},
	{"BlitFramebuffer", "BlitFramebufferEXT", "BlitFramebufferANGLE", "BlitFramebufferNV"},
	{"CheckFramebufferStatus", "CheckFramebufferStatusEXT", "CheckFramebufferStatusOES"},
	{"DeleteFramebuffers", "DeleteFramebuffersEXT", "DeleteFramebuffersOES"},
	{"DeleteRenderbuffers", "DeleteRenderbuffersEXT", "DeleteRenderbuffersOES"},
	{"FramebufferRenderbuffer", "FramebufferRenderbufferEXT", "FramebufferRenderbufferOES"},
	{"FramebufferTexture2D", "FramebufferTexture2DEXT", "FramebufferTexture2DOES"},
	{"FramebufferTextureLayer", "FramebufferTextureLayerARB", "FramebufferTextureLayerEXT"},
	{"GenFramebuffers", "GenFramebuffersEXT", "GenFramebuffersOES"},
	{"GenRenderbuffers", "GenRenderbuffersEXT", "GenRenderbuffersOES"},
	{"GenerateMipmap", "GenerateMipmapEXT", "GenerateMipmapOES"},
	{"GetFramebufferAttachmentParameteriv", "GetFramebufferAttachmentParameterivEXT", "GetFramebufferAttachmentParameterivOES"},
	{"GetRenderbufferParameteriv", "GetRenderbufferParameterivEXT", "GetRenderbufferParameterivOES"},
	{"IsFramebuffer", "IsFramebufferEXT", "IsFramebufferOES"},
	{"IsRenderbuffer", "IsRenderbufferEXT", "IsRenderbufferOES"},
	{"RenderbufferStorage", "RenderbufferStorageEXT", "RenderbufferStorageOES"},
	{"RenderbufferStorageMultisample", "RenderbufferStorageMultisampleEXT", "RenderbufferStorageMultisampleANGLE", "RenderbufferStorageMultisampleNV"},
	// Not a registry <alias>: DiscardFramebufferEXT is the ES2 hint that
	// GLES3 InvalidateFramebuffer replaced, used as a fallback the way gio does.
	{"InvalidateFramebuffer", "DiscardFramebufferEXT"},
	{"DrawBuffers", "DrawBuffersARB", "DrawBuffersATI", "DrawBuffersEXT"},

	// textures
	{"ActiveTexture", "ActiveTextureARB"},
	{"CompressedTexImage2D", "CompressedTexImage2DARB"},
	{"CompressedTexSubImage2D", "CompressedTexSubImage2DARB"},
	{"TexImage3D", "TexImage3DEXT", "TexImage3DOES"},
	{"TexSubImage3D", "TexSubImage3DEXT", "TexSubImage3DOES"},
	{"TexStorage2D", "TexStorage2DEXT"},
	{"TexStorage3D", "TexStorage3DEXT"},

	// blending and state
	{"BlendColor", "BlendColorEXT"},
	{"BlendEquation", "BlendEquationEXT", "BlendEquationOES"},
	{"BlendEquationSeparate", "BlendEquationSeparateEXT", "BlendEquationSeparateOES"},
	{"BlendFuncSeparate", "BlendFuncSeparateEXT", "BlendFuncSeparateINGR", "BlendFuncSeparateOES"},
	{"ClearDepthf", "ClearDepthfOES"},
	{"DepthRangef", "DepthRangefOES"},
	{"ColorMaski", "ColorMaskiEXT", "ColorMaskIndexedEXT", "ColorMaskiOES"},
	{"Enablei", "EnableiEXT", "EnableIndexedEXT", "EnableiOES"},
	{"Disablei", "DisableiEXT", "DisableIndexedEXT", "DisableiOES"},
	{"PointParameterf", "PointParameterfARB", "PointParameterfEXT"},
	{"SampleCoverage", "SampleCoverageARB"},

	// drawing
	{"DrawArraysInstanced", "DrawArraysInstancedARB", "DrawArraysInstancedANGLE", "DrawArraysInstancedEXT", "DrawArraysInstancedNV"},
	{"DrawElementsInstanced", "DrawElementsInstancedARB", "DrawElementsInstancedANGLE", "DrawElementsInstancedEXT", "DrawElementsInstancedNV"},
	{"DrawRangeElements", "DrawRangeElementsEXT"},
	{"MultiDrawArrays", "MultiDrawArraysEXT"},
	{"PrimitiveRestartIndex", "PrimitiveRestartIndexNV"},

	// queries
	{"BeginQuery", "BeginQueryARB", "BeginQueryEXT"},
	{"DeleteQueries", "DeleteQueriesARB", "DeleteQueriesEXT"},
	{"EndQuery", "EndQueryARB", "EndQueryEXT"},
	{"GenQueries", "GenQueriesARB", "GenQueriesEXT"},
	{"GetQueryObjectuiv", "GetQueryObjectuivARB", "GetQueryObjectuivEXT"},
	{"GetQueryiv", "GetQueryivARB", "GetQueryivEXT"},
	{"IsQuery", "IsQueryARB", "IsQueryEXT"},
	{"QueryCounter", "QueryCounterEXT"},
	{"GetQueryObjecti64v", "GetQueryObjecti64vEXT"},
	{"GetQueryObjectui64v", "GetQueryObjectui64vEXT"},

	// sync
	{"ClientWaitSync", "ClientWaitSyncAPPLE"},
	{"DeleteSync", "DeleteSyncAPPLE"},
	{"FenceSync", "FenceSyncAPPLE"},
	{"IsSync", "IsSyncAPPLE"},
	{"WaitSync", "WaitSyncAPPLE"},

	// programs and shaders
	{"GetProgramBinary", "GetProgramBinaryOES"},
	{"ProgramBinary", "ProgramBinaryOES"},
	{"ProgramParameteri", "ProgramParameteriARB", "ProgramParameteriEXT"},
	{"VertexAttrib1f", "VertexAttrib1fARB"},
	{"VertexAttrib4f", "VertexAttrib4fARB"},
	{"VertexAttribIPointer", "VertexAttribIPointerEXT"},
	{"Uniform1ui", "Uniform1uiEXT"},
	{"GetUniformuiv", "GetUniformuivEXT"},
	{"BindFragDataLocation", "BindFragDataLocationEXT"},
	{"GetFragDataLocation", "GetFragDataLocationEXT"},

	// transform feedback
	{"BeginTransformFeedback", "BeginTransformFeedbackEXT", "BeginTransformFeedbackNV"},
	{"EndTransformFeedback", "EndTransformFeedbackEXT", "EndTransformFeedbackNV"},
	{"TransformFeedbackVaryings", "TransformFeedbackVaryingsEXT"},

	// debug output
	{"DebugMessageCallback", "DebugMessageCallbackARB", "DebugMessageCallbackKHR"},
	{"DebugMessageControl", "DebugMessageControlARB", "DebugMessageControlKHR"},
	{"DebugMessageInsert", "DebugMessageInsertARB", "DebugMessageInsertKHR"},
	{"GetDebugMessageLog", "GetDebugMessageLogARB", "GetDebugMessageLogKHR"},
	{"ObjectLabel", "ObjectLabelKHR"},
	{"PopDebugGroup", "PopDebugGroupKHR"},
	{"PushDebugGroup", "PushDebugGroupKHR"},
	{"GetPointerv", "GetPointervEXT", "GetPointervKHR"},

	// robustness
	{"GetGraphicsResetStatus", "GetGraphicsResetStatusARB", "GetGraphicsResetStatusEXT", "GetGraphicsResetStatusKHR"},
	{"ReadnPixels", "ReadnPixelsARB", "ReadnPixelsEXT", "ReadnPixelsKHR"},
}

// coreCommands are entry points without alias spellings in AliasClasses.
var coreCommands = []string{
	"AttachShader",
	"BindAttribLocation",
	"BindTexture",
	"BlendFunc",
	"Clear",
	"ClearColor",
	"ClearDepth",
	"ClearStencil",
	"ColorMask",
	"CompileShader",
	"CopyTexSubImage2D",
	"CreateProgram",
	"CreateShader",
	"CullFace",
	"DeleteProgram",
	"DeleteShader",
	"DeleteTextures",
	"DepthFunc",
	"DepthMask",
	"DepthRange",
	"DetachShader",
	"Disable",
	"DisableVertexAttribArray",
	"DrawArrays",
	"DrawElements",
	"Enable",
	"EnableVertexAttribArray",
	"Finish",
	"Flush",
	"FrontFace",
	"GenTextures",
	"GetActiveAttrib",
	"GetActiveUniform",
	"GetAttribLocation",
	"GetBooleanv",
	"GetError",
	"GetFloatv",
	"GetIntegerv",
	"GetIntegeri_v",
	"GetProgramInfoLog",
	"GetProgramiv",
	"GetShaderInfoLog",
	"GetShaderiv",
	"GetString",
	"GetStringi",
	"GetTexParameteriv",
	"GetUniformBlockIndex",
	"GetUniformLocation",
	"GetVertexAttribiv",
	"Hint",
	"IsEnabled",
	"IsProgram",
	"IsShader",
	"IsTexture",
	"LineWidth",
	"LinkProgram",
	"PixelStorei",
	"PolygonOffset",
	"ReadPixels",
	"Scissor",
	"ShaderSource",
	"StencilFunc",
	"StencilMask",
	"StencilOp",
	"TexImage2D",
	"TexParameterf",
	"TexParameteri",
	"TexSubImage2D",
	"Uniform1f",
	"Uniform1i",
	"Uniform2f",
	"Uniform3f",
	"Uniform4f",
	"UniformBlockBinding",
	"UniformMatrix4fv",
	"UseProgram",
	"ValidateProgram",
	"VertexAttribPointer",
	"Viewport",
}

func registry() []string {
	names := append([]string(nil), coreCommands...)
	for _, class := range AliasClasses {
		names = append(names, class...)
	}
	return names
}
