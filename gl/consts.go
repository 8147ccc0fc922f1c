package gl

const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR          = 0
	INVALID_ENUM      = 0x0500
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502
	OUT_OF_MEMORY     = 0x0505

	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	LESS   = 0x0201
	LEQUAL = 0x0203

	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303

	CULL_FACE  = 0x0B44
	DEPTH_TEST = 0x0B71
	BLEND      = 0x0BE2

	VIEWPORT = 0x0BA2

	UNSIGNED_BYTE  = 0x1401
	UNSIGNED_SHORT = 0x1403
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406

	RGBA = 0x1908

	VENDOR     = 0x1F00
	RENDERER   = 0x1F01
	VERSION    = 0x1F02
	EXTENSIONS = 0x1F03

	SHADING_LANGUAGE_VERSION = 0x8B8C
	MAJOR_VERSION            = 0x821B
	MINOR_VERSION            = 0x821C
	NUM_EXTENSIONS           = 0x821D

	NEAREST            = 0x2600
	LINEAR             = 0x2601
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	CLAMP_TO_EDGE      = 0x812F
	TEXTURE_2D         = 0x0DE1
	TEXTURE0           = 0x84C0

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STREAM_DRAW          = 0x88E0
	STATIC_DRAW          = 0x88E4
	DYNAMIC_DRAW         = 0x88E8

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84

	FRAMEBUFFER          = 0x8D40
	RENDERBUFFER         = 0x8D41
	COLOR_ATTACHMENT0    = 0x8CE0
	FRAMEBUFFER_COMPLETE = 0x8CD5

	QUERY_RESULT           = 0x8866
	QUERY_RESULT_AVAILABLE = 0x8867
	TIME_ELAPSED           = 0x88BF

	SYNC_GPU_COMMANDS_COMPLETE = 0x9117
	SYNC_FLUSH_COMMANDS_BIT    = 0x00000001
	ALREADY_SIGNALED           = 0x911A
	TIMEOUT_EXPIRED            = 0x911B
	CONDITION_SATISFIED        = 0x911C
	WAIT_FAILED                = 0x911D
)
