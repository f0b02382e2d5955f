package gfx

import (
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/plus3/playpark/logger"
)

// EnableDebugOutput routes GL debug messages into the central log. Message
// sources map to log tags and severities decide whether the entry is worth
// keeping; notifications are logged too, matching the GL debug wiki's
// advice for development builds.
func EnableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(glDebugMessage, nil)
}

func glDebugMessage(source uint32, gltype uint32, id uint32, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	var tag string
	switch source {
	case gl.DEBUG_SOURCE_API:
		tag = "gl/api"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		tag = "gl/window"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		tag = "gl/shader"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		tag = "gl/thirdparty"
	case gl.DEBUG_SOURCE_APPLICATION:
		tag = "gl/app"
	default:
		tag = "gl"
	}

	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		logger.Logf(tag, "error: %s", message)
	case gl.DEBUG_SEVERITY_MEDIUM:
		logger.Logf(tag, "warning: %s", message)
	default:
		logger.Log(tag, message)
	}
}
