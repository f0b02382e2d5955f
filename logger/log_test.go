package logger_test

import (
	"strings"
	"testing"

	"github.com/plus3/playpark/logger"
	"github.com/stretchr/testify/assert"
)

func TestLogAndWrite(t *testing.T) {
	logger.Clear()

	logger.Log("gfx", "shader linked")
	logger.Logf("glfw", "window %dx%d", 800, 800)

	b := &strings.Builder{}
	logger.Write(b)

	assert.Contains(t, b.String(), "gfx: shader linked")
	assert.Contains(t, b.String(), "glfw: window 800x800")
}

func TestRepeatCollapsing(t *testing.T) {
	logger.Clear()

	for i := 0; i < 5; i++ {
		logger.Log("gl", "framebuffer incomplete")
	}

	tail := logger.Tail(10)
	assert.Len(t, tail, 1)
	assert.Equal(t, 4, tail[0].Repeated)
	assert.Contains(t, tail[0].String(), "(repeat x5)")
}

func TestRepeatBreaksOnDifferentDetail(t *testing.T) {
	logger.Clear()

	logger.Log("objfile", "loaded Ground.obj")
	logger.Log("objfile", "loaded Balloon.obj")
	logger.Log("objfile", "loaded Ground.obj")

	assert.Len(t, logger.Tail(10), 3)
}

func TestTailCapsAtEntryCount(t *testing.T) {
	logger.Clear()

	logger.Log("scene", "one")
	logger.Log("scene", "two")

	tail := logger.Tail(100)
	assert.Len(t, tail, 2)
	assert.Equal(t, "two", tail[1].Detail)
}

func TestNewlinesStripped(t *testing.T) {
	logger.Clear()

	logger.Log("shader", "compile error:\nline 12")

	tail := logger.Tail(1)
	assert.Equal(t, "compile error:line 12", tail[0].Detail)
}
