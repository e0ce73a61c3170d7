package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Info("listing %s", "/tmp")
	assert.Contains(t, buf.String(), "info")
	assert.Contains(t, buf.String(), "listing /tmp")
	buf.Reset()

	Warn("boundary reached")
	assert.Contains(t, buf.String(), "warn")
	assert.Contains(t, buf.String(), "boundary reached")
	buf.Reset()

	Error("probe failed: %d", 7)
	assert.Contains(t, buf.String(), "error")
	assert.Contains(t, buf.String(), "probe failed: 7")
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetDebug(false)
	Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	SetDebug(true)
	defer SetDebug(false)
	Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	LogWithFields(F("path", "/etc/hosts"), F("tag", "config")).Warn("slow probe")

	out := buf.String()
	assert.Contains(t, out, "slow probe")
	assert.Contains(t, out, "/etc/hosts")
	assert.Contains(t, out, "config")
}
