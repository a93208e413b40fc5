package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_InfoLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug("hidden")
	log.Warn("Skipped Git init")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, "WARN Skipped Git init\n", out)
}

func TestNew_VerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debugw("running generator", "command", "npx")

	assert.Contains(t, buf.String(), "DEBUG running generator")
	assert.Contains(t, buf.String(), `"command": "npx"`)
}
