package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	t.Cleanup(func() { Log.SetLevel(logrus.InfoLevel) })

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	System("boundary").WithField("loops", 3).Debug("pass done")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "boundary", line["system"])
	assert.Equal(t, float64(3), line["loops"])
	assert.Equal(t, "pass done", line["msg"])
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	InitWithOutput(&buf)

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	System("tiles").Debug("hidden")
	assert.Empty(t, buf.String())
}
