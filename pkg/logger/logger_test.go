package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "debug", "json", "development")

	log.WithComponent("store").WithFields(map[string]interface{}{"key": "clients"}).Infof("saved %d items", 3)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "saved 3 items", line["message"])
	assert.Equal(t, "store", line["component"])
	assert.Equal(t, "clients", line["key"])
	assert.Equal(t, "info", line["level"])
}

func TestNewWithOutput_ProductionForcesJSON(t *testing.T) {
	var buf bytes.Buffer
	NewWithOutput(&buf, "info", "text", "production").Infof("hello")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "warn", "text", "")

	log.Infof("hidden")
	log.WithError(errors.New("boom")).Warnf("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "boom")
}

func TestNewWithOutput_UnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "loud", "text", "")
	log.Debugf("debug line")
	log.Infof("info line")
	assert.False(t, strings.Contains(buf.String(), "debug line"))
	assert.True(t, strings.Contains(buf.String(), "info line"))
}

func TestDiscard(t *testing.T) {
	var _ Logger = Discard()
	Discard().Errorf("dropped")
}
