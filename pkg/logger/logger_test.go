package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proveedores-api/pkg/logger"
)

func TestComponent_AgregaCampos(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Level: "info", App: "proveedores-api"}, &buf)

	engineLog := l.Component("engine")
	engineLog.Info().Str("vendor_code", "V1").Msg("métricas actualizadas")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "engine", entry["component"])
	assert.Equal(t, "proveedores-api", entry["app"])
	assert.Equal(t, "V1", entry["vendor_code"])
}

func TestNivel_FiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Level: "WARN"}, &buf)

	l.Info().Msg("no aparece")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("aparece")
	assert.NotZero(t, buf.Len())
}
