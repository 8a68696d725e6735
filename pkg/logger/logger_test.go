package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fuera de development la salida es JSON estructurado con nivel y mensaje.
func TestNew_SalidaJSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "info", Out: &buf})

	log.Info().Str("component", "api").Msg("arrancando")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "arrancando", entry["message"])
	assert.Equal(t, "api", entry["component"])
	assert.Contains(t, entry, "time")
}

// El nivel configurado filtra los eventos por debajo.
func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "error", Out: &buf})

	log.Info().Msg("no debería salir")
	log.Warn().Msg("tampoco")
	assert.Zero(t, buf.Len())

	log.Error().Msg("esto sí")
	assert.NotZero(t, buf.Len())
}

// Niveles desconocidos o vacíos caen a info.
func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}
