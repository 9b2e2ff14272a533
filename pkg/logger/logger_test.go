package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

func TestNew_ProduccionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Info().Str("app", "facturacion-api").Msg("iniciando")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"app":"facturacion-api"`)
	assert.Contains(t, out, `"message":"iniciando"`)
	assert.Contains(t, out, `"time":`)
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("ruido")
	log.Warn().Msg("atención")
	log.Error().Msg("falla")

	out := buf.String()
	assert.NotContains(t, out, "ruido")
	assert.Contains(t, out, "atención")
	assert.Contains(t, out, "falla")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "gritando", Out: &buf})

	log.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_DesarrolloUsaConsola(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "development", Level: "info", Out: &buf})

	log.Info().Msg("legible")

	// La salida de consola no es JSON: el mensaje va plano.
	out := buf.String()
	assert.Contains(t, out, "legible")
	assert.NotContains(t, out, `"message"`)
}
