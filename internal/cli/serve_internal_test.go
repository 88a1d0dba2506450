package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/internal/api"
	"github.com/dmitrymomot/rutkit/pkg/logger"
)

func newServeForTest(t *testing.T, args ...string) (*app, *cobra.Command, *bytes.Buffer) {
	t.Helper()

	a := &app{}
	root := &cobra.Command{Use: "rut"}
	a.registerFlags(root)
	serve := newServeCommand(a)
	root.AddCommand(serve)
	require.NoError(t, serve.ParseFlags(args))

	var stderr bytes.Buffer
	serve.SetErr(&stderr)
	return a, serve, &stderr
}

func TestServerLogOptions(t *testing.T) {
	t.Parallel()

	t.Run("environment wins without flags", func(t *testing.T) {
		t.Parallel()
		a, serve, stderr := newServeForTest(t)

		log := logger.New(a.serverLogOptions(serve, api.Config{Env: "production", LogLevel: "warn"})...)
		log.Info("hidden")
		log.Warn("shown")

		assert.NotContains(t, stderr.String(), "hidden")
		assert.Contains(t, stderr.String(), `"msg":"shown"`)
		assert.Contains(t, stderr.String(), `"env":"production"`)
	})

	t.Run("explicit flags override environment", func(t *testing.T) {
		t.Parallel()
		a, serve, stderr := newServeForTest(t, "--log-level", "error", "--log-format", "text")

		log := logger.New(a.serverLogOptions(serve, api.Config{Env: "production", LogLevel: "debug"})...)
		log.Warn("hidden")
		log.Error("shown")

		assert.NotContains(t, stderr.String(), "hidden")
		assert.Contains(t, stderr.String(), "msg=shown")
	})

	t.Run("level flag alone keeps the preset format", func(t *testing.T) {
		t.Parallel()
		a, serve, stderr := newServeForTest(t, "--log-level", "debug")

		log := logger.New(a.serverLogOptions(serve, api.Config{Env: "production"})...)
		log.Debug("shown")

		assert.Contains(t, stderr.String(), `"msg":"shown"`)
	})
}
