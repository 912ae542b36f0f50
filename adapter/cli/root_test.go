package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	internalApp "github.com/felixgeelhaar/tarefas/internal/app"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	"github.com/felixgeelhaar/tarefas/pkg/config"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "LOG_FORMAT",
		"TAREFAS_DEFAULT_PRIORITY", "TAREFAS_SHELL_PROMPT", "TAREFAS_DATE_FORMAT",
		config.ConfigPathEnv,
	} {
		t.Setenv(key, "")
	}
	SetApp(nil)
	SetLogger(observability.DiscardLogger())
	t.Cleanup(func() {
		SetApp(nil)
		cfgFile = ""
		verbose = false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})
}

func TestVersionCmd(t *testing.T) {
	resetGlobals(t)
	var logs bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	assert.Contains(t, out.String(), "tarefas "+Version)
	assert.Contains(t, out.String(), "commit: "+Commit)
	assert.Nil(t, GetApp(), "version must not build the application")
	assert.Contains(t, logs.String(), "command start")
	assert.Contains(t, logs.String(), "command end")
	assert.Contains(t, logs.String(), observability.DurationKey+"=")
}

func TestInitApp(t *testing.T) {
	t.Run("builds the application from the config file", func(t *testing.T) {
		resetGlobals(t)

		path := filepath.Join(t.TempDir(), "tarefas.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
default_priority = "high"
shell_prompt = "> "
date_format = "02/01"
`), 0o600))
		cfgFile = path

		require.NoError(t, initApp(context.Background(), true))

		app := GetApp()
		require.NotNil(t, app)
		assert.Equal(t, value_objects.PriorityHigh, app.Settings.DefaultPriority)
		assert.Equal(t, "> ", app.Settings.ShellPrompt)
		assert.Equal(t, "02/01", app.Settings.DateFormat)
		assert.NotNil(t, app.CreateTaskHandler)
		assert.NotNil(t, app.Metrics)
	})

	t.Run("keeps an installed application", func(t *testing.T) {
		resetGlobals(t)

		container, err := internalApp.NewContainer(context.Background(), config.Default(), nil)
		require.NoError(t, err)
		installed := NewApp(container)
		SetApp(installed)
		cfgFile = filepath.Join(t.TempDir(), "missing.toml")

		require.NoError(t, initApp(context.Background(), false))
		assert.Same(t, installed, GetApp())
	})

	t.Run("reports config errors", func(t *testing.T) {
		resetGlobals(t)
		t.Setenv("TAREFAS_DEFAULT_PRIORITY", "urgent")

		err := initApp(context.Background(), false)

		require.Error(t, err)
		assert.ErrorIs(t, err, value_objects.ErrInvalidPriority)
		assert.Nil(t, GetApp())
	})
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.Default()

	s := SettingsFromConfig(cfg)

	assert.Equal(t, value_objects.DefaultPriority, s.DefaultPriority)
	assert.Equal(t, config.DefaultShellPrompt, s.ShellPrompt)
	assert.Equal(t, config.DefaultDateFormat, s.DateFormat)
}
