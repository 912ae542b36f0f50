package cli

import (
	"log/slog"

	internalApp "github.com/felixgeelhaar/tarefas/internal/app"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	"github.com/felixgeelhaar/tarefas/pkg/config"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
)

// Settings are the presentation preferences shared by every command.
type Settings struct {
	DefaultPriority value_objects.Priority
	DateFormat      string
	ShellPrompt     string
}

// SettingsFromConfig extracts the presentation settings from cfg.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		DefaultPriority: cfg.Priority(),
		DateFormat:      cfg.DateFormat,
		ShellPrompt:     cfg.ShellPrompt,
	}
}

// App holds the CLI application dependencies.
type App struct {
	// Task Command Handlers
	CreateTaskHandler *commands.CreateTaskHandler
	UpdateTaskHandler *commands.UpdateTaskHandler
	DeleteTaskHandler *commands.DeleteTaskHandler
	ToggleTaskHandler *commands.ToggleTaskHandler

	// Task Query Handlers
	GetTaskHandler   *queries.GetTaskHandler
	ListTasksHandler *queries.ListTasksHandler

	Metrics  *observability.InMemoryMetrics
	Logger   *slog.Logger
	Settings Settings
}

// NewApp creates a CLI application backed by the handlers of c.
func NewApp(c *internalApp.Container) *App {
	return &App{
		CreateTaskHandler: c.CreateTaskHandler,
		UpdateTaskHandler: c.UpdateTaskHandler,
		DeleteTaskHandler: c.DeleteTaskHandler,
		ToggleTaskHandler: c.ToggleTaskHandler,
		GetTaskHandler:    c.GetTaskHandler,
		ListTasksHandler:  c.ListTasksHandler,
		Metrics:           c.Metrics,
		Logger:            c.Logger,
		Settings:          SettingsFromConfig(c.Config),
	}
}

var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
