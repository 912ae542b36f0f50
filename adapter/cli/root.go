package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	internalApp "github.com/felixgeelhaar/tarefas/internal/app"
	"github.com/felixgeelhaar/tarefas/pkg/config"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
	"github.com/spf13/cobra"
)

// Command annotations understood by the root command.
const (
	// AnnotationQuietLogs discards log output unless --verbose is set.
	AnnotationQuietLogs = "tarefas/quiet-logs"
	// AnnotationNoApp skips building the application.
	AnnotationNoApp = "tarefas/no-app"
)

var (
	cfgFile string
	verbose bool
	logger  *slog.Logger
)

type commandContext struct {
	timer *observability.Timer
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tarefas",
	Short: "tarefas - an in-memory task list",
	Long: `tarefas keeps a list of tasks for the lifetime of one session.

Tasks carry a title, a description and a priority, and can be edited,
deleted and marked complete. Start an interactive session with
"tarefas shell" or "tarefas tui". Nothing is saved when the session ends.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = observability.WithCorrelationID(ctx, "")
		ctx = observability.WithOperation(ctx, cmd.CommandPath())
		ctx = context.WithValue(ctx, commandContextKey{}, commandContext{
			timer: observability.StartTimer(cmd.CommandPath()),
		})
		cmd.SetContext(ctx)

		if cmd.Annotations[AnnotationNoApp] == "" {
			if err := initApp(ctx, cmd.Annotations[AnnotationQuietLogs] != ""); err != nil {
				return err
			}
		}

		currentLogger().InfoContext(ctx, "command start")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		currentLogger().InfoContext(cmd.Context(), "command end",
			observability.DurationKey, info.timer.Elapsed().Milliseconds(),
		)
	},
}

// initApp loads configuration and builds the application unless one was
// already installed with SetApp.
func initApp(ctx context.Context, quietLogs bool) error {
	if GetApp() != nil {
		return nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCfg := cfg.LogConfig(Version)
	if verbose {
		logCfg.Level = observability.LogLevelDebug
	} else if quietLogs {
		logCfg.Output = io.Discard
	}
	logger = observability.NewLogger(logCfg)

	container, err := internalApp.NewContainer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	SetApp(NewApp(container))
	return nil
}

func currentLogger() *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}
