// Package shell runs the task commands as an interactive line-oriented
// session against a single in-process task list.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/felixgeelhaar/tarefas/adapter/cli"
	"github.com/felixgeelhaar/tarefas/adapter/cli/task"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

// ErrCommandsFailed is returned by a non-interactive session in which at
// least one line failed.
var ErrCommandsFailed = errors.New("one or more commands failed")

// Session reads command lines and executes them one at a time.
type Session struct {
	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	prompt      string
	interactive bool
	logger      *slog.Logger
	failures    int
}

// NewSession creates a session. Prompts and the banner are only written when
// interactive is true.
func NewSession(in io.Reader, out, errOut io.Writer, prompt string, interactive bool) *Session {
	return &Session{
		in:          in,
		out:         out,
		errOut:      errOut,
		prompt:      prompt,
		interactive: interactive,
		logger:      observability.DiscardLogger(),
	}
}

// WithLogger sets the logger used for per-line debug records.
func (s *Session) WithLogger(logger *slog.Logger) *Session {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Run executes lines until the input ends, a line says exit or quit, or ctx
// is cancelled. Cancellation returns ctx.Err() even while waiting for input.
func (s *Session) Run(ctx context.Context) error {
	if s.interactive {
		fmt.Fprintln(s.out, `tarefas shell. Type "help" for commands, "exit" to quit.`)
	}

	done := make(chan struct{})
	defer close(done)
	lines := s.readLines(done)

	for {
		if s.interactive {
			fmt.Fprint(s.out, s.prompt)
		}

		var next inputLine
		select {
		case <-ctx.Done():
			if s.interactive {
				fmt.Fprintln(s.out)
			}
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if s.interactive {
					fmt.Fprintln(s.out)
				}
				return s.result()
			}
			next = l
		}
		if next.err != nil {
			return fmt.Errorf("read input: %w", next.err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := s.Execute(ctx, next.text)
		if err != nil {
			s.failures++
			fmt.Fprintln(s.errOut, "Error:", err)
		}
		if quit {
			return s.result()
		}
	}
}

type inputLine struct {
	text string
	err  error
}

// readLines reads the input on its own goroutine so Run can observe
// cancellation while a read is blocked. Lines have no length limit. The
// channel is closed at end of input; a blocked read outlives done until the
// input is closed.
func (s *Session) readLines(done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(s.in)
		for {
			text, err := reader.ReadString('\n')
			if text != "" {
				select {
				case lines <- inputLine{text: text}:
				case <-done:
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case lines <- inputLine{err: err}:
					case <-done:
					}
				}
				return
			}
		}
	}()
	return lines
}

// Execute runs a single line. It reports quit=true for exit and quit.
func (s *Session) Execute(ctx context.Context, line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	words, err := shellwords.Parse(line)
	if err != nil {
		return false, fmt.Errorf("parse %q: %w", line, err)
	}
	if len(words) == 0 {
		return false, nil
	}

	switch words[0] {
	case "exit", "quit":
		return true, nil
	}

	ctx = observability.WithCorrelationID(ctx, "")
	ctx = observability.WithOperation(ctx, "shell "+words[0])
	s.logger.DebugContext(ctx, "shell command", "args", words)

	tree := newCommandTree()
	tree.SetArgs(words)
	tree.SetOut(s.out)
	tree.SetErr(s.errOut)
	return false, tree.ExecuteContext(ctx)
}

func (s *Session) result() error {
	if !s.interactive && s.failures > 0 {
		return fmt.Errorf("%d failed: %w", s.failures, ErrCommandsFailed)
	}
	return nil
}

// newCommandTree builds a fresh command tree for one line.
func newCommandTree() *cobra.Command {
	root := &cobra.Command{
		Use:           "tarefas",
		Short:         "Task commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetHelpTemplate(`Commands:
{{range .Commands}}{{if .IsAvailableCommand}}  {{rpad .Name .NamePadding}} {{.Short}}
{{end}}{{end}}  exit          End the session

Run "<command> --help" for the flags of a command.
`)
	task.AddCommands(root)
	return root
}

// NewCmd creates the shell command.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive task session",
		Long: `Read task commands line by line and run them against one task list.

Lines are split like a POSIX shell, so quote titles with spaces when they
are followed by flags:
  add "Review PR" -p high
  list
  toggle 1a2b
  exit

When standard input is not a terminal no prompt is shown and the command
exits with an error if any line failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := cli.GetApp()
			if app == nil {
				return errors.New("application not initialized")
			}

			in := cmd.InOrStdin()
			session := NewSession(in, cmd.OutOrStdout(), cmd.ErrOrStderr(), app.Settings.ShellPrompt, cli.IsTTY(in)).
				WithLogger(app.Logger)
			return session.Run(cmd.Context())
		},
	}
}
