// Package cli implements the assistant command-line interface: the root
// command runs the interactive session, subcommands cover setup and
// scripted use.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/assistant/internal/command"
	"github.com/mesh-intelligence/assistant/internal/config"
	"github.com/mesh-intelligence/assistant/internal/logger"
	"github.com/mesh-intelligence/assistant/internal/paths"
	"github.com/mesh-intelligence/assistant/internal/repl"
	"github.com/mesh-intelligence/assistant/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	today     string
	logLevel  string
}

var flags rootFlags

// NewRootCmd creates the top-level "assistant" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "assistant",
		Short: "An interactive contact book",
		Long: `assistant keeps names, phone numbers and birthdays in memory and answers
line commands such as "add John 1234567890" or "birthdays".

Run it without arguments to start an interactive session; type "help" there
for the list of commands.`,
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE:         runSession,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/assistant)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "print listings as JSON")
	root.PersistentFlags().StringVar(&flags.today, "today", "", "treat this DD.MM.YYYY date as today")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newRunCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitUserError
}

// session bundles what a command needs to execute lines.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	logFile io.Closer
	handler *command.Handler
}

// close releases the log destination.
func (s *session) close() {
	if err := s.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log: %s\n", err)
	}
}

// newSession loads the configuration for cmd and builds a handler over an
// empty address book.
func newSession(cmd *cobra.Command) (*session, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, &ExitError{Code: exitSysError, Message: fmt.Sprintf("resolve config dir: %s", err)}
	}

	v := config.NewViper(configDir)
	bindings := map[string]string{
		config.KeyJSON:     "json",
		config.KeyToday:    "today",
		config.KeyLogLevel: "log-level",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, &ExitError{Code: exitSysError, Message: fmt.Sprintf("bind flag %s: %s", name, err)}
		}
	}

	cfg, err := config.Read(v)
	if err != nil {
		return nil, &ExitError{Code: exitUserError, Message: fmt.Sprintf("load config: %s", err)}
	}

	logOpts := cfg.Log
	logOpts.Output = cmd.ErrOrStderr()
	log, logFile := logger.New(&logOpts)

	var clock command.Clock = time.Now
	today, ok, err := cfg.TodayDate()
	if err != nil {
		logFile.Close()
		return nil, &ExitError{Code: exitUserError, Message: fmt.Sprintf("load config: %s", err)}
	}
	if ok {
		clock = command.FixedClock(today)
	}

	h := command.New(types.NewAddressBook(),
		command.WithClock(clock),
		command.WithUpcomingDays(cfg.UpcomingDays),
		command.WithJSON(cfg.JSON),
		command.WithLogger(log),
	)

	log.Debug("session ready", "config_dir", configDir, "upcoming_days", cfg.UpcomingDays, "json", cfg.JSON)
	return &session{cfg: cfg, log: log, logFile: logFile, handler: h}, nil
}

func runSession(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	loop := repl.New(s.handler, s.cfg.Prompt, s.log)
	if err := loop.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return &ExitError{Code: exitSysError, Message: err.Error()}
	}
	return nil
}
