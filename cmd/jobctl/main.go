// jobctl drives the job lifecycle on a remote node: session login, job CRUD
// and run-and-poll workflows against the node's HTTP API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chainfleet/jobctl/config"
	"github.com/chainfleet/jobctl/internal/bootstrap"
	oberrors "github.com/chainfleet/jobctl/internal/observability/errors"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

func main() {
	logger := bootstrap.InitLogger(slog.LevelInfo)

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		logger.ErrorContext(context.Background(), "invalid config", "error", validateErr)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration errors to shell scripts
	}
	if cfg.IsDev {
		logger = bootstrap.InitLogger(bootstrap.LoggerLevel(cfg))
		logger.Debug("development mode enabled")
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed",
			"command", cmdName, "error", runErr, "error_type", oberrors.Classify(runErr))
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Authenticate against the node and cache the session credential",
			run:         runLogin,
		},
		"list": {
			name:        "list",
			description: "List jobs on the node, optionally projected with a JMESPath query",
			run:         runList,
		},
		"create": {
			name:        "create",
			description: "Create a job from a TOML specification file",
			run:         runCreate,
		},
		"run": {
			name:        "run",
			description: "Trigger a job run and poll it to a terminal state",
			run:         runRun,
		},
		"delete": {
			name:        "delete",
			description: "Delete a job by id (deleting an unknown id succeeds)",
			run:         runDelete,
		},
		"delete-all": {
			name:        "delete-all",
			description: "Delete every job on the node",
			run:         runDeleteAll,
		},
		"cycle": {
			name:        "cycle",
			description: "Create a job, run it to completion and delete it again",
			run:         runCycle,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: jobctl <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-12s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

type confirmOptions struct {
	yes    bool
	dryRun bool
	target string
}

func confirmAction(opts confirmOptions, actionType string) error {
	if opts.dryRun || opts.yes {
		return nil
	}

	if err := writef(os.Stdout, "About to %s for %s.\n", actionType, opts.target); err != nil {
		return fmt.Errorf("print confirmation message: %w", err)
	}
	if err := write(os.Stdout, "Continue? [y/N]: "); err != nil {
		return fmt.Errorf("print confirmation prompt: %w", err)
	}
	reader := bufio.NewReader(os.Stdin)
	resp, err := reader.ReadString('\n')
	if err != nil {
		if writeErr := writef(os.Stdout, "\nFailed to read confirmation input: %v\n", err); writeErr != nil {
			return fmt.Errorf("aborted by user: report write failed: %w", writeErr)
		}
		return errors.New("aborted by user")
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	if resp == "y" || resp == "yes" {
		return nil
	}
	return errors.New("aborted by user")
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func write(w io.Writer, args ...any) error {
	_, err := fmt.Fprint(w, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}
