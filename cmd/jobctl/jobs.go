package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chainfleet/jobctl/internal/bootstrap"
	"github.com/chainfleet/jobctl/internal/domain/model"
	"github.com/chainfleet/jobctl/internal/query"
)

type listCmdOptions struct {
	Query string
}

type createCmdOptions struct {
	SpecPath string
}

type runCmdOptions struct {
	JobID   string
	Timeout time.Duration
}

type deleteCmdOptions struct {
	JobID string
}

type deleteAllCmdOptions struct {
	Yes    bool
	DryRun bool
}

type cycleCmdOptions struct {
	SpecPath string
	Timeout  time.Duration
}

// withServices builds the service container for a command and tears it down
// again when the command returns.
func withServices(cmdCtx *commandContext, f func(*bootstrap.ServiceContainer) error) error {
	container, err := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config: &cmdCtx.Config,
		Logger: cmdCtx.Logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := container.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("close services failed", "error", closeErr)
		}
	}()

	return f(container)
}

func runLogin(cmdCtx *commandContext, _ []string) error {
	return withServices(cmdCtx, func(c *bootstrap.ServiceContainer) error {
		cred, err := c.Sessions.GetValidToken(cmdCtx.Ctx)
		if err != nil {
			return err
		}
		return writef(os.Stdout, "session ready: cookie %s, expires %s\n",
			cred.CookieName, cred.ExpiresAt.Format(time.RFC3339))
	})
}

func runList(cmdCtx *commandContext, args []string) error {
	opts, err := parseListCmdFlags(args)
	if err != nil {
		return err
	}

	return withServices(cmdCtx, func(c *bootstrap.ServiceContainer) error {
		jobs, err := c.Jobs.List(cmdCtx.Ctx)
		if err != nil {
			return err
		}

		payload, err := projectJobs(jobs, opts.Query)
		if err != nil {
			return err
		}

		rendered, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("render job listing: %w", err)
		}
		return writeln(os.Stdout, string(rendered))
	})
}

// projectJobs applies an optional JMESPath expression to the job listing.
// The jobs are round-tripped through JSON so the evaluator sees the generic
// document shape it expects.
func projectJobs(jobs []model.Job, expr string) (any, error) {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return nil, fmt.Errorf("encode job listing: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode job listing: %w", err)
	}

	if strings.TrimSpace(expr) == "" {
		return doc, nil
	}

	result, err := query.NewEvaluator().Evaluate(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("evaluate query %q: %w", expr, err)
	}
	return result, nil
}

func runCreate(cmdCtx *commandContext, args []string) error {
	opts, err := parseCreateCmdFlags(args)
	if err != nil {
		return err
	}

	spec, err := readJobSpec(opts.SpecPath)
	if err != nil {
		return err
	}

	return withServices(cmdCtx, func(c *bootstrap.ServiceContainer) error {
		jobID, err := c.Jobs.Create(cmdCtx.Ctx, spec)
		if err != nil {
			return err
		}
		return writef(os.Stdout, "created job %s\n", jobID)
	})
}

func runRun(cmdCtx *commandContext, args []string) error {
	opts, err := parseRunCmdFlags(args, cmdCtx.Config.Poll.Timeout)
	if err != nil {
		return err
	}

	return withServices(cmdCtx, func(c *bootstrap.ServiceContainer) error {
		pingPreflight(cmdCtx, c)

		result, err := c.Jobs.Run(cmdCtx.Ctx, opts.JobID, opts.Timeout)
		if err != nil {
			return err
		}
		if writeErr := writef(os.Stdout, "run %s finished: %s\n", result.RunID, result.Outcome); writeErr != nil {
			return writeErr
		}
		if result.Outcome != model.OutcomeCompleted {
			return fmt.Errorf("job run did not complete: %s", result.Outcome)
		}
		return nil
	})
}

func runDelete(cmdCtx *commandContext, args []string) error {
	opts, err := parseDeleteCmdFlags(args)
	if err != nil {
		return err
	}

	return withServices(cmdCtx, func(c *bootstrap.ServiceContainer) error {
		if err := c.Jobs.Delete(cmdCtx.Ctx, opts.JobID); err != nil {
			return err
		}
		return writef(os.Stdout, "deleted job %s\n", opts.JobID)
	})
}

func runDeleteAll(cmdCtx *commandContext, args []string) error {
	opts, err := parseDeleteAllCmdFlags(args)
	if err != nil {
		return err
	}

	return withServices(cmdCtx, func(c *bootstrap.ServiceContainer) error {
		if opts.DryRun {
			jobs, listErr := c.Jobs.List(cmdCtx.Ctx)
			if listErr != nil {
				return listErr
			}
			if writeErr := writef(os.Stdout, "Dry-run: would delete %d jobs\n", len(jobs)); writeErr != nil {
				return writeErr
			}
			for _, job := range jobs {
				if writeErr := writef(os.Stdout, "  %s\n", job.ID); writeErr != nil {
					return writeErr
				}
			}
			return nil
		}

		confirmOpts := confirmOptions{
			yes:    opts.Yes,
			dryRun: opts.DryRun,
			target: "node " + cmdCtx.Config.API.BaseURL,
		}
		if confirmErr := confirmAction(confirmOpts, "delete all jobs"); confirmErr != nil {
			return confirmErr
		}

		result, err := c.Jobs.DeleteAll(cmdCtx.Ctx)
		if err != nil {
			return err
		}
		if writeErr := writef(os.Stdout, "Deleted %d/%d jobs\n",
			len(result.Deleted), len(result.Deleted)+len(result.Failed)); writeErr != nil {
			return writeErr
		}
		if len(result.Failed) > 0 {
			return fmt.Errorf("failed to delete %d jobs: %s",
				len(result.Failed), strings.Join(result.Failed, ", "))
		}
		return nil
	})
}

func runCycle(cmdCtx *commandContext, args []string) error {
	opts, err := parseCycleCmdFlags(args, cmdCtx.Config.Poll.Timeout)
	if err != nil {
		return err
	}

	spec, err := readJobSpec(opts.SpecPath)
	if err != nil {
		return err
	}

	return withServices(cmdCtx, func(c *bootstrap.ServiceContainer) error {
		pingPreflight(cmdCtx, c)

		result, err := c.Jobs.Cycle(cmdCtx.Ctx, spec, opts.Timeout)
		if err != nil {
			return err
		}
		if writeErr := writef(os.Stdout, "job %s run %s finished: %s\n",
			result.JobID, result.RunID, result.Outcome); writeErr != nil {
			return writeErr
		}
		if result.Outcome != model.OutcomeCompleted {
			return fmt.Errorf("job run did not complete: %s", result.Outcome)
		}
		return nil
	})
}

// pingPreflight probes the node before a run workflow starts. Advisory only:
// a failing probe is logged, the workflow proceeds and fails on its own terms.
func pingPreflight(cmdCtx *commandContext, c *bootstrap.ServiceContainer) {
	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, cmdCtx.Config.API.PreflightTimeout)
	defer cancel()

	if err := c.API.Ping(ctx); err != nil {
		cmdCtx.Logger.Warn("node preflight check failed", "error", err)
	}
}

// readJobSpec reads a TOML job specification from a file, or stdin when the
// path is "-".
func readJobSpec(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read job spec from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read job spec file: %w", err)
	}
	return string(data), nil
}

func parseListCmdFlags(args []string) (listCmdOptions, error) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts listCmdOptions
	fs.StringVar(&opts.Query, "query", "", "Optional JMESPath expression applied to the job listing")

	if err := fs.Parse(args); err != nil {
		return listCmdOptions{}, err
	}

	if err := query.NewEvaluator().Validate(opts.Query); err != nil {
		return listCmdOptions{}, fmt.Errorf("invalid --query expression: %w", err)
	}

	return opts, nil
}

func parseCreateCmdFlags(args []string) (createCmdOptions, error) {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts createCmdOptions
	fs.StringVar(&opts.SpecPath, "spec", "", "Path to the TOML job specification (- for stdin)")

	if err := fs.Parse(args); err != nil {
		return createCmdOptions{}, err
	}

	if strings.TrimSpace(opts.SpecPath) == "" {
		return createCmdOptions{}, errors.New("--spec is required")
	}

	return opts, nil
}

func parseRunCmdFlags(args []string, defaultTimeout time.Duration) (runCmdOptions, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts runCmdOptions
	fs.StringVar(&opts.JobID, "job", "", "Job ID to run (required)")
	fs.DurationVar(&opts.Timeout, "timeout", defaultTimeout, "Maximum wall-clock time to wait for the run")

	if err := fs.Parse(args); err != nil {
		return runCmdOptions{}, err
	}

	opts.JobID = strings.TrimSpace(opts.JobID)
	if opts.JobID == "" {
		return runCmdOptions{}, errors.New("--job is required")
	}
	if opts.Timeout <= 0 {
		return runCmdOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}

func parseDeleteCmdFlags(args []string) (deleteCmdOptions, error) {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts deleteCmdOptions
	fs.StringVar(&opts.JobID, "job", "", "Job ID to delete (required)")

	if err := fs.Parse(args); err != nil {
		return deleteCmdOptions{}, err
	}

	opts.JobID = strings.TrimSpace(opts.JobID)
	if opts.JobID == "" {
		return deleteCmdOptions{}, errors.New("--job is required")
	}

	return opts, nil
}

func parseDeleteAllCmdFlags(args []string) (deleteAllCmdOptions, error) {
	fs := flag.NewFlagSet("delete-all", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts deleteAllCmdOptions
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Print the jobs that would be deleted without deleting")

	if err := fs.Parse(args); err != nil {
		return deleteAllCmdOptions{}, err
	}

	return opts, nil
}

func parseCycleCmdFlags(args []string, defaultTimeout time.Duration) (cycleCmdOptions, error) {
	fs := flag.NewFlagSet("cycle", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts cycleCmdOptions
	fs.StringVar(&opts.SpecPath, "spec", "", "Path to the TOML job specification (- for stdin)")
	fs.DurationVar(&opts.Timeout, "timeout", defaultTimeout, "Maximum wall-clock time to wait for the run")

	if err := fs.Parse(args); err != nil {
		return cycleCmdOptions{}, err
	}

	if strings.TrimSpace(opts.SpecPath) == "" {
		return cycleCmdOptions{}, errors.New("--spec is required")
	}
	if opts.Timeout <= 0 {
		return cycleCmdOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}
