package harness

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/schmitthub/plugin-editions/internal/cmd"
	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/testenv"
)

// Harness runs the CLI in-process against an isolated filesystem.
type Harness struct {
	T *testing.T
}

// RunResult holds the outcome of a CLI command execution.
type RunResult struct {
	ExitCode int
	Err      error
	Stdout   string
	Stderr   string
}

// NewIsolatedFS creates an isolated environment through testenv.New and
// chdirs into its base directory (restored on cleanup), so default input
// paths resolve inside it.
func (h *Harness) NewIsolatedFS(opts ...testenv.Option) *testenv.Env {
	h.T.Helper()

	env := testenv.New(h.T, opts...)

	prevDir, err := os.Getwd()
	if err != nil {
		h.T.Fatalf("harness: getting cwd: %v", err)
	}
	if err := os.Chdir(env.Dirs.Base); err != nil {
		h.T.Fatalf("harness: chdir to base dir: %v", err)
	}
	h.T.Cleanup(func() {
		_ = os.Chdir(prevDir)
	})

	return env
}

// Run executes a CLI command through the full cmd.NewRootCmd Cobra pipeline
// with empty stdin.
func (h *Harness) Run(args ...string) *RunResult {
	h.T.Helper()
	return h.RunWithInput("", args...)
}

// RunWithInput is Run with the given text on stdin, for prompts.
func (h *Harness) RunWithInput(stdin string, args ...string) *RunResult {
	h.T.Helper()

	rootCmd := cmd.NewRootCmd("test", "test")

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()

	return &RunResult{
		ExitCode: perrors.ExitCode(err),
		Err:      err,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}
