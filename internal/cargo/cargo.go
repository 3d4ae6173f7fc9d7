// Package cargo shells out to the cargo binary. Scaffolding consumes only the
// exit status of `cargo new` and the directory it leaves behind; cargo's own
// output streams straight through to the user.
package cargo

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner creates a new crate directory. The single implementation invokes the
// real cargo binary; tests substitute a fake.
type Runner interface {
	// New runs `cargo new <name>` (with --bin when bin is set) in the current
	// working directory. A non-zero exit status is returned as an error.
	New(ctx context.Context, name string, bin bool) error
}

// ExecRunner invokes the cargo binary found on PATH.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (r *ExecRunner) New(ctx context.Context, name string, bin bool) error {
	cargoBin, err := exec.LookPath("cargo")
	if err != nil {
		return fmt.Errorf("scaffolding requires cargo: %w", err)
	}

	args := []string{"new", name}
	if bin {
		args = append(args, "--bin")
	}

	cmd := exec.CommandContext(ctx, cargoBin, args...)
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cargo new %s: %w", name, err)
	}
	return nil
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
