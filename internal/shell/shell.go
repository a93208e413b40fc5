// Package shell runs external programs for the scaffolder.
package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Cmd describes one external program invocation.
type Cmd struct {
	Name string
	Args []string
	Dir  string

	// Inherit wires the child to our stdin/stdout/stderr. When false the
	// output is captured and only surfaces inside the returned error.
	Inherit bool
}

func (c Cmd) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner starts a Cmd and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, c Cmd) error
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, c Cmd) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	if c.Inherit {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		return nil
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", c, err, strings.TrimSpace(string(out)))
	}
	return nil
}
