// Package runner runs build steps as local subprocesses.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

// Subprocess is a core.Runner backed by os/exec.
type Subprocess struct {
	// Stdout and Stderr receive the child's output; nil means the
	// current process's streams.
	Stdout io.Writer
	Stderr io.Writer

	Logger *log.Logger
}

// New returns a Subprocess that inherits the current process's streams.
func New(logger *log.Logger) *Subprocess {
	return &Subprocess{Logger: logger}
}

// Run runs a command until completion or until ctx is canceled, in which
// case the child is killed.
func (r *Subprocess) Run(ctx context.Context, c core.Command) error {
	if len(c.Args) == 0 {
		return errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env
	cmd.Stdin = nil
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if r.Logger != nil {
		if c.Dir != "" {
			r.Logger.Printf("working directory: %s", c.Dir)
		}
		r.Logger.Printf("starting: %v", c.Args)
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	line := strings.Join(c.Args, " ")
	if notFound(cmd, err) {
		return fmt.Errorf("%s: %w: %v", line, core.ErrCommandNotFound, err)
	}
	return fmt.Errorf("%s: %w: %v", line, core.ErrCommandFailed, err)
}

// notFound reports whether err means the executable itself is missing, as
// opposed to the program running and failing.
func notFound(cmd *exec.Cmd, err error) bool {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return errors.Is(execErr.Err, exec.ErrNotFound) || errors.Is(execErr.Err, fs.ErrNotExist)
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path == cmd.Path && errors.Is(pathErr.Err, fs.ErrNotExist)
	}
	return false
}
