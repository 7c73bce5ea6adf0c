// Package shell runs external programs with the terminal attached.
package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Runner starts a program and waits for it to exit.
type Runner interface {
	Run(name string, args ...string) error
}

// Exec is a Runner backed by os/exec. Nil streams default to the process's
// own stdin, stdout and stderr.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExec returns an Exec wired to the process's standard streams.
func NewExec() *Exec {
	return &Exec{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts name with args and blocks until it exits. A failure to start or
// a nonzero exit status is returned with the command line attached.
func (e *Exec) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = orDefault(e.Stdin, os.Stdin)
	cmd.Stdout = orDefaultWriter(e.Stdout, os.Stdout)
	cmd.Stderr = orDefaultWriter(e.Stderr, os.Stderr)

	logrus.WithFields(logrus.Fields{"cmd": name, "args": args}).Debug("running command")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("could not run command '%s' with args %q: %w", name, args, err)
	}
	return nil
}

func orDefault(r io.Reader, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orDefaultWriter(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
