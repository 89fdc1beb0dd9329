package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/stefanos/zero/internal/core"
	"github.com/stefanos/zero/internal/version"
)

const (
	usageLine = "Usage: zero [-f, --force] <FILE>"
	// exitInterrupted matches a shell's status for a process killed by SIGINT.
	exitInterrupted = 130
)

// usageError reports a command line that names no file or carries an
// unknown flag.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	if e.err == nil {
		return "missing file argument"
	}
	return e.err.Error()
}

func (e *usageError) Unwrap() error { return e.err }

type streams struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], streams{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}))
}

func run(args []string, s streams) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(s)
	cmd.SetArgs(args)
	return report(s.stderr, cmd.Execute())
}

func newRootCmd(s streams) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "zero [-f|--force] <FILE>",
		Short: "Overwrite a file with zeros, then delete it",
		Long: `zero overwrites every byte of FILE with zeros and removes it.

Unless --force is given, the file size is shown and the wipe only goes
ahead when the answer is y or Y.`,
		Version:       version.For("zero", core.Variant).String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &usageError{}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := core.NewWiper()
			w.Fs, w.In, w.Out = s.fs, s.stdin, s.stdout
			_, err := w.Wipe(core.NewConfig(args[0], force))
			return err
		},
	}

	// The first non-flag argument is the file; anything after it is ignored.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the size display, confirmation prompt and done message")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetIn(s.stdin)
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	return cmd
}

// report prints err the way the user sees it and returns the exit status.
func report(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var usageErr *usageError
	var ioErr *core.IOError
	switch {
	case errors.Is(err, core.ErrInterrupted):
		return exitInterrupted
	case errors.As(err, &usageErr):
		if usageErr.err != nil {
			fmt.Fprintf(stderr, "error: %v\n", usageErr.err)
		}
		fmt.Fprintln(stderr, usageLine)
	case errors.Is(err, core.ErrDelete):
		fmt.Fprintln(stderr, "Cannot delete file")
	case errors.As(err, &ioErr):
		fmt.Fprintf(stderr, "IO error: %v\n", ioErr.Op)
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}
