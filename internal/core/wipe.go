package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

const (
	progressNote = "Confirmed -- overwriting with zeros..."
	doneLine     = "done"
)

var errEmptyPath = errors.New("file path is empty")

// Wiper zero-fills and deletes files on Fs. Prompts go to Out and answers
// are read from In.
type Wiper struct {
	Fs  afero.Fs
	In  io.Reader
	Out io.Writer
}

// NewWiper returns a Wiper on the OS filesystem and standard streams.
func NewWiper() *Wiper {
	return &Wiper{
		Fs:  afero.NewOsFs(),
		In:  os.Stdin,
		Out: os.Stdout,
	}
}

// Result describes how far a run got.
type Result struct {
	Stage    Stage
	FailedAt Stage
	Size     int64
	Plan     Plan
}

func (r Result) fail(err error) (Result, error) {
	r.FailedAt = r.Stage
	r.Stage = StageFailed
	return r, err
}

// Wipe overwrites cfg.Path with zeros and removes it. Unless cfg.Force is
// set the size is shown first and the run stops, untouched and without
// error, if the answer is not y or Y.
func (w *Wiper) Wipe(cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	res := Result{Stage: StageStart}
	if err := cfg.Validate(); err != nil {
		return res.fail(fmt.Errorf("invalid config: %w", err))
	}
	res.Stage = StageParsedArgs

	if cfg.Path == "" {
		return res.fail(ioError(ErrOpen, errEmptyPath))
	}
	f, err := w.Fs.OpenFile(cfg.Path, os.O_RDWR, 0)
	if err != nil {
		return res.fail(ioError(ErrOpen, err))
	}
	closed := false
	defer func() {
		if !closed {
			_ = f.Close()
		}
	}()
	res.Stage = StageOpened

	size, err := ResolveSize(f, cfg.MaxSize)
	if err != nil {
		return res.fail(err)
	}
	res.Size = size
	res.Plan = PlanOverwrite(size, cfg.BlockSize)
	res.Stage = StageSizeKnown

	if !cfg.Force {
		ok, err := Confirm(w.In, w.Out, size)
		if err != nil {
			return res.fail(err)
		}
		if !ok {
			res.Stage = StageDeclined
			return res, nil
		}
		fmt.Fprint(w.Out, progressNote)
	}
	res.Stage = StageConfirmed

	if err := Overwrite(f, size, cfg.BlockSize); err != nil {
		return res.fail(err)
	}
	if err := f.Sync(); err != nil {
		return res.fail(ioError(ErrWrite, fmt.Errorf("sync: %w", err)))
	}
	closed = true
	if err := f.Close(); err != nil {
		return res.fail(ioError(ErrWrite, fmt.Errorf("close: %w", err)))
	}
	res.Stage = StageOverwritten

	if err := w.Fs.Remove(cfg.Path); err != nil {
		return res.fail(ioError(ErrDelete, err))
	}
	res.Stage = StageDeleted

	if !cfg.Force {
		fmt.Fprintln(w.Out, doneLine)
	}
	res.Stage = StageDone
	return res, nil
}
