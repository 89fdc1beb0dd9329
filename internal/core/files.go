package core

import (
	"fmt"
	"io"
)

// Plan is the write schedule for zero-filling a file.
type Plan struct {
	Passes    int64
	Remainder int64
}

// PlanOverwrite splits size into full blocks and a final short block.
func PlanOverwrite(size int64, blockSize int) Plan {
	b := int64(blockSize)
	return Plan{
		Passes:    size / b,
		Remainder: size % b,
	}
}

// Overwrite writes exactly size zero bytes to w in blocks of blockSize.
// Any failed or short write ends the overwrite.
func Overwrite(w io.Writer, size int64, blockSize int) error {
	if blockSize <= 0 {
		return ioError(ErrWrite, fmt.Errorf("invalid block size %d", blockSize))
	}
	plan := PlanOverwrite(size, blockSize)
	zeros := make([]byte, blockSize)

	for pass := int64(0); pass < plan.Passes; pass++ {
		if err := writeFull(w, zeros); err != nil {
			return ioError(ErrWrite, fmt.Errorf("block %d: %w", pass, err))
		}
	}
	if plan.Remainder > 0 {
		if err := writeFull(w, zeros[:plan.Remainder]); err != nil {
			return ioError(ErrWrite, fmt.Errorf("final block: %w", err))
		}
	}
	return nil
}

func writeFull(w io.Writer, buf []byte) error {
	n, err := w.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return io.ErrShortWrite
	}
	return nil
}
