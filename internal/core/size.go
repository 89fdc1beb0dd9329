package core

import (
	"fmt"
	"io"
)

// ResolveSize measures the length of f by seeking to its end, then rewinds
// f to the start. Lengths above limit are rejected rather than narrowed.
func ResolveSize(f io.Seeker, limit int64) (int64, error) {
	end, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, ioError(ErrSeek, err)
	}
	if end < 0 {
		return 0, ioError(ErrSize, fmt.Errorf("invalid end offset %d", end))
	}
	if end > limit {
		return 0, ioError(errSizeLimit, fmt.Errorf("%d bytes exceeds the %d byte limit", end, limit))
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, ioError(ErrSeekBack, err)
	}
	return end, nil
}
