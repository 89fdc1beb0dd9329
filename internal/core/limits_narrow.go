//go:build zero32

package core

import "math"

const (
	// Variant names the build flavour shown in version output.
	Variant = "zero"
	// MaxFileSize is the largest file length this build can represent.
	MaxFileSize int64 = math.MaxInt32
)

// errSizeLimit is the category used when a file exceeds MaxFileSize.
var errSizeLimit = ErrSizeTooLarge
