//go:build !zero32

package core

import "math"

const (
	// Variant names the build flavour shown in version output.
	Variant = "zero64"
	// MaxFileSize is the largest file length this build can represent.
	MaxFileSize int64 = math.MaxInt64
)

// errSizeLimit is the category used when a file exceeds MaxFileSize.
// Wide builds can represent every length the OS reports.
var errSizeLimit = ErrSize
