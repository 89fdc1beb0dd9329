package core

import "fmt"

// DefaultBlockSize is the length of each full zero-fill write.
const DefaultBlockSize = 4096

// Config describes a single wipe run.
type Config struct {
	Path      string
	Force     bool
	BlockSize int
	MaxSize   int64
}

// NewConfig returns a Config for path with the build defaults.
func NewConfig(path string, force bool) Config {
	return Config{
		Path:      path,
		Force:     force,
		BlockSize: DefaultBlockSize,
		MaxSize:   MaxFileSize,
	}
}

// Validate checks the sizes a run works with. The path is checked when
// the file is opened.
func (c Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("invalid block size %d: must be > 0", c.BlockSize)
	}
	if c.MaxSize <= 0 {
		return fmt.Errorf("invalid max size %d: must be > 0", c.MaxSize)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.BlockSize == 0 {
		c.BlockSize = DefaultBlockSize
	}
	if c.MaxSize == 0 {
		c.MaxSize = MaxFileSize
	}
	return c
}
