package version

import (
	"fmt"
	"strings"
)

// Build metadata, overridden at link time, e.g.
//
//	go build -ldflags "-X github.com/stefanos/zero/internal/version.Version=v1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
	BuiltBy   = "local"
)

// Info describes one binary built from this module.
type Info struct {
	Name    string
	Variant string
}

// For returns the Info of the named binary and size variant.
func For(name, variant string) Info {
	return Info{Name: name, Variant: variant}
}

// Short is the one-word release identifier.
func (i Info) Short() string {
	if Commit == "unknown" {
		return Version
	}
	return Version + "+" + Commit
}

// String renders the lines printed by --version.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", i.Name, i.Short())
	fmt.Fprintf(&b, "size variant: %s\n", i.Variant)
	fmt.Fprintf(&b, "built %s by %s", BuildDate, BuiltBy)
	return b.String()
}
