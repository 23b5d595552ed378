package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// modulePath is the import path of this module as it appears in the
// dependency list of a consuming binary.
const modulePath = "github.com/dans-knaw/go-dataverse"

// Version is the library version. It is "dev" unless overridden via
// -ldflags or resolved from the consuming binary's module metadata.
var Version = "dev"

var (
	resolveOnce sync.Once
	resolved    string
)

// Resolve returns the effective library version. An explicit Version
// (set at build time) wins; otherwise the module version recorded in
// the consuming binary's build info is used, falling back to "dev".
func Resolve() string {
	resolveOnce.Do(func() {
		resolved = Version
		if resolved != "dev" {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, dep := range info.Deps {
			if dep.Path == modulePath && dep.Version != "" {
				resolved = dep.Version
				return
			}
		}
	})
	return resolved
}

// UserAgent returns the User-Agent value sent with every request,
// e.g. "go-dataverse/v1.2.0".
func UserAgent() string {
	return fmt.Sprintf("go-dataverse/%s", Resolve())
}
