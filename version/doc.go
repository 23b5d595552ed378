// Package version reports the client library version.
//
// The version is resolved from the module build metadata when the
// library is consumed as a dependency, and can be pinned at compile
// time via -ldflags:
//
//	go build -ldflags "-X github.com/dans-knaw/go-dataverse/version.Version=1.0.0"
package version
