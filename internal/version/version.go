// Package version holds the module version string shared by the binaries.
package version

// Version is overridable at link time with
// -ldflags "-X github.com/katalvlaran/fizzbuzz/internal/version.Version=...".
var Version = "0.1.0"
