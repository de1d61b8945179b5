// Package version exposes build metadata injected at link time.
package version

import "runtime"

// These are set via -ldflags at build time, e.g.
//
//	go build -ldflags "-X github.com/jackzampolin/bookpress/version.GitRelease=v0.1.0"
var (
	// GitRelease is the release tag.
	GitRelease = "dev"
	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"
	// GitCommitDate is the commit date.
	GitCommitDate = "unknown"
)

// GoInfo reports the Go toolchain used for the build.
var GoInfo = runtime.Version()
