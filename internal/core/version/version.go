// Package version provides information about the build version of the service.
package version

import "runtime/debug"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'legallens/internal/core/version.version=v0.1.0'
	// -X 'legallens/internal/core/version.commit=abcd' -X 'legallens/internal/core/version.date=2026-10-14'"
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  revision(),
		Date:    date,
	}
}

// For returns Info with the service name replaced, one per binary
func For(svc string) BuildInfo {
	bi := Info()
	if svc != "" {
		bi.Service = svc
	}
	return bi
}

// revision prefers the ldflags commit, then the vcs stamp from the toolchain
func revision() string {
	if commit != "none" {
		return commit
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return commit
}

var (
	service = "legallens"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
