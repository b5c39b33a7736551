package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"     // Set via -X flag at build time
	BuildTime = "unknown" // Set via -X flag at build time
	GitCommit = "unset"   // Set via -X flag at build time
)

// HandleVersion returns version information about the application.
// configured is the VERSION setting, used when no build-time version was stamped.
func HandleVersion(configured string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:   resolveVersion(configured),
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		})
	}
}

// resolveVersion prefers the build-time version over configuration
func resolveVersion(configured string) string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if configured != "" {
		return configured
	}
	return "dev"
}
