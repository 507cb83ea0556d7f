// Package version reports which devpalette build is running.
//
// Release builds set Version, Commit and Date with ldflags, for example
//
//	-X github.com/jmylchreest/devpalette/internal/version.Version=1.2.0
//
// Binaries built with plain `go install` or `go build` fall back to the module
// version and VCS stamps recorded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

// Set at link time.
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes a build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo merges link-time values with the toolchain's build info. Values set
// with ldflags always win.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String is the long form printed by `devpalette version`.
func String() string {
	info := GetInfo()

	details := []any{info.Version}
	format := "devpalette version %s ("
	if info.Commit != unknown {
		commit := shortCommit(info.Commit)
		if info.Modified {
			commit += "-dirty"
		}
		format += "commit: %s, "
		details = append(details, commit)
	}
	if info.Date != unknown {
		format += "built: %s, "
		details = append(details, info.Date)
	}
	format += "%s, %s)"
	details = append(details, info.GoVersion, info.Platform)

	return fmt.Sprintf(format, details...)
}

// Short is the bare version, used by --version.
func Short() string {
	return GetInfo().Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
