package entropy

import (
	"runtime"
	"runtime/debug"
	"strings"
)

// Version is the semantic version of the library and the entropy command.
const Version = "0.1.0"

// Build describes the binary a result was computed by.
type Build struct {
	Version  string
	Revision string
	Time     string
	Modified bool
	Go       string
}

// String renders the build on one line, e.g.
// "0.1.0 (rev 1a2b3c4d5e6f, 2026-01-02T15:04:05Z, go1.26.0)".
func (b Build) String() string {
	var sb strings.Builder
	sb.WriteString(b.Version)
	sb.WriteString(" (rev ")
	sb.WriteString(shortRevision(b.Revision))
	if b.Modified {
		sb.WriteString("+dirty")
	}
	sb.WriteString(", ")
	sb.WriteString(b.Time)
	sb.WriteString(", ")
	sb.WriteString(b.Go)
	sb.WriteString(")")
	return sb.String()
}

// Linker overrides, for builds made outside a VCS checkout:
//
//	go build -ldflags="-X github.com/simonhull/entropy.revision=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/entropy.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/entropy
var (
	revision  string
	buildTime string
)

// GetBuild reports how the running binary was built.
//
// Revision and time come from -ldflags when set, otherwise from the VCS
// stamp the go command embeds. Missing values read "unknown".
func GetBuild() Build {
	b := Build{
		Version:  Version,
		Revision: revision,
		Time:     buildTime,
		Go:       runtime.Version(),
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		b = b.withSettings(info.Settings)
	}

	if b.Revision == "" {
		b.Revision = "unknown"
	}
	if b.Time == "" {
		b.Time = "unknown"
	}
	return b
}

func (b Build) withSettings(settings []debug.BuildSetting) Build {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if b.Revision == "" {
				b.Revision = s.Value
			}
		case "vcs.time":
			if b.Time == "" {
				b.Time = s.Value
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
