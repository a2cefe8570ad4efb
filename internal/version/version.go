package version

import (
	"runtime/debug"
	"sync"
	"time"
)

// Overridable with -ldflags "-X github.com/ionut-t/wordy/internal/version.version=v1.2.3".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type Info struct {
	Version string
	Commit  string
	Date    string
}

var get = sync.OnceValue(func() Info {
	info := Info{Version: version, Commit: commit, Date: date}

	if build, ok := debug.ReadBuildInfo(); ok {
		info = fromBuild(info, build)
	}

	return info
})

// Get returns the version of the running binary. Build info from the Go
// toolchain wins over the linker defaults when present.
func Get() Info {
	return get()
}

func fromBuild(info Info, build *debug.BuildInfo) Info {
	if build.Main.Version != "(devel)" && build.Main.Version != "" {
		info.Version = build.Main.Version
	}

	for _, setting := range build.Settings {
		switch setting.Key {
		case "vcs.revision":
			if setting.Value != "" {
				info.Commit = shortCommit(setting.Value)
			}
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				info.Date = t.Format("02/01/2006")
			}
		}
	}

	return info
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
