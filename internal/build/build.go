package build

import "runtime/debug"

// Variables injected via ldflags at build time.
var (
	Version = "DEV"
	Date    = "" // YYYY-MM-DD, empty for dev builds
)

// Revision is the VCS commit the binary was built from, when the toolchain
// stamped one. Test binaries carry none.
var Revision string

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "DEV" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			Revision = setting.Value
		}
	}
}

// UserAgent identifies jar downloads, e.g. "plugin-editions/1.2.0".
func UserAgent() string {
	return "plugin-editions/" + Version
}
