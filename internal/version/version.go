// Package version carries build metadata, set with -ldflags at release time.
package version

var (
	Version = "dev"
	Commit  = "none"
)

// String formats the version for --version output.
func String() string {
	if Commit == "none" || Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
