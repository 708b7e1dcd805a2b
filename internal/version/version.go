// Package version holds the foundry binary version, printed by the
// `foundry version` command and stamped into image labels.
package version

// Version is the current foundry release.
const Version = "0.1.0"

// String returns the full version banner.
func String() string {
	return "foundry v" + Version
}
