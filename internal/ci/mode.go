package ci

import "fmt"

// Mode selects which variant set reaches the matrix prioritizer.
type Mode string

const (
	ModeAuto    Mode = "auto"
	ModeChanged Mode = "changed"
	ModeConfig  Mode = "config"
	ModeAll     Mode = "all"
	ModeSelect  Mode = "select"
)

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeChanged, ModeConfig, ModeAll, ModeSelect:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode %q (must be one of: auto, changed, config, all, select)", s)
	}
}

// ResolveMode picks the effective mode. A forced non-auto mode wins;
// otherwise the CI context decides: pull requests build what changed,
// default-branch pushes build per config, anything else builds all.
func ResolveMode(ctx Context, forced Mode) Mode {
	if forced != ModeAuto {
		return forced
	}
	switch {
	case ctx.IsPullRequest:
		return ModeChanged
	case ctx.IsDefaultBranch:
		return ModeConfig
	default:
		return ModeAll
	}
}
