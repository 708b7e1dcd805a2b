// internal/variant/variant.go
//
// The fixed set of base-image targets foundry knows how to build.
// Everything downstream (template conditionals, change classification,
// matrix scoring) keys off these identifiers, so the enum lives in its
// own leaf package with no dependencies.

package variant

import "fmt"

// Variant is a named base-image target, e.g. "ubuntu-24.04".
type Variant string

const (
	Ubuntu2404 Variant = "ubuntu-24.04"
	Ubuntu2204 Variant = "ubuntu-22.04"
	Alpine320  Variant = "alpine-3.20"
)

// Family groups variants by package-manager style. It decides which
// conditional template blocks apply and which install-command syntax
// package expansion uses.
type Family string

const (
	FamilyDebian Family = "debian-like"
	FamilyAlpine Family = "alpine-like"
	FamilyNone   Family = ""
)

// baseImages maps a variant to its concrete image reference.
var baseImages = map[Variant]string{
	Ubuntu2404: "ubuntu:24.04",
	Ubuntu2204: "ubuntu:22.04",
	Alpine320:  "alpine:3.20",
}

var families = map[Variant]Family{
	Ubuntu2404: FamilyDebian,
	Ubuntu2204: FamilyDebian,
	Alpine320:  FamilyAlpine,
}

// All returns every supported variant in canonical order.
func All() []Variant {
	return []Variant{Ubuntu2404, Ubuntu2204, Alpine320}
}

func (v Variant) String() string {
	return string(v)
}

// Known reports whether v is one of the supported variants.
func (v Variant) Known() bool {
	_, ok := families[v]
	return ok
}

// BaseImage returns the concrete image reference for the variant.
// Unknown variants fall back to "<id>:latest" rather than erroring.
func (v Variant) BaseImage() string {
	if img, ok := baseImages[v]; ok {
		return img
	}
	return string(v) + ":latest"
}

// FamilyOf returns the OS family for the variant. Unknown variant ids
// have no family; callers treat that as "matches nothing".
func (v Variant) FamilyOf() Family {
	return families[v]
}

// Parse validates a variant id from user input (CLI --images, generate
// positional args).
func Parse(s string) (Variant, error) {
	v := Variant(s)
	if !v.Known() {
		return "", fmt.Errorf("unknown variant %q (supported: %v)", s, All())
	}
	return v, nil
}
