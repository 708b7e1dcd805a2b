// internal/template/interpreter.go
//
// The conditional block interpreter. One shared Dockerfile template is
// rendered once per variant; three marker families control what
// survives:
//
//	{{ .Name }}                          scalar substitution
//	{{- if eq .Base "id" "id" }} ... {{- end }}   OS-family block
//	{{- if .InstallX }} ... {{- end }}            boolean-flag block
//	{{- range .AdditionalPackages }} ... {{- end }}  package expansion
//
// Blocks never nest. A single linear scan turns the template into a
// flat ordered span list, then fixed passes resolve each span kind in
// order: scalars, family blocks, flag blocks (flag declaration order),
// the range block, and a final sweep that strips any marker a malformed
// template left behind. Rendering is a pure function of its inputs;
// concurrent per-variant rendering from the same template text is safe.

package template

import (
	"fmt"
	"regexp"
	"strings"

	"foundry/internal/variant"
)

// UndeclaredVarError is returned when the template references a scalar
// variable the resolver never declared. Flags that are merely false do
// not trigger this; only truly unknown names do.
type UndeclaredVarError struct {
	Name    string
	Variant variant.Variant
}

func (e *UndeclaredVarError) Error() string {
	return fmt.Sprintf("undeclared template variable %q (variant %s)", e.Name, e.Variant)
}

// Per-family install command patterns used by package expansion.
const (
	debianInstall = "RUN apt-get update && apt-get install -y %s && rm -rf /var/lib/apt/lists/*"
	alpineInstall = "RUN apk add --no-cache %s"
)

var (
	scalarRe      = regexp.MustCompile(`\{\{ \.([A-Za-z][A-Za-z0-9]*) \}\}`)
	familyStartRe = regexp.MustCompile(`^\{\{- if eq \$?\.Base ("[^"]+"(?: "[^"]+")*) \}\}$`)
	flagStartRe   = regexp.MustCompile(`^\{\{- if \.([A-Za-z][A-Za-z0-9]*) \}\}$`)
	rangeStartRe  = regexp.MustCompile(`^\{\{- range \.AdditionalPackages \}\}$`)
	endRe         = regexp.MustCompile(`^\{\{- end \}\}$`)

	// Defensive sweep patterns. Prior passes must not rely on these;
	// they only mop up markers from templates the scanner could not
	// pair (e.g. a start with no end).
	sweepRes = []*regexp.Regexp{
		regexp.MustCompile(`\{\{- if [^}]*\}\}\n?`),
		regexp.MustCompile(`\{\{- range [^}]*\}\}\n?`),
		regexp.MustCompile(`\{\{- end \}\}\n?`),
	}
)

type spanKind int

const (
	spanLiteral spanKind = iota
	spanFamily
	spanFlag
	spanRange
)

// span is one region of the template: literal text, or a block with
// its condition. Bodies are stored as raw lines.
type span struct {
	kind     spanKind
	body     []string
	variants []variant.Variant // spanFamily: ids listed in the condition
	flag     string            // spanFlag: variable name
}

// Render resolves the template for one variant. The returned text
// contains no marker syntax of any kind.
func Render(text string, vars VariableSet, v variant.Variant) (string, error) {
	// Pass 1: scalar substitution everywhere, including inside block
	// bodies. An unknown name is fatal for this variant.
	substituted, err := substituteScalars(text, vars, v)
	if err != nil {
		return "", err
	}

	// Single linear scan into a flat span list (blocks never nest).
	spans := scan(strings.Split(substituted, "\n"))

	// Pass 2: OS-family blocks.
	spans = resolveFamilies(spans, v.FamilyOf())

	// Pass 3: flag blocks, in flag declaration order; anything left
	// over references an undeclared flag and defaults to removed.
	spans = resolveFlags(spans, vars)

	// Pass 4: package expansion.
	spans = resolveRanges(spans, v.FamilyOf(), vars.Packages())

	// Pass 5: defensive sweep for unpaired markers.
	return sweep(join(spans)), nil
}

func substituteScalars(text string, vars VariableSet, v variant.Variant) (string, error) {
	var undeclared *UndeclaredVarError
	out := scalarRe.ReplaceAllStringFunc(text, func(m string) string {
		name := scalarRe.FindStringSubmatch(m)[1]
		val, ok := vars.Lookup(name)
		if !ok {
			if undeclared == nil {
				undeclared = &UndeclaredVarError{Name: name, Variant: v}
			}
			return m
		}
		return val
	})
	if undeclared != nil {
		return "", undeclared
	}
	return out, nil
}

// scan walks the template lines once and produces the flat span list.
// A block start with no matching end is kept as a literal line for the
// sweep pass to strip.
func scan(lines []string) []span {
	var spans []span
	var lit []string
	flush := func() {
		if len(lit) > 0 {
			spans = append(spans, span{kind: spanLiteral, body: lit})
			lit = nil
		}
	}

	i := 0
	for i < len(lines) {
		marker := strings.TrimSpace(lines[i])

		var blk span
		switch {
		case familyStartRe.MatchString(marker):
			ids := familyStartRe.FindStringSubmatch(marker)[1]
			blk = span{kind: spanFamily, variants: parseVariantList(ids)}
		case flagStartRe.MatchString(marker):
			blk = span{kind: spanFlag, flag: flagStartRe.FindStringSubmatch(marker)[1]}
		case rangeStartRe.MatchString(marker):
			blk = span{kind: spanRange}
		default:
			lit = append(lit, lines[i])
			i++
			continue
		}

		end := findEnd(lines, i+1)
		if end < 0 {
			// Unpaired start; leave the line for the sweep.
			lit = append(lit, lines[i])
			i++
			continue
		}
		flush()
		blk.body = lines[i+1 : end]
		spans = append(spans, blk)
		i = end + 1
	}
	flush()
	return spans
}

func findEnd(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if endRe.MatchString(strings.TrimSpace(lines[j])) {
			return j
		}
	}
	return -1
}

func parseVariantList(quoted string) []variant.Variant {
	var out []variant.Variant
	for _, f := range strings.Fields(quoted) {
		out = append(out, variant.Variant(strings.Trim(f, `"`)))
	}
	return out
}

// resolveFamilies keeps a family block's body iff any variant id in
// its condition belongs to the current family. Ids outside the known
// set have no family and match nothing.
func resolveFamilies(spans []span, fam variant.Family) []span {
	out := spans[:0]
	for _, s := range spans {
		if s.kind != spanFamily {
			out = append(out, s)
			continue
		}
		if fam != variant.FamilyNone && familyMatches(s.variants, fam) {
			out = append(out, span{kind: spanLiteral, body: s.body})
		}
	}
	return out
}

func familyMatches(ids []variant.Variant, fam variant.Family) bool {
	for _, id := range ids {
		if id.FamilyOf() == fam {
			return true
		}
	}
	return false
}

// resolveFlags walks declared flags in order, then drops any flag
// block whose variable was never declared (absent means false).
func resolveFlags(spans []span, vars VariableSet) []span {
	for _, name := range vars.Flags() {
		keep := vars.IsTrue(name)
		next := spans[:0]
		for _, s := range spans {
			if s.kind != spanFlag || s.flag != name {
				next = append(next, s)
				continue
			}
			if keep {
				next = append(next, span{kind: spanLiteral, body: s.body})
			}
		}
		spans = next
	}
	next := spans[:0]
	for _, s := range spans {
		if s.kind == spanFlag {
			continue
		}
		next = append(next, s)
	}
	return next
}

// resolveRanges expands each range block into one install line per
// package, in the current family's command syntax. The block body in
// the template is superseded by the generated lines; an empty package
// list contributes no lines at all.
func resolveRanges(spans []span, fam variant.Family, packages []string) []span {
	out := spans[:0]
	for _, s := range spans {
		if s.kind != spanRange {
			out = append(out, s)
			continue
		}
		lines := installLines(fam, packages)
		if len(lines) > 0 {
			out = append(out, span{kind: spanLiteral, body: lines})
		}
	}
	return out
}

func installLines(fam variant.Family, packages []string) []string {
	var pattern string
	switch fam {
	case variant.FamilyDebian:
		pattern = debianInstall
	case variant.FamilyAlpine:
		pattern = alpineInstall
	default:
		return nil
	}
	lines := make([]string, 0, len(packages))
	for _, p := range packages {
		lines = append(lines, fmt.Sprintf(pattern, p))
	}
	return lines
}

func join(spans []span) string {
	var lines []string
	for _, s := range spans {
		lines = append(lines, s.body...)
	}
	return strings.Join(lines, "\n")
}

func sweep(text string) string {
	for _, re := range sweepRes {
		text = re.ReplaceAllString(text, "")
	}
	return text
}
