// Package assay defines the core domain types for well-code annotation:
// well codes, kit names, categories, identifier bundles, and the records
// produced by aggregation.
package assay

import (
	"errors"
	"strings"
)

// Domain errors
var (
	// ErrEmptyCode is returned when a caller passes an empty or
	// whitespace-only well code. Unknown codes are not errors; empty
	// codes are a contract violation.
	ErrEmptyCode = errors.New("well code must not be empty")
)

// WellCode identifies one test position on an assay strip, e.g. "GLU" or
// "ADH Arg". Codes are case- and whitespace-sensitive as stored; the same
// textual code may mean different things in different kits.
type WellCode string

// KitName identifies an assay kit variant, e.g. "API 20E". The set of kits
// is open: unknown kits degrade to unclassified resolution, never to an
// error.
type KitName string

// Category classifies what a well tests for. Exactly one category holds for
// every resolved well.
type Category string

const (
	// CategorySubstrate marks a chemical-substrate utilization test.
	CategorySubstrate Category = "substrate"
	// CategoryEnzyme marks an enzyme-activity test.
	CategoryEnzyme Category = "enzyme"
	// CategoryPhenotypic marks an observational test with no chemical or
	// enzyme identity (motility, Gram stain, resistance, ...).
	CategoryPhenotypic Category = "phenotypic"
	// CategoryUnclassified is the terminal state for codes no table knows.
	CategoryUnclassified Category = "unclassified"
)

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySubstrate, CategoryEnzyme, CategoryPhenotypic, CategoryUnclassified:
		return true
	}
	return false
}

// Normalize returns the deterministic fallback spelling of a well code:
// uppercase with everything but A-Z and 0-9 removed. It is only consulted
// after exact matching fails, and hits through it are flagged in provenance
// so audits can tell them apart from exact hits.
func Normalize(code WellCode) WellCode {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range strings.ToUpper(strings.TrimSpace(string(code))) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return WellCode(b.String())
}
