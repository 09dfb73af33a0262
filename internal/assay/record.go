package assay

// MatchKind records how a registry lookup landed, for audit trails.
type MatchKind int

const (
	// MatchNone means no table matched at all.
	MatchNone MatchKind = iota
	// MatchExact means the raw code matched a table key byte-for-byte.
	MatchExact
	// MatchNormalized means only the normalized fallback spelling matched.
	MatchNormalized
)

// String returns a human-readable representation of the MatchKind.
func (m MatchKind) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchNormalized:
		return "normalized"
	default:
		return "none"
	}
}

// Provenance describes which table produced a resolution and whether the hit
// was exact or went through the normalization fallback.
type Provenance struct {
	Table string    `json:"table,omitempty"`
	Match MatchKind `json:"-"`
}

// Resolution pairs a bundle with the provenance of the lookup that built it.
type Resolution struct {
	Code       WellCode
	Kit        KitName
	Bundle     AnnotationBundle
	Provenance Provenance
}

// Unclassified reports whether the resolution landed in the terminal
// unclassified state.
func (r Resolution) Unclassified() bool {
	return r.Bundle.Category == CategoryUnclassified
}

// ResolutionRecord is the per-code output of aggregation: the bundle
// resolved for each kit the code was seen in, plus the deduplicated,
// sorted list of those kits. Written once during aggregation, never
// mutated afterwards.
type ResolutionRecord struct {
	Code WellCode
	// PerKit preserves kit-specific fidelity: when a kit override fires
	// for one kit only, the differing bundles live side by side here.
	PerKit map[KitName]AnnotationBundle
	// UsedInKits is sorted and duplicate-free.
	UsedInKits []KitName
}

// Representative returns the bundle for the first kit in UsedInKits order.
// The deduplicated output view uses it; callers needing kit fidelity must
// read PerKit instead.
func (r ResolutionRecord) Representative() AnnotationBundle {
	if len(r.UsedInKits) == 0 {
		return Unresolved(r.Code)
	}
	return r.PerKit[r.UsedInKits[0]]
}
