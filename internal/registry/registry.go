// Package registry holds the curated annotation tables and the lookup
// machinery over them. Tables are keyed by raw well code; every lookup
// tries the exact spelling first and falls back to the normalized
// spelling only when the exact probe misses.
package registry

import (
	"sort"

	"github.com/CultureBotAI/assay-metadata/internal/assay"
)

// Substrate is one row of the chemical table.
type Substrate struct {
	Name    string
	ChebiID string
	Pubchem string
}

// Override is a kit-scoped entry that replaces the global tables for a
// code when the kit matches. An override is either chemical (ChebiID
// set), enzymatic (EC set), or a control well.
type Override struct {
	Name      string
	ChebiID   string
	Pubchem   string
	EC        string
	Substrate string
	Control   bool
}

// Enzymatic reports whether the override describes an enzyme test
// rather than a chemical or control well.
func (o Override) Enzymatic() bool {
	return o.EC != "" || o.Substrate != ""
}

// Annotation is one row of the functional annotation table.
type Annotation struct {
	GOTerms  []string
	GONames  []string
	KeggKO   string
	ECNumber string
}

// GOFallback is a GO assignment for tests that cannot carry an EC
// number, with the curator's reason recorded alongside.
type GOFallback struct {
	GOID   string
	GOName string
	Reason string
}

// Kit is one row of the kit catalog.
type Kit struct {
	Name        assay.KitName
	Description string
	Category    string
}

// table wraps an exact-keyed map with a normalized-spelling index.
// The normalized index is built once, walking keys in sorted order so
// collisions resolve the same way on every run.
type table[V any] struct {
	exact      map[assay.WellCode]V
	normalized map[assay.WellCode]assay.WellCode
}

func newTable[V any](m map[assay.WellCode]V) table[V] {
	keys := make([]assay.WellCode, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	norm := make(map[assay.WellCode]assay.WellCode, len(m))
	for _, k := range keys {
		nk := assay.Normalize(k)
		if nk == "" {
			continue
		}
		if _, taken := norm[nk]; !taken {
			norm[nk] = k
		}
	}
	return table[V]{exact: m, normalized: norm}
}

// lookup probes the exact map first, then the normalized index.
func (t table[V]) lookup(code assay.WellCode) (V, assay.MatchKind, bool) {
	if v, ok := t.exact[code]; ok {
		return v, assay.MatchExact, true
	}
	if canonical, ok := t.normalized[assay.Normalize(code)]; ok {
		return t.exact[canonical], assay.MatchNormalized, true
	}
	var zero V
	return zero, assay.MatchNone, false
}

// Registry bundles every curated table behind typed lookups.
type Registry struct {
	substrates   table[Substrate]
	overrides    map[assay.KitName]table[Override]
	primary      table[string]
	extended     table[string]
	phenotypic   table[string]
	ecExact      map[string]string
	ecPartial    map[string]string
	annotations  map[string]Annotation
	goFallback   table[GOFallback]
	descriptions map[assay.KitName]string
	categories   map[assay.KitName]string
}

// Default builds a Registry over the built-in curated tables.
func Default() *Registry {
	overrides := make(map[assay.KitName]table[Override], len(kitOverrides))
	for kit, m := range kitOverrides {
		overrides[kit] = newTable(m)
	}
	return &Registry{
		substrates:   newTable(substrates),
		overrides:    overrides,
		primary:      newTable(primaryEnzymeTests),
		extended:     newTable(extendedEnzymeTests),
		phenotypic:   newTable(phenotypicTests),
		ecExact:      enzymeECNumbers,
		ecPartial:    partialECNumbers,
		annotations:  enzymeAnnotations,
		goFallback:   newTable(goTermFallbacks),
		descriptions: kitDescriptions,
		categories:   kitCategories,
	}
}

// Override returns the kit-scoped entry for code, if the kit carries one.
func (r *Registry) Override(kit assay.KitName, code assay.WellCode) (Override, assay.MatchKind, bool) {
	t, ok := r.overrides[kit]
	if !ok {
		return Override{}, assay.MatchNone, false
	}
	return t.lookup(code)
}

// Substrate returns the chemical table row for code.
func (r *Registry) Substrate(code assay.WellCode) (Substrate, assay.MatchKind, bool) {
	return r.substrates.lookup(code)
}

// PrimaryEnzyme returns the canonical enzyme name for a primary enzyme
// test code.
func (r *Registry) PrimaryEnzyme(code assay.WellCode) (string, assay.MatchKind, bool) {
	return r.primary.lookup(code)
}

// ExtendedEnzyme returns the canonical enzyme name for an extended
// enzyme activity test code.
func (r *Registry) ExtendedEnzyme(code assay.WellCode) (string, assay.MatchKind, bool) {
	return r.extended.lookup(code)
}

// Phenotypic returns the descriptive name for a phenotypic test code.
func (r *Registry) Phenotypic(code assay.WellCode) (string, assay.MatchKind, bool) {
	return r.phenotypic.lookup(code)
}

// ECNumber resolves an enzyme name to an EC number: complete numbers
// from the exact table win over family-level wildcards.
func (r *Registry) ECNumber(name string) (string, bool) {
	if ec, ok := r.ecExact[name]; ok {
		return ec, true
	}
	if ec, ok := r.ecPartial[name]; ok {
		return ec, true
	}
	return "", false
}

// Annotation returns the functional annotation row for an enzyme name.
func (r *Registry) Annotation(name string) (Annotation, bool) {
	a, ok := r.annotations[name]
	return a, ok
}

// GOFallback returns the GO assignment for codes whose activity cannot
// carry an EC number.
func (r *Registry) GOFallback(code assay.WellCode) (GOFallback, bool) {
	g, _, ok := r.goFallback.lookup(code)
	return g, ok
}

// Kit returns catalog data for a kit name. Unknown kits get an empty
// description and category, not an error: snapshots routinely carry
// kits the catalog has never seen.
func (r *Registry) Kit(name assay.KitName) Kit {
	return Kit{
		Name:        name,
		Description: r.descriptions[name],
		Category:    r.categories[name],
	}
}

// SubstrateRow pairs a well code with its substrate entry.
type SubstrateRow struct {
	Code      assay.WellCode
	Substrate Substrate
}

// SubstrateRows returns every substrate entry sorted by code.
func (r *Registry) SubstrateRows() []SubstrateRow {
	rows := make([]SubstrateRow, 0, len(r.substrates.exact))
	for code, s := range r.substrates.exact {
		rows = append(rows, SubstrateRow{Code: code, Substrate: s})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })
	return rows
}

// OverrideRow pairs a kit and code with the override entry.
type OverrideRow struct {
	Kit      assay.KitName
	Code     assay.WellCode
	Override Override
}

// OverrideRows returns every kit override sorted by kit, then code.
func (r *Registry) OverrideRows() []OverrideRow {
	var rows []OverrideRow
	for kit, t := range r.overrides {
		for code, o := range t.exact {
			rows = append(rows, OverrideRow{Kit: kit, Code: code, Override: o})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Kit != rows[j].Kit {
			return rows[i].Kit < rows[j].Kit
		}
		return rows[i].Code < rows[j].Code
	})
	return rows
}

// AnnotationRow pairs a canonical enzyme name with its annotation.
type AnnotationRow struct {
	Name       string
	Annotation Annotation
}

// AnnotationRows returns every functional annotation sorted by name.
func (r *Registry) AnnotationRows() []AnnotationRow {
	rows := make([]AnnotationRow, 0, len(r.annotations))
	for name, a := range r.annotations {
		rows = append(rows, AnnotationRow{Name: name, Annotation: a})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// GOFallbackRows returns every GO fallback entry sorted by code.
func (r *Registry) GOFallbackRows() []GOFallback {
	codes := make([]assay.WellCode, 0, len(r.goFallback.exact))
	for code := range r.goFallback.exact {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	rows := make([]GOFallback, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, r.goFallback.exact[code])
	}
	return rows
}

// Kits returns the full kit catalog sorted by name.
func (r *Registry) Kits() []Kit {
	names := make([]assay.KitName, 0, len(r.descriptions))
	for name := range r.descriptions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	kits := make([]Kit, 0, len(names))
	for _, name := range names {
		kits = append(kits, r.Kit(name))
	}
	return kits
}
