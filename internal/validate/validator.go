package validate

import (
	"sort"

	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
)

// Namespace labels used in findings and report messages.
const (
	NamespaceChebi = "CHEBI ID"
	NamespaceGO    = "GO term"
	NamespaceEC    = "EC number"
)

// RegistryResult is the outcome of the offline ontology-conformance
// pass.
type RegistryResult struct {
	Findings   []Finding
	Statistics map[string]int
}

// Validator runs the offline passes over an injected registry.
type Validator struct {
	reg *registry.Registry
	idx *IndexSet
}

// New returns a Validator over reg and the loaded reference indexes.
func New(reg *registry.Registry, idx *IndexSet) *Validator {
	return &Validator{reg: reg, idx: idx}
}

// ValidateRegistry checks every chemical ontology ID, EC number, and
// GO term the registry carries against the local reference indexes.
// Each distinct identifier is checked once; rows are walked in sorted
// order so the findings list is stable across runs.
func (v *Validator) ValidateRegistry() RegistryResult {
	c := newChecker(v.idx)
	stats := map[string]int{}

	for _, row := range v.reg.SubstrateRows() {
		stats["substrates_total"]++
		if row.Substrate.ChebiID == "" {
			stats["substrates_no_chebi"]++
			continue
		}
		c.chebi(row.Substrate.ChebiID)
	}

	for _, row := range v.reg.OverrideRows() {
		if row.Override.ChebiID != "" {
			c.chebi(row.Override.ChebiID)
		}
		if row.Override.EC != "" {
			c.ec(row.Override.EC)
		}
	}

	for _, row := range v.reg.AnnotationRows() {
		stats["enzymes_total"]++
		if row.Annotation.ECNumber == "" {
			stats["enzymes_no_ec"]++
		} else {
			c.ec(row.Annotation.ECNumber)
		}
		if len(row.Annotation.GOTerms) == 0 {
			stats["enzymes_no_go"]++
		}
		for _, goTerm := range row.Annotation.GOTerms {
			c.goTerm(goTerm)
		}
		if row.Annotation.KeggKO == "" {
			stats["enzymes_no_kegg"]++
		}
	}

	for _, fb := range v.reg.GOFallbackRows() {
		c.goTerm(fb.GOID)
	}

	for key, n := range c.stats {
		stats[key] = n
	}

	log.Info(log.CatValidate, "registry validation complete",
		"checked", len(c.findings),
		"invalid", stats["chebi_invalid"]+stats["go_invalid"]+stats["ec_invalid"],
		"deprecated", stats["chebi_deprecated"]+stats["go_deprecated"]+stats["ec_deprecated"])
	return RegistryResult{Findings: c.findings, Statistics: stats}
}

// checker deduplicates identifier checks across tables.
type checker struct {
	idx      *IndexSet
	seen     map[string]struct{}
	findings []Finding
	stats    map[string]int
}

func newChecker(idx *IndexSet) *checker {
	return &checker{
		idx:   idx,
		seen:  make(map[string]struct{}),
		stats: make(map[string]int),
	}
}

func (c *checker) chebi(id string) { c.check(NamespaceChebi, "chebi", c.idx.Chebi, id) }
func (c *checker) goTerm(id string) {
	c.check(NamespaceGO, "go", c.idx.GO, id)
}
func (c *checker) ec(id string) { c.check(NamespaceEC, "ec", c.idx.EC, id) }

func (c *checker) check(namespace, statKey string, idx *OntologyIndex, id string) {
	key := namespace + "|" + id
	if _, dup := c.seen[key]; dup {
		return
	}
	c.seen[key] = struct{}{}

	term, ok := idx.Lookup(id)
	switch {
	case !ok:
		c.stats[statKey+"_invalid"]++
		c.findings = append(c.findings, Finding{Namespace: namespace, ID: id, Status: StatusInvalid})
	case term.Deprecated:
		c.stats[statKey+"_deprecated"]++
		c.findings = append(c.findings, Finding{
			Namespace:   namespace,
			ID:          id,
			Status:      StatusDeprecated,
			Name:        term.Name,
			Replacement: term.ReplacedBy,
		})
	default:
		c.stats[statKey+"_valid"]++
		c.findings = append(c.findings, Finding{Namespace: namespace, ID: id, Status: StatusValid, Name: term.Name})
	}
}

// sortFindings orders findings for reporting: namespace, then ID.
func sortFindings(findings []Finding) {
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Namespace != findings[j].Namespace {
			return findings[i].Namespace < findings[j].Namespace
		}
		return findings[i].ID < findings[j].ID
	})
}
