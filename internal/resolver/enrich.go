package resolver

import (
	"github.com/CultureBotAI/assay-metadata/internal/assay"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
)

// Enrich builds the identifier set for a canonical enzyme name. The EC
// lookup and the functional-annotation lookup are independent: either
// may miss without disturbing the other. Precedence for the EC number
// is annotation row, then the EC tables, then the caller's hint (kit
// overrides carry their own EC). When no EC can be assigned at all and
// the code sits in the GO fallback table, the fallback GO term stands
// in. The function is pure, so re-enriching an already enriched name
// yields the same identifiers.
func (r *Resolver) Enrich(code assay.WellCode, name, ecHint string) *assay.EnzymeIdentifiers {
	ids := &assay.EnzymeIdentifiers{EnzymeName: name}

	var ann registry.Annotation
	annotated := false
	if a, ok := r.reg.Annotation(name); ok {
		ann = a
		annotated = true
	}

	tableEC, _ := r.reg.ECNumber(name)

	switch {
	case annotated && ann.ECNumber != "":
		ids.ECNumber = ann.ECNumber
	case tableEC != "":
		ids.ECNumber = tableEC
	default:
		ids.ECNumber = ecHint
	}

	if annotated {
		ids.GOTerms = append(ids.GOTerms, ann.GOTerms...)
		ids.GONames = append(ids.GONames, ann.GONames...)
		ids.KeggKO = ann.KeggKO
	}

	if ids.ECNumber == "" && len(ids.GOTerms) == 0 {
		if g, ok := r.reg.GOFallback(code); ok {
			ids.GOTerms = []string{g.GOID}
			ids.GONames = []string{g.GOName}
		}
	}

	return ids
}
