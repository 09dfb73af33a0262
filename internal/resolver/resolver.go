// Package resolver turns (kit, well code) pairs into annotation
// bundles by walking the curated tables in precedence order. The kit
// override table is consulted first and replaces the global tables
// outright when it hits; after that the global tables are probed
// substrate first, then the two enzyme tables, then the phenotypic
// table. A code no table knows lands in the terminal unclassified
// state, which is a documented outcome and never an error.
package resolver

import (
	"fmt"

	"github.com/CultureBotAI/assay-metadata/internal/assay"
	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
)

// Table names recorded in provenance.
const (
	TableKitOverride    = "kit_override"
	TableSubstrate      = "substrate"
	TablePrimaryEnzyme  = "primary_enzyme"
	TableExtendedEnzyme = "extended_enzyme"
	TablePhenotypic     = "phenotypic"
)

// Resolver resolves well codes against an injected registry.
type Resolver struct {
	reg *registry.Registry
}

// New returns a Resolver over reg.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve classifies one well code in the context of a kit. An empty
// code after trimming is a contract violation; every other input
// resolves, falling through to an unclassified bundle when no table
// matches. Unknown kits simply skip the override probe.
func (r *Resolver) Resolve(kit assay.KitName, code assay.WellCode) (assay.Resolution, error) {
	if assay.Normalize(code) == "" {
		return assay.Resolution{}, fmt.Errorf("resolve %q: %w", code, assay.ErrEmptyCode)
	}

	if o, match, ok := r.reg.Override(kit, code); ok {
		return assay.Resolution{
			Code:       code,
			Kit:        kit,
			Bundle:     r.overrideBundle(code, o),
			Provenance: assay.Provenance{Table: TableKitOverride, Match: match},
		}, nil
	}

	if s, match, ok := r.reg.Substrate(code); ok {
		return assay.Resolution{
			Code:       code,
			Kit:        kit,
			Bundle:     substrateBundle(s),
			Provenance: assay.Provenance{Table: TableSubstrate, Match: match},
		}, nil
	}

	if name, match, ok := r.reg.PrimaryEnzyme(code); ok {
		return assay.Resolution{
			Code:       code,
			Kit:        kit,
			Bundle:     r.enzymeBundle(code, name, ""),
			Provenance: assay.Provenance{Table: TablePrimaryEnzyme, Match: match},
		}, nil
	}

	if name, match, ok := r.reg.ExtendedEnzyme(code); ok {
		return assay.Resolution{
			Code:       code,
			Kit:        kit,
			Bundle:     r.enzymeBundle(code, name, ""),
			Provenance: assay.Provenance{Table: TableExtendedEnzyme, Match: match},
		}, nil
	}

	if name, match, ok := r.reg.Phenotypic(code); ok {
		return assay.Resolution{
			Code:       code,
			Kit:        kit,
			Bundle:     phenotypicBundle(name),
			Provenance: assay.Provenance{Table: TablePhenotypic, Match: match},
		}, nil
	}

	log.Debug(log.CatResolve, "unclassified well code", "kit", kit, "code", code)
	return assay.Resolution{
		Code:   code,
		Kit:    kit,
		Bundle: assay.Unresolved(code),
	}, nil
}

// overrideBundle materializes a kit-scoped entry. Overrides are full
// replacements: nothing from the global tables leaks in.
func (r *Resolver) overrideBundle(code assay.WellCode, o registry.Override) assay.AnnotationBundle {
	switch {
	case o.Control:
		return phenotypicBundle(o.Name)
	case o.Enzymatic():
		return r.enzymeBundle(code, o.Name, o.EC)
	default:
		return substrateBundle(registry.Substrate{
			Name:    o.Name,
			ChebiID: o.ChebiID,
			Pubchem: o.Pubchem,
		})
	}
}

func substrateBundle(s registry.Substrate) assay.AnnotationBundle {
	return assay.AnnotationBundle{
		DisplayName: s.Name,
		Category:    assay.CategorySubstrate,
		Description: "Tests for utilization/fermentation of " + s.Name,
		Chemical: &assay.ChemicalIdentifiers{
			ChebiID:     s.ChebiID,
			ChebiName:   s.Name,
			PubchemCID:  s.Pubchem,
			PubchemName: s.Name,
		},
	}
}

func (r *Resolver) enzymeBundle(code assay.WellCode, name, ecHint string) assay.AnnotationBundle {
	return assay.AnnotationBundle{
		DisplayName: name,
		Category:    assay.CategoryEnzyme,
		Description: "Tests for " + name + " activity",
		Enzyme:      r.Enrich(code, name, ecHint),
	}
}

func phenotypicBundle(name string) assay.AnnotationBundle {
	return assay.AnnotationBundle{
		DisplayName: name,
		Category:    assay.CategoryPhenotypic,
		Description: "Phenotypic test: " + name,
	}
}
