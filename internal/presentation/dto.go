// Package presentation converts aggregation results into the output
// document schemas and writes them as JSON. The flat per-kit view is a
// serialization concern only: every bundle field becomes an array so
// downstream consumers never special-case scalar versus list, while the
// in-memory types stay strongly typed.
package presentation

import (
	"github.com/CultureBotAI/assay-metadata/internal/aggregate"
	"github.com/CultureBotAI/assay-metadata/internal/assay"
)

// WellDTO is one entry in the deduplicated wells map.
type WellDTO struct {
	Code        assay.WellCode             `json:"code"`
	Label       string                     `json:"label"`
	Category    assay.Category             `json:"category"`
	Description string                     `json:"description,omitempty"`
	Chemical    *assay.ChemicalIdentifiers `json:"chemical_ids,omitempty"`
	Enzyme      *assay.EnzymeIdentifiers   `json:"enzyme_ids,omitempty"`
	UsedInKits  []assay.KitName            `json:"used_in_kits"`
}

// StandardDocument is the consolidated deduplicated output. The wells
// map carries one representative bundle per code; kit-specific
// overrides that differentiate a code across kits are only visible in
// the simplified per-kit document.
type StandardDocument struct {
	Kits       []aggregate.KitMetadata            `json:"api_kits"`
	Wells      map[assay.WellCode]WellDTO         `json:"wells"`
	Enzymes    map[string]assay.EnzymeIdentifiers `json:"enzymes"`
	Statistics aggregate.Statistics               `json:"statistics"`
}

// KitListDocument is the api_kits_list.json summary.
type KitListDocument struct {
	TotalKits int                     `json:"total_kits"`
	Kits      []aggregate.KitMetadata `json:"kits"`
}

// KitFileDocument is one per-kit file written under kits/ when
// splitting is requested. Wells carry that kit's own resolution.
type KitFileDocument struct {
	Kit   aggregate.KitMetadata      `json:"kit"`
	Wells map[assay.WellCode]WellDTO `json:"wells"`
}

// FlatWellDTO is one well entry in the simplified per-kit document.
// Every field except the code itself is an array: scalars wrap into a
// one-element list, absences become an empty list.
type FlatWellDTO struct {
	Name            assay.WellCode `json:"name"`
	Label           []string       `json:"label"`
	Type            []string       `json:"type"`
	Description     []string       `json:"description"`
	ChebiID         []string       `json:"chebi_id"`
	ChebiName       []string       `json:"chebi_name"`
	PubchemCID      []string       `json:"pubchem_cid"`
	PubchemName     []string       `json:"pubchem_name"`
	InChI           []string       `json:"inchi"`
	SMILES          []string       `json:"smiles"`
	EnzymeName      []string       `json:"enzyme_name"`
	ECNumber        []string       `json:"ec_number"`
	ECName          []string       `json:"ec_name"`
	GOTerms         []string       `json:"go_terms"`
	GONames         []string       `json:"go_names"`
	KeggKO          []string       `json:"kegg_ko"`
	KeggReaction    []string       `json:"kegg_reaction"`
	RheaIDs         []string       `json:"rhea_ids"`
	MetacycReaction []string       `json:"metacyc_reaction"`
	MetacycPathways []string       `json:"metacyc_pathway"`
}

// FlatKitDTO is one kit in the simplified document, carrying its own
// well entries so a code shared across kits appears once per kit.
type FlatKitDTO struct {
	KitName         assay.KitName `json:"kit_name"`
	Description     string        `json:"description"`
	Category        string        `json:"category"`
	WellCount       int           `json:"well_count"`
	OccurrenceCount int           `json:"occurrence_count"`
	Wells           []FlatWellDTO `json:"wells"`
}

// SimplifiedDocument is the flat all-lists per-kit output.
type SimplifiedDocument struct {
	APIKits []FlatKitDTO `json:"api_kits"`
}

// ReportSummary closes a validation report.
type ReportSummary struct {
	TotalErrors   int  `json:"total_errors"`
	TotalWarnings int  `json:"total_warnings"`
	Valid         bool `json:"valid"`
}

// ReportDTO is the validation report schema shared by all validation
// commands. RunID distinguishes reports from repeat runs over the same
// inputs.
type ReportDTO struct {
	RunID      string         `json:"run_id"`
	Statistics map[string]int `json:"statistics"`
	Errors     []string       `json:"errors"`
	Warnings   []string       `json:"warnings"`
	Summary    ReportSummary  `json:"summary"`
}

// FromResult assembles the deduplicated standard document.
func FromResult(result *aggregate.Result) StandardDocument {
	wells := make(map[assay.WellCode]WellDTO, len(result.Wells))
	for code, rec := range result.Wells {
		wells[code] = wellDTO(code, rec.Representative(), rec.UsedInKits)
	}
	return StandardDocument{
		Kits:       result.Kits,
		Wells:      wells,
		Enzymes:    result.Enzymes,
		Statistics: result.Statistics,
	}
}

// KitList assembles the api_kits_list.json summary.
func KitList(result *aggregate.Result) KitListDocument {
	return KitListDocument{TotalKits: len(result.Kits), Kits: result.Kits}
}

// KitFile assembles one per-kit file document using the kit's own
// resolutions rather than the representative bundles.
func KitFile(result *aggregate.Result, kit aggregate.KitMetadata) KitFileDocument {
	wells := make(map[assay.WellCode]WellDTO, len(kit.Wells))
	for _, code := range kit.Wells {
		rec, ok := result.Wells[code]
		if !ok {
			continue
		}
		bundle, ok := rec.PerKit[kit.Name]
		if !ok {
			bundle = rec.Representative()
		}
		wells[code] = wellDTO(code, bundle, rec.UsedInKits)
	}
	return KitFileDocument{Kit: kit, Wells: wells}
}

// Simplified assembles the flat per-kit document.
func Simplified(result *aggregate.Result) SimplifiedDocument {
	doc := SimplifiedDocument{APIKits: make([]FlatKitDTO, 0, len(result.Kits))}
	for _, kit := range result.Kits {
		flat := FlatKitDTO{
			KitName:         kit.Name,
			Description:     kit.Description,
			Category:        kit.Category,
			WellCount:       kit.WellCount,
			OccurrenceCount: kit.OccurrenceCount,
			Wells:           make([]FlatWellDTO, 0, len(kit.Wells)),
		}
		for _, code := range kit.Wells {
			rec, ok := result.Wells[code]
			if !ok {
				continue
			}
			bundle, ok := rec.PerKit[kit.Name]
			if !ok {
				bundle = rec.Representative()
			}
			flat.Wells = append(flat.Wells, flatWellDTO(code, bundle))
		}
		doc.APIKits = append(doc.APIKits, flat)
	}
	return doc
}

func wellDTO(code assay.WellCode, bundle assay.AnnotationBundle, usedIn []assay.KitName) WellDTO {
	if usedIn == nil {
		usedIn = []assay.KitName{}
	}
	return WellDTO{
		Code:        code,
		Label:       bundle.DisplayName,
		Category:    bundle.Category,
		Description: bundle.Description,
		Chemical:    bundle.Chemical,
		Enzyme:      bundle.Enzyme,
		UsedInKits:  usedIn,
	}
}

func flatWellDTO(code assay.WellCode, bundle assay.AnnotationBundle) FlatWellDTO {
	entry := FlatWellDTO{
		Name:            code,
		Label:           wrap(bundle.DisplayName),
		Type:            wrap(string(bundle.Category)),
		Description:     wrap(bundle.Description),
		ChebiID:         []string{},
		ChebiName:       []string{},
		PubchemCID:      []string{},
		PubchemName:     []string{},
		InChI:           []string{},
		SMILES:          []string{},
		EnzymeName:      []string{},
		ECNumber:        []string{},
		ECName:          []string{},
		GOTerms:         []string{},
		GONames:         []string{},
		KeggKO:          []string{},
		KeggReaction:    []string{},
		RheaIDs:         []string{},
		MetacycReaction: []string{},
		MetacycPathways: []string{},
	}
	if chem := bundle.Chemical; chem != nil {
		entry.ChebiID = wrap(chem.ChebiID)
		entry.ChebiName = wrap(chem.ChebiName)
		entry.PubchemCID = wrap(chem.PubchemCID)
		entry.PubchemName = wrap(chem.PubchemName)
		entry.InChI = wrap(chem.InChI)
		entry.SMILES = wrap(chem.SMILES)
	}
	if enz := bundle.Enzyme; enz != nil {
		entry.EnzymeName = wrap(enz.EnzymeName)
		entry.ECNumber = wrap(enz.ECNumber)
		entry.ECName = wrap(enz.ECName)
		entry.GOTerms = list(enz.GOTerms)
		entry.GONames = list(enz.GONames)
		entry.KeggKO = wrap(enz.KeggKO)
		entry.KeggReaction = wrap(enz.KeggReaction)
		entry.RheaIDs = list(enz.RheaIDs)
		entry.MetacycReaction = wrap(enz.MetacycReaction)
		entry.MetacycPathways = list(enz.MetacycPathways)
	}
	return entry
}

func wrap(s string) []string {
	if s == "" {
		return []string{}
	}
	return []string{s}
}

func list(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
