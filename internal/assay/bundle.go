package assay

// ChemicalIdentifiers carries cross-references for a substrate well.
// InChI and SMILES are reserved: no curated entry populates them yet, but
// they are part of the output contract.
type ChemicalIdentifiers struct {
	ChebiID     string `json:"chebi_id,omitempty"`
	ChebiName   string `json:"chebi_name,omitempty"`
	PubchemCID  string `json:"pubchem_cid,omitempty"`
	PubchemName string `json:"pubchem_name,omitempty"`
	InChI       string `json:"inchi,omitempty"`
	SMILES      string `json:"smiles,omitempty"`
}

// Empty reports whether no chemical identifier is populated.
func (c ChemicalIdentifiers) Empty() bool {
	return c == ChemicalIdentifiers{}
}

// EnzymeIdentifiers carries cross-references for an enzyme well.
// GOTerms and GONames are parallel arrays: GONames[i] names GOTerms[i].
// RheaIDs, KeggReaction, MetacycReaction and MetacycPathways are reserved
// fields, always empty in the curated set.
type EnzymeIdentifiers struct {
	EnzymeName string `json:"enzyme_name,omitempty"`
	// ECNumber is a dotted 4-part classification; trailing parts may be
	// wildcarded for family-level assignments, e.g. "3.5.-.-".
	ECNumber string   `json:"ec_number,omitempty"`
	ECName   string   `json:"ec_name,omitempty"`
	GOTerms  []string `json:"go_terms,omitempty"`
	GONames  []string `json:"go_names,omitempty"`
	KeggKO   string   `json:"kegg_ko,omitempty"`

	RheaIDs         []string `json:"rhea_ids,omitempty"`
	KeggReaction    string   `json:"kegg_reaction,omitempty"`
	MetacycReaction string   `json:"metacyc_reaction,omitempty"`
	MetacycPathways []string `json:"metacyc_pathway,omitempty"`
}

// Empty reports whether no enzyme identifier is populated.
func (e EnzymeIdentifiers) Empty() bool {
	return e.EnzymeName == "" && e.ECNumber == "" && e.ECName == "" &&
		len(e.GOTerms) == 0 && len(e.GONames) == 0 && e.KeggKO == "" &&
		len(e.RheaIDs) == 0 && e.KeggReaction == "" &&
		e.MetacycReaction == "" && len(e.MetacycPathways) == 0
}

// AnnotationBundle is the resolved output for one (kit, code) pair.
//
// Invariant: exactly one Category is set. Substrate bundles may carry
// chemical identifiers and never enzyme identifiers; enzyme bundles carry at
// least an enzyme name and never chemical identifiers; phenotypic and
// unclassified bundles carry only a display name.
type AnnotationBundle struct {
	DisplayName string               `json:"label"`
	Category    Category             `json:"category"`
	Description string               `json:"description,omitempty"`
	Chemical    *ChemicalIdentifiers `json:"chemical_ids,omitempty"`
	Enzyme      *EnzymeIdentifiers   `json:"enzyme_ids,omitempty"`
}

// Unresolved builds the terminal bundle for a code no table knows: the raw
// code doubles as the display name and all identifier fields stay empty.
func Unresolved(code WellCode) AnnotationBundle {
	return AnnotationBundle{
		DisplayName: string(code),
		Category:    CategoryUnclassified,
		Description: "Biochemical test: " + string(code),
	}
}

// ConsistentWithCategory reports whether the populated identifier fields
// respect the category invariant.
func (b AnnotationBundle) ConsistentWithCategory() bool {
	switch b.Category {
	case CategorySubstrate:
		return b.Enzyme == nil
	case CategoryEnzyme:
		return b.Chemical == nil && b.Enzyme != nil && !b.Enzyme.Empty()
	case CategoryPhenotypic, CategoryUnclassified:
		return b.Chemical == nil && b.Enzyme == nil
	}
	return false
}
