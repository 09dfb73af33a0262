package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CultureBotAI/assay-metadata/internal/assay"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
)

func newResolver() *Resolver {
	return New(registry.Default())
}

func TestResolveEmptyCode(t *testing.T) {
	r := newResolver()

	_, err := r.Resolve("API 20E", "")
	require.ErrorIs(t, err, assay.ErrEmptyCode)

	_, err = r.Resolve("API 20E", "  --  ")
	require.ErrorIs(t, err, assay.ErrEmptyCode)
}

func TestResolveSubstrate(t *testing.T) {
	r := newResolver()

	res, err := r.Resolve("API 50CHac", "GLU")
	require.NoError(t, err)
	require.Equal(t, assay.CategorySubstrate, res.Bundle.Category)
	require.Equal(t, "D-Glucose", res.Bundle.DisplayName)
	require.Equal(t, "Tests for utilization/fermentation of D-Glucose", res.Bundle.Description)
	require.NotNil(t, res.Bundle.Chemical)
	require.Equal(t, "CHEBI:17234", res.Bundle.Chemical.ChebiID)
	require.Equal(t, "5793", res.Bundle.Chemical.PubchemCID)
	require.Nil(t, res.Bundle.Enzyme)
	require.Equal(t, TableSubstrate, res.Provenance.Table)
	require.True(t, res.Bundle.ConsistentWithCategory())
}

func TestResolveKitOverridePrecedence(t *testing.T) {
	r := newResolver()

	// The same code lands on different chemicals depending on the kit
	e, err := r.Resolve("API 20E", "MAN")
	require.NoError(t, err)
	require.Equal(t, "D-Mannose", e.Bundle.DisplayName)
	require.Equal(t, "CHEBI:4208", e.Bundle.Chemical.ChebiID)
	require.Equal(t, TableKitOverride, e.Provenance.Table)

	ne, err := r.Resolve("API 20NE", "MAN")
	require.NoError(t, err)
	require.Equal(t, "D-Mannitol", ne.Bundle.DisplayName)
	require.Equal(t, "CHEBI:16899", ne.Bundle.Chemical.ChebiID)

	// Without a kit carrying overrides the global table answers
	global, err := r.Resolve("API 50CHas", "MAN")
	require.NoError(t, err)
	require.Equal(t, "D-Mannitol", global.Bundle.DisplayName)
	require.Equal(t, TableSubstrate, global.Provenance.Table)
}

func TestResolveOverrideIsFullReplacement(t *testing.T) {
	r := newResolver()

	// ONPG globally resolves through the primary enzyme table; in
	// API 20E the override describes the enzyme itself and nothing of
	// the global rows may leak through
	res, err := r.Resolve("API 20E", "ONPG")
	require.NoError(t, err)
	require.Equal(t, assay.CategoryEnzyme, res.Bundle.Category)
	require.Equal(t, "β-galactosidase", res.Bundle.DisplayName)
	require.Nil(t, res.Bundle.Chemical)
	require.NotNil(t, res.Bundle.Enzyme)
	require.Equal(t, "β-galactosidase", res.Bundle.Enzyme.EnzymeName)
	require.Equal(t, TableKitOverride, res.Provenance.Table)
}

func TestResolveControlOverride(t *testing.T) {
	r := newResolver()

	res, err := r.Resolve("API zym", "Control")
	require.NoError(t, err)
	require.Equal(t, assay.CategoryPhenotypic, res.Bundle.Category)
	require.Equal(t, "Negative control", res.Bundle.DisplayName)
	require.Nil(t, res.Bundle.Chemical)
	require.Nil(t, res.Bundle.Enzyme)
}

func TestResolvePrimaryEnzyme(t *testing.T) {
	r := newResolver()

	res, err := r.Resolve("API 20E", "OX")
	require.NoError(t, err)
	require.Equal(t, assay.CategoryEnzyme, res.Bundle.Category)
	require.Equal(t, "Cytochrome oxidase", res.Bundle.DisplayName)
	require.Equal(t, "Tests for Cytochrome oxidase activity", res.Bundle.Description)
	require.Equal(t, "1.9.3.1", res.Bundle.Enzyme.ECNumber)
	require.Equal(t, "K02274", res.Bundle.Enzyme.KeggKO)
	require.Equal(t, TablePrimaryEnzyme, res.Provenance.Table)
	require.True(t, res.Bundle.ConsistentWithCategory())
}

func TestResolveSubstrateShadowsEnzymeTables(t *testing.T) {
	r := newResolver()

	// URE sits in both the substrate and primary enzyme tables; the
	// substrate table is probed first, so the chemical reading wins
	res, err := r.Resolve("API 20E", "URE")
	require.NoError(t, err)
	require.Equal(t, assay.CategorySubstrate, res.Bundle.Category)
	require.Equal(t, "Urea", res.Bundle.DisplayName)
	require.Equal(t, TableSubstrate, res.Provenance.Table)
}

func TestResolveExtendedEnzyme(t *testing.T) {
	r := newResolver()

	res, err := r.Resolve("API rID32A", "ADH")
	require.NoError(t, err)
	require.Equal(t, "Arginine dihydrolase", res.Bundle.DisplayName)
	require.Equal(t, "3.5.3.6", res.Bundle.Enzyme.ECNumber)
	require.Equal(t, TableExtendedEnzyme, res.Provenance.Table)
}

func TestResolvePhenotypic(t *testing.T) {
	r := newResolver()

	res, err := r.Resolve("API 20E", "MOB")
	require.NoError(t, err)
	require.Equal(t, assay.CategoryPhenotypic, res.Bundle.Category)
	require.Equal(t, "Motility", res.Bundle.DisplayName)
	require.Equal(t, "Phenotypic test: Motility", res.Bundle.Description)
	require.Nil(t, res.Bundle.Chemical)
	require.Nil(t, res.Bundle.Enzyme)
	require.True(t, res.Bundle.ConsistentWithCategory())
}

func TestResolveUnclassified(t *testing.T) {
	r := newResolver()

	res, err := r.Resolve("API 20E", "ZZZZ999")
	require.NoError(t, err)
	require.True(t, res.Unclassified())
	require.Equal(t, "ZZZZ999", res.Bundle.DisplayName)
	require.Equal(t, "Biochemical test: ZZZZ999", res.Bundle.Description)
	require.Nil(t, res.Bundle.Chemical)
	require.Nil(t, res.Bundle.Enzyme)
	require.Empty(t, res.Provenance.Table)
}

func TestResolveNormalizedFallbackProvenance(t *testing.T) {
	r := newResolver()

	exact, err := r.Resolve("API 20E", "OX")
	require.NoError(t, err)
	require.Equal(t, assay.MatchExact, exact.Provenance.Match)

	norm, err := r.Resolve("API 20E", "ox")
	require.NoError(t, err)
	require.Equal(t, assay.MatchNormalized, norm.Provenance.Match)
	require.Equal(t, exact.Bundle, norm.Bundle)
}

func TestResolveDeterministic(t *testing.T) {
	r := newResolver()

	first, err := r.Resolve("API 20NE", "NAG")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := r.Resolve("API 20NE", "NAG")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEnrichGOFallbackWhenNoEC(t *testing.T) {
	r := newResolver()

	res, err := r.Resolve("API 50CHas", "GLU_ Ferm")
	require.NoError(t, err)
	require.Equal(t, assay.CategoryEnzyme, res.Bundle.Category)
	require.Equal(t, "Glucose fermentation", res.Bundle.Enzyme.EnzymeName)
	require.Empty(t, res.Bundle.Enzyme.ECNumber)
	require.Equal(t, []string{"GO:0019660"}, res.Bundle.Enzyme.GOTerms)
	require.Equal(t, []string{"glycolytic fermentation"}, res.Bundle.Enzyme.GONames)
}

func TestEnrichAnnotationECWinsOverTables(t *testing.T) {
	r := newResolver()

	// "Cytochrome oxidase" carries 1.9.3.1 in the annotation row but
	// 7.1.1.9 in the EC table; the annotation wins
	ids := r.Enrich("OX", "Cytochrome oxidase", "")
	require.Equal(t, "1.9.3.1", ids.ECNumber)
	require.Equal(t, "K02274", ids.KeggKO)
}

func TestEnrichIdempotent(t *testing.T) {
	r := newResolver()

	once := r.Enrich("URE", "Urease", "")
	twice := r.Enrich("URE", "Urease", "")
	require.Equal(t, once, twice)
}

func TestEnrichECHintUsedLast(t *testing.T) {
	r := newResolver()

	// Unknown enzyme name: only the hint can supply an EC
	ids := r.Enrich("X", "Esterase (C4)", "3.1.1.-")
	require.Equal(t, "3.1.1.-", ids.ECNumber)
	require.Equal(t, "Esterase (C4)", ids.EnzymeName)
}
