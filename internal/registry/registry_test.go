package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CultureBotAI/assay-metadata/internal/assay"
)

func TestSubstrateExactMatch(t *testing.T) {
	r := Default()

	s, match, ok := r.Substrate("GLU")
	require.True(t, ok)
	require.Equal(t, assay.MatchExact, match)
	require.Equal(t, "D-Glucose", s.Name)
	require.Equal(t, "CHEBI:17234", s.ChebiID)
	require.Equal(t, "5793", s.Pubchem)
}

func TestSubstrateNormalizedFallback(t *testing.T) {
	r := Default()

	// "glu " only matches after uppercasing and trimming
	s, match, ok := r.Substrate(" glu ")
	require.True(t, ok)
	require.Equal(t, assay.MatchNormalized, match)
	require.Equal(t, "D-Glucose", s.Name)
}

func TestSubstrateMiss(t *testing.T) {
	r := Default()

	_, match, ok := r.Substrate("ZZZZ999")
	require.False(t, ok)
	require.Equal(t, assay.MatchNone, match)
}

func TestOverrideTakesKitContext(t *testing.T) {
	r := Default()

	// Global MAN is mannitol
	global, _, ok := r.Substrate("MAN")
	require.True(t, ok)
	require.Equal(t, "D-Mannitol", global.Name)

	// API 20E reads MAN as mannose
	o, match, ok := r.Override("API 20E", "MAN")
	require.True(t, ok)
	require.Equal(t, assay.MatchExact, match)
	require.Equal(t, "D-Mannose", o.Name)
	require.Equal(t, "CHEBI:4208", o.ChebiID)

	// API 20NE keeps mannitol
	o, _, ok = r.Override("API 20NE", "MAN")
	require.True(t, ok)
	require.Equal(t, "D-Mannitol", o.Name)
}

func TestOverrideUnknownKit(t *testing.T) {
	r := Default()

	_, _, ok := r.Override("API 50CHac", "MAN")
	require.False(t, ok)
}

func TestOverrideEnzymatic(t *testing.T) {
	r := Default()

	o, _, ok := r.Override("API zym", "alpha- Galactosidase")
	require.True(t, ok)
	require.True(t, o.Enzymatic())
	require.Equal(t, "3.2.1.22", o.EC)

	o, _, ok = r.Override("API 20E", "ONPG")
	require.True(t, ok)
	require.True(t, o.Enzymatic())
	require.Equal(t, "o-Nitrophenyl-β-D-galactopyranoside", o.Substrate)

	o, _, ok = r.Override("API zym", "Control")
	require.True(t, ok)
	require.True(t, o.Control)
	require.False(t, o.Enzymatic())
}

func TestPrimaryEnzymeBeforeExtended(t *testing.T) {
	r := Default()

	name, _, ok := r.PrimaryEnzyme("URE")
	require.True(t, ok)
	require.Equal(t, "Urease", name)

	_, _, ok = r.PrimaryEnzyme("ADH")
	require.False(t, ok)

	name, _, ok = r.ExtendedEnzyme("ADH")
	require.True(t, ok)
	require.Equal(t, "Arginine dihydrolase", name)
}

func TestECNumberExactBeatsPartial(t *testing.T) {
	r := Default()

	ec, ok := r.ECNumber("Urease")
	require.True(t, ok)
	require.Equal(t, "3.5.1.5", ec)

	// Only in the family-level table
	ec, ok = r.ECNumber("Leucine arylamidase")
	require.True(t, ok)
	require.Equal(t, "3.5.-.-", ec)

	_, ok = r.ECNumber("no such enzyme")
	require.False(t, ok)
}

func TestAnnotationLookup(t *testing.T) {
	r := Default()

	a, ok := r.Annotation("Urease")
	require.True(t, ok)
	require.Equal(t, []string{"GO:0009039"}, a.GOTerms)
	require.Equal(t, "K01428", a.KeggKO)
	require.Equal(t, "3.5.1.5", a.ECNumber)
}

func TestGOFallbackNormalizedSpelling(t *testing.T) {
	r := Default()

	g, ok := r.GOFallback("beta GP")
	require.True(t, ok)
	require.Equal(t, "GO:0004553", g.GOID)

	// Normalized spelling resolves to the same row
	g, ok = r.GOFallback("BETAGP")
	require.True(t, ok)
	require.Equal(t, "GO:0004553", g.GOID)

	g, ok = r.GOFallback("GLUFERM")
	require.True(t, ok)
	require.Equal(t, "GO:0019660", g.GOID)
}

func TestKitCatalog(t *testing.T) {
	r := Default()

	kit := r.Kit("API zym")
	require.Equal(t, "Enzyme profiling", kit.Category)
	require.NotEmpty(t, kit.Description)

	// Unknown kits come back empty, not as errors
	kit = r.Kit("API unknown")
	require.Empty(t, kit.Description)
	require.Empty(t, kit.Category)

	kits := r.Kits()
	require.Len(t, kits, 17)
	for i := 1; i < len(kits); i++ {
		require.Less(t, string(kits[i-1].Name), string(kits[i].Name))
	}
}
