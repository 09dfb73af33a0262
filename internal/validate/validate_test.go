package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CultureBotAI/assay-metadata/internal/assay"
	"github.com/CultureBotAI/assay-metadata/internal/ingest"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
	"github.com/CultureBotAI/assay-metadata/internal/resolver"
)

const sampleNodes = "id\tname\tdescription\tdeprecated\treplaced_by\tcategory\tsynonym\n" +
	"CHEBI:17234\tglucose\ta sugar\tfalse\t\tchemical\tdextrose\n" +
	"CHEBI:99999\told glucose\t\ttrue\tCHEBI:17234\tchemical\t\n" +
	"https://www.ebi.ac.uk/intenz/query?cmd=SearchEC&ec=3.5.1.5\turease\t\tfalse\t\tenzyme\t\n"

func sampleIndex(t *testing.T) *OntologyIndex {
	t.Helper()
	idx, err := ParseOntologyIndex("test", strings.NewReader(sampleNodes))
	require.NoError(t, err)
	return idx
}

func TestParseOntologyIndex(t *testing.T) {
	idx := sampleIndex(t)
	require.Equal(t, 3, idx.Len())

	term, ok := idx.Lookup("CHEBI:17234")
	require.True(t, ok)
	require.Equal(t, "glucose", term.Name)
	require.False(t, term.Deprecated)

	term, ok = idx.Lookup("CHEBI:99999")
	require.True(t, ok)
	require.True(t, term.Deprecated)
	require.Equal(t, "CHEBI:17234", term.ReplacedBy)
}

func TestParseOntologyIndexNormalizesECURLs(t *testing.T) {
	idx := sampleIndex(t)
	term, ok := idx.Lookup("3.5.1.5")
	require.True(t, ok)
	require.Equal(t, "urease", term.Name)
}

func TestCheckerClassification(t *testing.T) {
	idx := sampleIndex(t)
	c := newChecker(&IndexSet{Chebi: idx, GO: idx, EC: idx})

	c.chebi("CHEBI:17234") // valid
	c.chebi("CHEBI:99999") // deprecated with replacement
	c.chebi("CHEBI:00000") // absent

	require.Len(t, c.findings, 3)
	byID := make(map[string]Finding)
	for _, f := range c.findings {
		byID[f.ID] = f
	}
	require.Equal(t, StatusValid, byID["CHEBI:17234"].Status)
	require.Equal(t, StatusDeprecated, byID["CHEBI:99999"].Status)
	require.Equal(t, "CHEBI:17234", byID["CHEBI:99999"].Replacement)
	require.Equal(t, StatusInvalid, byID["CHEBI:00000"].Status)
}

func TestCheckerDeduplicates(t *testing.T) {
	idx := sampleIndex(t)
	c := newChecker(&IndexSet{Chebi: idx, GO: idx, EC: idx})

	c.chebi("CHEBI:17234")
	c.chebi("CHEBI:17234")

	require.Len(t, c.findings, 1)
	require.Equal(t, 1, c.stats["chebi_valid"])
}

func TestValidateRegistryEmptyIndexesFlagEverything(t *testing.T) {
	empty := func(name string) *OntologyIndex {
		return &OntologyIndex{name: name, terms: map[string]Term{}}
	}
	v := New(registry.Default(), &IndexSet{Chebi: empty("CHEBI"), GO: empty("GO"), EC: empty("EC")})

	result := v.ValidateRegistry()
	require.NotEmpty(t, result.Findings)
	for _, f := range result.Findings {
		require.Equal(t, StatusInvalid, f.Status)
	}
	require.Positive(t, result.Statistics["substrates_total"])
	require.Positive(t, result.Statistics["enzymes_total"])
	require.Zero(t, result.Statistics["chebi_valid"])
}

func coverageExtraction(wells []assay.WellCode) *ingest.Extraction {
	return &ingest.Extraction{
		Kits: map[assay.KitName]ingest.KitObservation{
			"API 20E": {Name: "API 20E", Wells: wells, WellCount: len(wells)},
		},
		KitOccurrences: map[assay.KitName]int{"API 20E": 1},
	}
}

func TestValidateCoverageFullyMapped(t *testing.T) {
	reg := registry.Default()
	v := New(reg, &IndexSet{})

	result := v.ValidateCoverage(resolver.New(reg), coverageExtraction([]assay.WellCode{"GLU", "URE", "MOB"}))
	require.Zero(t, result.Unresolved)
	require.Empty(t, result.Findings)
	require.Len(t, result.Kits, 1)
	require.InDelta(t, 100.0, result.Kits[0].CoveragePercent, 0.001)
}

func TestValidateCoverageReportsUnmappedPair(t *testing.T) {
	reg := registry.Default()
	v := New(reg, &IndexSet{})

	result := v.ValidateCoverage(resolver.New(reg), coverageExtraction([]assay.WellCode{"GLU", "ZZZZ999"}))
	require.Equal(t, 1, result.Unresolved)
	require.Len(t, result.Findings, 1)
	require.Equal(t, StatusUnresolved, result.Findings[0].Status)
	require.Equal(t, "ZZZZ999", result.Findings[0].ID)
	require.Equal(t, []assay.WellCode{"ZZZZ999"}, result.Kits[0].UnmappedCodes)
}

func TestBuildReportClassifiesFindings(t *testing.T) {
	findings := []Finding{
		{Namespace: NamespaceChebi, ID: "CHEBI:17234", Status: StatusValid},
		{Namespace: NamespaceChebi, ID: "CHEBI:99999", Status: StatusDeprecated, Name: "old glucose"},
		{Namespace: NamespaceGO, ID: "GO:0000000", Status: StatusInvalid},
		{Namespace: "PubChem CID", ID: "5793", Status: StatusUnverified, Detail: "timeout"},
	}

	report := BuildReport(map[string]int{"chebi_valid": 1}, findings)
	require.NotEmpty(t, report.RunID)
	require.Len(t, report.Errors, 1)
	require.Len(t, report.Warnings, 2)
	require.False(t, report.Summary.Valid)
	require.Equal(t, 1, report.Summary.TotalErrors)
	require.Equal(t, 2, report.Summary.TotalWarnings)
	require.Contains(t, report.Errors[0], "GO term not found")
}

func TestBuildReportValidWhenOnlyWarnings(t *testing.T) {
	report := BuildReport(nil, []Finding{
		{Namespace: NamespaceEC, ID: "1.1.1.1", Status: StatusDeprecated},
	})
	require.True(t, report.Summary.Valid)
	require.Empty(t, report.Errors)
}

func TestTrackOntologyFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ChebiNodesFile), []byte(sampleNodes), 0o644))

	metaPath := filepath.Join(dir, "ontology_file_metadata.json")
	versions, err := TrackOntologyFiles(dir, metaPath)
	require.NoError(t, err)

	require.Len(t, versions, 1)
	v := versions[ChebiNodesFile]
	require.Len(t, v.SHA256, 64)
	require.Equal(t, int64(len(sampleNodes)), v.SizeBytes)

	_, err = os.Stat(metaPath)
	require.NoError(t, err)
}

func TestLoadIndexSetToleratesMissingTables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, GONodesFile), []byte(sampleNodes), 0o644))

	set, err := LoadIndexSet(dir)
	require.NoError(t, err)
	require.Equal(t, 3, set.GO.Len())
	require.Zero(t, set.Chebi.Len())
	require.Zero(t, set.EC.Len())
}
