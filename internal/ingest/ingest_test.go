package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CultureBotAI/assay-metadata/internal/assay"
)

const sampleExport = `[
  {
    "General": {"BacDive-ID": 1},
    "Physiology and metabolism": {
      "enzymes": [
        {"value": "catalase", "ec": "1.11.1.6", "activity": "+"},
        {"value": "urease", "ec": "3.5.1.5", "activity": "-"},
        {"value": "catalase", "ec": "1.11.1.6", "activity": "-"},
        {"value": "  ", "ec": ""}
      ],
      "API 20E": {"@ref": 23, "GLU": "+", "MAN": "+", "ONPG": "-"},
      "API zym": [
        {"@ref": 24, "Control": "-", "Trypsin": "+"},
        {"Control": "-", "alpha- Galactosidase": "+"}
      ]
    }
  },
  {
    "General": {"BacDive-ID": 2},
    "Physiology and metabolism": {
      "API 20E": {"GLU": "+", "URE": "-"},
      "API 20NE": {"MAN": "+", "NO3": "+"}
    }
  },
  {
    "General": {"BacDive-ID": 3}
  },
  {
    "General": {"BacDive-ID": 4},
    "Physiology and metabolism": "not an object"
  }
]`

func TestParseExtractsKitsAndWells(t *testing.T) {
	ext, err := Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	require.Equal(t, 4, ext.TotalStrains)
	require.Equal(t, 1, ext.SkippedStrains)

	require.Len(t, ext.Kits, 3)
	e20 := ext.Kits["API 20E"]
	require.Equal(t, []assay.WellCode{"GLU", "MAN", "ONPG", "URE"}, e20.Wells)
	require.Equal(t, 4, e20.WellCount)

	// Metadata keys never surface as wells
	zym := ext.Kits["API zym"]
	require.NotContains(t, zym.Wells, assay.WellCode("@ref"))
	require.Equal(t, []assay.WellCode{"Control", "Trypsin", "alpha- Galactosidase"}, zym.Wells)

	// Occurrences count strain sections, not wells
	require.Equal(t, 2, ext.KitOccurrences["API 20E"])
	require.Equal(t, 1, ext.KitOccurrences["API zym"])
	require.Equal(t, 1, ext.KitOccurrences["API 20NE"])
}

func TestParseWellKitsIndexSorted(t *testing.T) {
	ext, err := Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	require.Equal(t, []assay.KitName{"API 20E", "API 20NE"}, ext.WellKits["MAN"])
	require.Equal(t, []assay.KitName{"API 20E"}, ext.WellKits["GLU"])
}

func TestParseEnzymeList(t *testing.T) {
	ext, err := Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	require.Len(t, ext.Enzymes, 2)
	cat := ext.Enzymes["catalase"]
	require.Equal(t, "1.11.1.6", cat.ECNumber)
	require.Equal(t, []string{"+", "-"}, cat.Activities)
}

func TestParsePairsDeterministic(t *testing.T) {
	ext, err := Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	first := ext.Pairs()
	again, err := Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.Equal(t, first, again.Pairs())

	// 4 (API 20E) + 2 (API 20NE) + 3 (API zym)
	require.Len(t, first, 9)
	require.Equal(t, assay.KitName("API 20E"), first[0].Kit)
	require.Equal(t, assay.WellCode("GLU"), first[0].Code)
}

func TestParseRejectsNonArray(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"not": "an array"}`))
	require.ErrorIs(t, err, ErrNotArray)
}

func TestParseMalformedStrainSkipped(t *testing.T) {
	export := `[
	  "not an object",
	  {"Physiology and metabolism": {"API 20E": {"GLU": "+"}}}
	]`
	ext, err := Parse(strings.NewReader(export))
	require.NoError(t, err)
	require.Equal(t, 2, ext.TotalStrains)
	require.Equal(t, 1, ext.SkippedStrains)
	require.Contains(t, ext.Kits, assay.KitName("API 20E"))
}
