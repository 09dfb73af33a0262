package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/CultureBotAI/assay-metadata/internal/assay"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
)

var propKits = []assay.KitName{
	"API 20E", "API 20NE", "API zym", "API 50CHac", "API biotype100", "API never-seen",
}

// Every resolvable input lands in exactly one category with identifier
// fields matching it, and resolving twice gives identical output.
func TestResolvePropertyCategoryExclusive(t *testing.T) {
	r := New(registry.Default())

	rapid.Check(t, func(t *rapid.T) {
		kit := rapid.SampledFrom(propKits).Draw(t, "kit")
		code := assay.WellCode(rapid.StringMatching(`[A-Za-z0-9 _-]{1,12}`).Draw(t, "code"))
		if assay.Normalize(code) == "" {
			t.Skip("whitespace-only code")
		}

		res, err := r.Resolve(kit, code)
		require.NoError(t, err)
		require.True(t, res.Bundle.Category.Valid())
		require.True(t, res.Bundle.ConsistentWithCategory())
		require.NotEmpty(t, res.Bundle.DisplayName)

		again, err := r.Resolve(kit, code)
		require.NoError(t, err)
		require.Equal(t, res, again)
	})
}

// Codes that miss every table come back unclassified with the raw code
// preserved as the label, never as an error.
func TestResolvePropertyUnknownNeverErrors(t *testing.T) {
	r := New(registry.Default())

	rapid.Check(t, func(t *rapid.T) {
		// The leading Q prefix plus digits keeps generated codes out of
		// every curated table except the single-letter Q substrate
		code := assay.WellCode("Q" + rapid.StringMatching(`[0-9]{3,6}`).Draw(t, "suffix"))
		res, err := r.Resolve("API 20E", code)
		require.NoError(t, err)
		require.True(t, res.Unclassified())
		require.Equal(t, string(code), res.Bundle.DisplayName)
	})
}
