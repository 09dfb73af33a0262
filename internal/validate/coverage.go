package validate

import (
	"errors"
	"sort"

	"github.com/CultureBotAI/assay-metadata/internal/assay"
	"github.com/CultureBotAI/assay-metadata/internal/ingest"
	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/resolver"
)

// KitCoverage summarizes the real-data pass for one kit.
type KitCoverage struct {
	Kit             assay.KitName    `json:"kit_name"`
	TotalWells      int              `json:"total_wells"`
	Mapped          int              `json:"mapped"`
	Unmapped        int              `json:"unmapped"`
	CoveragePercent float64          `json:"coverage_percent"`
	UnmappedCodes   []assay.WellCode `json:"unmapped_codes"`
	OccurrenceCount int              `json:"occurrence_count"`
}

// CoverageResult is the outcome of the real-data coverage pass.
type CoverageResult struct {
	Findings   []Finding
	Kits       []KitCoverage
	TotalPairs int
	Unresolved int
}

// ValidateCoverage replays every observed (kit, code) pair from an
// extraction snapshot through the resolver and reports the pairs that
// land unclassified. Codes that violate the non-empty contract are
// counted as unresolved too: real data produced them and the tables
// cannot answer for them.
func (v *Validator) ValidateCoverage(res *resolver.Resolver, ext *ingest.Extraction) CoverageResult {
	result := CoverageResult{}
	perKit := make(map[assay.KitName]*KitCoverage)

	for _, pair := range ext.Pairs() {
		result.TotalPairs++

		kc, ok := perKit[pair.Kit]
		if !ok {
			kc = &KitCoverage{
				Kit:             pair.Kit,
				OccurrenceCount: ext.KitOccurrences[pair.Kit],
				UnmappedCodes:   []assay.WellCode{},
			}
			perKit[pair.Kit] = kc
		}
		kc.TotalWells++

		resolution, err := res.Resolve(pair.Kit, pair.Code)
		unresolved := resolution.Unclassified()
		if err != nil {
			if !errors.Is(err, assay.ErrEmptyCode) {
				log.ErrorErr(log.CatValidate, "coverage resolve failed", err, "kit", pair.Kit, "code", pair.Code)
			}
			unresolved = true
		}

		if unresolved {
			kc.Unmapped++
			kc.UnmappedCodes = append(kc.UnmappedCodes, pair.Code)
			result.Unresolved++
			result.Findings = append(result.Findings, Finding{
				Namespace: "coverage",
				ID:        string(pair.Code),
				Status:    StatusUnresolved,
				Detail:    string(pair.Kit),
			})
		} else {
			kc.Mapped++
		}
	}

	for _, kc := range perKit {
		if kc.TotalWells > 0 {
			kc.CoveragePercent = float64(kc.Mapped) / float64(kc.TotalWells) * 100
		}
		result.Kits = append(result.Kits, *kc)
	}
	sort.Slice(result.Kits, func(i, j int) bool { return result.Kits[i].Kit < result.Kits[j].Kit })

	log.Info(log.CatValidate, "coverage validation complete",
		"pairs", result.TotalPairs, "unresolved", result.Unresolved)
	return result
}
