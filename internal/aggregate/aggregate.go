// Package aggregate drives the resolution pipeline over an extraction:
// every distinct (kit, code) pair is resolved exactly once, the results
// are folded into a deduplicated well map that keeps per-kit fidelity,
// and totals plus identifier coverage are tallied. An unclassified code
// is counted, never treated as a failure.
package aggregate

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/CultureBotAI/assay-metadata/internal/assay"
	"github.com/CultureBotAI/assay-metadata/internal/cachemanager"
	"github.com/CultureBotAI/assay-metadata/internal/ingest"
	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
	"github.com/CultureBotAI/assay-metadata/internal/resolver"
)

const resolutionTTL = time.Hour

// KitMetadata is the catalog entry for one observed kit.
type KitMetadata struct {
	Name            assay.KitName    `json:"kit_name"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	WellCount       int              `json:"well_count"`
	Wells           []assay.WellCode `json:"wells"`
	OccurrenceCount int              `json:"occurrence_count"`
}

// Statistics summarizes one aggregation run. Coverage maps identifier
// field names to the fraction of wells (or enzymes, for the enzyme
// fields) carrying a non-empty value.
type Statistics struct {
	TotalStrains        int                    `json:"total_strains"`
	SkippedStrains      int                    `json:"skipped_strains,omitempty"`
	TotalKits           int                    `json:"total_api_kits"`
	TotalUniqueWells    int                    `json:"total_unique_wells"`
	TotalUniqueEnzymes  int                    `json:"total_unique_enzymes"`
	TotalKitOccurrences int                    `json:"total_kit_occurrences"`
	CategoryCounts      map[assay.Category]int `json:"category_counts"`
	Coverage            map[string]float64     `json:"coverage"`
}

// Result is the full output of one Build pass.
type Result struct {
	Kits       []KitMetadata
	Wells      map[assay.WellCode]*assay.ResolutionRecord
	Enzymes    map[string]assay.EnzymeIdentifiers
	Statistics Statistics
}

type pairInput struct {
	kit  assay.KitName
	code assay.WellCode
}

// Aggregator memoizes resolutions across a corpus so repeated pairs
// never hit the tables twice.
type Aggregator struct {
	reg   *registry.Registry
	res   *resolver.Resolver
	cache *cachemanager.ReadThroughCache[string, assay.Resolution, pairInput]
}

// New wires an Aggregator over an explicit registry and resolver.
// skipCache forces every pair through the resolver, for debugging.
func New(reg *registry.Registry, res *resolver.Resolver, skipCache bool) *Aggregator {
	cache := cachemanager.NewInMemoryCacheManager[string, assay.Resolution](
		"resolution-cache", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)

	rtc := cachemanager.NewReadThroughCache(cache, func(ctx context.Context, input pairInput) (assay.Resolution, error) {
		return res.Resolve(input.kit, input.code)
	}, skipCache)

	return &Aggregator{reg: reg, res: res, cache: rtc}
}

// Build resolves every distinct (kit, code) pair in ext and assembles
// the kit catalog, the deduplicated well map, the enzyme catalog, and
// the run statistics. Pairs whose code violates the non-empty contract
// are logged and skipped; everything else resolves, down to the
// unclassified terminal state.
func (a *Aggregator) Build(ctx context.Context, ext *ingest.Extraction) (*Result, error) {
	wells := make(map[assay.WellCode]*assay.ResolutionRecord)

	for _, pair := range ext.Pairs() {
		key := string(pair.Kit) + "|" + string(pair.Code)
		res, err := a.cache.Get(ctx, key, pairInput{kit: pair.Kit, code: pair.Code}, resolutionTTL)
		if err != nil {
			if errors.Is(err, assay.ErrEmptyCode) {
				log.Warn(log.CatAggregate, "skipping empty well code", "kit", pair.Kit)
				continue
			}
			return nil, err
		}

		rec, ok := wells[pair.Code]
		if !ok {
			rec = &assay.ResolutionRecord{
				Code:   pair.Code,
				PerKit: make(map[assay.KitName]assay.AnnotationBundle),
			}
			wells[pair.Code] = rec
		}
		rec.PerKit[pair.Kit] = res.Bundle
		rec.UsedInKits = appendKit(rec.UsedInKits, pair.Kit)
	}

	result := &Result{
		Kits:       a.buildKits(ext),
		Wells:      wells,
		Enzymes:    a.buildEnzymes(ext),
		Statistics: a.statistics(ext, wells),
	}
	result.Statistics.TotalUniqueEnzymes = len(result.Enzymes)
	a.enzymeCoverage(result)

	log.Info(log.CatAggregate, "aggregation complete",
		"kits", len(result.Kits),
		"wells", len(result.Wells),
		"enzymes", len(result.Enzymes),
		"unclassified", result.Statistics.CategoryCounts[assay.CategoryUnclassified])
	return result, nil
}

func (a *Aggregator) buildKits(ext *ingest.Extraction) []KitMetadata {
	kits := make([]KitMetadata, 0, len(ext.Kits))
	for name, obs := range ext.Kits {
		entry := a.reg.Kit(name)
		description := entry.Description
		if description == "" {
			description = "Unknown API kit"
		}
		category := entry.Category
		if category == "" {
			category = "Unknown"
		}
		kits = append(kits, KitMetadata{
			Name:            name,
			Description:     description,
			Category:        category,
			WellCount:       obs.WellCount,
			Wells:           obs.Wells,
			OccurrenceCount: ext.KitOccurrences[name],
		})
	}

	// Most common kit first; name breaks ties so output is stable.
	sort.Slice(kits, func(i, j int) bool {
		if kits[i].OccurrenceCount != kits[j].OccurrenceCount {
			return kits[i].OccurrenceCount > kits[j].OccurrenceCount
		}
		return kits[i].Name < kits[j].Name
	})
	return kits
}

func (a *Aggregator) buildEnzymes(ext *ingest.Extraction) map[string]assay.EnzymeIdentifiers {
	enzymes := make(map[string]assay.EnzymeIdentifiers, len(ext.Enzymes))
	for name, obs := range ext.Enzymes {
		enzymes[name] = *a.res.Enrich("", name, obs.ECNumber)
	}
	return enzymes
}

func (a *Aggregator) statistics(ext *ingest.Extraction, wells map[assay.WellCode]*assay.ResolutionRecord) Statistics {
	stats := Statistics{
		TotalStrains:     ext.TotalStrains,
		SkippedStrains:   ext.SkippedStrains,
		TotalKits:        len(ext.Kits),
		TotalUniqueWells: len(wells),
		CategoryCounts:   make(map[assay.Category]int),
		Coverage:         make(map[string]float64),
	}
	for _, n := range ext.KitOccurrences {
		stats.TotalKitOccurrences += n
	}

	var withChebi, withPubchem, withEC, withGO int
	for _, rec := range wells {
		bundle := rec.Representative()
		stats.CategoryCounts[bundle.Category]++
		if bundle.Chemical != nil {
			if bundle.Chemical.ChebiID != "" {
				withChebi++
			}
			if bundle.Chemical.PubchemCID != "" {
				withPubchem++
			}
		}
		if bundle.Enzyme != nil {
			if bundle.Enzyme.ECNumber != "" {
				withEC++
			}
			if len(bundle.Enzyme.GOTerms) > 0 {
				withGO++
			}
		}
	}
	if len(wells) > 0 {
		total := float64(len(wells))
		stats.Coverage["wells_chebi_id"] = float64(withChebi) / total
		stats.Coverage["wells_pubchem_cid"] = float64(withPubchem) / total
		stats.Coverage["wells_ec_number"] = float64(withEC) / total
		stats.Coverage["wells_go_terms"] = float64(withGO) / total
	}
	return stats
}

func (a *Aggregator) enzymeCoverage(result *Result) {
	if len(result.Enzymes) == 0 {
		return
	}
	var withEC, withGO, withKO int
	for _, ids := range result.Enzymes {
		if ids.ECNumber != "" {
			withEC++
		}
		if len(ids.GOTerms) > 0 {
			withGO++
		}
		if ids.KeggKO != "" {
			withKO++
		}
	}
	total := float64(len(result.Enzymes))
	result.Statistics.Coverage["enzymes_ec_number"] = float64(withEC) / total
	result.Statistics.Coverage["enzymes_go_terms"] = float64(withGO) / total
	result.Statistics.Coverage["enzymes_kegg_ko"] = float64(withKO) / total
}

// appendKit keeps the used_in_kits list sorted and duplicate-free.
func appendKit(kits []assay.KitName, kit assay.KitName) []assay.KitName {
	i := sort.Search(len(kits), func(i int) bool { return kits[i] >= kit })
	if i < len(kits) && kits[i] == kit {
		return kits
	}
	kits = append(kits, "")
	copy(kits[i+1:], kits[i:])
	kits[i] = kit
	return kits
}
