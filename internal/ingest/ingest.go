// Package ingest reads BacDive-style strain exports and extracts the
// raw assay facts the pipeline runs on: which kits were observed, which
// well codes each kit carries, and the free-form enzyme list. It is a
// data source only; no resolution happens here.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/CultureBotAI/assay-metadata/internal/assay"
	"github.com/CultureBotAI/assay-metadata/internal/log"
)

// ErrNotArray is returned when the export is not a top-level JSON array
// of strain records.
var ErrNotArray = errors.New("strain export must be a JSON array")

const (
	physiologySection = "Physiology and metabolism"
	kitPrefix         = "API "
	metadataPrefix    = "@"
)

// KitObservation is the observed well set for one kit.
type KitObservation struct {
	Name      assay.KitName
	Wells     []assay.WellCode
	WellCount int
}

// EnzymeObservation is one free-form enzyme entry from the export.
type EnzymeObservation struct {
	Name       string
	ECNumber   string
	Activities []string
}

// Extraction is the aggregate outcome of one export walk. Slices are
// sorted so repeated runs over the same export compare equal.
type Extraction struct {
	Kits           map[assay.KitName]KitObservation
	WellKits       map[assay.WellCode][]assay.KitName
	Enzymes        map[string]EnzymeObservation
	KitOccurrences map[assay.KitName]int
	TotalStrains   int
	SkippedStrains int
}

// Pairs returns every observed (kit, code) pair in deterministic order.
func (e *Extraction) Pairs() []struct {
	Kit  assay.KitName
	Code assay.WellCode
} {
	kits := make([]assay.KitName, 0, len(e.Kits))
	for name := range e.Kits {
		kits = append(kits, name)
	}
	sort.Slice(kits, func(i, j int) bool { return kits[i] < kits[j] })

	var pairs []struct {
		Kit  assay.KitName
		Code assay.WellCode
	}
	for _, kit := range kits {
		for _, code := range e.Kits[kit].Wells {
			pairs = append(pairs, struct {
				Kit  assay.KitName
				Code assay.WellCode
			}{kit, code})
		}
	}
	return pairs
}

// LoadFile parses the strain export at path.
func LoadFile(path string) (*Extraction, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the --input flag
	if err != nil {
		return nil, fmt.Errorf("open strain export: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse streams strain records out of r. Malformed strain records are
// counted, logged, and skipped; only a broken top-level structure is
// fatal.
func Parse(r io.Reader) (*Extraction, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read strain export: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, ErrNotArray
	}

	w := newWalker()
	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("read strain record: %w", err)
		}
		w.strain(raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read strain export: %w", err)
	}

	ext := w.finish()
	log.Info(log.CatIngest, "export parsed",
		"strains", ext.TotalStrains,
		"skipped", ext.SkippedStrains,
		"kits", len(ext.Kits),
		"wells", len(ext.WellKits),
		"enzymes", len(ext.Enzymes))
	return ext, nil
}

// walker accumulates observation sets while strains stream by.
type walker struct {
	kitWells       map[assay.KitName]map[assay.WellCode]struct{}
	wellKits       map[assay.WellCode]map[assay.KitName]struct{}
	enzymes        map[string]*enzymeAccum
	kitOccurrences map[assay.KitName]int
	total          int
	skipped        int
}

type enzymeAccum struct {
	ec         string
	activities map[string]struct{}
}

func newWalker() *walker {
	return &walker{
		kitWells:       make(map[assay.KitName]map[assay.WellCode]struct{}),
		wellKits:       make(map[assay.WellCode]map[assay.KitName]struct{}),
		enzymes:        make(map[string]*enzymeAccum),
		kitOccurrences: make(map[assay.KitName]int),
	}
}

func (w *walker) strain(raw json.RawMessage) {
	w.total++

	var strain map[string]json.RawMessage
	if err := json.Unmarshal(raw, &strain); err != nil {
		w.skipped++
		log.Warn(log.CatIngest, "skipping malformed strain record", "error", err.Error())
		return
	}

	var physiology map[string]json.RawMessage
	if rawPhys, ok := strain[physiologySection]; ok {
		if err := json.Unmarshal(rawPhys, &physiology); err != nil {
			w.skipped++
			log.Warn(log.CatIngest, "skipping strain with malformed physiology section", "error", err.Error())
			return
		}
	}
	if physiology == nil {
		return
	}

	if rawEnzymes, ok := physiology["enzymes"]; ok {
		w.enzymeList(rawEnzymes)
	}

	for key, value := range physiology {
		if strings.HasPrefix(key, kitPrefix) {
			w.kitSection(assay.KitName(key), value)
		}
	}
}

type enzymeRecord struct {
	Value    string `json:"value"`
	EC       string `json:"ec"`
	Activity string `json:"activity"`
}

func (w *walker) enzymeList(raw json.RawMessage) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return
	}
	for _, r := range records {
		var rec enzymeRecord
		if err := json.Unmarshal(r, &rec); err != nil {
			continue
		}
		name := strings.TrimSpace(rec.Value)
		if name == "" {
			continue
		}
		acc, ok := w.enzymes[name]
		if !ok {
			acc = &enzymeAccum{
				ec:         strings.TrimSpace(rec.EC),
				activities: make(map[string]struct{}),
			}
			w.enzymes[name] = acc
		}
		if activity := strings.TrimSpace(rec.Activity); activity != "" {
			acc.activities[activity] = struct{}{}
		}
	}
}

// kitSection accepts both shapes the export uses: a single result
// object, or a list of result objects.
func (w *walker) kitSection(kit assay.KitName, raw json.RawMessage) {
	w.kitOccurrences[kit]++

	var results []map[string]json.RawMessage
	var single map[string]json.RawMessage
	if err := json.Unmarshal(raw, &single); err == nil {
		results = append(results, single)
	} else if err := json.Unmarshal(raw, &results); err != nil {
		log.Warn(log.CatIngest, "skipping unparseable kit section", "kit", kit)
		return
	}

	for _, result := range results {
		if result == nil {
			continue
		}
		for key := range result {
			if strings.HasPrefix(key, metadataPrefix) {
				continue
			}
			code := assay.WellCode(key)
			if w.kitWells[kit] == nil {
				w.kitWells[kit] = make(map[assay.WellCode]struct{})
			}
			w.kitWells[kit][code] = struct{}{}
			if w.wellKits[code] == nil {
				w.wellKits[code] = make(map[assay.KitName]struct{})
			}
			w.wellKits[code][kit] = struct{}{}
		}
	}
}

func (w *walker) finish() *Extraction {
	ext := &Extraction{
		Kits:           make(map[assay.KitName]KitObservation, len(w.kitWells)),
		WellKits:       make(map[assay.WellCode][]assay.KitName, len(w.wellKits)),
		Enzymes:        make(map[string]EnzymeObservation, len(w.enzymes)),
		KitOccurrences: w.kitOccurrences,
		TotalStrains:   w.total,
		SkippedStrains: w.skipped,
	}

	for kit, wells := range w.kitWells {
		codes := make([]assay.WellCode, 0, len(wells))
		for code := range wells {
			codes = append(codes, code)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		ext.Kits[kit] = KitObservation{Name: kit, Wells: codes, WellCount: len(codes)}
	}

	for code, kits := range w.wellKits {
		names := make([]assay.KitName, 0, len(kits))
		for kit := range kits {
			names = append(names, kit)
		}
		sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
		ext.WellKits[code] = names
	}

	for name, acc := range w.enzymes {
		activities := make([]string, 0, len(acc.activities))
		for a := range acc.activities {
			activities = append(activities, a)
		}
		sort.Strings(activities)
		ext.Enzymes[name] = EnzymeObservation{Name: name, ECNumber: acc.ec, Activities: activities}
	}

	return ext
}
