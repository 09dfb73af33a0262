// Package validate checks the curated registry two ways: offline
// against local ontology reference tables, and (separately) against
// remote authorities via the oracle package. It also carries the
// real-data coverage pass, which replays an extraction snapshot through
// the resolver and flags every pair that lands unclassified. The
// validator never mutates the registry; it only emits findings.
package validate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/CultureBotAI/assay-metadata/internal/log"
)

// Term is one reference entry loaded from an ontology node table.
type Term struct {
	ID          string
	Name        string
	Description string
	Deprecated  bool
	ReplacedBy  string
	Category    string
	Synonym     string
}

// OntologyIndex holds one namespace's reference terms keyed by ID.
type OntologyIndex struct {
	name  string
	terms map[string]Term
}

var ecURLPattern = regexp.MustCompile(`ec=([0-9.]+)`)

// LoadOntologyIndex reads a tab-separated node table. Expected columns
// are id, name, description, deprecated, category, synonym, with an
// optional replaced_by column for retired terms. EC identifiers that
// arrive as intenz URLs are reduced to the bare dotted number.
func LoadOntologyIndex(name, path string) (*OntologyIndex, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the --ontology-dir flag
	if err != nil {
		return nil, fmt.Errorf("open ontology table %s: %w", name, err)
	}
	defer f.Close()
	return ParseOntologyIndex(name, f)
}

// ParseOntologyIndex reads node rows out of r.
func ParseOntologyIndex(name string, r io.Reader) (*OntologyIndex, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read ontology header for %s: %w", name, err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}

	idx := &OntologyIndex{name: name, terms: make(map[string]Term)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ontology row for %s: %w", name, err)
		}

		id := field(row, col, "id")
		if id == "" {
			continue
		}
		if strings.HasPrefix(id, "https://www.ebi.ac.uk/intenz/") {
			if m := ecURLPattern.FindStringSubmatch(id); m != nil {
				id = m[1]
			}
		}

		idx.terms[id] = Term{
			ID:          id,
			Name:        field(row, col, "name"),
			Description: field(row, col, "description"),
			Deprecated:  strings.EqualFold(field(row, col, "deprecated"), "true"),
			ReplacedBy:  field(row, col, "replaced_by"),
			Category:    field(row, col, "category"),
			Synonym:     field(row, col, "synonym"),
		}
	}
	return idx, nil
}

// Lookup returns the term for id, if the namespace knows it.
func (i *OntologyIndex) Lookup(id string) (Term, bool) {
	t, ok := i.terms[id]
	return t, ok
}

// Len returns the number of loaded terms.
func (i *OntologyIndex) Len() int { return len(i.terms) }

// IndexSet groups the three reference namespaces the registry uses.
type IndexSet struct {
	Chebi *OntologyIndex
	GO    *OntologyIndex
	EC    *OntologyIndex
}

// Node table filenames under the ontology directory.
const (
	ChebiNodesFile = "chebi_nodes.tsv"
	GONodesFile    = "go_nodes.tsv"
	ECNodesFile    = "ec_nodes.tsv"
)

// LoadIndexSet loads the three node tables from dir. A missing table
// is logged and left empty rather than failing the whole pass, so a
// partial reference checkout still validates what it can.
func LoadIndexSet(dir string) (*IndexSet, error) {
	load := func(name, file string) (*OntologyIndex, error) {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err != nil {
			log.Warn(log.CatValidate, "ontology table missing", "namespace", name, "path", path)
			return &OntologyIndex{name: name, terms: make(map[string]Term)}, nil
		}
		return LoadOntologyIndex(name, path)
	}

	chebi, err := load("CHEBI", ChebiNodesFile)
	if err != nil {
		return nil, err
	}
	goIdx, err := load("GO", GONodesFile)
	if err != nil {
		return nil, err
	}
	ec, err := load("EC", ECNodesFile)
	if err != nil {
		return nil, err
	}

	log.Info(log.CatValidate, "ontology indexes loaded",
		"chebi", chebi.Len(), "go", goIdx.Len(), "ec", ec.Len())
	return &IndexSet{Chebi: chebi, GO: goIdx, EC: ec}, nil
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
