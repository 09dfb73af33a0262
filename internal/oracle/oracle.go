// Package oracle cross-checks curated identifiers against the remote
// authorities that own them: PubChem for compound IDs, KEGG for
// orthology groups. Lookups are rate limited, retried with backoff,
// and cached through a persistent verdict store so repeat runs never
// re-query unchanged identifiers. A network failure after retries
// yields an unverified verdict, never valid or invalid.
package oracle

import (
	"context"
	"time"

	"github.com/CultureBotAI/assay-metadata/internal/validate"
)

// Verdict namespaces.
const (
	NamespacePubchem = "PubChem CID"
	NamespaceKegg    = "KEGG KO"
)

// Verdict is one remote authority's answer about one identifier.
type Verdict struct {
	Namespace string
	ID        string
	Status    validate.Status
	Name      string
	Detail    string
	CheckedAt time.Time
}

// Finding converts the verdict to a validation finding.
func (v Verdict) Finding() validate.Finding {
	return validate.Finding{
		Namespace: v.Namespace,
		ID:        v.ID,
		Status:    v.Status,
		Name:      v.Name,
		Detail:    v.Detail,
	}
}

// VerdictStore persists verdicts between runs. Implementations must be
// safe for concurrent writers; the cross-checker runs a bounded worker
// pool over it.
type VerdictStore interface {
	Get(ctx context.Context, namespace, id string) (Verdict, bool, error)
	Put(ctx context.Context, verdict Verdict) error
}
