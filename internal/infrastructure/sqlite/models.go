package sqlite

import (
	"time"

	"github.com/CultureBotAI/assay-metadata/internal/oracle"
	"github.com/CultureBotAI/assay-metadata/internal/validate"
)

// VerdictModel represents the database row for the verdicts table.
// Fields map directly to SQL columns with a Unix timestamp for the
// check time.
type VerdictModel struct {
	Namespace string
	ID        string
	Status    string
	Name      string
	Detail    string
	CheckedAt int64
}

// toVerdictModel converts a domain verdict to a database row.
func toVerdictModel(v oracle.Verdict) VerdictModel {
	return VerdictModel{
		Namespace: v.Namespace,
		ID:        v.ID,
		Status:    string(v.Status),
		Name:      v.Name,
		Detail:    v.Detail,
		CheckedAt: v.CheckedAt.Unix(),
	}
}

// toDomainVerdict converts a database row back to a domain verdict.
func (m VerdictModel) toDomainVerdict() oracle.Verdict {
	return oracle.Verdict{
		Namespace: m.Namespace,
		ID:        m.ID,
		Status:    validate.Status(m.Status),
		Name:      m.Name,
		Detail:    m.Detail,
		CheckedAt: time.Unix(m.CheckedAt, 0).UTC(),
	}
}
