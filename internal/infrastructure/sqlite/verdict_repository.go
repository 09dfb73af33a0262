package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CultureBotAI/assay-metadata/internal/oracle"
)

// verdictColumns is the list of columns to select for verdict queries.
const verdictColumns = `namespace, id, status, name, detail, checked_at`

// verdictRepository implements oracle.VerdictStore using SQLite.
type verdictRepository struct {
	db *sql.DB
}

// NewVerdictRepository creates a verdict store backed by db.
func NewVerdictRepository(db *DB) oracle.VerdictStore {
	return &verdictRepository{db: db.conn}
}

// Ensure verdictRepository implements oracle.VerdictStore.
var _ oracle.VerdictStore = (*verdictRepository)(nil)

func scanVerdict(scanner interface{ Scan(...any) error }) (VerdictModel, error) {
	var model VerdictModel
	err := scanner.Scan(
		&model.Namespace, &model.ID, &model.Status,
		&model.Name, &model.Detail, &model.CheckedAt,
	)
	return model, err
}

// Get returns the cached verdict for (namespace, id), if present.
func (r *verdictRepository) Get(ctx context.Context, namespace, id string) (oracle.Verdict, bool, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+verdictColumns+` FROM verdicts WHERE namespace = ? AND id = ?`,
		namespace, id,
	)
	model, err := scanVerdict(row)
	if errors.Is(err, sql.ErrNoRows) {
		return oracle.Verdict{}, false, nil
	}
	if err != nil {
		return oracle.Verdict{}, false, fmt.Errorf("query verdict: %w", err)
	}
	return model.toDomainVerdict(), true, nil
}

// Put upserts a verdict. The (namespace, id) pair is the primary key,
// so a re-check replaces the previous verdict.
func (r *verdictRepository) Put(ctx context.Context, verdict oracle.Verdict) error {
	model := toVerdictModel(verdict)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO verdicts (`+verdictColumns+`) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (namespace, id) DO UPDATE SET
			status = excluded.status,
			name = excluded.name,
			detail = excluded.detail,
			checked_at = excluded.checked_at`,
		model.Namespace, model.ID, model.Status, model.Name, model.Detail, model.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert verdict: %w", err)
	}
	return nil
}
