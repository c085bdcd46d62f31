package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/carelink/carelink-portal/internal/logger"
)

// AuditWriteRepository records mutating store operations in Postgres.
// The trail is an operational supplement: writes are fire-and-forget
// from the caller's point of view and must never fail a request.
type AuditWriteRepository struct {
	db *sqlx.DB
}

func NewAuditWriteRepository(db *sqlx.DB) *AuditWriteRepository {
	return &AuditWriteRepository{db: db}
}

// Save inserts one audit row.
func (r *AuditWriteRepository) Save(ctx context.Context, actor, entity, entityID, action string) error {
	const query = `
		INSERT INTO audit_log (actor, entity, entity_id, action, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{actor, entity, entityID, action}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("audit write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
