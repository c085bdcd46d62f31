package services

import (
	"context"

	"github.com/carelink/carelink-portal/internal/logger"
)

// AuditWriter records mutating store operations.
type AuditWriter interface {
	Save(ctx context.Context, actor, entity, entityID, action string) error
}

// writeAudit records one audit row. A nil writer means auditing is
// disabled; failures are logged and never surfaced to the caller.
func writeAudit(ctx context.Context, audit AuditWriter, actor, entity, entityID, action string) {
	if audit == nil {
		return
	}
	if err := audit.Save(ctx, actor, entity, entityID, action); err != nil {
		logger.Log.Errorw("failed to write audit row",
			"actor", actor,
			"entity", entity,
			"entity_id", entityID,
			"action", action,
			"error", err,
		)
	}
}
