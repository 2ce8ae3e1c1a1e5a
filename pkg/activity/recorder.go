package activity

import (
	"context"

	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/internal/metrics"
)

type bestEffort struct {
	store  Store
	logger *zap.Logger
}

// NewRecorder returns a Recorder that logs and counts store failures instead
// of returning them.
func NewRecorder(store Store, logger *zap.Logger) Recorder {
	return &bestEffort{store: store, logger: logger}
}

func (r *bestEffort) Audit(ctx context.Context, entry *AuditEntry) {
	if err := r.store.InsertAuditLog(ctx, entry); err != nil {
		metrics.SideEffectFailures.WithLabelValues("audit").Inc()
		fields := []zap.Field{zap.String("action", entry.Action), zap.Error(err)}
		if entry.UserID != nil {
			fields = append(fields, zap.String("user_id", entry.UserID.String()))
		}
		r.logger.Warn("failed to write audit log", fields...)
	}
}

func (r *bestEffort) Record(ctx context.Context, act *Activity) {
	if err := r.store.InsertActivity(ctx, act); err != nil {
		metrics.SideEffectFailures.WithLabelValues("activity").Inc()
		r.logger.Warn("failed to write activity",
			zap.String("type", act.Type),
			zap.String("user_id", act.UserID.String()),
			zap.Error(err))
	}
}
