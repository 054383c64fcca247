package workers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/adiwarta/warta/domain"
)

// AuditStore persists batches of audit events.
type AuditStore interface {
	StoreBatch(ctx context.Context, events []domain.AuditEvent) error
}

type auditLogWorker struct {
	store AuditStore
	ch    chan domain.AuditEvent
}

var _ domain.AuditLogger = (*auditLogWorker)(nil)

func NewAuditLogWorker(store AuditStore) *auditLogWorker {
	return &auditLogWorker{
		store: store,
		ch:    make(chan domain.AuditEvent, 1024),
	}
}

// Record queues one audit event. Fire-and-forget: when the buffer is full
// the event is dropped rather than blocking the triggering operation.
func (w *auditLogWorker) Record(action, entity string, entityID int64, metadata map[string]any, userID *int64) {
	event := domain.AuditEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metadata,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	select {
	case w.ch <- event:
	default:
		logrus.Info("audit log worker's channel is full, event dropped")
	}
}

func (w *auditLogWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]domain.AuditEvent, 0, batchSize)
	for {
		select {
		case event := <-w.ch:
			batch = append(batch, event)
			if len(batch) == batchSize {
				w.flush(ctx, batch)
				batch = make([]domain.AuditEvent, 0, batchSize)
			}
		case <-ticker.C:
			w.flush(ctx, batch)
			batch = make([]domain.AuditEvent, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down audit log worker, flushing remaining events...")
			w.flush(context.Background(), batch)
			return
		}
	}
}

func (w *auditLogWorker) flush(ctx context.Context, batch []domain.AuditEvent) {
	if len(batch) == 0 {
		return
	}
	if err := w.store.StoreBatch(ctx, batch); err != nil {
		logrus.Warnf("failed to store %d audit events: %v", len(batch), err)
	}
}
