package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/repository/mysql/model"
)

type auditLogRepository struct {
	DB *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *auditLogRepository {
	return &auditLogRepository{
		DB: db,
	}
}

// StoreBatch inserts audit events in one statement. Best-effort by contract;
// the caller logs and drops on failure.
func (r *auditLogRepository) StoreBatch(ctx context.Context, events []domain.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]*model.AuditLog, len(events))
	for i := range events {
		rows[i] = model.NewAuditLogFromDomain(events[i])
	}
	return schemaErr(dbFrom(ctx, r.DB).Create(&rows).Error)
}
