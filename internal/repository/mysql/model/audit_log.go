package model

import (
	"encoding/json"
	"time"

	"github.com/adiwarta/warta/domain"
)

type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	EventID   string    `gorm:"column:event_id;type:varchar(36);not null"`
	Action    string    `gorm:"type:varchar(45);not null"`
	Entity    string    `gorm:"type:varchar(45);not null"`
	EntityID  int64     `gorm:"column:entity_id;not null"`
	Metadata  string    `gorm:"type:text"`
	UserID    *int64    `gorm:"column:user_id"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

func NewAuditLogFromDomain(e domain.AuditEvent) *AuditLog {
	meta := ""
	if len(e.Metadata) > 0 {
		if raw, err := json.Marshal(e.Metadata); err == nil {
			meta = string(raw)
		}
	}
	return &AuditLog{
		EventID:   e.EventID,
		Action:    e.Action,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		Metadata:  meta,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
}
