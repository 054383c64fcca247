package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/repository/mysql/model"
)

type notificationRepository struct {
	DB *gorm.DB
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (r *notificationRepository) Store(ctx context.Context, n *domain.Notification) error {
	row := model.NewNotificationFromDomain(n)
	if err := dbFrom(ctx, r.DB).Create(row).Error; err != nil {
		return schemaErr(err)
	}
	n.ID = row.ID
	return nil
}

func (r *notificationRepository) FetchByRecipient(ctx context.Context, userID, limit, beforeID int64) ([]domain.Notification, error) {
	query := dbFrom(ctx, r.DB).
		Model(&model.Notification{}).
		Where("recipient_id = ?", userID)
	if beforeID > 0 {
		query = query.Where("id < ?", beforeID)
	}
	var rows []model.Notification
	err := query.Order("id DESC").Limit(int(limit)).Find(&rows).Error
	if err != nil {
		return nil, schemaErr(err)
	}
	res := make([]domain.Notification, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.DB).
		Model(&model.Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	if err != nil {
		return 0, schemaErr(err)
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID int64, ids []int64, at time.Time) error {
	query := dbFrom(ctx, r.DB).
		Model(&model.Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", userID)
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	return schemaErr(query.Update("read_at", at).Error)
}
