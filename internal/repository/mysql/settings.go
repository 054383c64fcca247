package mysql

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/repository/mysql/model"
)

const settingCommentsEnabled = "comments_enabled"

type siteConfigRepository struct {
	DB *gorm.DB
}

var _ domain.SiteConfig = (*siteConfigRepository)(nil)

func NewSiteConfigRepository(db *gorm.DB) *siteConfigRepository {
	return &siteConfigRepository{
		DB: db,
	}
}

// CommentsEnabled reads the site-wide switch. Commenting defaults to enabled
// when the setting row or table is absent.
func (r *siteConfigRepository) CommentsEnabled(ctx context.Context) bool {
	var row model.SiteSetting
	err := dbFrom(ctx, r.DB).First(&row, "name = ?", settingCommentsEnabled).Error
	if err != nil {
		if !isMissingSchemaObject(err) && err != gorm.ErrRecordNotFound {
			logrus.Warnf("failed to read %s setting: %v", settingCommentsEnabled, err)
		}
		return true
	}
	return row.Value != "0" && row.Value != "false"
}
