package model

import "time"

type SiteSetting struct {
	Name      string    `gorm:"primaryKey;type:varchar(45)"`
	Value     string    `gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
