package model

import "time"

// localStorageの1キー分（gormで保存）
type StorageEntry struct {
	Key       string    `gorm:"column:storage_key;primaryKey;type:varchar(255)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (StorageEntry) TableName() string {
	return "local_storage"
}
