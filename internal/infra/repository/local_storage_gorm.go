package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocalStorageGormRepository struct {
	db *gorm.DB
}

// DI
func NewLocalStorageGormRepository(db *gorm.DB) *LocalStorageGormRepository {
	return &LocalStorageGormRepository{db: db}
}

// テーブル作成
func (r *LocalStorageGormRepository) Migrate() error {
	return r.db.AutoMigrate(&model.StorageEntry{})
}

func (r *LocalStorageGormRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var e model.StorageEntry
	err := r.db.WithContext(ctx).Where("storage_key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(e.Value), nil
}

// 同じキーは上書き
func (r *LocalStorageGormRepository) Set(ctx context.Context, key string, value []byte) error {
	e := model.StorageEntry{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&e).Error
}

// 無いキーの削除はエラーにしない
func (r *LocalStorageGormRepository) Remove(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&model.StorageEntry{}).Error
}
