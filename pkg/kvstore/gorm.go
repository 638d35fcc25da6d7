package kvstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot kv_slots 表，一行一个槽位
type Slot struct {
	Key       string    `gorm:"column:slot_key;type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName 指定表名
func (Slot) TableName() string { return "kv_slots" }

// Gorm 基于关系库的实现（sqlite / postgres）
type Gorm struct {
	db *gorm.DB
}

// NewGorm 创建关系库网关；表结构由调用方负责迁移（AutoMigrate 或 golang-migrate）
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, error) {
	var slot Slot
	err := g.db.WithContext(ctx).
		Where("slot_key = ?", key).
		First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(slot.Value), nil
}

func (g *Gorm) Put(ctx context.Context, key string, value []byte) error {
	slot := Slot{Key: key, Value: string(value), UpdatedAt: time.Now()}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
}

func (g *Gorm) Delete(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).
		Where("slot_key = ?", key).
		Delete(&Slot{}).Error
}

// Close 关闭底层连接池
func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
