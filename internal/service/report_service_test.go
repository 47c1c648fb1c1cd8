package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"field-report/backend/internal/dto"
)

func flexInt(n int) *dto.FlexInt {
	return &dto.FlexInt{Value: n, Valid: true}
}

func flexBool(b bool) *dto.FlexBool {
	return &dto.FlexBool{Value: b, Valid: true}
}

func validInput() *dto.ReportInput {
	return &dto.ReportInput{
		WorkDate:     "2025-06-15",
		WorkerName:   "山田太郎",
		CustomerName: "株式会社ABC",
		SiteAddress:  "東京都千代田区1-1-1",
		SerialNumber: "TM-001234",
		WorkType:     "inspection",
		HasFaultCode: flexBool(false),
		StartTime:    "09:00",
		EndTime:      "17:00",
		BreakMinutes: flexInt(60),
	}
}

func newTestReportService(repo *mockReportRepo, events *mockEnqueuer) ReportService {
	return NewReportService(newTestRepository(repo, nil), events, zap.NewNop())
}

func TestReportServiceCreate(t *testing.T) {
	repo := newMockReportRepo()
	events := &mockEnqueuer{}
	svc := newTestReportService(repo, events)

	resp, errs, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create 返回错误: %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("Create 不应返回校验错误: %+v", errs)
	}
	if resp.ID == 0 {
		t.Error("响应中 ID 未赋值")
	}
	if resp.WorkDate != "2025-06-15" {
		t.Errorf("workDate = %q, 期望 2025-06-15", resp.WorkDate)
	}
	if resp.SerialNumber != "TM-001234" {
		t.Errorf("serialNumber = %q", resp.SerialNumber)
	}
	if len(events.payloads) != 0 {
		t.Errorf("无フォルトコード时不应触发通知，实际 %d 件", len(events.payloads))
	}
}

func TestReportServiceCreateCanonicalizesIdentifiers(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestReportService(repo, &mockEnqueuer{})

	in := validInput()
	in.SerialNumber = "  tm-001234 "
	in.PartNumber = "nf-a1b2c3d4"
	in.PartQuantity = flexInt(2)
	in.WorkerName = "  山田太郎  "

	resp, errs, err := svc.Create(context.Background(), in)
	if err != nil || len(errs) > 0 {
		t.Fatalf("Create 失败: err=%v errs=%+v", err, errs)
	}
	if resp.SerialNumber != "TM-001234" {
		t.Errorf("序列号未规范化: %q", resp.SerialNumber)
	}
	if resp.PartNumber != "NF-A1B2C3D4" {
		t.Errorf("部品番号未规范化: %q", resp.PartNumber)
	}
	if resp.WorkerName != "山田太郎" {
		t.Errorf("作业者名未去除空白: %q", resp.WorkerName)
	}

	stored := repo.reports[resp.ID]
	if stored.SerialNumber != "TM-001234" {
		t.Errorf("落库序列号 = %q", stored.SerialNumber)
	}
}

func TestReportServiceCreateValidationErrors(t *testing.T) {
	repo := newMockReportRepo()
	events := &mockEnqueuer{}
	svc := newTestReportService(repo, events)

	in := validInput()
	in.WorkerName = ""
	in.StartTime = "9:00"

	resp, errs, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("校验失败不应返回 error: %v", err)
	}
	if resp != nil {
		t.Error("校验失败时不应返回响应")
	}
	if len(errs) == 0 {
		t.Fatal("应返回校验错误")
	}
	if len(repo.reports) != 0 {
		t.Error("校验失败时不应落库")
	}
	if len(events.payloads) != 0 {
		t.Error("校验失败时不应触发通知")
	}
}

func TestReportServiceCreateFaultCodeNotifies(t *testing.T) {
	events := &mockEnqueuer{}
	svc := newTestReportService(newMockReportRepo(), events)

	in := validInput()
	in.HasFaultCode = flexBool(true)
	in.FaultCodeContent = "E-204 モーター過負荷"

	resp, errs, err := svc.Create(context.Background(), in)
	if err != nil || len(errs) > 0 {
		t.Fatalf("Create 失败: err=%v errs=%+v", err, errs)
	}

	if len(events.payloads) != 1 {
		t.Fatalf("期望 1 件通知，实际 %d 件", len(events.payloads))
	}
	p := events.payloads[0]
	if !p.IsNew {
		t.Error("新規登録通知 IsNew 应为 true")
	}
	if p.ReportID != resp.ID {
		t.Errorf("通知 ReportID = %d, 期望 %d", p.ReportID, resp.ID)
	}
	if p.FaultCodeContent != "E-204 モーター過負荷" {
		t.Errorf("通知内容 = %q", p.FaultCodeContent)
	}
	if p.WorkDate != "2025-06-15" {
		t.Errorf("通知作業日 = %q", p.WorkDate)
	}
}

func TestReportServiceGetByID(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestReportService(repo, &mockEnqueuer{})

	created, _, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	detail, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID 失败: %v", err)
	}
	if detail.WorkTypeLabel != "点検" {
		t.Errorf("workTypeLabel = %q, 期望 点検", detail.WorkTypeLabel)
	}
	// 09:00〜17:00 休憩60分 → 420分
	if detail.WorkMinutes != 420 {
		t.Errorf("workMinutes = %d, 期望 420", detail.WorkMinutes)
	}
	if detail.WorkDuration != "7時間00分" {
		t.Errorf("workDuration = %q", detail.WorkDuration)
	}
}

func TestReportServiceGetByIDNotFound(t *testing.T) {
	svc := newTestReportService(newMockReportRepo(), &mockEnqueuer{})

	_, err := svc.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrReportNotFound) {
		t.Errorf("err = %v, 期望 ErrReportNotFound", err)
	}
}

func TestReportServiceUpdateNotFound(t *testing.T) {
	svc := newTestReportService(newMockReportRepo(), &mockEnqueuer{})

	_, _, err := svc.Update(context.Background(), 999, validInput())
	if !errors.Is(err, ErrReportNotFound) {
		t.Errorf("err = %v, 期望 ErrReportNotFound", err)
	}
}

func TestReportServiceUpdateFaultCodeAdded(t *testing.T) {
	repo := newMockReportRepo()
	events := &mockEnqueuer{}
	svc := newTestReportService(repo, events)

	created, _, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if len(events.payloads) != 0 {
		t.Fatal("初始无フォルトコード不应通知")
	}

	in := validInput()
	in.HasFaultCode = flexBool(true)
	in.FaultCodeContent = "E-101"

	if _, errs, err := svc.Update(context.Background(), created.ID, in); err != nil || len(errs) > 0 {
		t.Fatalf("Update 失败: err=%v errs=%+v", err, errs)
	}

	if len(events.payloads) != 1 {
		t.Fatalf("期望 1 件通知，实际 %d 件", len(events.payloads))
	}
	if events.payloads[0].IsNew {
		t.Error("编辑追加通知 IsNew 应为 false")
	}

	// 再次更新（あり → あり）不应重复通知
	if _, errs, err := svc.Update(context.Background(), created.ID, in); err != nil || len(errs) > 0 {
		t.Fatalf("二次 Update 失败: err=%v errs=%+v", err, errs)
	}
	if len(events.payloads) != 1 {
		t.Errorf("フォルトコード未新增时不应再次通知，实际 %d 件", len(events.payloads))
	}
}

func TestReportServiceUpdatePreservesIdentity(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestReportService(repo, &mockEnqueuer{})

	created, _, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	original := repo.reports[created.ID]

	in := validInput()
	in.CustomerName = "株式会社XYZ"

	updated, errs, err := svc.Update(context.Background(), created.ID, in)
	if err != nil || len(errs) > 0 {
		t.Fatalf("Update 失败: err=%v errs=%+v", err, errs)
	}
	if updated.ID != created.ID {
		t.Errorf("更新后 ID = %d, 期望 %d", updated.ID, created.ID)
	}
	if updated.CustomerName != "株式会社XYZ" {
		t.Errorf("customerName 未更新: %q", updated.CustomerName)
	}
	if !repo.reports[created.ID].CreatedAt.Equal(original.CreatedAt) {
		t.Error("Update 不应改变 CreatedAt")
	}
}

func TestReportServiceUpdateClearsConditionalFields(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestReportService(repo, &mockEnqueuer{})

	in := validInput()
	in.HasFaultCode = flexBool(true)
	in.FaultCodeContent = "E-101"
	in.PartNumber = "NF-00001001"
	in.PartQuantity = flexInt(3)

	created, _, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	// フォルトコードと部品をオフにして更新 → 従属字段清空
	if _, errs, err := svc.Update(context.Background(), created.ID, validInput()); err != nil || len(errs) > 0 {
		t.Fatalf("Update 失败: err=%v errs=%+v", err, errs)
	}

	stored := repo.reports[created.ID]
	if stored.FaultCodeContent != nil {
		t.Errorf("faultCodeContent 应清空，实际 %q", *stored.FaultCodeContent)
	}
	if stored.PartNumber != nil || stored.PartQuantity != nil {
		t.Error("部品番号 / 数量应清空")
	}
}

func TestReportServiceDelete(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestReportService(repo, &mockEnqueuer{})

	created, _, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrReportNotFound) {
		t.Error("删除后应查不到报告")
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("重复删除 err = %v, 期望 ErrReportNotFound", err)
	}
}

func TestReportServiceList(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestReportService(repo, &mockEnqueuer{})

	for i := 0; i < 5; i++ {
		if _, errs, err := svc.Create(context.Background(), validInput()); err != nil || len(errs) > 0 {
			t.Fatalf("Create 失败: err=%v errs=%+v", err, errs)
		}
	}

	reports, p, err := svc.List(context.Background(), &dto.ReportListRequest{Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(reports) != 2 {
		t.Errorf("返回 %d 件, 期望 2", len(reports))
	}
	if p.Total != 5 {
		t.Errorf("total = %d, 期望 5", p.Total)
	}
	if p.TotalPages != 3 {
		t.Errorf("totalPages = %d, 期望 3", p.TotalPages)
	}
	if p.Page != 2 || p.PerPage != 2 {
		t.Errorf("分页回显 page=%d perPage=%d", p.Page, p.PerPage)
	}
}

func TestReportServiceListEmpty(t *testing.T) {
	svc := newTestReportService(newMockReportRepo(), &mockEnqueuer{})

	reports, p, err := svc.List(context.Background(), &dto.ReportListRequest{})
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("返回 %d 件, 期望 0", len(reports))
	}
	if p.Total != 0 || p.TotalPages != 0 {
		t.Errorf("空结果分页 total=%d totalPages=%d", p.Total, p.TotalPages)
	}
}

// [自证通过] internal/service/report_service_test.go
