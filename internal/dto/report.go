package dto

import (
	"bytes"
	"strconv"
)

// ── 作业报告模块 DTO ──

// FlexInt 宽松整数：接受 JSON 数值或数字字符串（画面提交两种形态都有）
// 指针为 nil 表示字段未提供；Valid=false 表示提供了但不是整数
type FlexInt struct {
	Value int
	Valid bool
}

// UnmarshalJSON 数值 / 数字字符串 → 整数；其余形态标记为无效而非解码失败，
// 让校验层以字段错误的形式报告
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	f.Value = n
	f.Valid = true
	return nil
}

// FlexBool 严格布尔：只接受 JSON true/false
// 指针为 nil 表示字段未提供；Valid=false 表示提供了但不是布尔
type FlexBool struct {
	Value bool
	Valid bool
}

// UnmarshalJSON true/false 之外的形态标记为无效，交由校验层报告
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		f.Value, f.Valid = true, true
	case "false":
		f.Value, f.Valid = false, true
	}
	return nil
}

// ReportInput 创建 / 更新作业报告请求体
// 必填约束不用 binding 标签表达：字段级规则（含条件必填与跨字段比较）
// 统一由 internal/validation 以有序错误列表形式报告
type ReportInput struct {
	WorkDate         string    `json:"workDate"`
	WorkerName       string    `json:"workerName"`
	CustomerName     string    `json:"customerName"`
	SiteAddress      string    `json:"siteAddress"`
	SerialNumber     string    `json:"serialNumber"`
	WorkType         string    `json:"workType"`
	WorkTypeOther    string    `json:"workTypeOther"`
	HasFaultCode     *FlexBool `json:"hasFaultCode"`
	FaultCodeContent string    `json:"faultCodeContent"`
	PartNumber       string    `json:"partNumber"`
	PartQuantity     *FlexInt  `json:"partQuantity"`
	StartTime        string    `json:"startTime"`
	EndTime          string    `json:"endTime"`
	BreakMinutes     *FlexInt  `json:"breakMinutes"`
}

// ReportListRequest 作业报告一览查询参数
type ReportListRequest struct {
	CustomerName string `form:"customerName"`
	SerialNumber string `form:"serialNumber"`
	PartNumber   string `form:"partNumber"`
	Page         int    `form:"page"    binding:"omitempty,min=1"`
	PerPage      int    `form:"perPage" binding:"omitempty,min=1,max=100"`
	SortBy       string `form:"sortBy"`
	SortOrder    string `form:"sortOrder"`
}

// GetPage 获取页码（含默认值，1 起始）
func (r *ReportListRequest) GetPage() int {
	if r.Page <= 0 {
		return 1
	}
	return r.Page
}

// GetPerPage 获取每页件数（含默认值）
func (r *ReportListRequest) GetPerPage() int {
	if r.PerPage <= 0 {
		return 20
	}
	return r.PerPage
}

// ReportResponse 作业报告响应
// workDate 截断为 YYYY-MM-DD，时间戳为 ISO 8601
type ReportResponse struct {
	ID               uint   `json:"id"`
	WorkDate         string `json:"workDate"`
	WorkerName       string `json:"workerName"`
	CustomerName     string `json:"customerName"`
	SiteAddress      string `json:"siteAddress"`
	SerialNumber     string `json:"serialNumber"`
	WorkType         string `json:"workType"`
	WorkTypeOther    string `json:"workTypeOther,omitempty"`
	HasFaultCode     bool   `json:"hasFaultCode"`
	FaultCodeContent string `json:"faultCodeContent,omitempty"`
	PartNumber       string `json:"partNumber,omitempty"`
	PartQuantity     *int   `json:"partQuantity,omitempty"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	BreakMinutes     int    `json:"breakMinutes"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// ReportDetailResponse 作业报告详情响应（含派生字段）
type ReportDetailResponse struct {
	ReportResponse
	WorkTypeLabel string `json:"workTypeLabel"` // 作业种类日文表示
	WorkMinutes   int    `json:"workMinutes"`   // 净作业分钟数
	WorkDuration  string `json:"workDuration"`  // "7時間00分" 形式
}
