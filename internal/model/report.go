package model

import "time"

// ── 作业种类枚举 ──

const (
	WorkTypeAdjustment  = "adjustment"  // 調整
	WorkTypeReplacement = "replacement" // 部品交換
	WorkTypeInspection  = "inspection"  // 点検
	WorkTypeOther       = "other"       // その他
)

// WorkTypeLabels 作业种类 → 日文表示名
var WorkTypeLabels = map[string]string{
	WorkTypeAdjustment:  "調整",
	WorkTypeReplacement: "部品交換",
	WorkTypeInspection:  "点検",
	WorkTypeOther:       "その他",
}

// IsValidWorkType 判断是否为合法作业种类
func IsValidWorkType(workType string) bool {
	_, ok := WorkTypeLabels[workType]
	return ok
}

// FormatWorkType 返回作业种类的日文表示名；未知值原样返回
func FormatWorkType(workType string) string {
	if label, ok := WorkTypeLabels[workType]; ok {
		return label
	}
	return workType
}

// Report 作业报告表 — 对应 reports
//
// 不变量（由校验层 + Service 规范化共同保证）：
//   - WorkTypeOther 有值 ⇔ WorkType == other
//   - FaultCodeContent 仅在 HasFaultCode == true 时有意义，否则清空
//   - PartQuantity 有值 ⇔ PartNumber 有值，且 >= 1
//   - StartTime <= EndTime（零填充 HH:MM，字典序比较成立）
//   - SerialNumber / PartNumber 落库时始终带前缀且大写
type Report struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"   json:"id"`
	WorkDate         time.Time `gorm:"type:date;not null;index"   json:"-"`
	WorkerName       string    `gorm:"type:varchar(100);not null" json:"workerName"`
	CustomerName     string    `gorm:"type:varchar(200);not null" json:"customerName"`
	SiteAddress      string    `gorm:"type:varchar(500);not null" json:"siteAddress"`
	SerialNumber     string    `gorm:"type:varchar(9);not null"   json:"serialNumber"` // TM- + 6位
	WorkType         string    `gorm:"type:varchar(20);not null"  json:"workType"`
	WorkTypeOther    *string   `gorm:"type:varchar(500)"          json:"workTypeOther,omitempty"`
	HasFaultCode     bool      `gorm:"not null;default:false"     json:"hasFaultCode"`
	FaultCodeContent *string   `gorm:"type:text"                  json:"faultCodeContent,omitempty"`
	PartNumber       *string   `gorm:"type:varchar(11)"           json:"partNumber,omitempty"` // NF- + 8位
	PartQuantity     *int      `gorm:""                           json:"partQuantity,omitempty"`
	StartTime        string    `gorm:"type:varchar(5);not null"   json:"startTime"` // HH:MM
	EndTime          string    `gorm:"type:varchar(5);not null"   json:"endTime"`   // HH:MM
	BreakMinutes     int       `gorm:"not null;default:0"         json:"breakMinutes"`
	BaseModel
}

// TableName 指定表名
func (Report) TableName() string { return "reports" }

// [自证通过] internal/model/report.go
