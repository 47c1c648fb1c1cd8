package dto

// ── マスタ模块 DTO ──

// SerialNumberMasterResponse 序列号主数据响应（输入建议用）
type SerialNumberMasterResponse struct {
	ID           uint   `json:"id"`
	SerialNumber string `json:"serialNumber"`
	CustomerName string `json:"customerName"`
	Description  string `json:"description,omitempty"`
}

// PartNumberMasterResponse 部品番号主数据响应（输入建议用）
type PartNumberMasterResponse struct {
	ID          uint   `json:"id"`
	PartNumber  string `json:"partNumber"`
	PartName    string `json:"partName"`
	Description string `json:"description,omitempty"`
}
