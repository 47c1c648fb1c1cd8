package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"field-report/backend/config"
	"field-report/backend/internal/model"
	"field-report/backend/pkg/database"
	applogger "field-report/backend/pkg/logger"
)

// 主数据初始投入（幂等：既存キーは维持）

func strPtr(s string) *string { return &s }

var serialNumbers = []model.SerialNumberMaster{
	{SerialNumber: "TM-001234", CustomerName: "株式会社ABC", Description: strPtr("本社設置機")},
	{SerialNumber: "TM-001235", CustomerName: "株式会社ABC", Description: strPtr("工場A設置機")},
	{SerialNumber: "TM-002100", CustomerName: "XYZ工業株式会社", Description: strPtr("第一倉庫")},
	{SerialNumber: "TM-002101", CustomerName: "XYZ工業株式会社", Description: strPtr("第二倉庫")},
	{SerialNumber: "TM-003500", CustomerName: "田中製作所", Description: strPtr("メイン機")},
	{SerialNumber: "TM-004200", CustomerName: "山田物流センター", Description: strPtr("入出庫エリア")},
	{SerialNumber: "TM-005000", CustomerName: "鈴木商事", Description: strPtr("本社ビル1F")},
	{SerialNumber: "TM-005001", CustomerName: "鈴木商事", Description: strPtr("本社ビル2F")},
	{SerialNumber: "TM-006300", CustomerName: "佐藤電機", Description: strPtr("検査室")},
	{SerialNumber: "TM-007000", CustomerName: "高橋工務店", Description: strPtr("資材置き場")},
}

var partNumbers = []model.PartNumberMaster{
	{PartNumber: "NF-00001001", PartName: "メインモーター", Description: strPtr("標準交換部品")},
	{PartNumber: "NF-00001002", PartName: "制御基板", Description: strPtr("メイン制御用")},
	{PartNumber: "NF-00002001", PartName: "センサーユニット", Description: strPtr("温度センサー付き")},
	{PartNumber: "NF-00002002", PartName: "電源ユニット", Description: strPtr("AC100V対応")},
	{PartNumber: "NF-00003001", PartName: "ファンモーター", Description: strPtr("冷却用")},
	{PartNumber: "NF-00003002", PartName: "ヒーターユニット", Description: strPtr("加熱用")},
	{PartNumber: "NF-00004001", PartName: "表示パネル", Description: strPtr("LCD表示器")},
	{PartNumber: "NF-00004002", PartName: "操作ボタン", Description: strPtr("タッチパネル式")},
	{PartNumber: "NF-00005001", PartName: "配線ケーブル", Description: strPtr("5m")},
	{PartNumber: "NF-00005002", PartName: "コネクタセット", Description: strPtr("標準規格")},
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	if err := seedSerialNumbers(db); err != nil {
		logger.Fatal("序列号主数据投入失败", zap.Error(err))
	}
	logger.Info("序列号主数据投入完成", zap.Int("count", len(serialNumbers)))

	if err := seedPartNumbers(db); err != nil {
		logger.Fatal("部品番号主数据投入失败", zap.Error(err))
	}
	logger.Info("部品番号主数据投入完成", zap.Int("count", len(partNumbers)))

	sqlDB.Close()
}

func seedSerialNumbers(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "serial_number"}},
		DoNothing: true,
	}).Create(&serialNumbers).Error
}

func seedPartNumbers(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "part_number"}},
		DoNothing: true,
	}).Create(&partNumbers).Error
}
