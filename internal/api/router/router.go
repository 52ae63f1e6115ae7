package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Angger-Raka/aplikasi-absensi/config"
	"github.com/Angger-Raka/aplikasi-absensi/internal/api/handler"
	"github.com/Angger-Raka/aplikasi-absensi/internal/api/middleware"
)

// Setup builds the gin engine
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxUploadMB << 20))

	// ── health ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		imports := v1.Group("/imports")
		{
			imports.POST("", h.Import.Import)
			imports.POST("/preview", h.Import.Preview)
			imports.GET("", h.Import.ListImports)
		}

		attendance := v1.Group("/attendance")
		{
			attendance.GET("", h.Attendance.ListRecords)
			attendance.PUT("/:id/review", h.Attendance.Review)
			attendance.POST("/:id/violations", h.Attendance.AddViolation)
		}

		v1.GET("/departments", h.Department.ListDepartments)

		reports := v1.Group("/reports")
		{
			reports.GET("/recap", h.Report.Recap)
			reports.GET("/recap/export", h.Report.ExportRecap)
			reports.GET("/violations", h.Report.Violations)
		}
	}

	return r
}
