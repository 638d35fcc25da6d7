package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/config"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/api/handler"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时登录/注册不限流
func Setup(cfg *config.Config, h *handler.Handler, authenticator middleware.Authenticator, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", h.Health.Health)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		if cfg.RateLimit.Enabled {
			auth.Use(middleware.RateLimit(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window, logger))
		}
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.SessionAuth(authenticator))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 员工模块
			staff := authorized.Group("/staff")
			{
				staff.GET("", h.Staff.ListStaff)
				staff.GET("/:id", h.Staff.GetStaff)
				staff.POST("", h.Staff.CreateStaff)
				staff.PUT("/:id", h.Staff.UpdateStaff)
				staff.DELETE("/:id", h.Staff.DeleteStaff)
			}

			// 班次模块
			shifts := authorized.Group("/shifts")
			{
				shifts.GET("", h.Shift.ListShifts)
				shifts.GET("/:id", h.Shift.GetShift)
				shifts.POST("", h.Shift.CreateShift)
				shifts.PUT("/:id", h.Shift.UpdateShift)
				shifts.DELETE("/:id", h.Shift.DeleteShift)
			}

			// 排班模块
			assignments := authorized.Group("/assignments")
			{
				assignments.GET("", h.Assignment.ListAssignments)
				assignments.GET("/:id", h.Assignment.GetAssignment)
				assignments.POST("", h.Assignment.CreateAssignment)
				assignments.PUT("/:id", h.Assignment.UpdateAssignment)
				assignments.DELETE("/:id", h.Assignment.DeleteAssignment)
			}
			authorized.GET("/schedule", h.Assignment.Schedule)

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/calendar.ics", h.Export.ExportCalendar)
				export.GET("/:dataset", h.Export.Export)
			}
		}
	}

	return r
}
