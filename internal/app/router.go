package app

import (
	"time"

	"coursepro_backend/internal/config"
	"coursepro_backend/pkg/monitoring"
	"coursepro_backend/pkg/security"
	"coursepro_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "coursepro_backend/docs"
)

// NewRouter builds the fully wired gin engine. Tests call this directly with
// an in-memory database.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(security.CORS(cfg.CORS.AllowedOrigins))
	r.Use(security.Secure())
	if cfg.RateLimit.MaxRequests > 0 {
		r.Use(security.RateLimiter(cfg.RateLimit.MaxRequests,
			time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	}
	if cfg.Tracing.Enabled {
		r.Use(tracing.GinMiddleware())
	}
	r.Use(monitoring.MetricsMiddleware())

	ctls := buildControllers(db, cfg)

	api := r.Group("/api")
	{
		api.GET("/health", ctls.health.Check)

		auth := api.Group("/auth")
		{
			auth.POST("/login", ctls.auth.Login)
			auth.POST("/logout", ctls.auth.Logout)
			auth.GET("/profile", ctls.auth.Profile)
		}

		users := api.Group("/users")
		{
			users.GET("", ctls.user.List)
			users.POST("", ctls.user.Create)
			users.GET("/stats/overview", ctls.user.Stats)
			users.GET("/:id", ctls.user.Get)
			users.PUT("/:id", ctls.user.Update)
			users.PATCH("/:id/status", ctls.user.SetStatus)
			users.DELETE("/:id", ctls.user.Delete)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", ctls.course.List)
			courses.POST("", ctls.course.Create)
			courses.GET("/:id", ctls.course.Get)
			courses.PUT("/:id", ctls.course.Update)
			courses.DELETE("/:id", ctls.course.Delete)
		}

		tests := api.Group("/tests")
		{
			tests.GET("", ctls.test.List)
			tests.POST("", ctls.test.Create)
			tests.GET("/stats/overview", ctls.test.Stats)
			tests.DELETE("/questions/:questionId", ctls.test.DeleteQuestion)
			tests.GET("/:id", ctls.test.Get)
			tests.PUT("/:id", ctls.test.Update)
			tests.DELETE("/:id", ctls.test.Delete)
			tests.GET("/:id/questions", ctls.test.Questions)
			tests.POST("/:id/questions", ctls.test.AddQuestion)
			tests.POST("/:id/submit", ctls.test.Submit)
			tests.GET("/:id/attempts", ctls.test.Attempts)
		}

		recommendations := api.Group("/recommendations")
		{
			recommendations.GET("", ctls.recommendation.List)
			recommendations.POST("", ctls.recommendation.Create)
			recommendations.GET("/stats/overview", ctls.recommendation.Stats)
			recommendations.GET("/:id", ctls.recommendation.Get)
			recommendations.PUT("/:id/status", ctls.recommendation.SetStatus)
			recommendations.DELETE("/:id", ctls.recommendation.Delete)
		}

		feedback := api.Group("/feedback")
		{
			feedback.POST("/submit", ctls.feedback.Submit)
			feedback.GET("", ctls.feedback.List)
			feedback.GET("/stats/overview", ctls.feedback.Stats)
			feedback.GET("/:id", ctls.feedback.Get)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/system/overview", ctls.analytics.SystemOverview)
			analytics.GET("/users/analytics", ctls.analytics.UserAnalytics)
			analytics.GET("/courses/analytics", ctls.analytics.CourseAnalytics)
			analytics.GET("/recommendations/analytics", ctls.analytics.RecommendationAnalytics)
		}
	}

	r.GET("/metrics", monitoring.PrometheusHandler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func ginMode(mode string) string {
	switch mode {
	case "release", "test", "debug":
		return mode
	default:
		return gin.ReleaseMode
	}
}
