package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursepro_backend/internal/config"
	"coursepro_backend/internal/controller"
	"coursepro_backend/internal/repository"
	"coursepro_backend/internal/service"
	"coursepro_backend/pkg/database"
	"coursepro_backend/pkg/logger"
	"coursepro_backend/pkg/monitoring"
	"coursepro_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	cfg    *config.Config
	db     *gorm.DB
	router *gin.Engine
	tp     *trace.TracerProvider
}

type controllers struct {
	health         *controller.HealthController
	auth           *controller.AuthController
	user           *controller.UserController
	course         *controller.CourseController
	test           *controller.TestController
	recommendation *controller.RecommendationController
	feedback       *controller.FeedbackController
	analytics      *controller.AnalyticsController
}

// buildControllers wires repositories into services into controllers. Shared
// between the real app and the test harness.
func buildControllers(db *gorm.DB, cfg *config.Config) *controllers {
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	testRepo := repository.NewTestRepository(db)
	recRepo := repository.NewRecommendationRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	authSvc := service.NewAuthService(userRepo, &cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	courseSvc := service.NewCourseService(courseRepo)
	recSvc := service.NewRecommendationService(recRepo, userRepo, courseRepo)
	testSvc := service.NewTestService(testRepo, userRepo, recSvc)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, recRepo)
	analyticsSvc := service.NewAnalyticsService(userRepo, courseRepo, testRepo, recRepo)

	return &controllers{
		health:         controller.NewHealthController(db),
		auth:           controller.NewAuthController(authSvc),
		user:           controller.NewUserController(userSvc),
		course:         controller.NewCourseController(courseSvc),
		test:           controller.NewTestController(testSvc),
		recommendation: controller.NewRecommendationController(recSvc),
		feedback:       controller.NewFeedbackController(feedbackSvc),
		analytics:      controller.NewAnalyticsController(analyticsSvc),
	}
}

func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, db: db}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("coursepro-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Warn("tracing disabled, collector unreachable", zap.Error(err))
		} else {
			a.tp = tp
		}
	}

	monitoring.Init()
	a.router = NewRouter(db, cfg)
	return a, nil
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.cfg.Server.Port,
		Handler: a.router,
	}

	go func() {
		logger.Log.Info("server starting", zap.String("port", a.cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForSignal()

	logger.Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("forced shutdown", zap.Error(err))
	}
	if a.tp != nil {
		if err := a.tp.Shutdown(ctx); err != nil {
			logger.Log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}
	database.Close(a.db)
	return nil
}

func waitForSignal() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
