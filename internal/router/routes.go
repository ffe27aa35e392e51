package router

import (
	"context"
	"log/slog"

	"github.com/insure-planner/go-api-server/internal/config"
	"github.com/insure-planner/go-api-server/internal/customer"
	"github.com/insure-planner/go-api-server/internal/insight"
	"github.com/insure-planner/go-api-server/internal/meta"
	"github.com/insure-planner/go-api-server/internal/notice"
	"github.com/insure-planner/go-api-server/internal/session"
	"github.com/insure-planner/go-api-server/internal/shared/middleware"
	"github.com/insure-planner/go-api-server/internal/shared/token"
	"github.com/insure-planner/go-api-server/internal/sms"
	"github.com/insure-planner/go-api-server/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all application-specific routes using dependency injection.
// It returns the notice rotator so the caller can stop it on shutdown.
func Setup(router *gin.Engine, cfg *config.Config, db *storage.DB) *notice.Rotator {
	ctx := context.Background()

	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// repository
	store := storage.NewSlotStore(db.DB)
	customerRepository := customer.NewCustomerRepository(store)
	customerRepository.Initialize(ctx)
	noticeRepository := notice.NewNoticeRepository(store)
	noticeRepository.Initialize(ctx)
	profileRepository := session.NewProfileRepository(store)

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	customerService := customer.NewCustomerService(customerRepository)
	sessionService := session.NewSessionService(profileRepository, tokenManager, customerRepository)
	insightService := insight.NewInsightService(newGenerator(ctx, cfg), customerRepository, cfg.Insight.Timeout)

	rotator := notice.NewRotator(noticeRepository, notice.DefaultRotateInterval)
	rotator.Start()

	// handler
	customerHandler := customer.NewCustomerHandler(customerService)
	noticeHandler := notice.NewNoticeHandler(noticeRepository, rotator)
	sessionHandler := session.NewSessionHandler(sessionService)
	insightHandler := insight.NewInsightHandler(insightService)
	smsHandler := sms.NewSmsHandler(customerRepository)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/login", sessionHandler.Login)
		authV1.POST("/logout", middleware.JWT(cfg), sessionHandler.Logout)
		authV1.GET("/me", middleware.JWT(cfg), sessionHandler.Me)
	}
	router.GET("/api/v1/sync", sessionHandler.SyncStatus)

	customerV1 := router.Group("/api/v1/customers")
	{
		customerV1.GET("", customerHandler.List)
		customerV1.POST("", customerHandler.Create)
		customerV1.GET("/stats", customerHandler.Stats)
		customerV1.GET("/suggestions", customerHandler.Suggestions)
		customerV1.GET("/:id", customerHandler.Get)
		customerV1.PUT("/:id", customerHandler.Update)
		customerV1.DELETE("/:id", customerHandler.Delete)
		customerV1.GET("/:id/network", customerHandler.Network)
		customerV1.POST("/:id/contracts", customerHandler.AddContract)
		customerV1.PUT("/:id/contracts/:contractId", customerHandler.UpdateContract)
		customerV1.DELETE("/:id/contracts/:contractId", customerHandler.DeleteContract)
		customerV1.POST("/:id/history", customerHandler.AddHistory)
		customerV1.POST("/:id/touch", customerHandler.Touch)
	}

	noticeV1 := router.Group("/api/v1/notices")
	{
		noticeV1.GET("", noticeHandler.List)
		noticeV1.POST("", noticeHandler.Add)
		noticeV1.DELETE("/:id", noticeHandler.Delete)
	}

	insightV1 := router.Group("/api/v1/insights")
	{
		insightV1.GET("", insightHandler.Latest)
		insightV1.POST("/refresh", insightHandler.Refresh)
	}

	messageV1 := router.Group("/api/v1/messages")
	{
		messageV1.GET("/templates", smsHandler.Templates)
		messageV1.POST("/compose", smsHandler.Compose)
	}

	return rotator
}

// newGenerator builds the Gemini client when an API key is configured.
// Without a key the insight service serves its fixed fallback text.
func newGenerator(ctx context.Context, cfg *config.Config) insight.Generator {
	if cfg.Insight.APIKey == "" {
		slog.Warn("GEMINI_API_KEY 미설정 - AI 인사이트는 안내 문구로 대체됩니다")
		return nil
	}

	generator, err := insight.NewGeminiGenerator(ctx, cfg.Insight)
	if err != nil {
		slog.Error("Gemini 클라이언트 생성 실패", "error", err)
		return nil
	}
	return generator
}
