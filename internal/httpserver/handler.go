package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "sccse-chatbot/internal/chat/delivery/http"
	userHTTP "sccse-chatbot/internal/user/delivery/http"
	userSQLite "sccse-chatbot/internal/user/repository/sqlite"
	userUC "sccse-chatbot/internal/user/usecase"
)

func (srv HTTPServer) mapHandlers(ctx context.Context) error {
	srv.registerMiddlewares(ctx)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(ctx context.Context) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.Metrics())
	srv.gin.Use(srv.mw.CORS())

	srv.l.Infof(ctx, "Middlewares registered (environment: %s)", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.welcome)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(ctx context.Context) error {
	api := srv.gin.Group("/api/v1")

	if err := srv.setupUserDomain(ctx, api); err != nil {
		return err
	}
	srv.setupChatDomain(ctx, api)

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.mw.RateLimit(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	if srv.testHandler != nil {
		testGroup := srv.gin.Group("/test")
		testGroup.POST("/classify", srv.testHandler.HandleClassify)
		testGroup.GET("/health", srv.testHandler.HandleHealthCheck)
		srv.l.Infof(ctx, "Test routes registered under /test")
	}

	return nil
}

// setupUserDomain wires repository, use case and handler for /api/v1/auth.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup) error {
	repo, err := userSQLite.New(ctx, srv.db, srv.l)
	if err != nil {
		return fmt.Errorf("user domain: %w", err)
	}
	uc := userUC.New(srv.l, repo, 0)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api.Group("/auth"), h, srv.mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}

// setupChatDomain registers /api/v1/chat.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered")
}
