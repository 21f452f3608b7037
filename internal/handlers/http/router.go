package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/cofflyze/cofflyze-api/docs" // registra a especificação OpenAPI
	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/handlers/dto"
	"github.com/cofflyze/cofflyze-api/internal/handlers/middleware"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/i18n"
)

// RouterConfig reúne as dependências do roteador
type RouterConfig struct {
	Env                string
	BaseURL            string
	CORSAllowedOrigins string
	MaxMultipartMemory int64

	Logger   ports.Logger
	I18n     *i18n.Service
	Gatherer prometheus.Gatherer
	// HealthCheck verifica dependências externas; nil considera sempre saudável
	HealthCheck func(ctx context.Context) error

	Users    *UserHandler
	History  *HistoryHandler
	Articles *ArticleHandler
}

// NewRouter monta o engine do Gin com middlewares e rotas
func NewRouter(cfg RouterConfig) *gin.Engine {
	dto.RegisterValidators()

	router := gin.New()
	if cfg.MaxMultipartMemory > 0 {
		router.MaxMultipartMemory = cfg.MaxMultipartMemory
	}

	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(cfg.Logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, cfg.BaseURL)
		c.Next()
	})

	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, dto.T(c, "message.welcome"))
	})

	router.GET("/health", func(c *gin.Context) {
		if cfg.HealthCheck != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := cfg.HealthCheck(ctx); err != nil {
				cfg.Logger.Warn("health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "env": cfg.Env})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": cfg.Env})
	})

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := router.Group("/users")
	{
		users.POST("", cfg.Users.CreateUser)
		users.GET("", cfg.Users.ListUsers)
		users.GET("/:token", cfg.Users.GetUser)
		users.PUT("/:token", cfg.Users.UpdateUser)
		users.DELETE("/:id", cfg.Users.DeleteUser)
	}

	history := router.Group("/history")
	{
		history.POST("", cfg.History.CreateHistory)
		history.GET("", cfg.History.ListHistory)
		history.GET("/:token", cfg.History.ListHistoryByToken)
		history.GET("/:token/:id", cfg.History.GetHistory)
		history.DELETE("/:id", cfg.History.DeleteHistory)
	}

	articles := router.Group("/articles")
	{
		articles.POST("", cfg.Articles.CreateArticle)
		articles.GET("", cfg.Articles.ListArticles)
		articles.GET("/:id", cfg.Articles.GetArticle)
		articles.PUT("/:id", cfg.Articles.UpdateArticle)
		articles.DELETE("/:id", cfg.Articles.DeleteArticle)
	}

	return router
}
