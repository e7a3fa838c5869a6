package routes

import (
	"fmt"
	"time"

	_ "github.com/damoang/angple-forum/docs" // swagger spec
	"github.com/damoang/angple-forum/internal/config"
	"github.com/damoang/angple-forum/internal/handler"
	"github.com/damoang/angple-forum/internal/middleware"
	"github.com/damoang/angple-forum/internal/service"
	"github.com/damoang/angple-forum/internal/view"
	pkgcache "github.com/damoang/angple-forum/pkg/cache"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// devOrigin is the frontend dev server allowed when no origins are configured
const devOrigin = "http://localhost:3000"

// NewEngine builds the gin engine with middleware, templates and all routes.
// cache is only used for health reporting and may be nil.
func NewEngine(cfg *config.Config, svc *service.ListingService, cache pkgcache.Service) (*gin.Engine, error) {
	tmpl, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	// Paths match the route table exactly; /boards/ is not /boards.
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	// CORS 설정: no origins configured means no CORS, except in development
	origins := cfg.CORS.AllowOriginList()
	if len(origins) == 0 && cfg.IsDevelopment() {
		origins = []string{devOrigin}
	}
	if len(origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  origins,
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	// Middleware
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", handler.NewHealthHandler(cache).Check)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	Setup(router,
		handler.NewPageHandler(svc, NavLinks()),
		handler.NewListingHandler(svc),
		handler.NewForumHandler(svc),
	)
	return router, nil
}
