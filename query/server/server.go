package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/temanskyM/scheduler-manager/controllers"
	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/di"
	"github.com/temanskyM/scheduler-manager/middlewares"
	"github.com/temanskyM/scheduler-manager/res"
	"github.com/temanskyM/scheduler-manager/settings"
	"go.uber.org/zap"
)

const API_PREFIX = "/api/scheduler"

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, &res.Response{
		Success: false,
		Message: "Too many requests. Try again in " + time.Until(info.ResetTime).String(),
	})
}

func NewRouter(container *di.Container, settingsData *settings.Settings) *gin.Engine {
	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"localhost"})
	// Zap looger
	router.Use(ginzap.GinzapWithConfig(container.Logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{API_PREFIX + "/healthz", "/metrics"},
	}))
	router.Use(ginzap.RecoveryWithZap(container.Logger, true))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			c.String(http.StatusInternalServerError, fmt.Sprintf("Server Internal Error: %s", err))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success: false,
			Message: "Server Internal Error",
		})
	}))
	// CORS
	httpOrigin := "http://" + settingsData.CLIENT_URL
	httpsOrigin := "https://" + settingsData.CLIENT_URL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpOrigin, httpsOrigin},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		AllowWebSockets:  false,
		MaxAge:           12 * time.Hour,
	}))
	// Secure
	sslUrl := "ssl." + settingsData.CLIENT_URL
	secureConfig := secure.Config{
		SSLHost:              sslUrl,
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		IENoOpen:             true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		SSLProxyHeaders: map[string]string{
			"X-Fowarded-Proto": "https",
		},
	}
	if settingsData.IsProd() {
		secureConfig.AllowedHosts = []string{
			settingsData.CLIENT_URL,
			sslUrl,
		}
	}
	router.Use(secure.New(secureConfig))
	// Rate limit
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: 7,
	})
	mw := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: ErrorHandler,
		KeyFunc:      keyFunc,
	})
	router.Use(mw)
	// Validators
	middlewares.InitValidators()
	// Routes
	scheduler := router.Group(API_PREFIX)
	records := router.Group(API_PREFIX+"/records/:kind", middlewares.ValidKind())
	export := router.Group(API_PREFIX + "/export")
	{
		// Init controllers
		recordsController := controllers.NewRecordsController(container.Records)
		searchController := controllers.NewSearchController(container.Search)
		exportController := controllers.NewExportController(container.Export)
		// Define routes
		// Kinds
		scheduler.GET("/kinds", controllers.GetKinds)
		// Records
		records.GET("", recordsController.GetRecords)
		records.GET("/:id", recordsController.GetRecord)
		// Search
		scheduler.GET("/search", searchController.Search)
		// Export
		export.GET("/xlsx", exportController.ExportWorkbook)
		export.GET("/pdf", exportController.ExportPDF)
		export.GET("/archive", exportController.ExportArchive)
	}
	// Route healthz
	router.GET(API_PREFIX+"/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, &res.Response{
			Success: true,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, res.Response{
			Success: false,
			Message: "Not found",
		})
	})
	return router
}

func Init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	settingsData := settings.GetSettings()
	if settingsData.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx, cancel := context.WithTimeout(context.Background(), db.MAX_CONNECT_ELAPSED)
	container, err := di.New(ctx, settingsData, logger)
	cancel()
	if err != nil {
		logger.Fatal("Error init dependencies", zap.Error(err))
	}
	defer container.Close(context.Background())
	// Nats
	if container.Nats != nil {
		if _, err := container.Responder.Subscribe(container.Nats); err != nil {
			logger.Fatal("Error subscribing get_records", zap.Error(err))
		}
	}

	// Init server
	if err := NewRouter(container, settingsData).Run(); err != nil {
		logger.Fatal("Error init server", zap.Error(err))
	}
}
