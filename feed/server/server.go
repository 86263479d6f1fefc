package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/temanskyM/scheduler-manager/controllers"
	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/di"
	"github.com/temanskyM/scheduler-manager/middlewares"
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/res"
	"github.com/temanskyM/scheduler-manager/settings"
	"go.uber.org/zap"
)

const API_PREFIX = "/api/scheduler"

func NewRouter(container *di.Container, settingsData *settings.Settings) *gin.Engine {
	router := gin.New()
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
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://" + settingsData.CLIENT_URL,
			"https://" + settingsData.CLIENT_URL,
		},
		AllowMethods: []string{"OPTIONS", "POST", "DELETE"},
		AllowHeaders: []string{"*"},
		MaxAge:       12 * time.Hour,
	}))
	// Validators
	middlewares.InitValidators()
	// Routes
	scheduler := router.Group(API_PREFIX)
	records := router.Group(API_PREFIX+"/records/:kind", middlewares.ValidKind())
	{
		// Init controllers
		entryController := controllers.NewEntryController(container.Entry)
		recordsController := controllers.NewRecordsController(container.Records)
		scheduleController := controllers.NewScheduleController(container.Scheduler)
		exportController := controllers.NewExportController(container.Export)
		// Define routes
		// Entry, one per record kind: /students, /teachers, /subjects, /classrooms
		for _, kind := range models.Kinds() {
			scheduler.POST("/"+kind.Collection, entryController.Add(kind))
		}
		// Records
		records.DELETE("/:id", recordsController.DeleteRecord)
		// Schedule
		scheduler.POST("/schedule", scheduleController.WriteSchedule)
		// Export
		scheduler.POST("/export/upload", exportController.Upload)
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

	// Init server
	if err := NewRouter(container, settingsData).Run(); err != nil {
		logger.Fatal("Error init server", zap.Error(err))
	}
}
