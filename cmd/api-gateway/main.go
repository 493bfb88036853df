package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/spk-skripsi/exam-dss-api/api/swagger"
	"github.com/spk-skripsi/exam-dss-api/internal/handler"
	internalmiddleware "github.com/spk-skripsi/exam-dss-api/internal/middleware"
	"github.com/spk-skripsi/exam-dss-api/internal/service"
	"github.com/spk-skripsi/exam-dss-api/pkg/config"
	"github.com/spk-skripsi/exam-dss-api/pkg/logger"
	corsmiddleware "github.com/spk-skripsi/exam-dss-api/pkg/middleware/cors"
	reqidmiddleware "github.com/spk-skripsi/exam-dss-api/pkg/middleware/requestid"
)

// @title Thesis Defense Scheduling API
// @version 1.0.0
// @description Decision support system for thesis defense scheduling with AHP weighting and SAW/TOPSIS examiner ranking.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	evaluatorSvc := service.NewExaminerEvaluatorService(nil, logr)
	schedulerSvc := service.NewSchedulerService(evaluatorSvc, nil, logr, metricsSvc, service.SchedulerConfig{
		SolutionTTL:  cfg.Scheduler.SolutionTTL,
		QueueWorkers: cfg.Scheduler.QueueWorkers,
	})
	analysisSvc := service.NewAnalysisService(schedulerSvc, nil, logr)
	exportSvc := service.NewExportService(schedulerSvc, nil, nil, logr)
	ahpSvc := service.NewAHPService(nil, logr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	schedulerSvc.StartWorkers(ctx)
	defer schedulerSvc.StopWorkers()

	scheduleHandler := handler.NewScheduleHandler(schedulerSvc, analysisSvc, exportSvc)
	evaluationHandler := handler.NewEvaluationHandler(evaluatorSvc)
	ahpHandler := handler.NewAHPHandler(ahpSvc)
	criteriaHandler := handler.NewCriteriaHandler()
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/schedule/generate", scheduleHandler.Generate)
		api.POST("/schedule/generate-async", scheduleHandler.GenerateAsync)
		api.GET("/schedule/solutions/:id", scheduleHandler.GetSolution)
		api.GET("/schedule/solutions/:id/export", scheduleHandler.Export)
		api.POST("/analyze-schedule", scheduleHandler.Analyze)
		api.POST("/evaluate-examiners", evaluationHandler.Evaluate)
		api.POST("/ahp/weights", ahpHandler.Weights)
		api.GET("/criteria", criteriaHandler.Criteria)
		api.GET("/methods", criteriaHandler.Methods)
		api.GET("/sample-data", criteriaHandler.SampleData)
		api.GET("/stats", metricsHandler.Snapshot)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
