package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/school-portal-api/api/swagger"
	"github.com/noah-isme/school-portal-api/internal/handler"
	"github.com/noah-isme/school-portal-api/internal/middleware"
	"github.com/noah-isme/school-portal-api/internal/seed"
	"github.com/noah-isme/school-portal-api/internal/service"
	"github.com/noah-isme/school-portal-api/internal/store"
	"github.com/noah-isme/school-portal-api/pkg/config"
	"github.com/noah-isme/school-portal-api/pkg/export"
	"github.com/noah-isme/school-portal-api/pkg/genai"
	"github.com/noah-isme/school-portal-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-portal-api/pkg/middleware/requestid"
	"github.com/noah-isme/school-portal-api/pkg/session"
)

// @title School Portal API
// @version 0.1.0
// @description School management portal backed by a deterministic mock dataset
// @BasePath /
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

	rng := rand.New(rand.NewSource(cfg.Seed.Value))
	snap, err := seed.NewGenerator(seedConfig(cfg), rng, time.Now()).Generate()
	if err != nil {
		logr.Sugar().Fatalw("dataset generation failed", "error", err)
	}
	st := store.New(snap, rng)
	logr.Sugar().Infow("dataset generated",
		"seed", cfg.Seed.Value,
		"classes", len(snap.Classes),
		"teachers", len(snap.Teachers()))

	sessions := newSessionRepository(cfg, logr)

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	authSvc := service.NewAuthService(st, sessions, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		SessionTTL: cfg.Session.TTL,
	})
	scheduleSvc := service.NewScheduleService(st, metricsSvc, logr)
	attendanceSvc := service.NewAttendanceService(st, validate, logr)
	leaveSvc := service.NewLeaveService(st, genai.NewClient(cfg.GenAI), metricsSvc, validate, logr)
	marksSvc := service.NewMarksService(st, validate, logr)
	announcementSvc := service.NewAnnouncementService(st, validate, logr)
	rosterSvc := service.NewRosterService(st, validate, logr)
	exportSvc := service.NewExportService(st, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r, cfg.APIPrefix, authSvc, handler.Set{
		Auth:         handler.NewAuthHandler(authSvc),
		Roster:       handler.NewRosterHandler(rosterSvc),
		Schedule:     handler.NewScheduleHandler(scheduleSvc),
		Attendance:   handler.NewAttendanceHandler(attendanceSvc),
		Leave:        handler.NewLeaveHandler(leaveSvc),
		Announcement: handler.NewAnnouncementHandler(announcementSvc),
		Marks:        handler.NewMarksHandler(marksSvc),
		Report:       handler.NewReportHandler(exportSvc, marksSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func seedConfig(cfg *config.Config) seed.Config {
	sc := seed.DefaultConfig()
	if cfg.Seed.StudentCountMin > 0 {
		sc.StudentCountMin = cfg.Seed.StudentCountMin
	}
	if cfg.Seed.StudentCountMax > 0 {
		sc.StudentCountMax = cfg.Seed.StudentCountMax
	}
	if cfg.Seed.AttendanceDays > 0 {
		sc.AttendanceDays = cfg.Seed.AttendanceDays
	}
	if cfg.Seed.MaxTeacherLoad > 0 {
		sc.MaxTeacherLoad = cfg.Seed.MaxTeacherLoad
	}
	return sc
}

// newSessionRepository prefers Redis and degrades to the in-memory store
// when the server is unreachable.
func newSessionRepository(cfg *config.Config, logr *zap.Logger) session.Repository {
	client, err := session.NewRedisClient(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, using in-memory sessions", "error", err)
		return session.NewMemoryRepository()
	}
	return session.NewRedisRepository(client)
}
