package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/a3pdf"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/auth"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/resource"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/usecase"
	"github.com/Stanko5566/lean-cockpit-api/internal/infrastructure/cache"
	"github.com/Stanko5566/lean-cockpit-api/internal/infrastructure/notify"
	infrapdf "github.com/Stanko5566/lean-cockpit-api/internal/infrastructure/pdf"
	"github.com/Stanko5566/lean-cockpit-api/internal/infrastructure/postgres"
	httpRouter "github.com/Stanko5566/lean-cockpit-api/internal/interfaces/http"
	"github.com/Stanko5566/lean-cockpit-api/pkg/config"
	"github.com/Stanko5566/lean-cockpit-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Cache de listados: Redis si está configurado, memoria si no.
	var listCache resource.ListCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		listCache = cache.NewRedis(client, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de listados en Redis")
	} else {
		listCache = cache.NewMemory()
		log.Info().Msg("cache de listados en memoria")
	}

	feed := notify.NewFeed(500, log)
	validate := validator.New()

	// Repositorios de los once tableros (repo genérico + TableSpec)
	initiativeRepo := postgres.NewResourceRepo(pool, postgres.LeanInitiativeSpec())
	pdcaRepo := postgres.NewResourceRepo(pool, postgres.PdcaCycleSpec())
	fiveSRepo := postgres.NewResourceRepo(pool, postgres.FiveSChecklistSpec())
	kaizenRepo := postgres.NewResourceRepo(pool, postgres.KaizenItemSpec())
	kanbanRepo := postgres.NewResourceRepo(pool, postgres.KanbanTaskSpec())
	andonRepo := postgres.NewResourceRepo(pool, postgres.AndonStationSpec())
	gembaRepo := postgres.NewResourceRepo(pool, postgres.GembaWalkSpec())
	standardRepo := postgres.NewResourceRepo(pool, postgres.StandardProcedureSpec())
	tpmRepo := postgres.NewResourceRepo(pool, postgres.TpmEquipmentSpec())
	a3Repo := postgres.NewResourceRepo(pool, postgres.A3ReportSpec())
	streamRepo := postgres.NewResourceRepo(pool, postgres.ValueStreamSpec())

	userRepo := postgres.NewUserRepo(pool)
	roleRepo := postgres.NewRoleRepo(pool)
	sidebarRepo := postgres.NewSidebarRepo(pool)
	profileRepo := postgres.NewProfileRepo(pool)
	dashboardRepo := postgres.NewDashboardRepo(pool)

	// Servicios CRUD de tableros
	initiativeSvc := resource.NewLeanInitiativeService(initiativeRepo, listCache, feed, validate)
	pdcaSvc := resource.NewPdcaCycleService(pdcaRepo, listCache, feed, validate)
	fiveSSvc := resource.NewFiveSChecklistService(fiveSRepo, listCache, feed, validate)
	kaizenSvc := resource.NewKaizenItemService(kaizenRepo, listCache, feed, validate)
	kanbanSvc := resource.NewKanbanTaskService(kanbanRepo, listCache, feed, validate)
	andonSvc := resource.NewAndonStationService(andonRepo, listCache, feed, validate)
	gembaSvc := resource.NewGembaWalkService(gembaRepo, listCache, feed, validate)
	standardSvc := resource.NewStandardProcedureService(standardRepo, listCache, feed, validate)
	tpmSvc := resource.NewTpmEquipmentService(tpmRepo, listCache, feed, validate)
	a3Svc := resource.NewA3ReportService(a3Repo, listCache, feed, validate)
	streamSvc := resource.NewValueStreamService(streamRepo, listCache, feed, validate)

	// Casos de uso transversales
	roleUC := usecase.NewRoleUseCase(roleRepo, log)
	sidebarUC := usecase.NewSidebarUseCase(sidebarRepo, listCache, feed, validate)
	profileUC := usecase.NewProfileUseCase(profileRepo, validate)
	adminUC := usecase.NewAdminUseCase(userRepo, roleRepo, validate)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	authUC := auth.NewUseCase(userRepo, roleRepo, profileRepo, roleUC, validate, auth.Config{
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	}, log)

	// PDF: exportación de informes A3
	a3Generator := infrapdf.NewMarotoA3Generator()
	a3PdfUC := a3pdf.NewUseCase(a3Repo, a3Generator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lean Cockpit API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InitiativeSvc:  initiativeSvc,
		PdcaSvc:        pdcaSvc,
		FiveSSvc:       fiveSSvc,
		KaizenSvc:      kaizenSvc,
		KanbanSvc:      kanbanSvc,
		AndonSvc:       andonSvc,
		GembaSvc:       gembaSvc,
		StandardSvc:    standardSvc,
		TpmSvc:         tpmSvc,
		A3Svc:          a3Svc,
		ValueStreamSvc: streamSvc,
		AuthUC:         authUC,
		SidebarUC:      sidebarUC,
		ProfileUC:      profileUC,
		AdminUC:        adminUC,
		DashboardUC:    dashboardUC,
		A3PdfUC:        a3PdfUC,
		Feed:           feed,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
