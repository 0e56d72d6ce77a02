// Package http expone la API del cockpit sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/a3pdf"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/auth"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/resource"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/usecase"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
	"github.com/Stanko5566/lean-cockpit-api/internal/infrastructure/notify"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InitiativeSvc  *resource.LeanInitiativeService
	PdcaSvc        *resource.PdcaCycleService
	FiveSSvc       *resource.FiveSChecklistService
	KaizenSvc      *resource.KaizenItemService
	KanbanSvc      *resource.KanbanTaskService
	AndonSvc       *resource.AndonStationService
	GembaSvc       *resource.GembaWalkService
	StandardSvc    *resource.StandardProcedureService
	TpmSvc         *resource.TpmEquipmentService
	A3Svc          *resource.A3ReportService
	ValueStreamSvc *resource.ValueStreamService

	AuthUC      *auth.UseCase
	SidebarUC   *usecase.SidebarUseCase
	ProfileUC   *usecase.ProfileUseCase
	AdminUC     *usecase.AdminUseCase
	DashboardUC *usecase.DashboardUseCase
	A3PdfUC     *a3pdf.UseCase
	Feed        *notify.Feed
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	authProtected := protected.Group("/auth")
	authProtected.Get("/me", authHandler.Me)
	authProtected.Put("/password", authHandler.UpdatePassword)

	// Tableros lean (protegidos): las once rutas CRUD comparten el handler genérico
	RegisterResource(protected, "/lean_initiatives", deps.InitiativeSvc)
	RegisterResource(protected, "/pdca_cycles", deps.PdcaSvc)
	RegisterResource(protected, "/five_s_checklists", deps.FiveSSvc)
	RegisterResource(protected, "/kaizen_items", deps.KaizenSvc)
	RegisterResource(protected, "/kanban_tasks", deps.KanbanSvc)
	RegisterResource(protected, "/andon_stations", deps.AndonSvc)
	RegisterResource(protected, "/gemba_walks", deps.GembaSvc)
	RegisterResource(protected, "/standard_procedures", deps.StandardSvc)
	RegisterResource(protected, "/tpm_equipment", deps.TpmSvc)
	RegisterResource(protected, "/a3_reports", deps.A3Svc)
	RegisterResource(protected, "/value_streams", deps.ValueStreamSvc)

	// Exportación PDF de informes A3
	a3PdfHandler := NewA3PdfHandler(deps.A3PdfUC)
	protected.Get("/a3_reports/:id/pdf", a3PdfHandler.Download)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Menú lateral
	sidebarHandler := NewSidebarHandler(deps.SidebarUC)
	protected.Get("/sidebar", sidebarHandler.Nav)
	protected.Get("/sidebar/preferences", sidebarHandler.Preferences)
	protected.Put("/sidebar/preferences", RequireRole(entity.RoleAdmin), sidebarHandler.Toggle)

	// Perfil
	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile", profileHandler.Update)

	// Notificaciones
	notificationHandler := NewNotificationHandler(deps.Feed)
	protected.Get("/notifications", notificationHandler.Recent)

	// Administración (solo admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/role", adminHandler.SetRole)
}
