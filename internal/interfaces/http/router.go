package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/salon-api/internal/application/auth"
	"github.com/jhoicas/salon-api/internal/application/invite"
	"github.com/jhoicas/salon-api/internal/application/usecase"
	"github.com/jhoicas/salon-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	InviteUC     *invite.InviteUseCase
	AdminUC      *usecase.AdminUseCase
	CategoryUC   *usecase.CategoryUseCase
	AccessSecret string
	RefreshTTL   time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.RefreshTTL)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/verify-otp", authHandler.VerifyOtp)
	authGroup.Post("/verify-sms-otp", authHandler.VerifySmsOtp)
	authGroup.Post("/resend-otp", authHandler.ResendOtp)
	authGroup.Post("/resend-sms-otp", authHandler.ResendSmsOtp)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/google", authHandler.GoogleLogin)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/apply-stylist", authHandler.ApplyAsStylist)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/resend-reset-otp", authHandler.ResendResetOtp)
	authGroup.Post("/verify-reset-otp", authHandler.VerifyResetOtp)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Invitaciones por link (público: el token del link es la credencial)
	inviteHandler := NewInviteHandler(deps.InviteUC)
	invites := api.Group("/invites")
	invites.Get("/:token", inviteHandler.Validate)
	invites.Post("/:token/accept", inviteHandler.Accept)

	// Categorías (lectura pública)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AccessSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Escritura de categorías (solo admin)
	catAdmin := protected.Group("/categories", RequireRole(entity.RoleAdmin))
	catAdmin.Post("/", categoryHandler.Create)
	catAdmin.Put("/:id", categoryHandler.Update)

	// Panel de administración
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users/:userId/block", inviteHandler.ToggleBlock)
	admin.Post("/invites", inviteHandler.Create)
	admin.Get("/stylists", inviteHandler.ListStylists)
	admin.Post("/stylists/:userId/invite", inviteHandler.SendToApplicant)
	admin.Post("/stylists/:userId/approve", inviteHandler.Approve)
	admin.Post("/stylists/:userId/reject", inviteHandler.Reject)
}
