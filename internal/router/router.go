// Package router defines how HTTP routes are registered for the API.
// Registration is split by audience: unauthenticated storefront reads,
// public form submissions, auth endpoints, and the staff dashboard API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rootandbloom/garden-center/internal/handler"
	"github.com/rootandbloom/garden-center/internal/middleware"
	"github.com/rootandbloom/garden-center/internal/model"
)

// RegisterRoutes registers routes that carry no domain logic. Currently
// that is only the health check, used by load balancers to verify the
// service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated storefront routes. Reads
// go through the response cache when one is configured; the two form
// submission endpoints are rate limited instead, since their responses
// must never be cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, regs *handler.RegistrationHandler,
	contact *handler.ContactHandler, cache echo.MiddlewareFunc, limiter echo.MiddlewareFunc) {
	reads := e.Group("/v1")
	if cache != nil {
		reads.Use(cache)
	}
	reads.GET("/settings", p.GetSettings)
	reads.GET("/hours", p.GetHours)
	reads.GET("/banners", p.GetBanners)
	reads.GET("/classes", p.GetClasses)
	reads.GET("/classes/:slug", p.GetClassBySlug)
	reads.GET("/page-content/:page", p.GetPageContent)

	forms := e.Group("/v1")
	if limiter != nil {
		forms.Use(limiter)
	}
	forms.POST("/registrations", regs.Create)
	forms.POST("/contact", contact.Create)
}

// RegisterAuth registers login under /v1/auth and the authenticated
// identity endpoint under /v1/auth/me. Login is the only way to obtain a
// token; there is no self-service registration, staff accounts are
// seeded out of band.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)

	me := e.Group("/v1/auth")
	me.Use(middleware.JWTAuth(jwtSecret))
	me.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
	me.GET("/me", a.Me)
}

// RegisterAdmin registers the dashboard API under /v1/admin. Every route
// requires a valid access token with the ADMIN or STAFF role. Admin
// responses are never cached.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStaff))

	g.GET("/settings", h.GetSettings)
	g.PUT("/settings", h.UpdateSettings)

	g.GET("/hours", h.ListHours)
	g.POST("/hours", h.CreateHour)
	g.PUT("/hours/:id", h.UpdateHour)
	g.DELETE("/hours/:id", h.DeleteHour)

	g.GET("/banners", h.ListBanners)
	g.POST("/banners", h.CreateBanner)
	g.PUT("/banners/:id", h.UpdateBanner)
	g.DELETE("/banners/:id", h.DeleteBanner)

	g.GET("/classes", h.ListClasses)
	g.POST("/classes", h.CreateClass)
	g.PUT("/classes/:id", h.UpdateClass)
	g.DELETE("/classes/:id", h.DeleteClass)

	g.GET("/page-content", h.ListPageContent)
	g.POST("/page-content", h.CreatePageContent)
	g.PUT("/page-content/:id", h.UpdatePageContent)
	g.DELETE("/page-content/:id", h.DeletePageContent)

	g.GET("/registrations", h.ListRegistrations)
	g.PATCH("/registrations/:id/status", h.UpdateRegistrationStatus)
	g.DELETE("/registrations/:id", h.DeleteRegistration)

	g.POST("/uploads", h.UploadImage)
}
