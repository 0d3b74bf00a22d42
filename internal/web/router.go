// Package web wires the portal's fiber application: public storefront routes,
// guarded user routes, and the guarded admin back-office.
package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/learnhub-portal/internal/config"
	"github.com/spec-kit/learnhub-portal/internal/guard"
	"github.com/spec-kit/learnhub-portal/internal/web/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Pages      *handlers.PagesHandler
	Auth       *handlers.AuthHandler
	Admin      *handlers.AdminHandler
	UserGuard  *guard.UserGuard
	AdminGuard *guard.AdminGuard
	Routes     config.RoutesConfig
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// public storefront
	app.Get("/lms/courses", cfg.Pages.Courses)
	app.Get("/lms/courses/:id", cfg.Pages.CourseDetail)
	app.Get("/lms/books", cfg.Pages.Books)
	app.Get("/lms/learning-paths", cfg.Pages.LearningPaths)
	app.Get("/lms/tools", cfg.Pages.Tools)

	// user entry points
	app.Get(cfg.Routes.SignPath, cfg.Auth.EntryPage)
	app.Post(cfg.Routes.SignPath, cfg.Auth.Sign)
	app.Get(cfg.Routes.LoginPath, cfg.Auth.EntryPage)
	app.Post(cfg.Routes.LoginPath, cfg.Auth.Login)
	app.Post("/auth/logout", cfg.Auth.Logout)

	// user-guarded routes; my-books sends newcomers to registration
	app.Get("/lms/my-books", cfg.UserGuard.Middleware(true), cfg.Pages.MyBooks)
	account := app.Group("/account", cfg.UserGuard.Middleware(false))
	account.Delete("", cfg.Auth.DeleteAccount)

	// admin back-office
	app.Get(cfg.Routes.AdminLoginPath, cfg.Admin.LoginPage)
	app.Post(cfg.Routes.AdminLoginPath, cfg.Admin.Login)
	app.Post("/admin/logout", cfg.Admin.Logout)

	admin := app.Group("/admin", cfg.AdminGuard.Middleware())
	admin.Get("/users", cfg.Admin.Users)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)
	admin.Post("/courses", cfg.Admin.CreateCourse)
	admin.Put("/courses/:id", cfg.Admin.UpdateCourse)
	admin.Delete("/courses/:id", cfg.Admin.DeleteCourse)
}
