// Package userplans предоставляет маршруты для основного приложения.
package userplans

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/user-plans/internal/http/handlers/health"
	planlist "github.com/magabrotheeeer/user-plans/internal/http/handlers/plan/list"
	planread "github.com/magabrotheeeer/user-plans/internal/http/handlers/plan/read"
	"github.com/magabrotheeeer/user-plans/internal/http/handlers/user/changeplan"
	"github.com/magabrotheeeer/user-plans/internal/http/handlers/user/check"
	"github.com/magabrotheeeer/user-plans/internal/http/handlers/user/read"
	"github.com/magabrotheeeer/user-plans/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/user-plans/internal/http/handlers/user/remove"
	"github.com/magabrotheeeer/user-plans/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/user-plans/internal/http/middlewarectx"
	planservice "github.com/magabrotheeeer/user-plans/internal/services/plan"
	userservice "github.com/magabrotheeeer/user-plans/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, userService *userservice.UserService, planService *planservice.PlanService, readiness health.Checker) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		checkHandler := check.New(logger, userService)

		r.Post("/users", register.New(logger, userService).ServeHTTP)
		// Маршруты проверки занятости регистрируются раньше "{uid}",
		// иначе chi сматчит check-email как идентификатор
		r.Get("/users/check-email", checkHandler.Email)
		r.Get("/users/check-username", checkHandler.Username)
		r.Get("/users/{uid}", read.New(logger, userService).ServeHTTP)
		r.Put("/users/{uid}", update.New(logger, userService).ServeHTTP)
		r.Delete("/users/{uid}", remove.New(logger, userService).ServeHTTP)
		r.Put("/users/{uid}/plan", changeplan.New(logger, userService).ServeHTTP)

		r.Get("/plans", planlist.New(logger, planService).ServeHTTP)
		r.Get("/plans/{id}", planread.New(logger, planService).ServeHTTP)
	})

	r.Get("/health", health.New(logger, readiness).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
