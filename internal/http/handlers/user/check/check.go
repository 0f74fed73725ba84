// Package check реализует HTTP-обработчики проверки занятости email и username.
package check

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/user-plans/internal/http/response"
	"github.com/magabrotheeeer/user-plans/internal/lib/sl"
)

// Handler обрабатывает запросы на проверку существования пользователя.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики проверок существования.
type Service interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// Email отвечает на GET /users/check-email?email=...
func (h *Handler) Email(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.check.Email"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")
	if err := h.validate.Var(email, "required,email"); err != nil {
		log.Error("invalid email param", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("field email is not a valid email"))
		return
	}

	exists, err := h.service.EmailExists(r.Context(), email)
	if err != nil {
		log.Error("failed to check email", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to check email"))
		return
	}

	log.Info("success to check email", slog.Bool("exists", exists))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"exists": exists,
	}))
}

// Username отвечает на GET /users/check-username?username=...
func (h *Handler) Username(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.check.Username"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := r.URL.Query().Get("username")
	if err := h.validate.Var(username, "required,min=3,max=50"); err != nil {
		log.Error("invalid username param", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("field username is not valid"))
		return
	}

	exists, err := h.service.UsernameExists(r.Context(), username)
	if err != nil {
		log.Error("failed to check username", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to check username"))
		return
	}

	log.Info("success to check username", slog.Bool("exists", exists))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"exists": exists,
	}))
}
