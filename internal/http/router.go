package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pribylovaa/go-edu-platform/internal/http/handlers"
	"github.com/pribylovaa/go-edu-platform/internal/http/middleware"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger         *slog.Logger
	Timeout        time.Duration
	AllowedOrigins []string
	// SecureCookies включает Secure+SameSite=None у refresh-cookie (prod).
	SecureCookies bool
	// RefreshMaxAge — срок жизни refresh-cookie (совпадает с TTL токена).
	RefreshMaxAge time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)

	// CORS до Timeout: preflight не должен упираться в бизнес-дедлайн.
	// AllowCredentials обязателен — refresh-токен живёт в cookie.
	root.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc, handlers.CookieManager{
		Secure: opts.SecureCookies,
		MaxAge: opts.RefreshMaxAge,
	})

	registerRoutes(root, h, svc)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service) {
	protect := middleware.Protect(svc)
	adminOnly := middleware.RestrictTo(models.RoleAdmin)
	staffOnly := middleware.RestrictTo(models.RoleAdmin, models.RoleTeacher)

	// auth: публичные флоу.
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
	r.Post("/auth/logout", h.Logout)
	r.Post("/auth/forgot-password", h.ForgotPassword)
	r.Post("/auth/reset-password", h.ResetPassword)

	// auth: защищённые.
	r.Group(func(r chi.Router) {
		r.Use(protect)

		r.Get("/auth/me", h.Me)
		r.Patch("/auth/update-password", h.UpdatePassword)

		r.Group(func(r chi.Router) {
			r.Use(staffOnly)
			r.Get("/auth/students-verified", h.StudentsVerified)
			r.Get("/auth/students-not-verified", h.StudentsNotVerified)
		})

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/auth/invite", h.Invite)
			r.Get("/auth/teachers", h.Teachers)
			r.Patch("/auth/validate-user/{id}", h.ValidateUser)
		})
	})

	// courses/livecourses: чтение — любой аутентифицированный,
	// мутации — admin/teacher.
	r.Group(func(r chi.Router) {
		r.Use(protect)

		r.Get("/courses", h.ListCourses)
		r.Get("/courses/{id}", h.GetCourse)
		r.Get("/livecourses", h.ListLiveCourses)
		r.Get("/livecourses/{id}", h.GetLiveCourse)

		r.Group(func(r chi.Router) {
			r.Use(staffOnly)
			r.Post("/courses", h.CreateCourse)
			r.Patch("/courses/{id}", h.UpdateCourse)
			r.Delete("/courses/{id}", h.DeleteCourse)
			r.Post("/livecourses", h.CreateLiveCourse)
			r.Patch("/livecourses/{id}", h.UpdateLiveCourse)
			r.Delete("/livecourses/{id}", h.DeleteLiveCourse)
		})
	})

	// candidates: публичный приём заявок.
	r.Post("/candidates", h.CreateCandidate)
}
