package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/erazemk/zavetisce/internal/auth"
	"github.com/erazemk/zavetisce/internal/model"
	"github.com/erazemk/zavetisce/internal/rescue"
)

// Options are the router's collaborators. Gatherer may be nil, in which
// case /metrics is not served.
type Options struct {
	Service  *rescue.Service
	Issuer   *auth.Issuer
	Logger   *zap.Logger
	Gatherer prometheus.Gatherer
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	base := handler{svc: opts.Service, log: log}

	authHandler := &AuthHandler{handler: base, Issuer: opts.Issuer}
	usersHandler := &UsersHandler{handler: base}
	animalsHandler := &AnimalsHandler{handler: base}
	adoptionsHandler := &AdoptionsHandler{handler: base}
	reportsHandler := &ReportsHandler{handler: base}
	tasksHandler := &TasksHandler{handler: base}
	notificationsHandler := &NotificationsHandler{handler: base}

	requireAdmin := RequireRole(model.RoleAdmin)
	requireStaff := RequireRole(model.RoleAdmin, model.RoleNGO)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := opts.Service.Ping(r.Context()); err != nil {
			writeError(w, log, err)
			return
		}
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		// Public: registration and login.
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(opts.Issuer, opts.Service, log))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", usersHandler.List)
				r.Get("/{id}", usersHandler.Get)
				r.With(requireAdmin).Post("/", usersHandler.Create)
				r.With(requireAdmin).Put("/{id}", usersHandler.Update)
				r.With(requireAdmin).Delete("/{id}", usersHandler.Delete)
			})
			r.Get("/volunteers", usersHandler.ListVolunteers)

			r.Route("/animals", func(r chi.Router) {
				r.Get("/", animalsHandler.List)
				r.Get("/{id}", animalsHandler.Get)
				r.Get("/{id}/photo", animalsHandler.GetPhoto)
				r.Group(func(r chi.Router) {
					r.Use(requireStaff)
					r.Post("/", animalsHandler.Create)
					r.Put("/{id}", animalsHandler.Update)
					r.Delete("/{id}", animalsHandler.Delete)
					r.Put("/{id}/status", animalsHandler.SetStatus)
					r.Put("/{id}/photo", animalsHandler.UploadPhoto)
				})
			})

			r.Route("/adoptions", func(r chi.Router) {
				r.Get("/", adoptionsHandler.List)
				r.Post("/", adoptionsHandler.Create)
				r.Get("/{id}", adoptionsHandler.Get)
				r.With(requireStaff).Post("/{id}/decision", adoptionsHandler.Decide)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", reportsHandler.List)
				r.Post("/", reportsHandler.Create)
				r.Get("/{id}", reportsHandler.Get)
				r.With(requireStaff).Put("/{id}/status", reportsHandler.SetStatus)
				r.With(requireStaff).Post("/{id}/tasks", reportsHandler.CreateTask)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", tasksHandler.List)
				r.Put("/{id}/status", tasksHandler.SetStatus)
				r.With(requireStaff).Post("/", tasksHandler.Create)
				r.With(requireStaff).Put("/{id}/assignee", tasksHandler.Assign)
			})

			r.Get("/notifications", notificationsHandler.List)
			r.With(requireStaff).Post("/notifications", notificationsHandler.Create)
			r.Put("/notifications/{id}/read", notificationsHandler.MarkRead)
		})
	})

	return r
}

// handler carries what every resource handler needs.
type handler struct {
	svc *rescue.Service
	log *zap.Logger
}
