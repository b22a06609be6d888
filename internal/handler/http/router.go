package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-crm/crm-backend-go/internal/config"
	"github.com/cmlabs-crm/crm-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-crm/crm-backend-go/internal/handler/http/response"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

const appVersion = "v1.0.0"

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	communicationHandler CommunicationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "cmlabs-crm"),
		slog.String("version", appVersion),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	// Tokens are recognised for logging only; no route requires one.
	r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
	r.Use(middleware.TokenLogger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", companyHandler.List)
		r.Post("/", companyHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", companyHandler.GetByID)
			r.Patch("/", companyHandler.Update)
			r.Delete("/", companyHandler.Delete)
		})
	})

	r.Route("/communications", func(r chi.Router) {
		r.Get("/", communicationHandler.List)
		r.Post("/", communicationHandler.Log)
		r.Get("/{id}", communicationHandler.GetByID)
	})

	return r
}
