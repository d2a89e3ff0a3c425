package api

import (
	"net/http"
	"time"

	"github.com/chandraguptgosavi/codemore-backend/internal/api/handler"
	"github.com/chandraguptgosavi/codemore-backend/internal/api/middleware"
	"github.com/chandraguptgosavi/codemore-backend/internal/app/service"
	"github.com/chandraguptgosavi/codemore-backend/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
)

type Deps struct {
	AuthService       *service.AuthService
	ProblemService    *service.ProblemService
	SubmissionService *service.SubmissionService
	TokenAuth         *jwtauth.JWTAuth
	Users             middleware.UserFinder
	AllowedOrigins    []string
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(metrics.Middleware)

	// Finds "Authorization: Bearer T" and puts the verified token in context.
	// Routes that require it add middleware.Authenticator.
	r.Use(jwtauth.Verifier(d.TokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	authn := middleware.Authenticator(d.Users)

	r.Route("/api/v1", func(v1 chi.Router) {
		problemHandler := handler.NewProblemHandler(d.ProblemService)
		submissionHandler := handler.NewSubmissionHandler(d.SubmissionService)
		v1.Route("/problems", func(pr chi.Router) {
			submissionHandler.RegisterRoutes(pr, authn)
			problemHandler.RegisterRoutes(pr, authn)
		})

		userHandler := handler.NewUserHandler(d.AuthService, d.SubmissionService)
		v1.Route("/user", userHandler.RegisterRoutes)
	})

	return r
}
