package http

import (
	"log/slog"
	"os"

	"github.com/ba-mirza/qr-attend-backend/internal/handler/http/middleware"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterHandlers struct {
	Auth           AuthHandler
	Organization   OrganizationHandler
	OfficePoint    OfficePointHandler
	RegistrationQR RegistrationQRHandler
	Employee       EmployeeHandler
	CheckLog       CheckLogHandler
	Scan           ScanHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, h RouterHandlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "qr-attend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Public endpoints hit by scanned QR codes
		r.Route("/scan", func(r chi.Router) {
			r.Post("/check", h.Scan.Check)
			r.Post("/register", h.Scan.Register)
		})

		// SSE stream authenticates via short-lived token in query param
		r.Get("/stream/check-logs", h.CheckLog.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/sse-token", h.Auth.GetSSEToken)

			r.Route("/organizations", func(r chi.Router) {
				r.Get("/my", h.Organization.GetOwn)
				r.Post("/", h.Organization.Create)
				r.Get("/by-slug/{slug}", h.Organization.GetBySlug)

				r.Route("/{id}", func(r chi.Router) {
					r.Patch("/settings", h.Organization.UpdateSettings)

					r.Route("/office-points", func(r chi.Router) {
						r.Get("/", h.OfficePoint.List)
						r.Post("/", h.OfficePoint.Create)
					})

					r.Route("/registration-qrs", func(r chi.Router) {
						r.Get("/", h.RegistrationQR.List)
						r.Post("/", h.RegistrationQR.Issue)
					})

					r.Route("/employees", func(r chi.Router) {
						r.Get("/", h.Employee.List)
						r.Get("/count", h.Employee.Count)
					})

					r.Route("/check-logs", func(r chi.Router) {
						r.Get("/", h.CheckLog.List)
						r.Get("/today-stats", h.CheckLog.TodayStats)
					})
				})
			})

			r.Route("/office-points/{pointID}", func(r chi.Router) {
				r.Delete("/", h.OfficePoint.Delete)
				r.Post("/regenerate-token", h.OfficePoint.RegenerateToken)
				r.Get("/qr-payload", h.OfficePoint.QRPayload)
			})

			r.Route("/registration-qrs/{qrID}", func(r chi.Router) {
				r.Delete("/", h.RegistrationQR.Deactivate)
			})

			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Post("/approve", h.Employee.Approve)
				r.Post("/reject", h.Employee.Reject)
				r.Patch("/status", h.Employee.SetStatus)
				r.Put("/", h.Employee.Update)
			})
		})
	})
	return r
}
