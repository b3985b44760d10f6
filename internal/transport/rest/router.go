package rest

import (
	"log/slog"
	"net/http"

	"github.com/clovera/admin-api/internal/auth"
	"github.com/clovera/admin-api/internal/dashboard"
	"github.com/clovera/admin-api/internal/issue"
	"github.com/clovera/admin-api/internal/patient"
	"github.com/clovera/admin-api/internal/transport/middleware"
	"github.com/clovera/admin-api/internal/transport/swagger"
	"github.com/clovera/admin-api/internal/user"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires the admin console API. Everything except login,
// session state and health requires an active admin session.
func RegisterAllRoutes(
	router *chi.Mux,
	sessionStore Pinger,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	patientHandler *patient.Handler,
	issueHandler *issue.Handler,
	dashboardHandler *dashboard.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(sessionStore)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/logout", authHandler.Logout)
			sr.Get("/session", authHandler.Session)
		})

		// Protected routes that require an active admin session
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/dashboard/stats", dashboardHandler.GetStats)

			pr.Route("/users", func(ur chi.Router) {
				ur.Get("/", userHandler.ListUsers)           // GET /users
				ur.Get("/pending", userHandler.PendingUsers) // GET /users/pending
				ur.Get("/{id}", userHandler.GetUser)         // GET /users/:id

				ur.Post("/{id}/approve", userHandler.ApproveUser) // POST /users/:id/approve
				ur.Post("/{id}/reject", userHandler.RejectUser)   // POST /users/:id/reject
				ur.Post("/{id}/ban", userHandler.BanUser)         // POST /users/:id/ban
				ur.Post("/{id}/unban", userHandler.UnbanUser)     // POST /users/:id/unban

				ur.Post("/{id}/documents/{docID}/verify", userHandler.VerifyDocument)
			})

			pr.Route("/patients", func(ptr chi.Router) {
				ptr.Get("/", patientHandler.ListPatients)
				ptr.Get("/{id}", patientHandler.GetPatient)
			})

			pr.Route("/issues", func(ir chi.Router) {
				ir.Get("/", issueHandler.ListIssues)
				ir.Get("/{id}", issueHandler.GetIssue)
				ir.Patch("/{id}/status", issueHandler.UpdateStatus)  // PATCH /issues/:id/status
				ir.Post("/{id}/responses", issueHandler.AddResponse) // POST /issues/:id/responses
			})
		})
	})
}
