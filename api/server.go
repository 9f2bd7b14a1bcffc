/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. CORS:          Cross-origin requests for a local frontend
  2. RequestLogger: Structured request logging (httplog over slog)
  3. CleanPath:     Path normalization
  4. Recoverer:     Panic recovery (500 instead of crash)
  5. Heartbeat:     Liveness probe on /

ROUTE GROUPS:
  /api/catalogue/*  Roster resolution and shift listing
  /api/records/*    Work-day record CRUD
  /api/summary/*    Month/year payroll aggregates and PDF export
  /api/charts/*     Yearly chart data

SECURITY NOTE:
  Single-operator instance, no authentication. Do not expose publicly.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, env string) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shift-engine"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.CleanPath)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalogue", func(r chi.Router) {
			r.Get("/shifts", h.ListShifts)
			r.Get("/version", h.GetVersion)
			r.Get("/standard-minutes", h.GetStandardMinutes)
		})

		r.Route("/records", func(r chi.Router) {
			r.Get("/", h.ListRecords)
			r.Post("/", h.CreateRecord)
			r.Get("/{id}", h.GetRecord)
			r.Put("/{id}", h.UpdateRecord)
			r.Delete("/{id}", h.DeleteRecord)
		})

		r.Route("/summary", func(r chi.Router) {
			r.Get("/month", h.GetMonthSummary)
			r.Get("/month/pdf", h.GetMonthPayrollPDF)
			r.Get("/year", h.GetYearSummary)
		})

		r.Route("/charts", func(r chi.Router) {
			r.Get("/months", h.GetMonthlyHoursChart)
			r.Get("/types", h.GetTypeHoursChart)
			r.Get("/comparison", h.GetComparisonChart)
		})
	})

	return r
}
