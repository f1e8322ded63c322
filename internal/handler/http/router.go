package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite-go/internal/config"
	"github.com/cmlabs-hris/hrms-lite-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// previewOrigin admits the frontend's preview deployments.
const previewOrigin = "https://*.vercel.app"

func NewRouter(
	logger *slog.Logger,
	corsCfg config.CORSConfig,
	m *metrics.Metrics,
	metricsHandler http.Handler,
	healthHandler HealthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   append(append([]string{}, corsCfg.AllowedOrigins...), previewOrigin),
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Metrics(m))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Get("/", healthHandler.Root)
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Health)
		r.Get("/ready", healthHandler.Ready)
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/{employee_id}", employeeHandler.GetEmployee)
			r.Delete("/{employee_id}", employeeHandler.DeleteEmployee)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.Mark)
			r.Get("/employee/{employee_id}", attendanceHandler.ListByEmployee)
			r.Get("/summary/{employee_id}", attendanceHandler.GetSummary)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler.GetDashboard)
		})
	})

	return r
}
