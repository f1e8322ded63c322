package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hrms-lite-go/internal/handler/http"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hrms-lite-go/internal/repository/mongodb"
	attendanceService "github.com/cmlabs-hris/hrms-lite-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/hrms-lite-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hrms-lite-go/internal/service/employee"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.Timeout)
	db, err := database.NewMongoDB(connectCtx, cfg.Database.URL, cfg.Database.Name)
	if err != nil {
		cancel()
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.EnsureIndexes(connectCtx); err != nil {
		cancel()
		log.Fatalf("Error creating indexes: %v", err)
	}
	cancel()
	logger.Info("Connected to MongoDB", "database", cfg.Database.Name)

	employeeRepo := mongodb.NewEmployeeRepository(db, appMetrics)
	attendanceRepo := mongodb.NewAttendanceRepository(db, appMetrics)
	dashboardRepo := mongodb.NewDashboardRepository(db, appMetrics)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, appMetrics)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(
		logger,
		cfg.CORS,
		appMetrics,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		appHTTP.NewHealthHandler(db),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server error", "error", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("Database disconnect failed", "error", err)
	}

	logger.Info("Server stopped")
}

// setupLogger builds the JSON logger shared by the request logger and the
// services. Keys follow the ECS schema so request and application lines line up.
func setupLogger(cfg *config.Config) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-lite"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
}
