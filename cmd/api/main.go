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

	"github.com/asistencia/asistencia-backend-go/internal/config"
	appHTTP "github.com/asistencia/asistencia-backend-go/internal/handler/http"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/cron"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/sse"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/storage"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/utils"
	"github.com/asistencia/asistencia-backend-go/internal/repository/postgresql"
	attendanceService "github.com/asistencia/asistencia-backend-go/internal/service/attendance"
	calendarService "github.com/asistencia/asistencia-backend-go/internal/service/calendar"
	dashboardService "github.com/asistencia/asistencia-backend-go/internal/service/dashboard"
	"github.com/asistencia/asistencia-backend-go/internal/service/file"
	justificationService "github.com/asistencia/asistencia-backend-go/internal/service/justification"
	personnelService "github.com/asistencia/asistencia-backend-go/internal/service/personnel"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{})
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	personnelRepo := postgresql.NewPersonnelRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	workingDayRepo := postgresql.NewWorkingDayRepository(db)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	hub := sse.NewHub()
	parser := utils.NewTimestampParser(cfg.Location())
	processor := attendanceService.NewProcessor(parser)

	fileSvc := file.NewFileService(fileStorage)
	calendarSvc := calendarService.NewCalendarService(holidayRepo, workingDayRepo)
	personnelSvc := personnelService.NewPersonnelService(personnelRepo)
	justificationSvc := justificationService.NewJustificationService(justificationRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		personnelRepo,
		calendarSvc,
		processor,
		hub,
	)
	dashboardSvc := dashboardService.NewDashboardService(attendanceSvc, justificationSvc, personnelRepo)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(parser, cfg.Jobs.FallbackReportInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
			Version:        version,
			LogLevel:       cfg.SlogLevel(),

			StorageBasePath: cfg.Storage.BasePath,
			StorageBaseURL:  cfg.Storage.BaseURL,
		},
		appHTTP.Handlers{
			Attendance:    appHTTP.NewAttendanceHandler(attendanceSvc, fileSvc),
			Report:        appHTTP.NewReportHandler(attendanceSvc),
			Dashboard:     appHTTP.NewDashboardHandler(dashboardSvc, attendanceSvc),
			Personnel:     appHTTP.NewPersonnelHandler(personnelSvc),
			Justification: appHTTP.NewJustificationHandler(justificationSvc),
			Calendar:      appHTTP.NewCalendarHandler(calendarSvc),
			Event:         appHTTP.NewEventHandler(hub),
			Health:        appHTTP.NewHealthHandler(db),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env, "timezone", cfg.Location().String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
