// Package cli implements the asistencia command-line tool used to import clock
// exports, print reports and maintain the database from a terminal.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/asistencia/asistencia-backend-go/internal/config"
	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/domain/calendar"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/sse"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/utils"
	"github.com/asistencia/asistencia-backend-go/internal/repository/postgresql"
	attendanceService "github.com/asistencia/asistencia-backend-go/internal/service/attendance"
	calendarService "github.com/asistencia/asistencia-backend-go/internal/service/calendar"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "asistencia",
	Short: "Attendance reconciliation tool",
	Long: `asistencia imports clock-device exports, prints monthly summaries and
rankings, seeds holidays and runs database migrations.
Connection settings come from the same environment as the API server.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(holidaysCmd)
	rootCmd.AddCommand(migrateCmd)
}

// services is the subset of the API wiring the commands need.
type services struct {
	db         *database.DB
	attendance attendance.AttendanceService
	calendar   calendar.CalendarService
}

func (s *services) Close() {
	s.db.Close()
}

func openServices(ctx context.Context) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 4, MinConns: 1})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	calendarSvc := calendarService.NewCalendarService(
		postgresql.NewHolidayRepository(db),
		postgresql.NewWorkingDayRepository(db),
	)
	processor := attendanceService.NewProcessor(utils.NewTimestampParser(cfg.Location()))
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		postgresql.NewAttendanceRepository(db),
		postgresql.NewPersonnelRepository(db),
		calendarSvc,
		processor,
		sse.NewHub(),
	)

	return &services{db: db, attendance: attendanceSvc, calendar: calendarSvc}, nil
}
