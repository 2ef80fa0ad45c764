package http

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterOptions carries the deployment-dependent router settings.
type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	Version        string
	LogLevel       slog.Level

	// StorageBasePath is served read-only under StorageBaseURL
	StorageBasePath string
	StorageBaseURL  string
}

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Attendance    AttendanceHandler
	Report        ReportHandler
	Dashboard     DashboardHandler
	Personnel     PersonnelHandler
	Justification JustificationHandler
	Calendar      CalendarHandler
	Event         EventHandler
	Health        HealthHandler
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "asistencia"),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	allowed := opts.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowed,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.StorageBasePath != "" && strings.HasPrefix(opts.StorageBaseURL, "/") {
		prefix := strings.TrimSuffix(opts.StorageBaseURL, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServer(http.Dir(opts.StorageBasePath))))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health.Health)
		r.Get("/events", h.Event.Stream)

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/import", h.Attendance.Import)
			r.Post("/import/file", h.Attendance.ImportFile)
			r.Get("/summary/months", h.Attendance.ImportedMonths)
			r.Get("/default-period", h.Attendance.DefaultPeriod)
			r.Get("/personnel/{id}/{year}/{month}", h.Attendance.GetPersonnelAttendance)
			r.Get("/{year}", h.Attendance.GetByPeriod)
			r.Get("/{year}/{month}", h.Attendance.GetByPeriod)
			r.Delete("/{year}/{month}", h.Attendance.DeleteMonth)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/summary/{year}", h.Report.Summary)
			r.Get("/summary/{year}/{month}", h.Report.Summary)
			r.Get("/ranking/{year}", h.Report.Ranking)
			r.Get("/ranking/{year}/{month}", h.Report.Ranking)
			r.Get("/export/{year}", h.Report.Export)
			r.Get("/export/{year}/{month}", h.Report.Export)
		})

		r.Get("/dashboard", h.Dashboard.GetDashboard)

		r.Route("/personnel", func(r chi.Router) {
			r.Get("/", h.Personnel.List)
			r.Post("/", h.Personnel.Create)
			r.Get("/{id}", h.Personnel.Get)
			r.Put("/{id}", h.Personnel.Update)
			r.Delete("/{id}", h.Personnel.Delete)
		})

		r.Route("/justifications", func(r chi.Router) {
			r.Get("/", h.Justification.List)
			r.Post("/", h.Justification.Create)
			r.Get("/stats", h.Justification.Stats)
			r.Get("/export", h.Justification.Export)
			r.Get("/{id}", h.Justification.Get)
			r.Put("/{id}", h.Justification.Update)
			r.Delete("/{id}", h.Justification.Delete)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.Calendar.ListHolidays)
			r.Post("/", h.Calendar.CreateHoliday)
			r.Delete("/{id}", h.Calendar.DeleteHoliday)
		})

		r.Route("/settings/working-days/{year}", func(r chi.Router) {
			r.Get("/", h.Calendar.ResolveWorkingDays)
			r.Get("/{month}", h.Calendar.GetWorkingDays)
			r.Put("/{month}", h.Calendar.SetWorkingDays)
			r.Delete("/{month}", h.Calendar.ClearWorkingDays)
			r.Get("/{month}/resolved", h.Calendar.ResolveWorkingDays)
		})
	})

	return r
}
