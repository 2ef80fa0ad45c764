package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/domain/calendar"
	"github.com/asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/sse"
	"github.com/asistencia/asistencia-backend-go/internal/repository/postgresql"
)

// Publisher broadcasts change notifications; *sse.Hub implements it.
type Publisher interface {
	Publish(event sse.Event)
}

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	personnel.PersonnelRepository
	calendarService calendar.CalendarService
	processor       *Processor
	publisher       Publisher
	now             func() time.Time
}

// Import implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Import(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportResponse{}, err
	}

	period := attendance.MonthPeriod(req.Year, req.Month)
	loc := a.processor.Location()

	parsed, fallbacks := a.processor.Parse(req.Events)
	inPeriod := make([]attendance.ParsedEvent, 0, len(parsed))
	for _, e := range parsed {
		if period.Contains(e.ResolvedAt.In(loc)) {
			inPeriod = append(inPeriod, e)
		}
	}
	if len(inPeriod) == 0 {
		return attendance.ImportResponse{}, attendance.ErrNoRecordsForPeriod
	}

	persons := a.processor.Process(inPeriod)
	records := Flatten(persons)

	people := make([]personnel.Personnel, 0, len(persons))
	for _, p := range persons {
		people = append(people, personnel.Personnel{ID: p.ID, Name: p.Name})
	}

	start, end := period.Range(loc)
	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.PersonnelRepository.UpsertNames(txCtx, people); err != nil {
			return fmt.Errorf("failed to register personnel: %w", err)
		}
		if _, err := a.AttendanceRepository.DeleteByRange(txCtx, start, end); err != nil {
			return fmt.Errorf("failed to clear period %s: %w", period, err)
		}
		if err := a.AttendanceRepository.InsertRecords(txCtx, records); err != nil {
			return fmt.Errorf("failed to insert attendance records: %w", err)
		}
		if err := a.AttendanceRepository.UpsertImport(txCtx, attendance.ImportedMonth{
			Year:        req.Year,
			Month:       req.Month,
			RecordCount: len(records),
			SourceFile:  req.SourceFile,
			ImportedAt:  a.now().UTC(),
		}); err != nil {
			return fmt.Errorf("failed to save import metadata: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.ImportResponse{}, err
	}

	slog.Info("attendance imported",
		"period", period.String(),
		"records", len(records),
		"personnel", len(persons),
		"skipped", len(parsed)-len(inPeriod),
		"timestamp_fallbacks", fallbacks,
	)
	a.publish(sse.EventAttendanceImported, period)

	return attendance.ImportResponse{
		Year:               req.Year,
		Month:              req.Month,
		RecordsImported:    len(records),
		PersonnelCount:     len(persons),
		EventsSkipped:      len(parsed) - len(inPeriod),
		TimestampFallbacks: fallbacks,
	}, nil
}

// GetByPeriod implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetByPeriod(ctx context.Context, period attendance.Period) (map[string]*attendance.PersonRecord, error) {
	persons, err := a.list(ctx, period)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*attendance.PersonRecord, len(persons))
	for _, p := range persons {
		byID[p.ID] = p
	}
	return byID, nil
}

// GetPersonnelAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetPersonnelAttendance(ctx context.Context, personnelID string, period attendance.Period) (attendance.PersonnelAttendanceResponse, error) {
	start, end := period.Range(a.processor.Location())
	person, err := a.AttendanceRepository.GetPersonnelByRange(ctx, personnelID, start, end)
	if err != nil {
		return attendance.PersonnelAttendanceResponse{}, err
	}
	person.Statistics = CalculateStatistics(person.DailyRecords)

	workingDays, err := a.calendarService.WorkingDays(ctx, period.Year, period.Month)
	if err != nil {
		return attendance.PersonnelAttendanceResponse{}, fmt.Errorf("failed to resolve working days: %w", err)
	}

	return attendance.PersonnelAttendanceResponse{
		Person:            person,
		WorkingDaysCount:  len(workingDays),
		MissingDays:       MissingDays(person, workingDays, period),
		IncompleteRecords: IncompleteRecords(person, period),
	}, nil
}

// DeleteMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteMonth(ctx context.Context, year, month int) error {
	period := attendance.MonthPeriod(year, month)
	start, end := period.Range(a.processor.Location())

	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		deleted, err := a.AttendanceRepository.DeleteByRange(txCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to delete period %s: %w", period, err)
		}
		if deleted == 0 {
			return attendance.ErrPeriodNotImported
		}
		if err := a.AttendanceRepository.DeleteImport(txCtx, year, month); err != nil {
			return fmt.Errorf("failed to delete import metadata: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.publish(sse.EventAttendanceDeleted, period)
	return nil
}

// ImportedMonths implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ImportedMonths(ctx context.Context) ([]attendance.ImportedMonth, error) {
	months, err := a.AttendanceRepository.ListImportedMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list imported months: %w", err)
	}
	return months, nil
}

// DefaultPeriod implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DefaultPeriod(ctx context.Context) (attendance.Period, error) {
	months, err := a.ImportedMonths(ctx)
	if err != nil {
		return attendance.Period{}, err
	}
	return attendance.DefaultPeriod(months, a.now().In(a.processor.Location())), nil
}

// MonthlySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlySummary(ctx context.Context, period attendance.Period) (attendance.MonthlySummary, error) {
	persons, workingDays, err := a.summaryInputs(ctx, period)
	if err != nil {
		return attendance.MonthlySummary{}, err
	}
	return CalculateMonthlySummary(persons, workingDays), nil
}

// Ranking implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Ranking(ctx context.Context, period attendance.Period) ([]attendance.RankingEntry, error) {
	persons, workingDays, err := a.summaryInputs(ctx, period)
	if err != nil {
		return nil, err
	}
	return CalculateRanking(persons, workingDays), nil
}

func (a *AttendanceServiceImpl) list(ctx context.Context, period attendance.Period) ([]*attendance.PersonRecord, error) {
	start, end := period.Range(a.processor.Location())
	persons, err := a.AttendanceRepository.ListByRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for %s: %w", period, err)
	}
	for _, p := range persons {
		p.Statistics = CalculateStatistics(p.DailyRecords)
	}
	return persons, nil
}

// summaryInputs loads fresh records for every call; the aggregation mutates them.
func (a *AttendanceServiceImpl) summaryInputs(ctx context.Context, period attendance.Period) ([]*attendance.PersonRecord, []string, error) {
	persons, err := a.list(ctx, period)
	if err != nil {
		return nil, nil, err
	}

	workingDays, err := a.calendarService.WorkingDays(ctx, period.Year, period.Month)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve working days: %w", err)
	}

	return persons, workingDays, nil
}

func (a *AttendanceServiceImpl) publish(event string, period attendance.Period) {
	if a.publisher == nil {
		return
	}
	a.publisher.Publish(sse.Event{
		Topic: sse.TopicAttendance,
		Event: event,
		Data: map[string]interface{}{
			"year":   period.Year,
			"month":  period.Month,
			"period": period.String(),
		},
	})
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	personnelRepo personnel.PersonnelRepository,
	calendarService calendar.CalendarService,
	processor *Processor,
	publisher Publisher,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		PersonnelRepository:  personnelRepo,
		calendarService:      calendarService,
		processor:            processor,
		publisher:            publisher,
		now:                  time.Now,
	}
}
