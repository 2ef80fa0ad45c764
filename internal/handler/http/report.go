package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/handler/http/response"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/spreadsheet"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Ranking(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewReportHandler(attendanceService attendance.AttendanceService) ReportHandler {
	return &reportHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Summary implements ReportHandler.
func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	period, ok := periodFromPath(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.MonthlySummary(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: len(result.Summary), Period: period.String()})
}

// Ranking implements ReportHandler.
func (h *reportHandlerImpl) Ranking(w http.ResponseWriter, r *http.Request) {
	period, ok := periodFromPath(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.Ranking(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: len(result), Period: period.String()})
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	period, ok := periodFromPath(w, r)
	if !ok {
		return
	}

	kind, err := spreadsheet.ParseKind(r.URL.Query().Get("kind"))
	if err != nil || kind == spreadsheet.KindJustifications {
		response.BadRequest(w, "kind must be summary, detail or ranking", map[string]string{"kind": "invalid export kind"})
		return
	}
	format, ok := formatFromQuery(w, r)
	if !ok {
		return
	}

	// render fully before writing headers so errors still get a JSON envelope
	var buf bytes.Buffer
	switch kind {
	case spreadsheet.KindDetail:
		var data map[string]*attendance.PersonRecord
		data, err = h.attendanceService.GetByPeriod(r.Context(), period)
		if err == nil {
			persons := make([]*attendance.PersonRecord, 0, len(data))
			for _, p := range data {
				persons = append(persons, p)
			}
			attendance.SortPersonnel(persons)
			err = spreadsheet.WriteDetail(&buf, format, persons)
		}
	case spreadsheet.KindRanking:
		var ranking []attendance.RankingEntry
		ranking, err = h.attendanceService.Ranking(r.Context(), period)
		if err == nil {
			err = spreadsheet.WriteRanking(&buf, format, ranking)
		}
	default:
		var summary attendance.MonthlySummary
		summary, err = h.attendanceService.MonthlySummary(r.Context(), period)
		if err == nil {
			err = spreadsheet.WriteSummary(&buf, format, summary.Summary)
		}
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeDownload(w, format, spreadsheet.Filename(kind, format, period), buf.Bytes())
}

// formatFromQuery reads ?format=csv|xlsx, defaulting to csv.
func formatFromQuery(w http.ResponseWriter, r *http.Request) (spreadsheet.Format, bool) {
	format, err := spreadsheet.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.BadRequest(w, "format must be csv or xlsx", map[string]string{"format": "invalid export format"})
		return "", false
	}
	return format, true
}

func writeDownload(w http.ResponseWriter, format spreadsheet.Format, filename string, body []byte) {
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
