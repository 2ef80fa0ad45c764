package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/handler/http/response"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/spreadsheet"
	"github.com/asistencia/asistencia-backend-go/internal/service/file"
	"github.com/go-chi/chi/v5"
)

// maxUploadSize bounds multipart clock exports.
const maxUploadSize = 20 << 20

type AttendanceHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	ImportFile(w http.ResponseWriter, r *http.Request)
	ImportedMonths(w http.ResponseWriter, r *http.Request)
	DefaultPeriod(w http.ResponseWriter, r *http.Request)
	GetByPeriod(w http.ResponseWriter, r *http.Request)
	DeleteMonth(w http.ResponseWriter, r *http.Request)
	GetPersonnelAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	fileService       file.FileService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, fileService file.FileService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		fileService:       fileService,
	}
}

// Import implements AttendanceHandler.
func (h *attendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req attendance.ImportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.attendanceService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance imported successfully", result)
}

// ImportFile implements AttendanceHandler.
func (h *attendanceHandlerImpl) ImportFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	period, err := attendance.ParsePeriod(r.FormValue("year"), r.FormValue("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if period.IsYear() {
		response.BadRequest(w, "month is required", map[string]string{"month": "month is required"})
		return
	}

	upload, header, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Attendance file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer upload.Close()

	archived, err := h.fileService.ArchiveImport(r.Context(), period.Year, period.Month, upload, header.Filename)
	if err != nil {
		slog.Error("Failed to archive import", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	if _, err := upload.Seek(0, io.SeekStart); err != nil {
		h.discard(r.Context(), archived)
		response.HandleError(w, err)
		return
	}

	events, err := spreadsheet.ReadEvents(upload)
	if err != nil {
		h.discard(r.Context(), archived)
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Import(r.Context(), attendance.ImportRequest{
		Year:       period.Year,
		Month:      period.Month,
		Events:     events,
		SourceFile: &archived,
	})
	if err != nil {
		h.discard(r.Context(), archived)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance imported successfully", result)
}

func (h *attendanceHandlerImpl) discard(ctx context.Context, path string) {
	if err := h.fileService.DeleteFile(ctx, path); err != nil {
		slog.Warn("Failed to remove archived import", "path", path, "error", err)
	}
}

// ImportedMonths implements AttendanceHandler.
func (h *attendanceHandlerImpl) ImportedMonths(w http.ResponseWriter, r *http.Request) {
	months, err := h.attendanceService.ImportedMonths(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	for i := range months {
		src := months[i].SourceFile
		if src == nil || !strings.HasPrefix(*src, file.ImportPrefix) {
			continue
		}
		if url, err := h.fileService.ImportURL(r.Context(), *src); err == nil {
			months[i].SourceURL = url
		}
	}

	response.SuccessWithMeta(w, months, &response.Meta{TotalItems: len(months)})
}

// DefaultPeriod implements AttendanceHandler.
func (h *attendanceHandlerImpl) DefaultPeriod(w http.ResponseWriter, r *http.Request) {
	period, err := h.attendanceService.DefaultPeriod(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"year":   period.Year,
		"month":  period.Month,
		"period": period.String(),
	})
}

// GetByPeriod implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetByPeriod(w http.ResponseWriter, r *http.Request) {
	period, ok := periodFromPath(w, r)
	if !ok {
		return
	}

	data, err := h.attendanceService.GetByPeriod(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, data, &response.Meta{TotalItems: len(data), Period: period.String()})
}

// DeleteMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteMonth(w http.ResponseWriter, r *http.Request) {
	period, ok := monthFromPath(w, r)
	if !ok {
		return
	}

	if err := h.attendanceService.DeleteMonth(r.Context(), period.Year, period.Month); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}

// GetPersonnelAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetPersonnelAttendance(w http.ResponseWriter, r *http.Request) {
	period, ok := periodFromPath(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.GetPersonnelAttendance(r.Context(), chi.URLParam(r, "id"), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
