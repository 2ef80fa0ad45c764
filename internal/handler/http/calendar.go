package http

import (
	"net/http"

	"github.com/asistencia/asistencia-backend-go/internal/domain/calendar"
	"github.com/asistencia/asistencia-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	ListHolidays(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
	GetWorkingDays(w http.ResponseWriter, r *http.Request)
	SetWorkingDays(w http.ResponseWriter, r *http.Request)
	ClearWorkingDays(w http.ResponseWriter, r *http.Request)
	ResolveWorkingDays(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

// ListHolidays implements CalendarHandler.
func (h *calendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.calendarService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, holidays, &response.Meta{TotalItems: len(holidays)})
}

// CreateHoliday implements CalendarHandler.
func (h *calendarHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateHolidayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	holiday, err := h.calendarService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", holiday)
}

// DeleteHoliday implements CalendarHandler.
func (h *calendarHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.calendarService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

// GetWorkingDays answers null data when the month follows the weekday rule.
func (h *calendarHandlerImpl) GetWorkingDays(w http.ResponseWriter, r *http.Request) {
	period, ok := monthFromPath(w, r)
	if !ok {
		return
	}

	override, err := h.calendarService.GetWorkingDays(r.Context(), period.Year, period.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, override)
}

// SetWorkingDays implements CalendarHandler.
func (h *calendarHandlerImpl) SetWorkingDays(w http.ResponseWriter, r *http.Request) {
	period, ok := monthFromPath(w, r)
	if !ok {
		return
	}

	var req calendar.SetWorkingDaysRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Year, req.Month = period.Year, period.Month

	saved, err := h.calendarService.SetWorkingDays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Working days saved successfully", saved)
}

// ClearWorkingDays implements CalendarHandler.
func (h *calendarHandlerImpl) ClearWorkingDays(w http.ResponseWriter, r *http.Request) {
	period, ok := monthFromPath(w, r)
	if !ok {
		return
	}

	if err := h.calendarService.ClearWorkingDays(r.Context(), period.Year, period.Month); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Working days reset to default", nil)
}

// ResolveWorkingDays lists the effective working days of a month or year.
func (h *calendarHandlerImpl) ResolveWorkingDays(w http.ResponseWriter, r *http.Request) {
	period, ok := periodFromPath(w, r)
	if !ok {
		return
	}

	days, err := h.calendarService.WorkingDays(r.Context(), period.Year, period.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, days, &response.Meta{TotalItems: len(days), Period: period.String()})
}
