package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/asistencia/asistencia-backend-go/internal/handler/http/response"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/spreadsheet"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type JustificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type justificationHandlerImpl struct {
	justificationService justification.JustificationService
}

func NewJustificationHandler(justificationService justification.JustificationService) JustificationHandler {
	return &justificationHandlerImpl{justificationService: justificationService}
}

// filterFromQuery reads ?search=&type=&personnel_id=&from=&to=.
func filterFromQuery(r *http.Request) (justification.Filter, error) {
	q := r.URL.Query()
	filter := justification.Filter{
		Search:      q.Get("search"),
		PersonnelID: q.Get("personnel_id"),
	}

	var errs validator.ValidationErrors
	if raw := q.Get("type"); raw != "" {
		t, err := justification.ParseType(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "type", Message: justification.ErrInvalidType.Error()})
		} else {
			filter.Type = &t
		}
	}
	for key, dst := range map[string]**string{"from": &filter.DateFrom, "to": &filter.DateTo} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		if _, ok := validator.IsValidDate(raw); !ok {
			errs = append(errs, validator.ValidationError{Field: key, Message: key + " must be in YYYY-MM-DD format"})
			continue
		}
		value := raw
		*dst = &value
	}

	if len(errs) > 0 {
		return justification.Filter{}, errs
	}
	return filter, nil
}

// List implements JustificationHandler.
func (h *justificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items, err := h.justificationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: len(items)})
}

// Get implements JustificationHandler.
func (h *justificationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.justificationService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// Create implements JustificationHandler.
func (h *justificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req justification.CreateJustificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.justificationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification created successfully", item)
}

// Update implements JustificationHandler.
func (h *justificationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req justification.UpdateJustificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	item, err := h.justificationService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification updated successfully", item)
}

// Delete implements JustificationHandler.
func (h *justificationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.justificationService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification deleted successfully", nil)
}

// Stats implements JustificationHandler.
func (h *justificationHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.justificationService.Stats(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Export implements JustificationHandler.
func (h *justificationHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	format, ok := formatFromQuery(w, r)
	if !ok {
		return
	}

	items, err := h.justificationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := spreadsheet.WriteJustifications(&buf, format, items); err != nil {
		response.HandleError(w, err)
		return
	}

	writeDownload(w, format, fmt.Sprintf("justificaciones_%s.%s", time.Now().Format("2006-01-02"), format), buf.Bytes())
}
