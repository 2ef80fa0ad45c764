package http

import (
	"net/http"

	"github.com/asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/asistencia/asistencia-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PersonnelHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type personnelHandlerImpl struct {
	personnelService personnel.PersonnelService
}

func NewPersonnelHandler(personnelService personnel.PersonnelService) PersonnelHandler {
	return &personnelHandlerImpl{personnelService: personnelService}
}

// List implements PersonnelHandler.
func (h *personnelHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.personnelService.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, people, &response.Meta{TotalItems: len(people)})
}

// Get implements PersonnelHandler.
func (h *personnelHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.personnelService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// Create implements PersonnelHandler.
func (h *personnelHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req personnel.CreatePersonnelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.personnelService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Personnel created successfully", p)
}

// Update implements PersonnelHandler.
func (h *personnelHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req personnel.UpdatePersonnelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	p, err := h.personnelService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel updated successfully", p)
}

// Delete implements PersonnelHandler.
func (h *personnelHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.personnelService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel deleted successfully", nil)
}
