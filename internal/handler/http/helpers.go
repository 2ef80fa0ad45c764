package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// maxJSONBody bounds JSON request bodies; raw event imports can be large.
const maxJSONBody = 32 << 20

// decodeJSON reads the request body into dst and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// periodFromPath reads {year} and the optional {month} URL parameters.
func periodFromPath(w http.ResponseWriter, r *http.Request) (attendance.Period, bool) {
	period, err := attendance.ParsePeriod(chi.URLParam(r, "year"), chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return attendance.Period{}, false
	}
	return period, true
}

// monthFromPath is periodFromPath for routes where {month} is mandatory.
func monthFromPath(w http.ResponseWriter, r *http.Request) (attendance.Period, bool) {
	period, ok := periodFromPath(w, r)
	if ok && period.IsYear() {
		response.BadRequest(w, "month is required", map[string]string{"month": "month is required"})
		return attendance.Period{}, false
	}
	return period, ok
}
