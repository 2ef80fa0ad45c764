package http

import (
	"context"
	"net/http"
	"time"

	"github.com/asistencia/asistencia-backend-go/internal/handler/http/response"
)

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db Pinger
}

func NewHealthHandler(db Pinger) HealthHandler {
	return &healthHandlerImpl{db: db}
}

// Health implements HealthHandler.
func (h *healthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		response.InternalServerError(w, "database unreachable")
		return
	}

	response.Success(w, map[string]string{"status": "ok"})
}
