package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
	"github.com/iudanet/marketsync/internal/validation"
	"github.com/iudanet/marketsync/pkg/api"
)

// MaintenanceHandler отдает и меняет режим обслуживания
type MaintenanceHandler struct {
	responder
	storage storage.MaintenanceStorage
	clock   clockwork.Clock
}

// NewMaintenanceHandler создает handler режима обслуживания
func NewMaintenanceHandler(logger *slog.Logger, s storage.MaintenanceStorage, clock clockwork.Clock) *MaintenanceHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MaintenanceHandler{responder: responder{logger: logger}, storage: s, clock: clock}
}

// Get обрабатывает GET /maintenance
func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.storage.GetMaintenance(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to get maintenance", err)
		return
	}
	h.sendJSON(w, m, http.StatusOK)
}

// Set обрабатывает PUT /maintenance (admin). Запрос целиком заменяет
// настройки: немедленный режим стирает окно, окно отменяет немедленный режим.
func (h *MaintenanceHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req api.MaintenanceRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Message != "" {
		if err := validation.ValidateText("message", req.Message, validation.MaxReasonLen); err != nil {
			h.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	now := h.clock.Now()
	var m models.Maintenance
	switch req.Mode {
	case models.MaintenanceOff:
		m = models.NoMaintenance(now)
	case models.MaintenanceImmediate:
		m = models.ImmediateMaintenance(req.Message, now)
	case models.MaintenanceScheduled:
		if req.Start == nil || req.End == nil {
			h.sendError(w, models.ErrInvalidWindow.Error(), http.StatusBadRequest)
			return
		}
		var err error
		if m, err = models.ScheduledMaintenance(*req.Start, *req.End, req.Message, now); err != nil {
			h.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
	default:
		h.sendError(w, models.ErrUnknownMode.Error(), http.StatusBadRequest)
		return
	}

	if err := h.storage.SaveMaintenance(r.Context(), &m); err != nil {
		h.internalError(w, r, "failed to save maintenance", err)
		return
	}

	userID, _ := GetUserID(r.Context())
	h.logger.InfoContext(r.Context(), "maintenance changed",
		slog.String("mode", string(m.Mode)),
		slog.String("by", userID))
	h.sendJSON(w, m, http.StatusOK)
}

// Blocked reports whether new orders are refused right now. On a storage
// failure the request is let through; the failure is logged.
func (h *MaintenanceHandler) Blocked(r *http.Request) (*models.Maintenance, bool) {
	m, err := h.storage.GetMaintenance(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to check maintenance", slog.Any("error", err))
		return nil, false
	}
	return m, m.StateAt(h.clock.Now()) == models.StateActive
}
