package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rescue-passport/internal/domain/passports"
	"rescue-passport/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, passportsSvc *passports.Service) {
	r.Get("/passports/{passportID}/events", listEventsHandler(svc, passportsSvc))
}

// eventResponse representa una entrada del historial de un pasaporte.
type eventResponse struct {
	ID         string              `json:"id"`
	PassportID passports.ID        `json:"passport_id"`
	Seq        int64               `json:"seq"`
	Kind       passports.EventKind `json:"kind"`
	Actor      passports.Address   `json:"actor"`
	RecordedAt time.Time           `json:"recorded_at"`
	Payload    json.RawMessage     `json:"payload" swaggertype:"object"`
}

// listEventsHandler godoc
// @Summary Historial de un pasaporte
// @Description Lista los eventos (emisión, transferencias, cambios de nombre) en orden de ocurrencia. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, caller"
// @Param Authorization header string false "Bearer token en producción"
// @Param passportID path string true "ID del pasaporte"
// @Param limit query int false "Máximo de eventos (1-200). Por defecto 50"
// @Param kinds query string false "CSV de tipos (PASSPORT_ISSUED,PASSPORT_TRANSFERRED,ANIMAL_NAME_UPDATED)"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "passport not found"
// @Failure 500 {string} string "internal error"
// @Router /passports/{passportID}/events [get]
func listEventsHandler(svc *Service, passportsSvc *passports.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		passportID := passports.ID(chi.URLParam(r, "passportID"))
		if _, err := passportsSvc.GetByID(r.Context(), passportID); err != nil {
			if errors.Is(err, passports.ErrNotFound) {
				http.Error(w, "passport not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		filter := ListFilter{}
		q := r.URL.Query()

		if v := strings.TrimSpace(q.Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > MaxLimit {
				http.Error(w, "limit must be between 1 and 200", http.StatusBadRequest)
				return
			}
			filter.Limit = n
		}

		if v := strings.TrimSpace(q.Get("kinds")); v != "" {
			for _, raw := range strings.Split(v, ",") {
				k := strings.TrimSpace(raw)
				if k == "" {
					continue
				}
				filter.Kinds = append(filter.Kinds, passports.EventKind(k))
			}
		}

		items, err := svc.ListByPassport(r.Context(), passportID, filter)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid filter", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toEventResponse(e PassportEvent) eventResponse {
	return eventResponse{
		ID:         e.ID,
		PassportID: e.PassportID,
		Seq:        e.Seq,
		Kind:       e.Kind,
		Actor:      e.Actor,
		RecordedAt: e.RecordedAt,
		Payload:    e.Payload,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
