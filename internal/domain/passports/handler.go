package passports

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"rescue-passport/internal/middleware"
	"rescue-passport/internal/platform/text"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, alloc Allocator) {
	r.Route("/passports", func(pr chi.Router) {
		pr.Post("/", issuePassportHandler(svc, alloc))

		pr.Get("/{passportID}", getPassportHandler(svc, alloc))
		pr.Get("/{passportID}/verify", verifyPassportHandler(svc))

		// Solo el holder actual
		pr.Post("/{passportID}/transfer", transferPassportHandler(svc))

		// Solo el emisor (issued_by)
		pr.Patch("/{passportID}/animal-name", updateAnimalNameHandler(svc, alloc))
	})

	r.Get("/me/passports", listMyPassportsHandler(svc, alloc))
}

type issuePassportRequest struct {
	AnimalName string `json:"animal_name"`
	AnimalType string `json:"animal_type"`
	RescueDate int64  `json:"rescue_date"` // unix seconds
}

type transferRequest struct {
	Recipient string `json:"recipient"`
}

type updateAnimalNameRequest struct {
	AnimalName string `json:"animal_name"`
}

// passportResponse es la vista pública de un pasaporte.
type passportResponse struct {
	ID         ID      `json:"id"`
	Address    Address `json:"address"`
	AnimalName string  `json:"animal_name"`
	AnimalType string  `json:"animal_type"`
	RescueDate int64   `json:"rescue_date"`
	IssuedBy   Address `json:"issued_by"`
	Holder     Address `json:"holder,omitempty"`
	Valid      bool    `json:"valid"`
	Version    uint64  `json:"version"`
}

type verifyResponse struct {
	ID    ID   `json:"id"`
	Valid bool `json:"valid"`
}

// issuePassportHandler godoc
// @Summary Emitir pasaporte
// @Description Emite un pasaporte para un animal rescatado y lo asigna al caller, que queda como emisor (issued_by). Los campos se guardan tal cual.
// @Tags passports
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, caller"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body issuePassportRequest true "Datos del animal; rescue_date en segundos unix"
// @Success 201 {object} passportResponse
// @Failure 400 {string} string "invalid json / texto inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /passports [post]
func issuePassportHandler(svc *Service, alloc Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerFrom(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req issuePassportRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		p, err := svc.IssueAndAssign(r.Context(), caller, IssueInput{
			AnimalName: req.AnimalName,
			AnimalType: req.AnimalType,
			RescueDate: req.RescueDate,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPassportResponse(p, caller, alloc))
	}
}

// getPassportHandler godoc
// @Summary Ver pasaporte
// @Description Devuelve el pasaporte, su holder actual y si es válido.
// @Tags passports
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, caller"
// @Param Authorization header string false "Bearer token en producción"
// @Param passportID path string true "ID del pasaporte"
// @Success 200 {object} passportResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "passport not found"
// @Router /passports/{passportID} [get]
func getPassportHandler(svc *Service, alloc Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := callerFrom(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := ID(chi.URLParam(r, "passportID"))
		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		holder, err := svc.HolderOf(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPassportResponse(p, holder, alloc))
	}
}

// verifyPassportHandler godoc
// @Summary Verificar pasaporte
// @Description Chequea completitud: nombre y tipo no vacíos y rescue_date > 0. No es verificación criptográfica.
// @Tags passports
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, caller"
// @Param Authorization header string false "Bearer token en producción"
// @Param passportID path string true "ID del pasaporte"
// @Success 200 {object} verifyResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "passport not found"
// @Router /passports/{passportID}/verify [get]
func verifyPassportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := callerFrom(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := ID(chi.URLParam(r, "passportID"))
		valid, err := svc.Verify(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, verifyResponse{ID: id, Valid: valid})
	}
}

// transferPassportHandler godoc
// @Summary Transferir pasaporte
// @Description Pasa el pasaporte del caller a otra cuenta. Solo el holder actual puede transferir.
// @Tags passports
// @Accept json
// @Param X-Debug-User-ID header string false "Solo en modo dev, caller"
// @Param Authorization header string false "Bearer token en producción"
// @Param passportID path string true "ID del pasaporte"
// @Param payload body transferRequest true "Cuenta destino"
// @Success 204
// @Failure 400 {string} string "invalid json / texto inválido / recipient requerido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "passport not found"
// @Failure 409 {string} string "conflict"
// @Router /passports/{passportID}/transfer [post]
func transferPassportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerFrom(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req transferRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		id := ID(chi.URLParam(r, "passportID"))
		if err := svc.Transfer(r.Context(), caller, id, Address(strings.TrimSpace(req.Recipient))); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// updateAnimalNameHandler godoc
// @Summary Cambiar nombre del animal
// @Description Solo el emisor del pasaporte (issued_by) puede cambiar el nombre. El resto de los campos es inmutable.
// @Tags passports
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, caller"
// @Param Authorization header string false "Bearer token en producción"
// @Param passportID path string true "ID del pasaporte"
// @Param payload body updateAnimalNameRequest true "Nuevo nombre"
// @Success 200 {object} passportResponse
// @Failure 400 {string} string "invalid json / texto inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "insufficient permissions"
// @Failure 404 {string} string "passport not found"
// @Failure 409 {string} string "conflict"
// @Router /passports/{passportID}/animal-name [patch]
func updateAnimalNameHandler(svc *Service, alloc Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerFrom(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateAnimalNameRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		id := ID(chi.URLParam(r, "passportID"))
		p, err := svc.UpdateAnimalName(r.Context(), caller, id, req.AnimalName)
		if err != nil {
			writeError(w, err)
			return
		}
		holder, err := svc.HolderOf(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPassportResponse(p, holder, alloc))
	}
}

// listMyPassportsHandler godoc
// @Summary Mis pasaportes
// @Description Lista los pasaportes que tiene el caller, en orden de emisión.
// @Tags passports
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, caller"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} passportResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /me/passports [get]
func listMyPassportsHandler(svc *Service, alloc Allocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerFrom(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByHolder(r.Context(), caller)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]passportResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPassportResponse(p, caller, alloc))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// maxBodyBytes limita el body de los requests de escritura.
const maxBodyBytes = 64 << 10

var errInvalidJSON = errors.New("invalid json")

// decodeJSON valida que el body sea UTF-8 antes de decodificar: encoding/json
// reemplaza bytes inválidos por U+FFFD y el texto no se guardaría tal cual.
// Campos desconocidos son error en todos los endpoints.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil || len(body) > maxBodyBytes {
		return errInvalidJSON
	}
	if _, err := text.Decode(body); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errInvalidJSON
	}
	return nil
}

func callerFrom(r *http.Request) (Address, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return Address(strings.TrimSpace(claims.UserID)), true
}

func toPassportResponse(p Passport, holder Address, alloc Allocator) passportResponse {
	out := passportResponse{
		ID:         p.ID(),
		AnimalName: p.AnimalName(),
		AnimalType: p.AnimalType(),
		RescueDate: p.RescueDate(),
		IssuedBy:   p.IssuedBy(),
		Holder:     holder,
		Valid:      p.Verify(),
		Version:    p.Version(),
	}
	if alloc != nil {
		out.Address = alloc.IdentityToAddress(p.ID())
	}
	return out
}

// writeError traduce errores de dominio/holdings a status HTTP.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInsufficientPermissions):
		http.Error(w, "insufficient permissions", http.StatusForbidden)
	case errors.Is(err, ErrNotHeld):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "passport not found", http.StatusNotFound)
	case errors.Is(err, ErrStale), errors.Is(err, ErrAlreadyExists):
		http.Error(w, "conflict", http.StatusConflict)
	case errors.Is(err, errInvalidJSON):
		http.Error(w, "invalid json", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, text.ErrInvalidUTF8):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
