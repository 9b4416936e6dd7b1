package events

import (
	"encoding/json"
	"time"

	"rescue-passport/internal/domain/passports"
)

// PassportEvent es una entrada del historial de un pasaporte.
// Seq la asigna el repositorio y es creciente por orden de llegada.
type PassportEvent struct {
	ID         string
	PassportID passports.ID
	Seq        int64

	Kind  passports.EventKind
	Actor passports.Address

	RecordedAt time.Time

	// Payload es el evento de dominio serializado a JSON.
	Payload json.RawMessage
}
