package events

import (
	"context"

	"rescue-passport/internal/domain/passports"
)

type Repository interface {
	// Append guarda el evento y devuelve la versión con Seq asignado.
	Append(ctx context.Context, e PassportEvent) (PassportEvent, error)
	ListByPassport(ctx context.Context, passportID passports.ID, filter ListFilter) ([]PassportEvent, error)
}

type ListFilter struct {
	Kinds []passports.EventKind
	Limit int
}
