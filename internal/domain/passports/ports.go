package passports

import "context"

// Allocator asigna identidades globalmente únicas. Nunca reutiliza una identidad.
type Allocator interface {
	Allocate(ctx context.Context) (ID, error)
	IdentityToAddress(id ID) Address
}

// Holdings lleva quién tiene cada pasaporte.
//
// Take es el control de posesión: solo devuelve el registro si holder lo tiene.
// Reassign y Update son condicionales a la versión del pasaporte recibido; si otro
// write ganó antes, devuelven ErrStale.
type Holdings interface {
	Place(ctx context.Context, p Passport, holder Address) error
	Reassign(ctx context.Context, p Passport, newHolder Address) error
	Take(ctx context.Context, holder Address, id ID) (Passport, error)
	Update(ctx context.Context, p Passport) error

	Get(ctx context.Context, id ID) (Passport, Address, error)
	ListByHolder(ctx context.Context, holder Address) ([]Passport, error)
}

// EventSink recibe eventos sin confirmación (fire-and-forget).
type EventSink interface {
	Emit(ctx context.Context, e Event)
}
