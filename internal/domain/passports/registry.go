package passports

import (
	"context"

	"rescue-passport/internal/platform/text"
)

// Registry implementa las operaciones de ciclo de vida del pasaporte.
// No guarda estado propio: identidades vienen del Allocator, el holder de Holdings
// y los eventos salen por el EventSink.
type Registry struct {
	alloc    Allocator
	holdings Holdings
	sink     EventSink
}

func NewRegistry(alloc Allocator, holdings Holdings, sink EventSink) *Registry {
	return &Registry{
		alloc:    alloc,
		holdings: holdings,
		sink:     sink,
	}
}

// withSink devuelve una copia del registry que publica en otro sink.
func (r *Registry) withSink(sink EventSink) *Registry {
	return &Registry{
		alloc:    r.alloc,
		holdings: r.holdings,
		sink:     sink,
	}
}

// Issue construye un pasaporte nuevo con issued_by = caller. No lo asigna a ningún holder.
func (r *Registry) Issue(ctx context.Context, caller Address, animalName, animalType []byte, rescueDate int64) (Passport, error) {
	name, err := text.Decode(animalName)
	if err != nil {
		return Passport{}, err
	}
	typ, err := text.Decode(animalType)
	if err != nil {
		return Passport{}, err
	}

	id, err := r.alloc.Allocate(ctx)
	if err != nil {
		return Passport{}, err
	}

	p := Passport{
		id:         id,
		animalName: name,
		animalType: typ,
		rescueDate: rescueDate,
		issuedBy:   caller,
	}

	r.emit(ctx, PassportIssued{
		ID:         p.id,
		AnimalName: p.animalName,
		AnimalType: p.animalType,
		IssuedBy:   p.issuedBy,
		RescueDate: p.rescueDate,
	})

	return p, nil
}

// IssueAndAssign emite el pasaporte y lo deja en manos del caller.
func (r *Registry) IssueAndAssign(ctx context.Context, caller Address, animalName, animalType []byte, rescueDate int64) (ID, error) {
	p, err := r.Issue(ctx, caller, animalName, animalType, rescueDate)
	if err != nil {
		return "", err
	}
	if err := r.holdings.Place(ctx, p, caller); err != nil {
		return "", err
	}
	return p.id, nil
}

// Transfer pasa el pasaporte a recipient.
// No valida al caller: tener el pasaporte (Holdings.Take) ya es la autorización.
func (r *Registry) Transfer(ctx context.Context, p Passport, recipient Address, caller Address) error {
	r.emit(ctx, PassportTransferred{
		ID:   p.id,
		From: caller,
		To:   recipient,
	})
	return r.holdings.Reassign(ctx, p, recipient)
}

// UpdateAnimalName cambia el nombre. Solo el emisor (issued_by) puede hacerlo.
// Si falla, el pasaporte queda intacto y no se emite evento.
func (r *Registry) UpdateAnimalName(ctx context.Context, p *Passport, newName []byte, caller Address) error {
	if caller != p.issuedBy {
		return ErrInsufficientPermissions
	}

	name, err := text.Decode(newName)
	if err != nil {
		return err
	}

	old := p.animalName
	p.animalName = name

	r.emit(ctx, AnimalNameUpdated{
		ID:        p.id,
		OldName:   old,
		NewName:   name,
		UpdatedBy: caller,
	})
	return nil
}

func (r *Registry) emit(ctx context.Context, e Event) {
	if r.sink == nil {
		return
	}
	r.sink.Emit(ctx, e)
}
