package passports

import "context"

type EventKind string

const (
	EventKindIssued      EventKind = "PASSPORT_ISSUED"
	EventKindTransferred EventKind = "PASSPORT_TRANSFERRED"
	EventKindNameUpdated EventKind = "ANIMAL_NAME_UPDATED"
)

// Event es lo que el Registry publica en el EventSink.
type Event interface {
	Kind() EventKind
	PassportID() ID
	Actor() Address
}

type PassportIssued struct {
	ID         ID      `json:"passport_id"`
	AnimalName string  `json:"animal_name"`
	AnimalType string  `json:"animal_type"`
	IssuedBy   Address `json:"issued_by"`
	RescueDate int64   `json:"rescue_date"`
}

func (e PassportIssued) Kind() EventKind { return EventKindIssued }
func (e PassportIssued) PassportID() ID  { return e.ID }
func (e PassportIssued) Actor() Address  { return e.IssuedBy }

type PassportTransferred struct {
	ID   ID      `json:"passport_id"`
	From Address `json:"from"`
	To   Address `json:"to"`
}

func (e PassportTransferred) Kind() EventKind { return EventKindTransferred }
func (e PassportTransferred) PassportID() ID  { return e.ID }
func (e PassportTransferred) Actor() Address  { return e.From }

type AnimalNameUpdated struct {
	ID        ID      `json:"passport_id"`
	OldName   string  `json:"old_name"`
	NewName   string  `json:"new_name"`
	UpdatedBy Address `json:"updated_by"`
}

func (e AnimalNameUpdated) Kind() EventKind { return EventKindNameUpdated }
func (e AnimalNameUpdated) PassportID() ID  { return e.ID }
func (e AnimalNameUpdated) Actor() Address  { return e.UpdatedBy }

// MultiSink reparte cada evento a todos los sinks, en orden.
type MultiSink []EventSink

func (m MultiSink) Emit(ctx context.Context, e Event) {
	for _, s := range m {
		if s == nil {
			continue
		}
		s.Emit(ctx, e)
	}
}

// pendingEvents acumula eventos durante una operación del Service;
// solo se publican si la escritura en Holdings se confirmó.
type pendingEvents struct {
	items []Event
}

func (p *pendingEvents) Emit(_ context.Context, e Event) {
	p.items = append(p.items, e)
}

func (p *pendingEvents) flush(ctx context.Context, sink EventSink) {
	if sink == nil {
		return
	}
	for _, e := range p.items {
		sink.Emit(ctx, e)
	}
	p.items = nil
}
