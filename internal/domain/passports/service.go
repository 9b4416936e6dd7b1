package passports

import (
	"context"
	"errors"
	"strings"

	"rescue-passport/internal/platform/logger"
)

// Recorder recibe métricas de negocio. platform/metrics.Collector lo implementa.
type Recorder interface {
	PassportIssued()
	PassportTransferred()
	AnimalNameUpdated()
	PermissionDenied(op string)
}

type nopRecorder struct{}

func (nopRecorder) PassportIssued()         {}
func (nopRecorder) PassportTransferred()    {}
func (nopRecorder) AnimalNameUpdated()      {}
func (nopRecorder) PermissionDenied(string) {}

// Service es el caso de uso que usan los handlers: resuelve el pasaporte en Holdings,
// aplica la operación del Registry y publica los eventos solo si la escritura se confirmó.
type Service struct {
	registry *Registry
	holdings Holdings
	sink     EventSink
	log      logger.Logger
	metrics  Recorder
}

type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithRecorder(m Recorder) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

func NewService(alloc Allocator, holdings Holdings, sink EventSink, opts ...Option) *Service {
	s := &Service{
		registry: NewRegistry(alloc, holdings, nil),
		holdings: holdings,
		sink:     sink,
		log:      logger.Nop(),
		metrics:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type IssueInput struct {
	AnimalName string
	AnimalType string
	RescueDate int64
}

// IssueAndAssign emite un pasaporte y lo asigna al caller.
// Los campos se guardan tal cual (sin trim); la validez la informa Verify.
func (s *Service) IssueAndAssign(ctx context.Context, caller Address, in IssueInput) (Passport, error) {
	if strings.TrimSpace(string(caller)) == "" {
		return Passport{}, ErrInvalidInput
	}

	pending := &pendingEvents{}
	id, err := s.registry.withSink(pending).IssueAndAssign(ctx, caller, []byte(in.AnimalName), []byte(in.AnimalType), in.RescueDate)
	if err != nil {
		s.log.Error("issue passport failed", map[string]any{"caller": caller, "error": err.Error()})
		return Passport{}, err
	}
	pending.flush(ctx, s.sink)
	s.metrics.PassportIssued()

	s.log.Info("passport issued", map[string]any{"passport_id": id, "issued_by": caller})

	p, _, err := s.holdings.Get(ctx, id)
	if err != nil {
		return Passport{}, err
	}
	return p, nil
}

// Transfer mueve el pasaporte del caller a recipient. Falla con ErrNotHeld si
// el caller no lo tiene.
func (s *Service) Transfer(ctx context.Context, caller Address, id ID, recipient Address) error {
	if strings.TrimSpace(string(caller)) == "" || strings.TrimSpace(string(recipient)) == "" {
		return ErrInvalidInput
	}

	p, err := s.holdings.Take(ctx, caller, id)
	if err != nil {
		if errors.Is(err, ErrNotHeld) {
			s.metrics.PermissionDenied("transfer")
			s.log.Warn("transfer by non-holder", map[string]any{"passport_id": id, "caller": caller})
		}
		return err
	}

	pending := &pendingEvents{}
	if err := s.registry.withSink(pending).Transfer(ctx, p, recipient, caller); err != nil {
		return err
	}
	pending.flush(ctx, s.sink)
	s.metrics.PassportTransferred()

	s.log.Info("passport transferred", map[string]any{"passport_id": id, "from": caller, "to": recipient})
	return nil
}

// UpdateAnimalName cambia el nombre del animal. La autoridad es issued_by,
// independientemente de quién sea el holder actual.
func (s *Service) UpdateAnimalName(ctx context.Context, caller Address, id ID, newName string) (Passport, error) {
	if strings.TrimSpace(string(caller)) == "" {
		return Passport{}, ErrInvalidInput
	}

	p, _, err := s.holdings.Get(ctx, id)
	if err != nil {
		return Passport{}, err
	}

	pending := &pendingEvents{}
	if err := s.registry.withSink(pending).UpdateAnimalName(ctx, &p, []byte(newName), caller); err != nil {
		if errors.Is(err, ErrInsufficientPermissions) {
			s.metrics.PermissionDenied("update_animal_name")
			s.log.Warn("animal name update denied", map[string]any{"passport_id": id, "caller": caller})
		}
		return Passport{}, err
	}

	if err := s.holdings.Update(ctx, p); err != nil {
		return Passport{}, err
	}
	pending.flush(ctx, s.sink)
	s.metrics.AnimalNameUpdated()

	s.log.Info("animal name updated", map[string]any{"passport_id": id, "updated_by": caller})

	// la versión nueva la decide el adapter
	stored, _, err := s.holdings.Get(ctx, id)
	if err != nil {
		return Passport{}, err
	}
	return stored, nil
}

func (s *Service) GetByID(ctx context.Context, id ID) (Passport, error) {
	p, _, err := s.holdings.Get(ctx, id)
	return p, err
}

// HolderOf devuelve quién tiene el pasaporte.
func (s *Service) HolderOf(ctx context.Context, id ID) (Address, error) {
	_, holder, err := s.holdings.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return holder, nil
}

func (s *Service) ListByHolder(ctx context.Context, holder Address) ([]Passport, error) {
	if strings.TrimSpace(string(holder)) == "" {
		return nil, ErrInvalidInput
	}
	return s.holdings.ListByHolder(ctx, holder)
}

func (s *Service) Verify(ctx context.Context, id ID) (bool, error) {
	p, _, err := s.holdings.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return p.Verify(), nil
}
