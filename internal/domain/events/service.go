package events

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"rescue-passport/internal/domain/passports"
	"rescue-passport/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service es el log de eventos de pasaportes. Implementa passports.EventSink.
type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Emit guarda el evento. Fire-and-forget: los errores solo se loguean.
func (s *Service) Emit(ctx context.Context, e passports.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		s.log.Error("encode passport event failed", map[string]any{"kind": e.Kind(), "passport_id": e.PassportID(), "error": err.Error()})
		return
	}

	rec := PassportEvent{
		ID:         uuid.NewString(),
		PassportID: e.PassportID(),
		Kind:       e.Kind(),
		Actor:      e.Actor(),
		RecordedAt: s.now(),
		Payload:    payload,
	}

	// el request puede cancelarse después del commit; el evento igual se guarda
	if _, err := s.repo.Append(context.WithoutCancel(ctx), rec); err != nil {
		s.log.Error("append passport event failed", map[string]any{"kind": rec.Kind, "passport_id": rec.PassportID, "error": err.Error()})
	}
}

func (s *Service) ListByPassport(ctx context.Context, passportID passports.ID, filter ListFilter) ([]PassportEvent, error) {
	if strings.TrimSpace(string(passportID)) == "" {
		return nil, ErrInvalidInput
	}
	for _, k := range filter.Kinds {
		if !isKnownKind(k) {
			return nil, ErrInvalidInput
		}
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultLimit
	case filter.Limit > MaxLimit:
		filter.Limit = MaxLimit
	}

	return s.repo.ListByPassport(ctx, passportID, filter)
}
