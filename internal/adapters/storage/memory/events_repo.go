package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"rescue-passport/internal/domain/events"
	"rescue-passport/internal/domain/passports"
)

type eventRepo struct {
	mu         sync.RWMutex
	byID       map[string]events.PassportEvent
	byPassport map[passports.ID][]string
	nextSeq    int64
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID:       make(map[string]events.PassportEvent),
		byPassport: make(map[passports.ID][]string),
	}
}

func (r *eventRepo) Append(ctx context.Context, e events.PassportEvent) (events.PassportEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return events.PassportEvent{}, errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return events.PassportEvent{}, errors.New("event already exists")
	}

	r.nextSeq++
	e.Seq = r.nextSeq

	r.byID[e.ID] = e
	r.byPassport[e.PassportID] = append(r.byPassport[e.PassportID], e.ID)
	return e, nil
}

func (r *eventRepo) ListByPassport(ctx context.Context, passportID passports.ID, filter events.ListFilter) ([]events.PassportEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = events.DefaultLimit
	}

	out := make([]events.PassportEvent, 0)
	for _, id := range r.byPassport[passportID] {
		e := r.byID[id]

		if len(filter.Kinds) > 0 {
			ok := false
			for _, k := range filter.Kinds {
				if e.Kind == k {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		out = append(out, e)
	}

	// Orden de ocurrencia (seq asc)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Seq < out[j].Seq
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
