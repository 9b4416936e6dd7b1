package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"rescue-passport/internal/domain/passports"
)

type holding struct {
	passport passports.Passport
	holder   passports.Address
	seq      uint64
}

// passportRepo implementa passports.Holdings en memoria.
// Un único mutex serializa todas las escrituras; la versión detecta writes con datos viejos.
type passportRepo struct {
	mu      sync.RWMutex
	byID    map[passports.ID]holding
	nextSeq uint64
}

func NewPassportRepo() passports.Holdings {
	return &passportRepo{
		byID: make(map[passports.ID]holding),
	}
}

func (r *passportRepo) Place(ctx context.Context, p passports.Passport, holder passports.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(string(p.ID())) == "" || strings.TrimSpace(string(holder)) == "" {
		return passports.ErrInvalidInput
	}
	if err := passports.CheckStorable(p, holder); err != nil {
		return err
	}
	if _, exists := r.byID[p.ID()]; exists {
		return passports.ErrAlreadyExists
	}

	r.nextSeq++
	r.byID[p.ID()] = holding{
		passport: p.WithVersion(1),
		holder:   holder,
		seq:      r.nextSeq,
	}
	return nil
}

func (r *passportRepo) Reassign(ctx context.Context, p passports.Passport, newHolder passports.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(string(newHolder)) == "" {
		return passports.ErrInvalidInput
	}
	if err := passports.CheckStorable(passports.Passport{}, newHolder); err != nil {
		return err
	}
	h, ok := r.byID[p.ID()]
	if !ok {
		return passports.ErrNotFound
	}
	if h.passport.Version() != p.Version() {
		return passports.ErrStale
	}

	h.holder = newHolder
	h.passport = h.passport.WithVersion(h.passport.Version() + 1)
	r.byID[p.ID()] = h
	return nil
}

func (r *passportRepo) Take(ctx context.Context, holder passports.Address, id passports.ID) (passports.Passport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	if !ok {
		return passports.Passport{}, passports.ErrNotFound
	}
	if h.holder != holder {
		return passports.Passport{}, passports.ErrNotHeld
	}
	return h.passport, nil
}

func (r *passportRepo) Update(ctx context.Context, p passports.Passport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := passports.CheckStorable(p); err != nil {
		return err
	}

	h, ok := r.byID[p.ID()]
	if !ok {
		return passports.ErrNotFound
	}
	if h.passport.Version() != p.Version() {
		return passports.ErrStale
	}

	// solo animal_name es mutable; el resto se conserva del registro guardado
	cur := h.passport
	h.passport = passports.Restore(cur.ID(), p.AnimalName(), cur.AnimalType(), cur.RescueDate(), cur.IssuedBy(), cur.Version()+1)
	r.byID[p.ID()] = h
	return nil
}

func (r *passportRepo) Get(ctx context.Context, id passports.ID) (passports.Passport, passports.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	if !ok {
		return passports.Passport{}, "", passports.ErrNotFound
	}
	return h.passport, h.holder, nil
}

func (r *passportRepo) ListByHolder(ctx context.Context, holder passports.Address) ([]passports.Passport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]holding, 0)
	for _, h := range r.byID {
		if h.holder == holder {
			items = append(items, h)
		}
	}

	// Orden estable por orden de emisión
	sort.Slice(items, func(i, j int) bool {
		return items[i].seq < items[j].seq
	})

	out := make([]passports.Passport, 0, len(items))
	for _, h := range items {
		out = append(out, h.passport)
	}
	return out, nil
}
