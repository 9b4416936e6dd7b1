package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"rescue-passport/internal/domain/events"
	"rescue-passport/internal/domain/passports"
)

type HoldingsSuite struct {
	suite.Suite
	repo passports.Holdings
	ctx  context.Context
}

func (s *HoldingsSuite) SetupTest() {
	s.repo = NewPassportRepo()
	s.ctx = context.Background()
}

func TestHoldingsSuite(t *testing.T) {
	suite.Run(t, new(HoldingsSuite))
}

func (s *HoldingsSuite) place(id passports.ID, holder passports.Address) passports.Passport {
	p := passports.Restore(id, "Firulais", "Perro", 1640995200, "0xissuer", 0)
	s.Require().NoError(s.repo.Place(s.ctx, p, holder))

	stored, _, err := s.repo.Get(s.ctx, id)
	s.Require().NoError(err)
	return stored
}

func (s *HoldingsSuite) TestPlaceAndTake() {
	s.Run("holder can take", func() {
		s.place("p-1", "0xa")

		p, err := s.repo.Take(s.ctx, "0xa", "p-1")
		s.Require().NoError(err)
		s.Equal(uint64(1), p.Version())
		s.Equal("Firulais", p.AnimalName())
	})

	s.Run("non holder cannot take", func() {
		s.place("p-2", "0xa")

		_, err := s.repo.Take(s.ctx, "0xb", "p-2")
		s.ErrorIs(err, passports.ErrNotHeld)
	})

	s.Run("unknown id", func() {
		_, err := s.repo.Take(s.ctx, "0xa", "missing")
		s.ErrorIs(err, passports.ErrNotFound)
	})

	s.Run("duplicate place is rejected", func() {
		s.place("p-3", "0xa")
		err := s.repo.Place(s.ctx, passports.Restore("p-3", "x", "y", 1, "0xissuer", 0), "0xb")
		s.ErrorIs(err, passports.ErrAlreadyExists)
	})
}

func (s *HoldingsSuite) TestReassign() {
	p := s.place("p-1", "0xa")

	s.Require().NoError(s.repo.Reassign(s.ctx, p, "0xb"))

	_, holder, err := s.repo.Get(s.ctx, "p-1")
	s.Require().NoError(err)
	s.Equal(passports.Address("0xb"), holder)

	// misma copia (versión vieja) ya no sirve
	s.ErrorIs(s.repo.Reassign(s.ctx, p, "0xc"), passports.ErrStale)

	_, err = s.repo.Take(s.ctx, "0xa", "p-1")
	s.ErrorIs(err, passports.ErrNotHeld)
}

func (s *HoldingsSuite) TestUpdate_OnlyNameIsWritten() {
	p := s.place("p-1", "0xa")

	changed := passports.Restore(p.ID(), "Firulais Updated", "Gato", 7, "0xother", p.Version())
	s.Require().NoError(s.repo.Update(s.ctx, changed))

	got, holder, err := s.repo.Get(s.ctx, "p-1")
	s.Require().NoError(err)
	s.Equal("Firulais Updated", got.AnimalName())
	s.Equal("Perro", got.AnimalType())
	s.Equal(int64(1640995200), got.RescueDate())
	s.Equal(passports.Address("0xissuer"), got.IssuedBy())
	s.Equal(passports.Address("0xa"), holder)
	s.Equal(uint64(2), got.Version())

	s.ErrorIs(s.repo.Update(s.ctx, changed), passports.ErrStale)
}

func (s *HoldingsSuite) TestNULIsInvalidInput() {
	p := s.place("p-1", "0xa")

	s.ErrorIs(s.repo.Place(s.ctx, passports.Restore("p-2", "Fir\x00lais", "Perro", 1, "0xissuer", 0), "0xa"), passports.ErrInvalidInput)
	s.ErrorIs(s.repo.Update(s.ctx, passports.Restore(p.ID(), "Fir\x00lais", "Perro", 1, "0xissuer", p.Version())), passports.ErrInvalidInput)
	s.ErrorIs(s.repo.Reassign(s.ctx, p, "0x\x00b"), passports.ErrInvalidInput)

	got, holder, err := s.repo.Get(s.ctx, "p-1")
	s.Require().NoError(err)
	s.Equal("Firulais", got.AnimalName())
	s.Equal(passports.Address("0xa"), holder)
	s.Equal(uint64(1), got.Version())

	_, _, err = s.repo.Get(s.ctx, "p-2")
	s.ErrorIs(err, passports.ErrNotFound)
}

func (s *HoldingsSuite) TestListByHolder_InPlacementOrder() {
	s.place("p-b", "0xa")
	s.place("p-a", "0xa")
	s.place("p-c", "0xz")

	items, err := s.repo.ListByHolder(s.ctx, "0xa")
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal(passports.ID("p-b"), items[0].ID())
	s.Equal(passports.ID("p-a"), items[1].ID())
}

func TestEventRepo_AppendAssignsSeqAndFilters(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()

	kinds := []passports.EventKind{
		passports.EventKindIssued,
		passports.EventKindNameUpdated,
		passports.EventKindTransferred,
	}
	for i, k := range kinds {
		e, err := repo.Append(ctx, events.PassportEvent{ID: string(rune('a' + i)), PassportID: "p-1", Kind: k})
		if err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
		if e.Seq != int64(i+1) {
			t.Fatalf("expected seq %d, got %d", i+1, e.Seq)
		}
	}
	if _, err := repo.Append(ctx, events.PassportEvent{ID: "z", PassportID: "p-2", Kind: passports.EventKindIssued}); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	all, err := repo.ListByPassport(ctx, "p-1", events.ListFilter{})
	if err != nil {
		t.Fatalf("ListByPassport returned error: %v", err)
	}
	if len(all) != 3 || all[0].Kind != passports.EventKindIssued || all[2].Kind != passports.EventKindTransferred {
		t.Fatalf("unexpected history: %#v", all)
	}

	onlyTransfers, err := repo.ListByPassport(ctx, "p-1", events.ListFilter{Kinds: []passports.EventKind{passports.EventKindTransferred}})
	if err != nil {
		t.Fatalf("ListByPassport returned error: %v", err)
	}
	if len(onlyTransfers) != 1 {
		t.Fatalf("expected 1 transfer, got %d", len(onlyTransfers))
	}

	limited, _ := repo.ListByPassport(ctx, "p-1", events.ListFilter{Limit: 2})
	if len(limited) != 2 {
		t.Fatalf("expected limit 2, got %d", len(limited))
	}

	if _, err := repo.Append(ctx, events.PassportEvent{ID: "a", PassportID: "p-1"}); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}
