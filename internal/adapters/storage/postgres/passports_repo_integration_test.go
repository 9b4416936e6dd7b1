//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"rescue-passport/internal/domain/passports"
)

// PostgresHoldingsSuite corre contra un Postgres real levantado con testcontainers.
// go test -tags integration ./internal/adapters/storage/postgres/...
type PostgresHoldingsSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *sql.DB
	repo      *PassportsRepo
	ctx       context.Context
}

func TestPostgresHoldingsSuite(t *testing.T) {
	suite.Run(t, new(PostgresHoldingsSuite))
}

func (s *PostgresHoldingsSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("rescue_passport"),
		tcpostgres.WithUsername("rescue"),
		tcpostgres.WithPassword("rescue"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		s.T().Fatalf("failed to start postgres container: %v", err)
	}
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := Open(dsn)
	if err != nil {
		s.T().Fatalf("failed to open postgres: %v", err)
	}
	s.Require().NoError(Migrate(db))
	s.db = db
}

func (s *PostgresHoldingsSuite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.container != nil {
		_ = testcontainers.TerminateContainer(s.container)
	}
}

func (s *PostgresHoldingsSuite) SetupTest() {
	_, err := s.db.ExecContext(s.ctx, `TRUNCATE passports, passport_events`)
	s.Require().NoError(err)

	// reloj creciente: ListByHolder ordena por created_at
	base := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.repo = NewPassportsRepo(s.db)
	s.repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
}

func (s *PostgresHoldingsSuite) place(id passports.ID, holder passports.Address) passports.Passport {
	p := passports.Restore(id, "Firulais", "Perro", 1640995200, "0xissuer", 0)
	s.Require().NoError(s.repo.Place(s.ctx, p, holder))

	stored, _, err := s.repo.Get(s.ctx, id)
	s.Require().NoError(err)
	return stored
}

func (s *PostgresHoldingsSuite) TestPlaceAndTake() {
	s.place("p-1", "0xa")

	p, err := s.repo.Take(s.ctx, "0xa", "p-1")
	s.Require().NoError(err)
	s.Equal(uint64(1), p.Version())
	s.Equal("Firulais", p.AnimalName())
	s.Equal(passports.Address("0xissuer"), p.IssuedBy())

	_, err = s.repo.Take(s.ctx, "0xb", "p-1")
	s.ErrorIs(err, passports.ErrNotHeld)

	_, err = s.repo.Take(s.ctx, "0xa", "missing")
	s.ErrorIs(err, passports.ErrNotFound)

	_, _, err = s.repo.Get(s.ctx, "missing")
	s.ErrorIs(err, passports.ErrNotFound)
}

func (s *PostgresHoldingsSuite) TestPlace_DuplicateIsAlreadyExists() {
	s.place("p-1", "0xa")

	err := s.repo.Place(s.ctx, passports.Restore("p-1", "x", "y", 1, "0xissuer", 0), "0xb")
	s.ErrorIs(err, passports.ErrAlreadyExists)
}

func (s *PostgresHoldingsSuite) TestReassign() {
	p := s.place("p-1", "0xa")

	s.Require().NoError(s.repo.Reassign(s.ctx, p, "0xb"))

	got, holder, err := s.repo.Get(s.ctx, "p-1")
	s.Require().NoError(err)
	s.Equal(passports.Address("0xb"), holder)
	s.Equal(uint64(2), got.Version())

	// misma copia (versión vieja) ya no sirve
	s.ErrorIs(s.repo.Reassign(s.ctx, p, "0xc"), passports.ErrStale)

	missing := passports.Restore("missing", "x", "y", 1, "0xissuer", 1)
	s.ErrorIs(s.repo.Reassign(s.ctx, missing, "0xc"), passports.ErrNotFound)
}

func (s *PostgresHoldingsSuite) TestUpdate_OnlyNameIsWritten() {
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

	missing := passports.Restore("missing", "x", "y", 1, "0xissuer", 1)
	s.ErrorIs(s.repo.Update(s.ctx, missing), passports.ErrNotFound)
}

func (s *PostgresHoldingsSuite) TestNULIsInvalidInput() {
	p := s.place("p-1", "0xa")

	s.ErrorIs(s.repo.Place(s.ctx, passports.Restore("p-2", "Fir\x00lais", "Perro", 1, "0xissuer", 0), "0xa"), passports.ErrInvalidInput)
	s.ErrorIs(s.repo.Update(s.ctx, passports.Restore(p.ID(), "Fir\x00lais", "Perro", 1, "0xissuer", p.Version())), passports.ErrInvalidInput)
	s.ErrorIs(s.repo.Reassign(s.ctx, p, "0x\x00b"), passports.ErrInvalidInput)

	// sin el chequeo previo, Postgres responde 22021 y se traduce igual
	_, err := s.db.ExecContext(s.ctx, `UPDATE passports SET animal_name = $1 WHERE id = $2`, "Fir\x00lais", "p-1")
	s.Require().Error(err)
	s.ErrorIs(mapWriteError("update passport", err), passports.ErrInvalidInput)

	got, _, err := s.repo.Get(s.ctx, "p-1")
	s.Require().NoError(err)
	s.Equal("Firulais", got.AnimalName())
}

func (s *PostgresHoldingsSuite) TestListByHolder_InPlacementOrder() {
	s.place("p-b", "0xa")
	s.place("p-a", "0xa")
	s.place("p-c", "0xz")

	items, err := s.repo.ListByHolder(s.ctx, "0xa")
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal(passports.ID("p-b"), items[0].ID())
	s.Equal(passports.ID("p-a"), items[1].ID())

	empty, err := s.repo.ListByHolder(s.ctx, "0xnobody")
	s.Require().NoError(err)
	s.Empty(empty)
}
