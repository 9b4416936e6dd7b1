package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"rescue-passport/internal/domain/passports"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de Postgres que se traducen a errores de holdings.
const (
	uniqueViolation          = "23505"
	characterNotInRepertoire = "22021"
	untranslatableCharacter  = "22P05"
)

// PassportsRepo implementa passports.Holdings sobre la tabla passports.
// La serialización por objeto es optimista: UPDATE ... WHERE version = $n.
type PassportsRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewPassportsRepo(db *sql.DB) *PassportsRepo {
	return &PassportsRepo{db: db, now: time.Now}
}

func (r *PassportsRepo) Place(ctx context.Context, p passports.Passport, holder passports.Address) error {
	if strings.TrimSpace(string(p.ID())) == "" || strings.TrimSpace(string(holder)) == "" {
		return passports.ErrInvalidInput
	}
	if err := passports.CheckStorable(p, holder); err != nil {
		return err
	}

	now := r.now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO passports (
			id, animal_name, animal_type, rescue_date, issued_by,
			holder, version,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,1,$7,$7)
	`,
		string(p.ID()),
		p.AnimalName(),
		p.AnimalType(),
		p.RescueDate(),
		string(p.IssuedBy()),
		string(holder),
		now,
	)
	if err != nil {
		return mapWriteError("insert passport", err)
	}
	return nil
}

func (r *PassportsRepo) Reassign(ctx context.Context, p passports.Passport, newHolder passports.Address) error {
	if strings.TrimSpace(string(newHolder)) == "" {
		return passports.ErrInvalidInput
	}
	if err := passports.CheckStorable(passports.Passport{}, newHolder); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE passports
		SET holder = $2, version = version + 1, updated_at = $4
		WHERE id = $1 AND version = $3
	`, string(p.ID()), string(newHolder), int64(p.Version()), r.now())
	if err != nil {
		return mapWriteError("reassign passport", err)
	}
	return r.checkWritten(ctx, res, p.ID())
}

func (r *PassportsRepo) Take(ctx context.Context, holder passports.Address, id passports.ID) (passports.Passport, error) {
	p, current, err := r.Get(ctx, id)
	if err != nil {
		return passports.Passport{}, err
	}
	if current != holder {
		return passports.Passport{}, passports.ErrNotHeld
	}
	return p, nil
}

// Update escribe solo animal_name; el resto de los campos es inmutable.
func (r *PassportsRepo) Update(ctx context.Context, p passports.Passport) error {
	if err := passports.CheckStorable(p); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE passports
		SET animal_name = $2, version = version + 1, updated_at = $4
		WHERE id = $1 AND version = $3
	`, string(p.ID()), p.AnimalName(), int64(p.Version()), r.now())
	if err != nil {
		return mapWriteError("update passport", err)
	}
	return r.checkWritten(ctx, res, p.ID())
}

func (r *PassportsRepo) Get(ctx context.Context, id passports.ID) (passports.Passport, passports.Address, error) {
	if strings.TrimSpace(string(id)) == "" {
		return passports.Passport{}, "", passports.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, animal_name, animal_type, rescue_date, issued_by, holder, version
		FROM passports
		WHERE id = $1
	`, string(id))

	p, holder, err := scanPassport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return passports.Passport{}, "", passports.ErrNotFound
		}
		return passports.Passport{}, "", fmt.Errorf("get passport: %w", err)
	}
	return p, holder, nil
}

func (r *PassportsRepo) ListByHolder(ctx context.Context, holder passports.Address) ([]passports.Passport, error) {
	if strings.TrimSpace(string(holder)) == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_name, animal_type, rescue_date, issued_by, holder, version
		FROM passports
		WHERE holder = $1
		ORDER BY created_at ASC, id ASC
	`, string(holder))
	if err != nil {
		return nil, fmt.Errorf("list passports: %w", err)
	}
	defer rows.Close()

	out := make([]passports.Passport, 0)
	for rows.Next() {
		p, _, err := scanPassport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// checkWritten distingue "no existe" de "versión vieja" cuando el UPDATE no tocó filas.
func (r *PassportsRepo) checkWritten(ctx context.Context, res sql.Result, id passports.ID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM passports WHERE id = $1)`, string(id)).Scan(&exists); err != nil {
		return fmt.Errorf("check passport: %w", err)
	}
	return missedWrite(exists)
}

// missedWrite: sin fila => no existe; con fila => otra escritura subió la versión.
func missedWrite(exists bool) error {
	if !exists {
		return passports.ErrNotFound
	}
	return passports.ErrStale
}

func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return passports.ErrAlreadyExists
		case characterNotInRepertoire, untranslatableCharacter:
			return passports.ErrInvalidInput
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPassport(s scanner) (passports.Passport, passports.Address, error) {
	var (
		id, name, typ, issuer, holder string
		rescueDate, version           int64
	)
	if err := s.Scan(&id, &name, &typ, &rescueDate, &issuer, &holder, &version); err != nil {
		return passports.Passport{}, "", err
	}
	p := passports.Restore(passports.ID(id), name, typ, rescueDate, passports.Address(issuer), uint64(version))
	return p, passports.Address(holder), nil
}
