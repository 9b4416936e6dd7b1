package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"rescue-passport/internal/domain/events"
	"rescue-passport/internal/domain/passports"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

// Append inserta el evento; seq sale de la columna bigserial.
func (r *EventsRepo) Append(ctx context.Context, e events.PassportEvent) (events.PassportEvent, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO passport_events (
			id, passport_id,
			kind, actor,
			recorded_at, payload
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING seq
	`,
		e.ID,
		string(e.PassportID),
		string(e.Kind),
		string(e.Actor),
		e.RecordedAt,
		[]byte(e.Payload),
	).Scan(&e.Seq)
	if err != nil {
		return events.PassportEvent{}, fmt.Errorf("insert passport event: %w", err)
	}
	return e, nil
}

func (r *EventsRepo) ListByPassport(ctx context.Context, passportID passports.ID, filter events.ListFilter) ([]events.PassportEvent, error) {
	if strings.TrimSpace(string(passportID)) == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, passport_id, seq, kind, actor, recorded_at, payload
		FROM passport_events
		WHERE passport_id = $1
	`)

	args := []any{string(passportID)}
	argN := 2

	if len(filter.Kinds) > 0 {
		placeholders := make([]string, 0, len(filter.Kinds))
		for _, k := range filter.Kinds {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(k))
			argN++
		}
		sb.WriteString(" AND kind IN (" + strings.Join(placeholders, ",") + ")")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = events.DefaultLimit
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY seq ASC LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list passport events: %w", err)
	}
	defer rows.Close()

	out := make([]events.PassportEvent, 0)
	for rows.Next() {
		var (
			e                events.PassportEvent
			pid, kind, actor string
			payload          []byte
		)
		if err := rows.Scan(&e.ID, &pid, &e.Seq, &kind, &actor, &e.RecordedAt, &payload); err != nil {
			return nil, err
		}
		e.PassportID = passports.ID(pid)
		e.Kind = passports.EventKind(kind)
		e.Actor = passports.Address(actor)
		e.Payload = payload
		out = append(out, e)
	}
	return out, rows.Err()
}
