package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/enildoa/sp-back/internal/measure"
)

const uniqueViolationCode = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectMeasureColumns = `
	id, customer_code, image_url, measure_value, measure_type, measure_datetime, has_confirmed, created_at, updated_at
`

// scanMeasure reads a measure row from the scanner and returns a populated Measure.
// Expected column order matches selectMeasureColumns.
func scanMeasure(s scanner) (*measure.Measure, error) {
	var m measure.Measure

	var typeStr string

	if err := s.Scan(
		&m.ID, &m.CustomerCode, &m.ImageURL, &m.Value, &typeStr, &m.Datetime,
		&m.HasConfirmed, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}

	m.Type = measure.Type(typeStr)

	return &m, nil
}

// monthWindow returns the UTC calendar month containing at as a half-open
// [start, end) range. Month membership follows UTC calendar fields, not
// elapsed-time windows.
func monthWindow(at time.Time) (time.Time, time.Time) {
	utc := at.UTC()
	start := time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 1, 0)
}

func (s *Store) ExistsForMonth(ctx context.Context, customerCode string, t measure.Type, at time.Time) (bool, error) {
	start, end := monthWindow(at)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM measures
			WHERE customer_code = $1 AND measure_type = $2
				AND measure_datetime >= $3 AND measure_datetime < $4
		)
	`

	var exists bool

	err := s.db.QueryRowContext(ctx, query, customerCode, t, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking monthly report: %w", err)
	}

	return exists, nil
}

func (s *Store) CreateMeasure(ctx context.Context, m *measure.Measure) error {
	query := `
		INSERT INTO measures (id, customer_code, image_url, measure_value, measure_type, measure_datetime, has_confirmed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.ID,
		m.CustomerCode,
		m.ImageURL,
		m.Value,
		m.Type,
		m.Datetime,
		m.HasConfirmed,
	).Scan(&m.CreatedAt)
	if err != nil {
		// The unique month index backstops the guard under concurrent
		// submissions for the same customer, type and month.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return measure.ErrDoubleReport
		}

		return fmt.Errorf("creating measure: %w", err)
	}

	return nil
}

// FindForConfirmation looks a measure up by id and exact stored value. A
// mismatched value behaves like a missing row.
func (s *Store) FindForConfirmation(ctx context.Context, id uuid.UUID, value decimal.Decimal) (*measure.Measure, error) {
	query := `SELECT ` + selectMeasureColumns + `
		FROM measures
		WHERE id = $1 AND measure_value = $2`

	m, err := scanMeasure(s.db.QueryRowContext(ctx, query, id, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, measure.ErrNotFound
		}

		return nil, fmt.Errorf("getting measure: %w", err)
	}

	return m, nil
}

func (s *Store) SetConfirmed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE measures
		SET has_confirmed = TRUE, updated_at = NOW()
		WHERE id = $1 AND has_confirmed = FALSE
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("confirming measure: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirming measure: %w", err)
	}

	// A concurrent confirmation can win between lookup and update; the flag
	// flips at most once either way.
	if affected == 0 {
		return measure.ErrAlreadyConfirmed
	}

	return nil
}

func (s *Store) ListByCustomer(ctx context.Context, customerCode string, t *measure.Type) ([]*measure.Measure, error) {
	query := `SELECT ` + selectMeasureColumns + `
		FROM measures
		WHERE customer_code = $1`

	args := []any{customerCode}

	if t != nil {
		query += " AND measure_type = $2"

		args = append(args, *t)
	}

	query += " ORDER BY measure_datetime ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing measures: %w", err)
	}
	defer rows.Close()

	var measures []*measure.Measure

	for rows.Next() {
		m, err := scanMeasure(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning measure: %w", err)
		}

		measures = append(measures, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating measure rows: %w", err)
	}

	return measures, nil
}
