package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/ivhistory"
)

// IVRepository persists daily IV30 readings in market.iv_history
type IVRepository struct {
	pool *pgxpool.Pool
}

// NewIVRepository creates a new repository
func NewIVRepository(pool *pgxpool.Pool) *IVRepository {
	return &IVRepository{pool: pool}
}

// EnsureSchema creates the backing table when it does not exist yet
func (r *IVRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE SCHEMA IF NOT EXISTS market;
		CREATE TABLE IF NOT EXISTS market.iv_history (
			symbol     TEXT             NOT NULL,
			date       DATE             NOT NULL,
			iv30       DOUBLE PRECISION NOT NULL,
			price      DOUBLE PRECISION NOT NULL,
			updated_at TIMESTAMPTZ      NOT NULL DEFAULT now(),
			PRIMARY KEY (symbol, date)
		)
	`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("%w: %v", ivhistory.ErrDatabaseUpsert, err)
	}
	return nil
}

// Upsert records a reading; a second write for the same symbol and day
// overwrites the first
func (r *IVRepository) Upsert(ctx context.Context, reading ivhistory.Reading) error {
	query := `
		INSERT INTO market.iv_history (symbol, date, iv30, price, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (symbol, date)
		DO UPDATE SET
			iv30 = EXCLUDED.iv30,
			price = EXCLUDED.price,
			updated_at = now()
	`

	_, err := r.pool.Exec(ctx, query,
		strings.ToUpper(reading.Symbol),
		reading.Date,
		reading.IV30,
		reading.Price,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ivhistory.ErrDatabaseUpsert, err)
	}
	return nil
}

// History returns readings for a symbol, most recent first
func (r *IVRepository) History(ctx context.Context, symbol string, lookbackDays int) ([]ivhistory.Reading, error) {
	if lookbackDays <= 0 {
		lookbackDays = ivhistory.DefaultLookbackDays
	}

	query := `
		SELECT symbol, date, iv30, price
		FROM market.iv_history
		WHERE symbol = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, strings.ToUpper(symbol), lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ivhistory.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	readings := make([]ivhistory.Reading, 0, lookbackDays)
	for rows.Next() {
		var reading ivhistory.Reading
		if err := rows.Scan(&reading.Symbol, &reading.Date, &reading.IV30, &reading.Price); err != nil {
			return nil, fmt.Errorf("%w: %v", ivhistory.ErrDatabaseQuery, err)
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ivhistory.ErrDatabaseQuery, err)
	}

	return readings, nil
}
