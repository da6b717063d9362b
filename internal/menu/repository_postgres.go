package menu

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectItems = `
	SELECT
		id,
		name,
		description,
		price::text,
		category,
		image,
		COALESCE(tags, '{}')
	FROM menu_items
`

// --------------------------------------------------
// LIST (SEED ORDER)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, selectItems+`ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

// --------------------------------------------------
// LIST BY CATEGORY (PLAIN EQUALITY)
// --------------------------------------------------
func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]Item, error) {
	rows, err := r.db.Query(ctx, selectItems+`WHERE category = $1 ORDER BY position ASC`, category)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

// --------------------------------------------------
// SEED (IDEMPOTENT, RUNS ONCE AT BOOT)
// --------------------------------------------------
func (r *PostgresRepository) Seed(ctx context.Context, items []Item) error {
	if err := validateCatalog(items); err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i, it := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO menu_items (
				id,
				name,
				description,
				price,
				category,
				image,
				tags,
				position
			)
			VALUES ($1, $2, $3, $4::text::numeric, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`, it.ID, it.Name, it.Description, it.Price, it.Category, it.Image, it.Tags, i)
		if err != nil {
			return fmt.Errorf("seed menu item %q: %w", it.ID, err)
		}
	}

	return tx.Commit(ctx)
}

func scanItems(rows pgx.Rows) ([]Item, error) {
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.Description,
			&it.Price,
			&it.Category,
			&it.Image,
			&it.Tags,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
