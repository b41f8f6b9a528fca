package placereviews

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Store interface {
	Create(ctx context.Context, review *Review) error
	DeleteByIDs(ctx context.Context, ids []int64) ([]int64, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) Store {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, review *Review) error {
	query := `
        INSERT INTO place_review (google_place_id, created_at, completed_at, type, do_it_for_me)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	return r.db.QueryRow(ctx, query,
		review.GooglePlaceID,
		review.CreatedAt,
		review.CompletedAt,
		review.Type,
		review.DoItForMe,
	).Scan(&review.ID)
}

// DeleteByIDs removes every review whose id is in ids and reports back
// the ids that were actually deleted, all within one transaction. Ids
// with no matching row are simply absent from the result.
func (r *Repository) DeleteByIDs(ctx context.Context, ids []int64) ([]int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `DELETE FROM place_review WHERE id = ANY($1) RETURNING id`, ids)
	if err != nil {
		return nil, err
	}

	deleted := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		deleted = append(deleted, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return deleted, nil
}
