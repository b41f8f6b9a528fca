package places

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("place not found")

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store interface {
	Report(ctx context.Context, place *Place) error
	GetByID(ctx context.Context, googlePlaceID string) (*Place, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) Store {
	return &Repository{db: db}
}

// Report records a place submission. The first submission for a given
// google_place_id inserts the row; every later one only increments
// report_count and leaves the stored fields untouched. The increment
// happens in a single upsert statement so concurrent reports of the
// same place cannot lose counts.
func (r *Repository) Report(ctx context.Context, place *Place) error {
	query := `
        INSERT INTO place (google_place_id, name, address, google_place_url, phone_number, latitude, longitude, report_count, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8)
        ON CONFLICT (google_place_id) DO UPDATE
        SET report_count = place.report_count + 1
        RETURNING report_count, created_at
    `
	return r.db.QueryRow(ctx, query,
		place.GooglePlaceID,
		place.Name,
		place.Address,
		place.GooglePlaceURL,
		place.PhoneNumber,
		place.Latitude,
		place.Longitude,
		time.Now().UTC(),
	).Scan(&place.ReportCount, &place.CreatedAt)
}

func (r *Repository) GetByID(ctx context.Context, googlePlaceID string) (*Place, error) {
	query := `
        SELECT google_place_id, name, address, google_place_url, phone_number,
               latitude, longitude, report_count, created_at
        FROM place
        WHERE google_place_id = $1
    `
	var place Place
	err := r.db.QueryRow(ctx, query, googlePlaceID).Scan(
		&place.GooglePlaceID,
		&place.Name,
		&place.Address,
		&place.GooglePlaceURL,
		&place.PhoneNumber,
		&place.Latitude,
		&place.Longitude,
		&place.ReportCount,
		&place.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &place, nil
}
