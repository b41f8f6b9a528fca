package places

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlace() *Place {
	url := "https://maps.google.com/?cid=42"
	phone := "+15551234567"
	return &Place{
		GooglePlaceID:  "ChIJtest",
		Name:           "Some Diner",
		Address:        "1 Main St",
		GooglePlaceURL: &url,
		PhoneNumber:    &phone,
		Latitude:       40.7128,
		Longitude:      -74.006,
	}
}

// The service that preceded this one did a read-then-increment on
// report submission, which can lose increments when two reports of the
// same place race. The single upsert below serializes the increment
// inside the database instead; these tests pin that statement shape.
func TestReportInsertsNewPlace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	place := testPlace()
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO place .* ON CONFLICT \(google_place_id\) DO UPDATE`).
		WithArgs(
			place.GooglePlaceID,
			place.Name,
			place.Address,
			place.GooglePlaceURL,
			place.PhoneNumber,
			place.Latitude,
			place.Longitude,
			pgxmock.AnyArg(),
		).
		WillReturnRows(pgxmock.NewRows([]string{"report_count", "created_at"}).AddRow(1, now))

	repo := NewRepository(mock)
	require.NoError(t, repo.Report(context.Background(), place))

	assert.Equal(t, 1, place.ReportCount)
	assert.Equal(t, now, place.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportIncrementsExistingPlace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// The resubmission carries different field values; only
	// report_count may change on the stored row.
	place := testPlace()
	place.Name = "Renamed Diner"
	firstSeen := time.Now().UTC().Add(-24 * time.Hour)

	mock.ExpectQuery(`INSERT INTO place .* ON CONFLICT \(google_place_id\) DO UPDATE`).
		WithArgs(
			place.GooglePlaceID,
			place.Name,
			place.Address,
			place.GooglePlaceURL,
			place.PhoneNumber,
			place.Latitude,
			place.Longitude,
			pgxmock.AnyArg(),
		).
		WillReturnRows(pgxmock.NewRows([]string{"report_count", "created_at"}).AddRow(2, firstSeen))

	repo := NewRepository(mock)
	require.NoError(t, repo.Report(context.Background(), place))

	assert.Equal(t, 2, place.ReportCount)
	assert.Equal(t, firstSeen, place.CreatedAt, "created_at must stay at first submission time")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	want := testPlace()
	want.ReportCount = 3
	want.CreatedAt = time.Now().UTC()

	mock.ExpectQuery(`SELECT google_place_id, name, address, google_place_url, phone_number`).
		WithArgs(want.GooglePlaceID).
		WillReturnRows(pgxmock.NewRows([]string{
			"google_place_id", "name", "address", "google_place_url", "phone_number",
			"latitude", "longitude", "report_count", "created_at",
		}).AddRow(
			want.GooglePlaceID, want.Name, want.Address, want.GooglePlaceURL, want.PhoneNumber,
			want.Latitude, want.Longitude, want.ReportCount, want.CreatedAt,
		))

	repo := NewRepository(mock)
	got, err := repo.GetByID(context.Background(), want.GooglePlaceID)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT google_place_id`).
		WithArgs("ChIJunknown").
		WillReturnError(pgx.ErrNoRows)

	repo := NewRepository(mock)
	got, err := repo.GetByID(context.Background(), "ChIJunknown")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
