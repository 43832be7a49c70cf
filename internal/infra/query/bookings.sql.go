package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateBookingParams struct {
	ID          uuid.UUID
	IntentID    uuid.UUID
	UserID      uuid.UUID
	StartTime   pgtype.Timestamptz
	EndTime     pgtype.Timestamptz
	Status      string
	TotalAmount pgtype.Numeric
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

const createBooking = `
INSERT INTO bookings (id, intent_id, user_id, start_time, end_time, status, total_amount, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID, arg.IntentID, arg.UserID, arg.StartTime, arg.EndTime,
		arg.Status, arg.TotalAmount, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const createBookingStation = `
INSERT INTO booking_stations (booking_id, station_id, position, player_count)
VALUES ($1, $2, $3, $4)
`

func (q *Queries) CreateBookingStation(ctx context.Context, db DBTX, arg StationLineParams) error {
	_, err := db.Exec(ctx, createBookingStation, arg.OwnerID, arg.StationID, arg.Position, arg.PlayerCount)
	return err
}

type AmountItemParams struct {
	BookingID    uuid.UUID
	Position     int32
	Category     string
	Subcategory  string
	Quantity     pgtype.Numeric
	QuantityUnit string
	RatePerUnit  pgtype.Numeric
	RateUnit     string
	Amount       pgtype.Numeric
}

const createBookingAmountItem = `
INSERT INTO booking_amount_items
    (booking_id, position, category, subcategory, quantity, quantity_unit, rate_per_unit, rate_unit, amount)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (q *Queries) CreateBookingAmountItem(ctx context.Context, db DBTX, arg AmountItemParams) error {
	_, err := db.Exec(ctx, createBookingAmountItem,
		arg.BookingID, arg.Position, arg.Category, arg.Subcategory,
		arg.Quantity, arg.QuantityUnit, arg.RatePerUnit, arg.RateUnit, arg.Amount,
	)
	return err
}

type BookingRow struct {
	ID          uuid.UUID
	IntentID    uuid.UUID
	UserID      uuid.UUID
	StartTime   pgtype.Timestamptz
	EndTime     pgtype.Timestamptz
	Status      string
	TotalAmount pgtype.Numeric
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

const getBookingByID = `
SELECT id, intent_id, user_id, start_time, end_time, status, total_amount, created_at, updated_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingRow, error) {
	var b BookingRow
	err := db.QueryRow(ctx, getBookingByID, id).Scan(
		&b.ID, &b.IntentID, &b.UserID, &b.StartTime, &b.EndTime,
		&b.Status, &b.TotalAmount, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

const listBookingStations = `
SELECT station_id, player_count
FROM booking_stations
WHERE booking_id = $1
ORDER BY position
`

func (q *Queries) ListBookingStations(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]StationLineRow, error) {
	rows, err := db.Query(ctx, listBookingStations, bookingID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanStationLine)
}

type AmountItemRow struct {
	Category     string
	Subcategory  string
	Quantity     pgtype.Numeric
	QuantityUnit string
	RatePerUnit  pgtype.Numeric
	RateUnit     string
	Amount       pgtype.Numeric
}

const listBookingAmountItems = `
SELECT category, subcategory, quantity, quantity_unit, rate_per_unit, rate_unit, amount
FROM booking_amount_items
WHERE booking_id = $1
ORDER BY position
`

func (q *Queries) ListBookingAmountItems(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]AmountItemRow, error) {
	rows, err := db.Query(ctx, listBookingAmountItems, bookingID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (AmountItemRow, error) {
		var a AmountItemRow
		err := row.Scan(&a.Category, &a.Subcategory, &a.Quantity, &a.QuantityUnit, &a.RatePerUnit, &a.RateUnit, &a.Amount)
		return a, err
	})
}

type UpdateBookingStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

const updateBookingStatus = `
UPDATE bookings SET status = $2, updated_at = $3
WHERE id = $1
`

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
