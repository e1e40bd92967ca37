package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-travel-booking/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name, address, phone)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, password_hash, name, address, phone;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, address, phone
    FROM users
    WHERE email = $1;`

	createBooking = `INSERT INTO bookings (user_id, type, details)
    VALUES ($1, $2, $3)
    RETURNING booking_id, user_id, type, details, created_at;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListBookingsQuery selects every booking of userID in creation order.
func buildListBookingsQuery(userID int64) (string, []any, error) {
	return psql.
		Select("booking_id", "user_id", "type", "details", "created_at").
		From(models.Booking{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("booking_id ASC").
		ToSql()
}

// buildUpdateProfileQuery overwrites all editable profile columns of userID
// and returns the updated row.
func buildUpdateProfileQuery(userID int64, update models.ProfileUpdate) (string, []any, error) {
	return psql.
		Update(models.User{}.TableName()).
		Set("name", update.Name).
		Set("address", update.Address).
		Set("phone", update.Phone).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, email, password_hash, name, address, phone").
		ToSql()
}
