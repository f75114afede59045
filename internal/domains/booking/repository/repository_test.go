package repository

import (
	"testing"
	"time"

	"suitespot/infras/postgres"
	"suitespot/internal/domains/booking/model"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictCondition(t *testing.T) {
	stay := model.Stay{
		CheckIn:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
	}

	ds := postgres.Builder.From(goqu.T(model.TableName).As(aliasBooking)).
		Select(goqu.L("1")).
		Where(conflictCondition(stay))

	query, args, err := postgres.ToSQL(ds)
	require.NoError(t, err)

	assert.Contains(t, query, `"b"."status" != $1`)
	assert.Contains(t, query, `"b"."check_in_date" < $2`)
	assert.Contains(t, query, `"b"."check_out_date" > $3`)
	require.Len(t, args, 3)
	assert.Equal(t, "cancelled", args[0])
	assert.Equal(t, stay.CheckOut, args[1])
	assert.Equal(t, stay.CheckIn, args[2])
}

func TestDetailDataset(t *testing.T) {
	query, args, err := postgres.ToSQL(detailDataset().Where(bookingColumn(model.FieldID).Eq("b-1")))
	require.NoError(t, err)

	assert.Contains(t, query, `FROM "bookings" AS "b"`)
	assert.Contains(t, query, `INNER JOIN "guests" AS "g" ON ("g"."id" = "b"."guest_id")`)
	assert.Contains(t, query, `INNER JOIN "rooms" AS "r" ON ("r"."id" = "b"."room_id")`)
	assert.Contains(t, query, `"g"."first_name" AS "guest.first_name"`)
	assert.Contains(t, query, `"r"."number" AS "room.number"`)
	assert.Contains(t, query, `"b"."check_in_date"`)
	assert.Equal(t, []any{"b-1"}, args)
}

func TestStatusValues(t *testing.T) {
	assert.Equal(t, []string{"pending", "confirmed"}, statusValues([]model.Status{model.StatusPending, model.StatusConfirmed}))
}
