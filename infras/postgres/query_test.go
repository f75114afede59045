package postgres_test

import (
	"suitespot/infras/postgres"
	"testing"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSQL_Select(t *testing.T) {
	ds := postgres.Builder.From("bookings").
		Select(postgres.QualifiedColumns("bookings", []string{"id", "room_id"})...).
		Where(goqu.C("room_id").Eq("r-1"), goqu.C("check_in_date").Lt("2024-03-12"))

	query, args, err := postgres.ToSQL(ds)
	require.NoError(t, err)

	assert.Equal(t, `SELECT "bookings"."id", "bookings"."room_id" FROM "bookings" WHERE (("room_id" = $1) AND ("check_in_date" < $2))`, query)
	assert.Equal(t, []any{"r-1", "2024-03-12"}, args)
}

func TestToSQL_Unsupported(t *testing.T) {
	_, _, err := postgres.ToSQL("SELECT 1")
	assert.Error(t, err)
}

func TestAliasColumns(t *testing.T) {
	ds := postgres.Builder.From(goqu.T("guests").As("g")).
		Select(postgres.AliasColumns("g", "guest", []string{"id", "first_name"})...)

	query, _, err := postgres.ToSQL(ds)
	require.NoError(t, err)

	assert.Equal(t, `SELECT "g"."id" AS "guest.id", "g"."first_name" AS "guest.first_name" FROM "guests" AS "g"`, query)
}
