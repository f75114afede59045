package repository

import (
	"testing"

	"suitespot/infras/postgres"
	"suitespot/internal/domains/settings/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsert(t *testing.T) {
	query, _, err := postgres.ToSQL(upsert(model.Settings{
		ID:        model.SingletonID,
		HotelName: "SuiteSpot",
		TaxRate:   decimal.NewFromInt(10),
	}))
	require.NoError(t, err)

	assert.Contains(t, query, `INSERT INTO "system_settings"`)
	assert.Contains(t, query, `ON CONFLICT (id) DO UPDATE SET`)
	assert.Contains(t, query, `"hotel_name"=`)
	assert.NotContains(t, query, `"created_at"=`)
}
