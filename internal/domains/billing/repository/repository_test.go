package repository

import (
	"testing"

	"suitespot/infras/postgres"
	"suitespot/internal/domains/billing/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertIfAbsent(t *testing.T) {
	bill := model.Calculate("booking-1", decimal.NewFromInt(200), decimal.Zero, model.DefaultRates())
	bill.ID = "bill-1"

	query, args, err := postgres.ToSQL(insertIfAbsent(bill))
	require.NoError(t, err)

	assert.Contains(t, query, `INSERT INTO "bills"`)
	assert.Contains(t, query, `"booking_id"`)
	assert.Contains(t, query, `ON CONFLICT DO NOTHING`)
	assert.Contains(t, args, "booking-1")
	assert.Contains(t, args, "pending")
}
