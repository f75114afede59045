package model_test

import (
	"testing"
	"time"

	"suitespot/internal/domains/taxi/model"
	"suitespot/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dispatchedAt = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestParseStatus(t *testing.T) {
	status, err := model.ParseStatus(" ON_THE_WAY ")
	require.NoError(t, err)
	assert.Equal(t, model.StatusOnTheWay, status)

	_, err = model.ParseStatus("lost")
	assert.ErrorIs(t, err, failure.ErrInvalidArgument)
}

func TestStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		from    model.Status
		to      model.Status
		allowed bool
	}{
		{from: model.StatusPending, to: model.StatusConfirmed, allowed: true},
		{from: model.StatusPending, to: model.StatusOnTheWay},
		{from: model.StatusConfirmed, to: model.StatusOnTheWay, allowed: true},
		{from: model.StatusOnTheWay, to: model.StatusCompleted, allowed: true},
		{from: model.StatusOnTheWay, to: model.StatusCancelled, allowed: true},
		{from: model.StatusCompleted, to: model.StatusCancelled},
		{from: model.StatusCancelled, to: model.StatusPending},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			_, err := tt.from.TransitionTo(tt.to)
			if tt.allowed {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, failure.ErrInvalidTransition)
		})
	}
}

func TestTaxiRequest_Confirm(t *testing.T) {
	request := model.TaxiRequest{ID: "taxi-1", Status: model.StatusPending}

	confirmed, err := request.Confirm(model.Driver{
		Name:          "Budi",
		VehicleNumber: "B 1234 XY",
		PhoneNumber:   "+62811",
		EstimatedCost: decimal.RequireFromString("75.555"),
	}, dispatchedAt)
	require.NoError(t, err)

	assert.Equal(t, model.StatusConfirmed, confirmed.Status)
	assert.Equal(t, "Budi", confirmed.DriverName)
	assert.True(t, confirmed.EstimatedCost.Decimal.Equal(decimal.RequireFromString("75.56")))
	require.NotNil(t, confirmed.EstimatedETA)
	assert.Equal(t, dispatchedAt.Add(15*time.Minute), *confirmed.EstimatedETA)

	_, err = confirmed.Confirm(model.Driver{Name: "Other"}, dispatchedAt)
	assert.ErrorIs(t, err, failure.ErrInvalidTransition)
}

func TestTaxiRequest_MoveTo(t *testing.T) {
	request := model.TaxiRequest{Status: model.StatusOnTheWay}

	completed, err := request.MoveTo(model.StatusCompleted, dispatchedAt)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, dispatchedAt, *completed.CompletedAt)

	cancelled, err := request.MoveTo(model.StatusCancelled, dispatchedAt)
	require.NoError(t, err)
	assert.Nil(t, cancelled.CompletedAt)
}
