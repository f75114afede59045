package model_test

import (
	"errors"
	"suitespot/internal/domains/room/model"
	"suitespot/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[model.Status][]model.Status{
		model.StatusAvailable:   {model.StatusAvailable, model.StatusOccupied, model.StatusMaintenance, model.StatusReserved},
		model.StatusOccupied:    {model.StatusOccupied, model.StatusAvailable, model.StatusMaintenance},
		model.StatusMaintenance: {model.StatusMaintenance, model.StatusAvailable},
		model.StatusReserved:    {model.StatusReserved, model.StatusAvailable, model.StatusOccupied},
	}

	for _, from := range model.Statuses() {
		for _, to := range model.Statuses() {
			want := false

			for _, target := range allowed[from] {
				if target == to {
					want = true
				}
			}

			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				got, err := from.TransitionTo(to)

				if want {
					require.NoError(t, err)
					assert.Equal(t, to, got)

					return
				}

				assert.True(t, errors.Is(err, failure.ErrInvalidTransition))
				assert.Equal(t, from, got)
			})
		}
	}
}

func TestStatus_TransitionToUnknown(t *testing.T) {
	_, err := model.StatusAvailable.TransitionTo(model.Status("cleaning"))

	assert.True(t, errors.Is(err, failure.ErrInvalidArgument))
}

func TestParseStatus(t *testing.T) {
	status, err := model.ParseStatus(" Occupied ")
	require.NoError(t, err)
	assert.Equal(t, model.StatusOccupied, status)

	_, err = model.ParseStatus("cleaning")
	assert.True(t, errors.Is(err, failure.ErrInvalidArgument))
}

func TestParseType(t *testing.T) {
	roomType, err := model.ParseType("SUITE")
	require.NoError(t, err)
	assert.Equal(t, model.TypeSuite, roomType)

	_, err = model.ParseType("penthouse")
	assert.True(t, errors.Is(err, failure.ErrInvalidArgument))
}

func TestRoom_IsBookable(t *testing.T) {
	assert.True(t, model.Room{Active: true, Status: model.StatusAvailable}.IsBookable())
	assert.False(t, model.Room{Active: false, Status: model.StatusAvailable}.IsBookable())
	assert.False(t, model.Room{Active: true, Status: model.StatusReserved}.IsBookable())
}
