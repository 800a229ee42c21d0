package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
)

func TestValidStatus(t *testing.T) {
	for _, status := range []string{
		entity.StatusPending, entity.StatusInPreparation,
		entity.StatusReadyForPickup, entity.StatusDelivered, entity.StatusCancelled,
	} {
		assert.True(t, entity.ValidStatus(status), status)
	}
	assert.False(t, entity.ValidStatus("enviado"))
	assert.False(t, entity.ValidStatus(""))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.StatusPending, entity.StatusInPreparation, true},
		{entity.StatusPending, entity.StatusCancelled, true},
		{entity.StatusPending, entity.StatusDelivered, false},
		{entity.StatusInPreparation, entity.StatusReadyForPickup, true},
		{entity.StatusInPreparation, entity.StatusPending, false},
		{entity.StatusReadyForPickup, entity.StatusDelivered, true},
		{entity.StatusReadyForPickup, entity.StatusCancelled, true},
		// terminales
		{entity.StatusDelivered, entity.StatusCancelled, false},
		{entity.StatusCancelled, entity.StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, entity.CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
