package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuestCounts(t *testing.T) {
	t.Run("total flattens every category", func(t *testing.T) {
		guests := GuestCounts{Adults: 2, Children: 1, Infants: 1, Pets: 1}
		assert.Equal(t, 5, guests.Total())
	})

	t.Run("occupancy ignores infants and pets", func(t *testing.T) {
		guests := GuestCounts{Adults: 2, Children: 1, Infants: 3, Pets: 2}
		assert.Equal(t, 3, guests.Occupancy())
		assert.False(t, guests.ExceedsCapacity(3))
		assert.True(t, guests.ExceedsCapacity(2))
	})

	t.Run("defaults to a single adult", func(t *testing.T) {
		assert.Equal(t, GuestCounts{Adults: 1}, DefaultGuestCounts())
	})
}
