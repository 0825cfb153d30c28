package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	t.Run("inclusive day span plus one", func(t *testing.T) {
		assert.Equal(t, 3, Nights(date(2024, 6, 1), date(2024, 6, 3)))
	})

	t.Run("same day counts as one night", func(t *testing.T) {
		assert.Equal(t, 1, Nights(date(2024, 6, 1), date(2024, 6, 1)))
	})

	t.Run("never less than one", func(t *testing.T) {
		assert.Equal(t, 1, Nights(date(2024, 6, 3), date(2024, 6, 1)))
	})

	t.Run("time of day does not change the count", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 3, 2, 0, 0, 0, time.UTC)
		assert.Equal(t, 3, Nights(start, end))
	})
}

func TestComputeTotal(t *testing.T) {
	t.Run("base price for a three night stay", func(t *testing.T) {
		result := ComputeTotal(date(2024, 6, 1), date(2024, 6, 3), 100, GuestCounts{Adults: 1}, DefaultExtraGuestFee)

		assert.Equal(t, 3, result.Nights)
		assert.Equal(t, 300.0, result.BasePrice)
		assert.Equal(t, 0.0, result.GuestFee)
		assert.Equal(t, 300.0, result.Total)
	})

	t.Run("guest fee charged per extra guest", func(t *testing.T) {
		guests := GuestCounts{Adults: 2, Children: 1}

		result := ComputeTotal(date(2024, 6, 1), date(2024, 6, 3), 100, guests, DefaultExtraGuestFee)

		assert.Equal(t, 40.0, result.GuestFee)
		assert.Equal(t, 340.0, result.Total)
	})

	t.Run("pets and infants count toward the guest fee", func(t *testing.T) {
		guests := GuestCounts{Adults: 1, Infants: 1, Pets: 1}

		result := ComputeTotal(date(2024, 6, 1), date(2024, 6, 1), 50, guests, DefaultExtraGuestFee)

		assert.Equal(t, 1, result.Nights)
		assert.Equal(t, 40.0, result.GuestFee)
		assert.Equal(t, 90.0, result.Total)
	})

	t.Run("single guest pays no fee", func(t *testing.T) {
		result := ComputeTotal(date(2024, 6, 1), date(2024, 6, 2), 80, GuestCounts{Adults: 1}, DefaultExtraGuestFee)
		assert.Equal(t, 0.0, result.GuestFee)
	})

	t.Run("configurable fee is applied", func(t *testing.T) {
		result := ComputeTotal(date(2024, 6, 1), date(2024, 6, 2), 80, GuestCounts{Adults: 2}, 35)
		assert.Equal(t, 35.0, result.GuestFee)
	})

	t.Run("total is always base plus fee", func(t *testing.T) {
		for _, guests := range []GuestCounts{
			{Adults: 1},
			{Adults: 2},
			{Adults: 4, Children: 3, Infants: 2, Pets: 1},
		} {
			result := ComputeTotal(date(2024, 6, 1), date(2024, 6, 10), 123.45, guests, DefaultExtraGuestFee)
			assert.Equal(t, result.BasePrice+result.GuestFee, result.Total)
		}
	})
}
