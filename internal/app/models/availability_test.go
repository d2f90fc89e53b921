package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityGrid(t *testing.T) {
	t.Run("Empty grid has no slot", func(t *testing.T) {
		var grid AvailabilityGrid
		assert.False(t, grid.HasAnySlot())
		assert.Empty(t, grid.Slots())
	})

	t.Run("Slots are ordered by day then time of day", func(t *testing.T) {
		var grid AvailabilityGrid
		grid.Set(Friday, Evening, true)
		grid.Set(Monday, Afternoon, true)
		grid.Set(Monday, Morning, true)

		assert.True(t, grid.HasAnySlot())
		assert.Equal(t, []string{"Mon 09:00", "Mon 14:00", "Fri 18:00"}, grid.Slots())
	})

	t.Run("Decodes the form shape", func(t *testing.T) {
		var grid AvailabilityGrid
		err := json.Unmarshal([]byte(`{"monday":{"morning":true,"evening":false},"sunday":{"afternoon":true}}`), &grid)
		require.NoError(t, err)

		assert.True(t, grid.IsAvailable(Monday, Morning))
		assert.False(t, grid.IsAvailable(Monday, Evening))
		assert.True(t, grid.IsAvailable(Sunday, Afternoon))
		assert.False(t, grid.IsAvailable(Tuesday, Morning))
	})

	t.Run("Rejects unknown keys", func(t *testing.T) {
		var grid AvailabilityGrid
		assert.Error(t, json.Unmarshal([]byte(`{"funday":{"morning":true}}`), &grid))
		assert.Error(t, json.Unmarshal([]byte(`{"monday":{"night":true}}`), &grid))
	})

	t.Run("Encodes every cell", func(t *testing.T) {
		var grid AvailabilityGrid
		grid.Set(Wednesday, Morning, true)

		encoded, err := json.Marshal(grid)
		require.NoError(t, err)

		var decoded map[string]map[string]bool
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Len(t, decoded, 7)
		assert.True(t, decoded["wednesday"]["morning"])
		assert.False(t, decoded["wednesday"]["evening"])
	})
}

func TestDisplayName(t *testing.T) {
	username := "sarah"

	assert.Equal(t, "sarah", AuthenticatedUser{WalletAddress: "0x1234567890abcdef", Username: &username}.DisplayName())
	assert.Equal(t, "0x1234...cdef", AuthenticatedUser{WalletAddress: "0x1234567890abcdef"}.DisplayName())
	assert.Equal(t, "0x12", AuthenticatedUser{WalletAddress: "0x12"}.DisplayName())
}

func TestBookingCancelled(t *testing.T) {
	confirmed := Booking{Status: "scheduled", PaymentStatus: "confirmed"}.Cancelled()
	assert.Equal(t, "cancelled", confirmed.Status)
	assert.Equal(t, "refunded", confirmed.PaymentStatus)

	pending := Booking{Status: "scheduled", PaymentStatus: "pending"}.Cancelled()
	assert.Equal(t, "pending", pending.PaymentStatus)
}
