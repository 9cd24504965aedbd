package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-admin/models"
)

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
		wantErr  error
	}{
		{"one night", "2024-03-01", "2024-03-02", 1, nil},
		{"three nights", "2024-03-01", "2024-03-04", 3, nil},
		{"across month end", "2024-02-28", "2024-03-02", 3, nil},
		{"across year end", "2023-12-30", "2024-01-02", 3, nil},
		{"same day", "2024-03-01", "2024-03-01", 0, ErrInvalidDateRange},
		{"inverted", "2024-03-04", "2024-03-01", 0, ErrInvalidDateRange},
		{"garbage check-in", "yesterday", "2024-03-01", 0, ErrInvalidDate},
		{"garbage check-out", "2024-03-01", "soon", 0, ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nights, err := Nights(tc.checkIn, tc.checkOut)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, nights)
		})
	}
}

func TestTotalPrice(t *testing.T) {
	room := &models.Room{ID: 1, PricePerNight: 100}
	services := []models.Service{
		{ID: 1, Price: 10},
		{ID: 2, Price: 15},
	}

	assert.Equal(t, 375.0, TotalPrice(room, services, 3))
	assert.Equal(t, 330.0, TotalPrice(room, services[:1], 3))
	assert.Equal(t, 300.0, TotalPrice(room, nil, 3))
	assert.Equal(t, 75.0, TotalPrice(nil, services, 3))
	assert.Equal(t, 0.0, TotalPrice(room, services, 0))
}
