package wizard

import (
	"math"
	"time"

	"hotel-admin/models"
)

// Nights computes the whole-night count between two wire-format dates.
// The count is ceil of the day span and must be at least 1: an equal or
// inverted pair is ErrInvalidDateRange.
func Nights(checkIn, checkOut string) (int, error) {
	ci, err := time.Parse(models.DateLayout, checkIn)
	if err != nil {
		return 0, ErrInvalidDate
	}
	co, err := time.Parse(models.DateLayout, checkOut)
	if err != nil {
		return 0, ErrInvalidDate
	}
	if !co.After(ci) {
		return 0, ErrInvalidDateRange
	}
	nights := int(math.Ceil(co.Sub(ci).Hours() / 24))
	if nights < 1 {
		return 0, ErrInvalidDateRange
	}
	return nights, nil
}

// TotalPrice prices a stay: room price per night plus every selected
// service's per-night price, all multiplied by the night count.
func TotalPrice(room *models.Room, services []models.Service, nights int) float64 {
	if nights <= 0 {
		return 0
	}
	var total float64
	if room != nil {
		total += room.PricePerNight * float64(nights)
	}
	for _, svc := range services {
		total += svc.Price * float64(nights)
	}
	return total
}
