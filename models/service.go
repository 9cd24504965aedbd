package models

// Service is an extra offered with a booking (breakfast, spa, parking...).
// Price is charged per night of the stay.
type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Available   bool    `json:"available"`
}

func (s Service) EntityID() int64 { return s.ID }
