package models

// Reservation statuses as stored by the backend.
const (
	ReservationConfirmed = "Confirmed"
	ReservationPending   = "Pending"
	ReservationCancelled = "Cancelled"
)

// DateLayout is the wire format for all booking dates.
const DateLayout = "2006-01-02"

// Reservation carries snapshots of the room, customer and services captured
// at booking (or last edit) time, not live references. Nights and TotalPrice
// are always derived from the dates and the snapshot prices; they are never
// edited directly.
type Reservation struct {
	ID         int64     `json:"id"`
	CheckIn    string    `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut   string    `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Nights     int       `json:"nights"`
	TotalPrice float64   `json:"totalPrice"`
	Room       Room      `json:"room"`
	Customer   Customer  `json:"customer"`
	Services   []Service `json:"services"`
	Status     string    `json:"status" validate:"required,oneof=Confirmed Pending Cancelled"`
}

func (r Reservation) EntityID() int64 { return r.ID }

// ReservationRequest is the creation payload: the backend resolves the ids,
// computes nights/total and returns the full reservation with snapshots.
type ReservationRequest struct {
	CheckIn    string  `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut   string  `json:"checkOut" validate:"required,datetime=2006-01-02"`
	RoomID     int64   `json:"roomId" validate:"required"`
	CustomerID int64   `json:"customerId" validate:"required"`
	ServiceIDs []int64 `json:"serviceIds"`
}
