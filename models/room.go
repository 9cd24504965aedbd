package models

// Housekeeping states for a room. These describe the cleaning/maintenance
// condition and are independent from the Available flag, which says whether
// the room can be sold at all.
const (
	RoomStateClean            = "Clean"
	RoomStateUnderMaintenance = "UnderMaintenance"
	RoomStateOccupied         = "Occupied"
)

type Room struct {
	ID            int64   `json:"id"`
	Number        string  `json:"number" validate:"required"`
	Type          string  `json:"type" validate:"required"`
	PricePerNight float64 `json:"pricePerNight" validate:"gte=0"`
	State         string  `json:"state" validate:"required,oneof=Clean UnderMaintenance Occupied"`
	Available     bool    `json:"available"`
}

func (r Room) EntityID() int64 { return r.ID }

// DisplayState is the state shown on the rooms screen. An unavailable room
// always presents as Occupied, whatever its housekeeping state says.
func (r Room) DisplayState() string {
	if !r.Available {
		return RoomStateOccupied
	}
	return r.State
}
