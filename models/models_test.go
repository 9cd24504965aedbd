package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCustomer(t *testing.T) {
	ok := Customer{Name: "Ana Gomez", Address: "Main St 1", Phone: "555-0101", Email: "ana@example.com"}
	assert.NoError(t, Validate(ok))

	err := Validate(Customer{Name: "Ana Gomez"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Address is required")
	assert.Contains(t, err.Error(), "Phone is required")
	assert.Contains(t, err.Error(), "Email is required")

	err = Validate(Customer{Name: "Ana", Address: "x", Phone: "555", Email: "not-an-email"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Email must be a valid email address")
}

func TestValidateRoom(t *testing.T) {
	ok := Room{Number: "101", Type: "Standard", PricePerNight: 100, State: RoomStateClean, Available: true}
	assert.NoError(t, Validate(ok))

	err := Validate(Room{Number: "101", Type: "Standard", PricePerNight: -5, State: "Dirty"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PricePerNight must be greater than or equal to 0")
	assert.Contains(t, err.Error(), "State must be one of")
}

func TestValidateReservationRequestDates(t *testing.T) {
	err := Validate(ReservationRequest{
		CheckIn: "01/03/2024", CheckOut: "2024-03-04", RoomID: 1, CustomerID: 1,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CheckIn must be a date in format 2006-01-02")
}

func TestRoomDisplayState(t *testing.T) {
	assert.Equal(t, RoomStateClean, Room{State: RoomStateClean, Available: true}.DisplayState())
	assert.Equal(t, RoomStateUnderMaintenance, Room{State: RoomStateUnderMaintenance, Available: true}.DisplayState())
	assert.Equal(t, RoomStateOccupied, Room{State: RoomStateClean, Available: false}.DisplayState())
}
