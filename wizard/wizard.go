package wizard

import (
	"context"
	"errors"
	"log"
	"sync"

	"hotel-admin/client"
	"hotel-admin/models"
	"hotel-admin/store"
)

var (
	ErrInvalidDate       = errors.New("dates must use format 2006-01-02")
	ErrInvalidDateRange  = errors.New("check-out must be after check-in")
	ErrDatesRequired     = errors.New("both check-in and check-out are required")
	ErrRoomRequired      = errors.New("a room must be selected")
	ErrRoomNotAvailable  = errors.New("room is not in the available set for the chosen dates")
	ErrServiceNotOffered = errors.New("service is not offered")
	ErrCustomerRequired  = errors.New("a customer must be selected")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrNotOnConfirmation = errors.New("wizard is not on the confirmation stage")
	ErrOperationInFlight = errors.New("a confirmation is already in flight")
)

// Wizard accumulates a draft reservation across the five stages and derives
// nights and total price from the selections. It never touches the Store
// directly except to reconcile a remote call that already succeeded.
type Wizard struct {
	ID string

	api   *client.Client
	store *store.Store

	mu        sync.Mutex
	stage     Stage
	checkIn   string
	checkOut  string
	nights    int
	room      *models.Room
	services  []models.Service
	customer  *models.Customer
	available []models.Room
	total     float64
	editing   *models.Reservation
	inFlight  bool
}

func New(id string, api *client.Client, st *store.Store) *Wizard {
	return &Wizard{ID: id, api: api, store: st, stage: StageDates}
}

// State is a read-only view of the wizard handed to the confirmation screen
// and the progress header. OfferedServices comes live from the Store so a
// refreshed services screen is reflected immediately.
type State struct {
	ID              string            `json:"id"`
	Stage           Stage             `json:"stage"`
	StageName       string            `json:"stageName"`
	CheckIn         string            `json:"checkIn"`
	CheckOut        string            `json:"checkOut"`
	Nights          int               `json:"nights"`
	Room            *models.Room      `json:"room"`
	Services        []models.Service  `json:"services"`
	Customer        *models.Customer  `json:"customer"`
	AvailableRooms  []models.Room     `json:"availableRooms"`
	OfferedServices []models.Service  `json:"offeredServices"`
	TotalPrice      float64           `json:"totalPrice"`
	Editing         bool              `json:"editing"`
	EditingID       int64             `json:"editingId,omitempty"`
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := State{
		ID:              w.ID,
		Stage:           w.stage,
		StageName:       w.stage.String(),
		CheckIn:         w.checkIn,
		CheckOut:        w.checkOut,
		Nights:          w.nights,
		Room:            w.room,
		Services:        append([]models.Service(nil), w.services...),
		Customer:        w.customer,
		AvailableRooms:  append([]models.Room(nil), w.available...),
		OfferedServices: w.store.AvailableServices(),
		TotalPrice:      w.total,
		Editing:         w.editing != nil,
	}
	if w.editing != nil {
		st.EditingID = w.editing.ID
	}
	return st
}

// recompute re-derives the total. Called at every mutation point that feeds
// the price: date change, room change, service toggle.
func (w *Wizard) recompute() {
	w.total = TotalPrice(w.room, w.services, w.nights)
}

// refreshAvailable re-fetches the rooms that can be sold for the current
// dates. Only the static Available flag filters the set; overlap against
// existing reservations is not checked, mirroring the backend's surface.
// A fetch failure keeps the previous set and is logged.
func (w *Wizard) refreshAvailable(ctx context.Context) {
	rooms, err := w.api.Rooms.List(ctx)
	if err != nil {
		log.Printf("⚠️ available-rooms refresh failed, keeping previous set: %v", err)
		return
	}
	available := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Available {
			available = append(available, r)
		}
	}
	w.available = available
}

// SetDates records the date pair, recomputes nights and re-fetches the
// available rooms. Malformed dates are rejected outright; an equal or
// inverted pair is stored with zero nights and blocks the stage guard
// instead.
func (w *Wizard) SetDates(ctx context.Context, checkIn, checkOut string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if checkIn == "" || checkOut == "" {
		return ErrDatesRequired
	}

	nights, err := Nights(checkIn, checkOut)
	if errors.Is(err, ErrInvalidDate) {
		return err
	}

	w.checkIn = checkIn
	w.checkOut = checkOut
	w.nights = nights
	w.refreshAvailable(ctx)
	w.recompute()

	return err
}

// SelectRoom picks a room out of the currently available set; anything
// outside it (including rooms with Available=false) is refused.
func (w *Wizard) SelectRoom(id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, r := range w.available {
		if r.ID == id {
			room := r
			w.room = &room
			w.recompute()
			return nil
		}
	}
	return ErrRoomNotAvailable
}

// ToggleService adds the service to the selection, or removes it when it is
// already selected. Only services the Store currently offers may be added.
func (w *Wizard) ToggleService(id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, svc := range w.services {
		if svc.ID == id {
			w.services = append(w.services[:i:i], w.services[i+1:]...)
			w.recompute()
			return nil
		}
	}

	svc, ok := w.store.ServiceByID(id)
	if !ok || !svc.Available {
		return ErrServiceNotOffered
	}
	w.services = append(w.services, svc)
	w.recompute()
	return nil
}

// SelectCustomer picks an existing customer from the Store.
func (w *Wizard) SelectCustomer(id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.store.CustomerByID(id)
	if !ok {
		return ErrCustomerNotFound
	}
	w.customer = &c
	return nil
}

// CreateCustomer is the embedded sub-flow of the customer stage: validate,
// create remotely, reconcile the Store, auto-select the new customer and
// advance one stage.
func (w *Wizard) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	c.ID = 0
	if err := models.Validate(c); err != nil {
		return models.Customer{}, err
	}

	created, err := w.api.Customers.Create(ctx, c)
	if err != nil {
		return models.Customer{}, err
	}
	w.store.AddCustomer(created)

	w.mu.Lock()
	w.customer = &created
	if w.stage == StageCustomer {
		w.stage = StageConfirm
	}
	w.mu.Unlock()

	return created, nil
}

// Next advances one stage if the current stage's guard holds.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.stage {
	case StageDates:
		if w.checkIn == "" || w.checkOut == "" {
			return ErrDatesRequired
		}
		if w.nights < 1 {
			return ErrInvalidDateRange
		}
	case StageRoom:
		if w.room == nil {
			return ErrRoomRequired
		}
	case StageServices:
		// services are optional
	case StageCustomer:
		if w.customer == nil {
			return ErrCustomerRequired
		}
	case StageConfirm:
		return nil
	}

	w.stage++
	return nil
}

// Back moves one stage backwards; at the first stage it does nothing, the
// same way the screen's button is disabled there.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stage > StageDates {
		w.stage--
	}
}

// LoadReservation puts the wizard into edit mode: every stage's selection is
// pre-populated from the reservation's snapshots and the flow restarts at
// the dates stage so each field can be re-edited. Nights and total are
// recomputed from the loaded selections, never read from the snapshot.
func (w *Wizard) LoadReservation(ctx context.Context, res models.Reservation) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.editing = &res
	w.checkIn = res.CheckIn
	w.checkOut = res.CheckOut
	if n, err := Nights(res.CheckIn, res.CheckOut); err == nil {
		w.nights = n
	} else {
		w.nights = 0
	}
	room := res.Room
	w.room = &room
	customer := res.Customer
	w.customer = &customer
	w.services = append([]models.Service(nil), res.Services...)
	w.stage = StageDates
	w.refreshAvailable(ctx)
	w.recompute()
}

func (w *Wizard) reset() {
	w.stage = StageDates
	w.checkIn = ""
	w.checkOut = ""
	w.nights = 0
	w.room = nil
	w.services = nil
	w.customer = nil
	w.available = nil
	w.total = 0
	w.editing = nil
}

// Reset clears every selection and leaves edit mode.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

// Confirm submits the draft. In create mode it sends the id-based request
// and appends the returned reservation to the Store; in edit mode it sends
// the full reservation with nights and total recomputed from the current
// selections and replaces the Store entry. On failure nothing is applied and
// the wizard stays on the confirmation stage so the user may retry. A second
// Confirm while one is outstanding is refused without issuing a request.
func (w *Wizard) Confirm(ctx context.Context) (models.Reservation, error) {
	w.mu.Lock()
	if w.stage != StageConfirm {
		w.mu.Unlock()
		return models.Reservation{}, ErrNotOnConfirmation
	}
	if w.room == nil {
		w.mu.Unlock()
		return models.Reservation{}, ErrRoomRequired
	}
	if w.customer == nil {
		w.mu.Unlock()
		return models.Reservation{}, ErrCustomerRequired
	}
	if w.nights < 1 {
		w.mu.Unlock()
		return models.Reservation{}, ErrInvalidDateRange
	}
	if w.inFlight {
		w.mu.Unlock()
		return models.Reservation{}, ErrOperationInFlight
	}
	w.inFlight = true

	editing := w.editing
	checkIn, checkOut, nights := w.checkIn, w.checkOut, w.nights
	room, customer := *w.room, *w.customer
	services := append([]models.Service(nil), w.services...)
	total := w.total
	w.mu.Unlock()

	if editing == nil {
		req := models.ReservationRequest{
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			RoomID:     room.ID,
			CustomerID: customer.ID,
			ServiceIDs: serviceIDs(services),
		}
		created, err := w.api.Reservations.Submit(ctx, req)
		if err != nil {
			w.clearInFlight()
			return models.Reservation{}, err
		}
		w.store.AddReservation(created)
		w.mu.Lock()
		w.reset()
		w.inFlight = false
		w.mu.Unlock()
		return created, nil
	}

	payload := models.Reservation{
		ID:         editing.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     nights,
		TotalPrice: total,
		Room:       room,
		Customer:   customer,
		Services:   services,
		Status:     editing.Status,
	}
	updated, err := w.api.Reservations.Update(ctx, payload)
	if err != nil {
		w.clearInFlight()
		return models.Reservation{}, err
	}
	w.store.UpdateReservation(updated)
	w.mu.Lock()
	w.reset()
	w.inFlight = false
	w.mu.Unlock()
	return updated, nil
}

func (w *Wizard) clearInFlight() {
	w.mu.Lock()
	w.inFlight = false
	w.mu.Unlock()
}

func serviceIDs(services []models.Service) []int64 {
	ids := make([]int64, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
	}
	return ids
}
