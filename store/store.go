package store

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"hotel-admin/client"
	"hotel-admin/models"
)

// Store is the single in-memory cache of backend entities shared by every
// screen. It is populated by LoadAll at startup and mutated only after the
// remote call it mirrors has already succeeded, so there is never an
// optimistic entry and never a rollback. One Store exists per process; it is
// constructed in main and passed by handle, never reached through a global.
type Store struct {
	api *client.Client

	mu           sync.RWMutex
	customers    []models.Customer
	employees    []models.Employee
	rooms        []models.Room
	services     []models.Service
	reservations []models.Reservation
	ready        bool
	loadErr      error

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func New(api *client.Client) *Store {
	return &Store{api: api, subs: map[int]func(){}}
}

// LoadAll fetches the four base collections concurrently, then the derived
// reservations collection. It is all-or-nothing: if any fetch fails, no
// collection is replaced, the Store keeps its previous contents and a single
// joined error is retained until a later LoadAll succeeds. Repeated calls
// simply re-populate everything.
func (s *Store) LoadAll(ctx context.Context) error {
	var (
		wg        sync.WaitGroup
		customers []models.Customer
		employees []models.Employee
		rooms     []models.Room
		services  []models.Service
		errs      [4]error
	)

	wg.Add(4)
	go func() { defer wg.Done(); customers, errs[0] = s.api.Customers.List(ctx) }()
	go func() { defer wg.Done(); employees, errs[1] = s.api.Employees.List(ctx) }()
	go func() { defer wg.Done(); rooms, errs[2] = s.api.Rooms.List(ctx) }()
	go func() { defer wg.Done(); services, errs[3] = s.api.Services.List(ctx) }()
	wg.Wait()

	labels := [4]string{"customers", "employees", "rooms", "services"}
	var failed []string
	for i, err := range errs {
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", labels[i], err))
		}
	}

	var reservations []models.Reservation
	if len(failed) == 0 {
		var err error
		reservations, err = s.api.Reservations.List(ctx)
		if err != nil {
			failed = append(failed, fmt.Sprintf("reservations: %v", err))
		}
	}

	if len(failed) > 0 {
		err := fmt.Errorf("initial load failed: %s", strings.Join(failed, "; "))
		s.mu.Lock()
		s.loadErr = err
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.customers = customers
	s.employees = employees
	s.rooms = rooms
	s.services = services
	s.reservations = reservations
	s.ready = true
	s.loadErr = nil
	s.mu.Unlock()

	s.notify()
	return nil
}

// Ready reports whether an initial load has completed successfully.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready && s.loadErr == nil
}

// Err returns the retained load error, if the Store is in the error state.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Subscribe registers a callback run after every successful mutation. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Every mutation below builds a fresh slice, so a snapshot handed to a
// reader is never changed underneath it.

func snapshot[T any](list []T) []T {
	return append([]T(nil), list...)
}

func replaceByID[T models.Entity](list []T, e T) []T {
	for i := range list {
		if list[i].EntityID() == e.EntityID() {
			out := snapshot(list)
			out[i] = e
			return out
		}
	}
	return list
}

func removeByID[T models.Entity](list []T, id int64) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if e.EntityID() != id {
			out = append(out, e)
		}
	}
	return out
}

func findByID[T models.Entity](list []T, id int64) (T, bool) {
	for _, e := range list {
		if e.EntityID() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// refresh re-fetches one collection. A failure keeps the cached contents and
// is only logged: a stale single screen is lower severity than a broken
// first load, so unlike LoadAll nothing is propagated.
func refresh[T any](ctx context.Context, label string, list func(context.Context) ([]T, error), apply func([]T)) {
	fresh, err := list(ctx)
	if err != nil {
		log.Printf("⚠️ %s refresh failed, keeping cached data: %v", label, err)
		return
	}
	apply(fresh)
}

func (s *Store) RefreshCustomers(ctx context.Context) {
	refresh(ctx, "customers", s.api.Customers.List, func(fresh []models.Customer) {
		s.mu.Lock()
		s.customers = fresh
		s.mu.Unlock()
		s.notify()
	})
}

func (s *Store) RefreshEmployees(ctx context.Context) {
	refresh(ctx, "employees", s.api.Employees.List, func(fresh []models.Employee) {
		s.mu.Lock()
		s.employees = fresh
		s.mu.Unlock()
		s.notify()
	})
}

func (s *Store) RefreshRooms(ctx context.Context) {
	refresh(ctx, "rooms", s.api.Rooms.List, func(fresh []models.Room) {
		s.mu.Lock()
		s.rooms = fresh
		s.mu.Unlock()
		s.notify()
	})
}

func (s *Store) RefreshServices(ctx context.Context) {
	refresh(ctx, "services", s.api.Services.List, func(fresh []models.Service) {
		s.mu.Lock()
		s.services = fresh
		s.mu.Unlock()
		s.notify()
	})
}

func (s *Store) RefreshReservations(ctx context.Context) {
	refresh(ctx, "reservations", s.api.Reservations.List, func(fresh []models.Reservation) {
		s.mu.Lock()
		s.reservations = fresh
		s.mu.Unlock()
		s.notify()
	})
}

// ---- customers ----

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.customers)
}

func (s *Store) CustomerByID(id int64) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.customers, id)
}

func (s *Store) AddCustomer(c models.Customer) {
	s.mu.Lock()
	s.customers = append(snapshot(s.customers), c)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) UpdateCustomer(c models.Customer) {
	s.mu.Lock()
	s.customers = replaceByID(s.customers, c)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) RemoveCustomer(id int64) {
	s.mu.Lock()
	s.customers = removeByID(s.customers, id)
	s.mu.Unlock()
	s.notify()
}

// ---- employees ----

func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.employees)
}

func (s *Store) EmployeeByID(id int64) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.employees, id)
}

func (s *Store) AddEmployee(e models.Employee) {
	s.mu.Lock()
	s.employees = append(snapshot(s.employees), e)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) UpdateEmployee(e models.Employee) {
	s.mu.Lock()
	s.employees = replaceByID(s.employees, e)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) RemoveEmployee(id int64) {
	s.mu.Lock()
	s.employees = removeByID(s.employees, id)
	s.mu.Unlock()
	s.notify()
}

// ---- rooms ----

func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.rooms)
}

func (s *Store) RoomByID(id int64) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.rooms, id)
}

func (s *Store) AddRoom(r models.Room) {
	s.mu.Lock()
	s.rooms = append(snapshot(s.rooms), r)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) UpdateRoom(r models.Room) {
	s.mu.Lock()
	s.rooms = replaceByID(s.rooms, r)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) RemoveRoom(id int64) {
	s.mu.Lock()
	s.rooms = removeByID(s.rooms, id)
	s.mu.Unlock()
	s.notify()
}

// ---- services ----

func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.services)
}

func (s *Store) ServiceByID(id int64) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.services, id)
}

// AvailableServices returns only the services that may be offered to the
// booking wizard.
func (s *Store) AvailableServices() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		if svc.Available {
			out = append(out, svc)
		}
	}
	return out
}

func (s *Store) AddService(svc models.Service) {
	s.mu.Lock()
	s.services = append(snapshot(s.services), svc)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) UpdateService(svc models.Service) {
	s.mu.Lock()
	s.services = replaceByID(s.services, svc)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) RemoveService(id int64) {
	s.mu.Lock()
	s.services = removeByID(s.services, id)
	s.mu.Unlock()
	s.notify()
}

// ---- reservations ----

func (s *Store) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.reservations)
}

func (s *Store) ReservationByID(id int64) (models.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.reservations, id)
}

func (s *Store) AddReservation(r models.Reservation) {
	s.mu.Lock()
	s.reservations = append(snapshot(s.reservations), r)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) UpdateReservation(r models.Reservation) {
	s.mu.Lock()
	s.reservations = replaceByID(s.reservations, r)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) RemoveReservation(id int64) {
	s.mu.Lock()
	s.reservations = removeByID(s.reservations, id)
	s.mu.Unlock()
	s.notify()
}
