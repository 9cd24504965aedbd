package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-admin/client"
	"hotel-admin/models"
)

// fakeBackend serves the five list endpoints with per-collection failure
// switches, enough to exercise the Store's load and refresh semantics.
type fakeBackend struct {
	mu           sync.Mutex
	customers    []models.Customer
	employees    []models.Employee
	rooms        []models.Room
	services     []models.Service
	reservations []models.Reservation
	fail         map[string]bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		customers: []models.Customer{
			{ID: 1, Name: "Ana Gomez", Address: "Main St 1", Phone: "555-0101", Email: "ana@example.com"},
		},
		employees: []models.Employee{
			{ID: 1, Name: "Luis Perez", Position: "Receptionist", IdentificationNumber: "30111222", Salary: 1200, HireDate: "2022-05-10"},
		},
		rooms: []models.Room{
			{ID: 1, Number: "101", Type: "Standard", PricePerNight: 100, State: models.RoomStateClean, Available: true},
		},
		services: []models.Service{
			{ID: 1, Name: "Breakfast", Description: "Buffet breakfast", Price: 10, Available: true},
		},
		fail: map[string]bool{},
	}
}

func (f *fakeBackend) setFail(path string, fail bool) {
	f.mu.Lock()
	f.fail[path] = fail
	f.mu.Unlock()
}

func (f *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		write := func(success bool, messages []string, data interface{}) {
			if messages == nil {
				messages = []string{}
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": success, "messages": messages, "data": data,
			})
		}

		if f.fail[r.URL.Path] {
			write(false, []string{"database unavailable"}, nil)
			return
		}

		switch r.URL.Path {
		case "/customers":
			write(true, nil, f.customers)
		case "/employees":
			write(true, nil, f.employees)
		case "/rooms":
			write(true, nil, f.rooms)
		case "/services":
			write(true, nil, f.services)
		case "/reservations":
			write(true, nil, f.reservations)
		default:
			write(false, []string{"not found"}, nil)
		}
	})
}

func newTestStore(t *testing.T) (*Store, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return New(client.New(srv.URL, 5*time.Second)), backend
}

func TestLoadAllPopulatesEveryCollection(t *testing.T) {
	st, _ := newTestStore(t)

	assert.False(t, st.Ready())
	assert.NoError(t, st.LoadAll(context.Background()))

	assert.True(t, st.Ready())
	assert.NoError(t, st.Err())
	assert.Len(t, st.Customers(), 1)
	assert.Len(t, st.Employees(), 1)
	assert.Len(t, st.Rooms(), 1)
	assert.Len(t, st.Services(), 1)
	assert.Empty(t, st.Reservations())
}

func TestLoadAllIsAllOrNothing(t *testing.T) {
	st, backend := newTestStore(t)
	backend.setFail("/services", true)

	err := st.LoadAll(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "services")

	// No partial replacement, and the error state is retained.
	assert.Empty(t, st.Customers())
	assert.Empty(t, st.Rooms())
	assert.False(t, st.Ready())
	assert.Error(t, st.Err())

	// A later successful load clears the error state.
	backend.setFail("/services", false)
	assert.NoError(t, st.LoadAll(context.Background()))
	assert.True(t, st.Ready())
	assert.NoError(t, st.Err())
}

func TestFailedReloadKeepsPreviousContents(t *testing.T) {
	st, backend := newTestStore(t)
	assert.NoError(t, st.LoadAll(context.Background()))

	backend.mu.Lock()
	backend.customers = append(backend.customers, models.Customer{
		ID: 2, Name: "Bea Ruiz", Address: "Oak St 2", Phone: "555-0202", Email: "bea@example.com",
	})
	backend.mu.Unlock()
	backend.setFail("/rooms", true)

	assert.Error(t, st.LoadAll(context.Background()))

	// The previous contents survive the failed reload.
	assert.Len(t, st.Customers(), 1)
	assert.Len(t, st.Rooms(), 1)
	assert.Error(t, st.Err())
}

func TestRefreshFailureIsSilentlyRetained(t *testing.T) {
	st, backend := newTestStore(t)
	assert.NoError(t, st.LoadAll(context.Background()))

	backend.setFail("/customers", true)
	st.RefreshCustomers(context.Background())

	// Stale data kept, no error state: refresh failures are low severity.
	assert.Len(t, st.Customers(), 1)
	assert.True(t, st.Ready())
	assert.NoError(t, st.Err())
}

func TestRefreshReplacesOneCollection(t *testing.T) {
	st, backend := newTestStore(t)
	assert.NoError(t, st.LoadAll(context.Background()))

	backend.mu.Lock()
	backend.rooms = append(backend.rooms, models.Room{
		ID: 2, Number: "102", Type: "Deluxe", PricePerNight: 180, State: models.RoomStateClean, Available: true,
	})
	backend.mu.Unlock()

	st.RefreshRooms(context.Background())
	assert.Len(t, st.Rooms(), 2)
	assert.Len(t, st.Customers(), 1)
}

func TestAddAppendsAtTail(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.LoadAll(context.Background()))

	st.AddCustomer(models.Customer{ID: 9, Name: "Zoe", Address: "Z St", Phone: "555", Email: "z@example.com"})
	customers := st.Customers()
	assert.Len(t, customers, 2)
	assert.Equal(t, int64(9), customers[len(customers)-1].ID)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.LoadAll(context.Background()))

	before := st.Customers()
	st.UpdateCustomer(models.Customer{ID: 999, Name: "Ghost", Address: "-", Phone: "-", Email: "g@example.com"})
	assert.Equal(t, before, st.Customers())
}

func TestUpdateReplacesMatchingID(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.LoadAll(context.Background()))

	st.UpdateCustomer(models.Customer{ID: 1, Name: "Ana Maria Gomez", Address: "Main St 1", Phone: "555-0101", Email: "ana@example.com"})
	customers := st.Customers()
	assert.Len(t, customers, 1)
	assert.Equal(t, "Ana Maria Gomez", customers[0].Name)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.LoadAll(context.Background()))

	st.RemoveService(123)
	assert.Len(t, st.Services(), 1)

	st.RemoveService(1)
	assert.Empty(t, st.Services())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.LoadAll(context.Background()))

	snap := st.Rooms()
	snap[0].Number = "mutated"
	assert.Equal(t, "101", st.Rooms()[0].Number)
}

func TestSubscribeFiresOnMutation(t *testing.T) {
	st, _ := newTestStore(t)

	var mu sync.Mutex
	count := 0
	unsubscribe := st.Subscribe(func() {
		mu.Lock()
		count++
		mu.Unlock()
	})

	assert.NoError(t, st.LoadAll(context.Background()))
	st.AddRoom(models.Room{ID: 5, Number: "105", Type: "Standard", PricePerNight: 90, State: models.RoomStateClean, Available: true})

	mu.Lock()
	assert.Equal(t, 2, count)
	mu.Unlock()

	unsubscribe()
	st.RemoveRoom(5)

	mu.Lock()
	assert.Equal(t, 2, count)
	mu.Unlock()
}

func TestAvailableServicesFiltersUnavailable(t *testing.T) {
	st, backend := newTestStore(t)
	backend.mu.Lock()
	backend.services = append(backend.services, models.Service{
		ID: 2, Name: "Spa", Description: "Spa access", Price: 25, Available: false,
	})
	backend.mu.Unlock()

	assert.NoError(t, st.LoadAll(context.Background()))
	assert.Len(t, st.Services(), 2)

	offered := st.AvailableServices()
	assert.Len(t, offered, 1)
	assert.Equal(t, "Breakfast", offered[0].Name)
}
