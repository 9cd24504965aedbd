package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/models"
	"hotel-admin/store"
	"hotel-admin/utils"
	"hotel-admin/wizard"
)

// WizardController drives the booking-wizard sessions over HTTP. Every
// mutating endpoint answers with the fresh wizard state so the screen always
// renders the recomputed nights, price and available rooms.
type WizardController struct {
	manager *wizard.Manager
	store   *store.Store
}

func NewWizardController(m *wizard.Manager, st *store.Store) *WizardController {
	return &WizardController{manager: m, store: st}
}

type datesPayload struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type selectionPayload struct {
	RoomID     int64 `json:"roomId"`
	ServiceID  int64 `json:"serviceId"`
	CustomerID int64 `json:"customerId"`
}

var guardErrors = []error{
	wizard.ErrInvalidDate,
	wizard.ErrInvalidDateRange,
	wizard.ErrDatesRequired,
	wizard.ErrRoomRequired,
	wizard.ErrRoomNotAvailable,
	wizard.ErrServiceNotOffered,
	wizard.ErrCustomerRequired,
	wizard.ErrCustomerNotFound,
	wizard.ErrNotOnConfirmation,
}

func writeWizardError(c *gin.Context, err error) {
	if errors.Is(err, wizard.ErrOperationInFlight) {
		utils.JSONError(c, http.StatusConflict, err.Error())
		return
	}
	for _, guard := range guardErrors {
		if errors.Is(err, guard) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	writeRemoteError(c, err)
}

func (wc *WizardController) session(c *gin.Context) (*wizard.Wizard, bool) {
	w, ok := wc.manager.Get(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "wizard session not found")
		return nil, false
	}
	return w, true
}

func (wc *WizardController) Create(c *gin.Context) {
	w := wc.manager.Create()
	utils.JSONSuccess(c, http.StatusCreated, w.State())
}

func (wc *WizardController) Get(c *gin.Context) {
	w, ok := wc.session(c)
	if !ok {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, w.State())
}

func (wc *WizardController) SetDates(c *gin.Context) {
	w, ok := wc.session(c)
	if !ok {
		return
	}
	var payload datesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := w.SetDates(c.Request.Context(), payload.CheckIn, payload.CheckOut); err != nil {
		writeWizardError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, w.State())
}

func (wc *WizardController) SelectRoom(c *gin.Context) {
	w, ok := wc.session(c)
	if !ok {
		return
	}
	var payload selectionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := w.SelectRoom(payload.RoomID); err != nil {
		writeWizardError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, w.State())
}

func (wc *WizardController) ToggleService(c *gin.Context) {
	w, ok := wc.session(c)
	if !ok {
		return
	}
	var payload selectionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := w.ToggleService(payload.ServiceID); err != nil {
		writeWizardError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, w.State())
}

func (wc *WizardController) SelectCustomer(c *gin.Context) {
	w, ok := wc.session(c)
	if !ok {
		return
	}
	var payload selectionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := w.SelectCustomer(payload.CustomerID); err != nil {
		writeWizardError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, w.State())
}

// CreateCustomer is the embedded sub-flow of the customer stage: a created
// customer is auto-selected and the wizard advances one stage.
func (wc *WizardController) CreateCustomer(c *gin.Context) {
	w, ok := wc.session(c)
	if !ok {
		return
	}
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	created, err := w.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"customer": created, "wizard": w.State()})
}

func (wc *WizardController) Next(c *gin.Context) {
	w, ok := wc.session(c)
	if !ok {
		return
	}
	if err := w.Next(); err != nil {
		writeWizardError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, w.State())
}

func (wc *WizardController) Back(c *gin.Context) {
	w, ok := wc.session(c)
	if !ok {
		return
	}
	w.Back()
	utils.JSONSuccess(c, http.StatusOK, w.State())
}

func (wc *WizardController) Confirm(c *gin.Context) {
	w, ok := wc.session(c)
	if !ok {
		return
	}
	res, err := w.Confirm(c.Request.Context())
	if err != nil {
		writeWizardError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"reservation": res, "wizard": w.State()})
}

// Load puts an existing reservation into the wizard for re-editing.
func (wc *WizardController) Load(c *gin.Context) {
	w, ok := wc.session(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "reservationId")
	if !ok {
		return
	}
	res, found := wc.store.ReservationByID(id)
	if !found {
		utils.JSONError(c, http.StatusNotFound, "reservation not found")
		return
	}
	w.LoadReservation(c.Request.Context(), res)
	utils.JSONSuccess(c, http.StatusOK, w.State())
}

func (wc *WizardController) End(c *gin.Context) {
	if _, ok := wc.session(c); !ok {
		return
	}
	wc.manager.End(c.Param("id"))
	utils.JSONSuccess(c, http.StatusOK, nil)
}
