package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/client"
	"hotel-admin/store"
	"hotel-admin/utils"
)

// ReservationController serves the reservations list and the delete action.
// Creation and update go through the wizard only.
type ReservationController struct {
	api   *client.Client
	store *store.Store
}

func NewReservationController(api *client.Client, st *store.Store) *ReservationController {
	return &ReservationController{api: api, store: st}
}

func (rc *ReservationController) List(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.store.Reservations())
}

// Delete removes a reservation. The explicit confirm=true parameter stands
// in for the user's confirmation dialog; without it no remote call is made.
func (rc *ReservationController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if c.Query("confirm") != "true" {
		utils.JSONError(c, http.StatusBadRequest, "deletion requires explicit confirmation (confirm=true)")
		return
	}

	if err := rc.api.Reservations.Delete(c.Request.Context(), id); err != nil {
		writeRemoteError(c, err)
		return
	}
	rc.store.RemoveReservation(id)
	utils.JSONSuccess(c, http.StatusOK, nil)
}

func (rc *ReservationController) Refresh(c *gin.Context) {
	rc.store.RefreshReservations(c.Request.Context())
	utils.JSONSuccess(c, http.StatusOK, rc.store.Reservations())
}
