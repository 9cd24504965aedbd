package controllers

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"hotel-admin/store"
	"hotel-admin/utils"
)

// StateController reports the Store's load state and drives the retry of the
// initial load. It subscribes to the Store so every mutation bumps a version
// counter the screens can poll to know when to re-render.
type StateController struct {
	store   *store.Store
	version atomic.Int64
}

func NewStateController(st *store.Store) *StateController {
	sc := &StateController{store: st}
	st.Subscribe(func() { sc.version.Add(1) })
	return sc
}

func (sc *StateController) Get(c *gin.Context) {
	state := gin.H{
		"ready":       sc.store.Ready(),
		"dataVersion": sc.version.Load(),
	}
	if err := sc.store.Err(); err != nil {
		state["error"] = err.Error()
	}
	utils.JSONSuccess(c, http.StatusOK, state)
}

// Reload retries the all-or-nothing initial load.
func (sc *StateController) Reload(c *gin.Context) {
	if err := sc.store.LoadAll(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusBadGateway, utils.ErrorMessages(err)...)
		return
	}
	sc.Get(c)
}
