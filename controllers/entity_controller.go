package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-admin/client"
	"hotel-admin/models"
	"hotel-admin/utils"
)

// EntityController is one CRUD handler set, parameterized by entity kind.
// The same implementation backs the customers, employees, rooms and services
// screens: list from the Store, write through the backend first, reconcile
// the Store only after the remote call succeeded.
type EntityController[T models.Entity] struct {
	kind    string
	res     *client.Resource[T]
	list    func() []T
	add     func(T)
	replace func(T)
	remove  func(int64)
	refresh func(context.Context)
}

func NewEntityController[T models.Entity](
	kind string,
	res *client.Resource[T],
	list func() []T,
	add func(T),
	replace func(T),
	remove func(int64),
	refresh func(context.Context),
) *EntityController[T] {
	return &EntityController[T]{
		kind:    kind,
		res:     res,
		list:    list,
		add:     add,
		replace: replace,
		remove:  remove,
		refresh: refresh,
	}
}

// writeRemoteError maps a failed backend call onto a response the screen can
// show: the backend's own message list for reported failures, a gateway
// error for transport trouble. The Store is never touched on this path.
func writeRemoteError(c *gin.Context, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrorMessages(err)...)
		return
	}
	utils.JSONError(c, http.StatusBadGateway, utils.ErrorMessages(err)...)
}

func parseID(c *gin.Context) (int64, bool) {
	return parseIDParam(c, "id")
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// List serves the Store snapshot; no network round trip.
func (ec *EntityController[T]) List(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ec.list())
}

func (ec *EntityController[T]) Create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		log.Printf("❌ %s create: invalid payload: %v", ec.kind, err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if entity.EntityID() != 0 {
		utils.JSONError(c, http.StatusBadRequest, "id must not be set on create")
		return
	}
	if err := models.Validate(entity); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := ec.res.Create(c.Request.Context(), entity)
	if err != nil {
		writeRemoteError(c, err)
		return
	}
	ec.add(created)
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (ec *EntityController[T]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		log.Printf("❌ %s update: invalid payload: %v", ec.kind, err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if entity.EntityID() != id {
		utils.JSONError(c, http.StatusBadRequest, "body id does not match path id")
		return
	}
	if err := models.Validate(entity); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := ec.res.Update(c.Request.Context(), entity)
	if err != nil {
		writeRemoteError(c, err)
		return
	}
	ec.replace(updated)
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ec *EntityController[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ec.res.Delete(c.Request.Context(), id); err != nil {
		writeRemoteError(c, err)
		return
	}
	ec.remove(id)
	utils.JSONSuccess(c, http.StatusOK, nil)
}

// Refresh re-fetches this collection into the Store. A failed refresh keeps
// the cached data and is logged inside the Store, so the answer is always
// the current snapshot.
func (ec *EntityController[T]) Refresh(c *gin.Context) {
	ec.refresh(c.Request.Context())
	utils.JSONSuccess(c, http.StatusOK, ec.list())
}
