package client

import (
	"context"
	"fmt"
	"net/http"

	"hotel-admin/models"
)

// Resource is one generic CRUD operation set against a backend collection.
// The same implementation serves every entity kind; only the path and the
// payload type differ.
type Resource[T models.Entity] struct {
	c    *Client
	path string
}

// List fetches the whole collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	raw, err := r.c.do(ctx, http.MethodGet, r.path, nil)
	if err != nil {
		return nil, err
	}
	return decodeAs[[]T](raw)
}

// Get fetches a single entity by id.
func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	raw, err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.path, id), nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeAs[T](raw)
}

// Create posts a new entity (id must be zero) and returns the canonical
// entity with the server-assigned id.
func (r *Resource[T]) Create(ctx context.Context, entity T) (T, error) {
	raw, err := r.c.do(ctx, http.MethodPost, r.path, entity)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeAs[T](raw)
}

// Update replaces the whole entity; the id travels in the body.
func (r *Resource[T]) Update(ctx context.Context, entity T) (T, error) {
	raw, err := r.c.do(ctx, http.MethodPut, r.path, entity)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeAs[T](raw)
}

// Delete removes the entity by id.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil)
	return err
}

// ReservationResource adds the creation-by-request operation: the client
// sends dates plus ids, the backend resolves the snapshots, computes nights
// and total, assigns the status and returns the full reservation.
type ReservationResource struct {
	Resource[models.Reservation]
}

func (r *ReservationResource) Submit(ctx context.Context, req models.ReservationRequest) (models.Reservation, error) {
	raw, err := r.c.do(ctx, http.MethodPost, r.path, req)
	if err != nil {
		return models.Reservation{}, err
	}
	return decodeAs[models.Reservation](raw)
}
