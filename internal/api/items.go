package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sandy2008/inventory/internal/errs"
	"github.com/sandy2008/inventory/internal/model"
	"github.com/sandy2008/inventory/internal/service"
)

// ItemsHandler handles the inventory endpoints.
type ItemsHandler struct {
	Service *service.Service
}

// Quantity fields are pointers so that an explicit 0 passes the required
// check while a missing field fails it.
type addItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity *int64 `json:"quantity" validate:"required"`
}

type updateQuantityRequest struct {
	Name        string `json:"name" validate:"required"`
	NewQuantity *int64 `json:"new_quantity" validate:"required"`
}

// AddItem handles POST /add-item.
func (h *ItemsHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeValid(r, &req); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.Info("adding item", "name", req.Name, "quantity", *req.Quantity)

	item, err := h.Service.AddItem(r.Context(), req.Name, *req.Quantity)
	if errors.Is(err, errs.ErrConflict) {
		jsonError(w, http.StatusBadRequest, "Item already exists")
		return
	}
	if err != nil {
		slog.Error("adding item", "name", req.Name, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Item added",
		"item":    item,
	})
}

// RemoveItem handles DELETE /remove-item.
func (h *ItemsHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		jsonError(w, http.StatusUnprocessableEntity, "name query parameter required")
		return
	}

	slog.Info("removing item", "name", name)

	err := h.Service.RemoveItem(r.Context(), name)
	if errors.Is(err, errs.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("removing item", "name", name, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to remove item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Item removed",
		"name":    name,
	})
}

// UpdateQuantity handles PUT /update-quantity.
func (h *ItemsHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := decodeValid(r, &req); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.Info("updating quantity", "name", req.Name, "new_quantity", *req.NewQuantity)

	item, err := h.Service.UpdateQuantity(r.Context(), req.Name, *req.NewQuantity)
	if errors.Is(err, errs.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("updating quantity", "name", req.Name, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update quantity")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Quantity updated",
		"item":    item,
	})
}

// ListItems handles GET /list-items.
func (h *ItemsHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	slog.Info("listing items")

	items, err := h.Service.ListItems(r.Context())
	if err != nil {
		slog.Error("listing items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{"items": items})
}

// GetItem handles GET /get-item.
func (h *ItemsHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		jsonError(w, http.StatusUnprocessableEntity, "name query parameter required")
		return
	}

	slog.Info("getting item", "name", name)

	item, err := h.Service.GetItem(r.Context(), name)
	if errors.Is(err, errs.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("getting item", "name", name, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{"item": item})
}
