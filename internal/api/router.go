package api

import (
	"net/http"
	"time"

	"github.com/sandy2008/inventory/internal/config"
	"github.com/sandy2008/inventory/internal/service"
)

// requestDelay is how long every endpoint blocks when ENABLE_DELAY is set.
const requestDelay = 10 * time.Second

// NewRouter creates the API router with all endpoints registered.
func NewRouter(svc *service.Service, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Service: svc}

	mux.HandleFunc("GET /{$}", Root)

	// Inventory.
	mux.HandleFunc("POST /add-item", itemsHandler.AddItem)
	mux.HandleFunc("DELETE /remove-item", itemsHandler.RemoveItem)
	mux.HandleFunc("PUT /update-quantity", itemsHandler.UpdateQuantity)
	mux.HandleFunc("GET /list-items", itemsHandler.ListItems)
	mux.HandleFunc("GET /get-item", itemsHandler.GetItem)

	// Transform passthrough.
	mux.HandleFunc("POST /transform", Transform)
	mux.HandleFunc("POST /translation", Translation)
	mux.HandleFunc("POST /rotation", Rotation)
	mux.HandleFunc("POST /scale", Scale)
	mux.HandleFunc("GET /file-path", FilePath)

	var handler http.Handler = mux
	if cfg.EnableDelay {
		handler = DelayMiddleware(requestDelay, handler)
	}
	return handler
}
