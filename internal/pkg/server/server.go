package server

import (
	"net/http"

	"github.com/anicoll/openwb-integration/internal/pkg/handler"
	"github.com/anicoll/openwb-integration/internal/pkg/model"
	"github.com/anicoll/openwb-integration/internal/pkg/openwb"
	"github.com/anicoll/openwb-integration/internal/pkg/registry"
)

// New builds the read-only local API. Entity identity, persistence and UI
// strings belong to the automation host; this surface only mirrors state.
func New(device *model.Device, poller *openwb.Poller, reg *registry.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", handler.Status(device, poller))
	mux.HandleFunc("GET /api/readings", handler.Readings(reg))
	return LoggingMiddleware(mux)
}
