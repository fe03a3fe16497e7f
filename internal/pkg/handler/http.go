package handler

import (
	"encoding/json"
	"net/http"

	"github.com/anicoll/openwb-integration/internal/pkg/model"
)

type poller interface {
	Latest() (model.Snapshot, bool)
}

type readingRegistry interface {
	Statuses() []model.ReadingStatus
}

// Status serves the latest snapshot together with the staleness flag. A stale
// response means the last poll cycle failed and the snapshot is carried over.
func Status(device *model.Device, p poller) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, ok := p.Latest()
		writeJSON(w, StatusResponse{
			Device:   device.Name,
			Host:     device.ConfigurationURL,
			Stale:    !ok,
			Keys:     len(snapshot),
			Snapshot: snapshot,
		})
	}
}

// Readings serves every discovered reading with its resolved metadata and
// latest decoded value.
func Readings(reg readingRegistry) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, ReadingsResponse{Readings: reg.Statuses()})
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		handleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func handleError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(err.Error()))
}
