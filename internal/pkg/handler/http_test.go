package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anicoll/openwb-integration/internal/pkg/model"
)

type fakePoller struct {
	snapshot model.Snapshot
	ok       bool
}

func (f *fakePoller) Latest() (model.Snapshot, bool) {
	return f.snapshot, f.ok
}

type fakeRegistry struct {
	statuses []model.ReadingStatus
}

func (f *fakeRegistry) Statuses() []model.ReadingStatus {
	return f.statuses
}

func testDevice() *model.Device {
	return &model.Device{ID: "openwb_wb_local", Name: "openWB wb.local", ConfigurationURL: "http://wb.local"}
}

func TestStatusHandler(t *testing.T) {
	t.Parallel()
	p := &fakePoller{snapshot: model.Snapshot{"pvw": "100", "evuw": "5"}, ok: true}

	rec := httptest.NewRecorder()
	Status(testDevice(), p)(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "openWB wb.local", res.Device)
	assert.False(t, res.Stale)
	assert.Equal(t, 2, res.Keys)
	assert.Equal(t, "100", res.Snapshot["pvw"])
}

func TestStatusHandlerReportsStaleData(t *testing.T) {
	t.Parallel()
	p := &fakePoller{snapshot: model.Snapshot{"pvw": "100"}, ok: false}

	rec := httptest.NewRecorder()
	Status(testDevice(), p)(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	var res StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Stale)
	assert.Equal(t, "100", res.Snapshot["pvw"], "carried-over snapshot stays readable")
}

func TestReadingsHandler(t *testing.T) {
	t.Parallel()
	reg := &fakeRegistry{statuses: []model.ReadingStatus{
		{Key: "pvw", Slug: "pvw", Name: "PV power", Value: -1500.0, Unit: model.UnitWatt, DeviceClass: model.DeviceClassPower, StateClass: model.StateClassMeasurement},
	}}

	rec := httptest.NewRecorder()
	Readings(reg)(rec, httptest.NewRequest(http.MethodGet, "/api/readings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res ReadingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Readings, 1)
	assert.Equal(t, "PV power", res.Readings[0].Name)
	assert.Equal(t, "W", res.Readings[0].Unit.String())
	assert.Equal(t, -1500.0, res.Readings[0].Value)
}
