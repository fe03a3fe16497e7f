package handler

import "github.com/anicoll/openwb-integration/internal/pkg/model"

type StatusResponse struct {
	Device   string         `json:"device"`
	Host     string         `json:"host"`
	Stale    bool           `json:"stale"`
	Keys     int            `json:"keys"`
	Snapshot model.Snapshot `json:"snapshot"`
}

type ReadingsResponse struct {
	Readings []model.ReadingStatus `json:"readings"`
}
