package model

// Snapshot is one complete poll cycle's key/value payload from the controller.
// A snapshot is replaced wholesale on every successful fetch and never mutated
// in place, so holders of an old snapshot keep a consistent view.
type Snapshot map[string]any

// Device identifies the openWB controller readings belong to.
type Device struct {
	ID               string
	Name             string
	ConfigurationURL string
}

// ReadingStatus is the publishable form of a single reading: the raw key it
// came from, its resolved metadata and the latest decoded value.
type ReadingStatus struct {
	Key         string      `json:"key"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Value       any         `json:"value"`
	Unit        Unit        `json:"unit,omitempty"`
	DeviceClass DeviceClass `json:"device_class,omitempty"`
	StateClass  StateClass  `json:"state_class,omitempty"`
}
