package model

type DiscoveryDevice struct {
	Name             string   `json:"name"`
	Identifiers      []string `json:"identifiers"`
	Manufacturer     string   `json:"manufacturer"`
	ConfigurationURL string   `json:"configuration_url,omitempty"`
}

type DiscoveryMessage struct {
	Tilda             string          `json:"~"`
	Name              string          `json:"name"`
	ID                string          `json:"unique_id"`
	StateTopic        string          `json:"state_topic"`
	AvailabilityTopic string          `json:"availability_topic"`
	UnitOfMeasurement string          `json:"unit_of_measurement,omitempty"`
	DeviceClass       string          `json:"device_class,omitempty"`
	StateClass        string          `json:"state_class,omitempty"`
	Device            DiscoveryDevice `json:"device"`
}
