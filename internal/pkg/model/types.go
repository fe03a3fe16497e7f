package model

// DeviceClass is the measurement category of a reading, using the Home
// Assistant vocabulary so discovery payloads can carry it verbatim.
type DeviceClass string

func (dc DeviceClass) String() string {
	return string(dc)
}

const (
	DeviceClassCurrent     DeviceClass = "current"
	DeviceClassPower       DeviceClass = "power"
	DeviceClassEnergy      DeviceClass = "energy"
	DeviceClassVoltage     DeviceClass = "voltage"
	DeviceClassTemperature DeviceClass = "temperature"
	DeviceClassBattery     DeviceClass = "battery"
	DeviceClassTimestamp   DeviceClass = "timestamp"
)

// StateClass describes accumulation semantics: an instantaneous measurement,
// a resettable total, or a monotonically increasing total.
type StateClass string

func (sc StateClass) String() string {
	return string(sc)
}

const (
	StateClassMeasurement     StateClass = "measurement"
	StateClassTotal           StateClass = "total"
	StateClassTotalIncreasing StateClass = "total_increasing"
)

type Unit string

func (u Unit) String() string {
	return string(u)
}

const (
	UnitAmpere       Unit = "A"
	UnitVolt         Unit = "V"
	UnitWatt         Unit = "W"
	UnitWattHour     Unit = "Wh"
	UnitKiloWattHour Unit = "kWh"
	UnitPercent      Unit = "%"
	UnitCelsius      Unit = "°C"
	UnitMinutes      Unit = "min"
)
