package registry

import "github.com/anicoll/openwb-integration/internal/pkg/model"

// readingMetadata is the static metadata table, keyed by normalized raw key.
// At most one entry exists per normalized key; keys without an entry get a
// generic descriptor with no unit, no class and generic decoding.
var readingMetadata = map[string]Descriptor{
	"date":      {DeviceClass: model.DeviceClassTimestamp, decode: decodeTimestamp},
	"lademodus": {decode: decodeChargeMode},

	"minimalstromstaerke": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"maximalstromstaerke": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"llsoll":              {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},

	"gelkwhlp1": {Unit: model.UnitKiloWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotal},
	"gelkwhlp2": {Unit: model.UnitKiloWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotal},
	"gelkwhlp3": {Unit: model.UnitKiloWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotal},

	"gelrlp1":  {Unit: model.UnitKiloWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotalIncreasing},
	"gelrlp2":  {Unit: model.UnitKiloWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotalIncreasing},
	"gelrlp3":  {Unit: model.UnitKiloWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotalIncreasing},
	"llkwhlp1": {Unit: model.UnitKiloWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotalIncreasing},
	"llkwhlp2": {Unit: model.UnitKiloWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotalIncreasing},
	"llkwhlp3": {Unit: model.UnitKiloWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotalIncreasing},

	"llgesamt": {Unit: model.UnitWatt, DeviceClass: model.DeviceClassPower, StateClass: model.StateClassMeasurement},

	"evua1": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"evua2": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"evua3": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},

	"lllp1": {Unit: model.UnitWatt, DeviceClass: model.DeviceClassPower, StateClass: model.StateClassMeasurement},
	"lllp2": {Unit: model.UnitWatt, DeviceClass: model.DeviceClassPower, StateClass: model.StateClassMeasurement},
	"lllp3": {Unit: model.UnitWatt, DeviceClass: model.DeviceClassPower, StateClass: model.StateClassMeasurement},

	"evuw": {Unit: model.UnitWatt, DeviceClass: model.DeviceClassPower, StateClass: model.StateClassMeasurement},
	"pvw":  {Unit: model.UnitWatt, DeviceClass: model.DeviceClassPower, StateClass: model.StateClassMeasurement, decode: decodeInvertedPower},

	"evuv1": {Unit: model.UnitVolt, DeviceClass: model.DeviceClassVoltage, StateClass: model.StateClassMeasurement},
	"evuv2": {Unit: model.UnitVolt, DeviceClass: model.DeviceClassVoltage, StateClass: model.StateClassMeasurement},
	"evuv3": {Unit: model.UnitVolt, DeviceClass: model.DeviceClassVoltage, StateClass: model.StateClassMeasurement},

	"speichersoc":     {Unit: model.UnitPercent, DeviceClass: model.DeviceClassBattery, StateClass: model.StateClassMeasurement},
	"soclp1":          {Unit: model.UnitPercent, DeviceClass: model.DeviceClassBattery, StateClass: model.StateClassMeasurement},
	"soclp2":          {Unit: model.UnitPercent, DeviceClass: model.DeviceClassBattery, StateClass: model.StateClassMeasurement},
	"speichersocziel": {Unit: model.UnitPercent, DeviceClass: model.DeviceClassBattery, StateClass: model.StateClassMeasurement},

	"speicherleistung": {Unit: model.UnitWatt, DeviceClass: model.DeviceClassPower, StateClass: model.StateClassMeasurement},
	"speicherpower":    {Unit: model.UnitWatt, DeviceClass: model.DeviceClassPower, StateClass: model.StateClassMeasurement},
	"hausverbrauch":    {Unit: model.UnitWatt, DeviceClass: model.DeviceClassPower, StateClass: model.StateClassMeasurement},

	"pvwh":             {Unit: model.UnitWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotalIncreasing},
	"evubezugwh":       {Unit: model.UnitWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotalIncreasing},
	"evueinspeisungwh": {Unit: model.UnitWattHour, DeviceClass: model.DeviceClassEnergy, StateClass: model.StateClassTotalIncreasing},

	"wallboxtemp":         {Unit: model.UnitCelsius, DeviceClass: model.DeviceClassTemperature, StateClass: model.StateClassMeasurement},
	"umgebungstemperatur": {Unit: model.UnitCelsius, DeviceClass: model.DeviceClassTemperature, StateClass: model.StateClassMeasurement},
	"aussentemperatur":    {Unit: model.UnitCelsius, DeviceClass: model.DeviceClassTemperature, StateClass: model.StateClassMeasurement},

	"lla1lp1": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"lla2lp1": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"lla3lp1": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"lla1lp2": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"lla2lp2": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"lla3lp2": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"lla1lp3": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"lla2lp3": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"lla3lp3": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},

	"llvpl1": {Unit: model.UnitVolt, DeviceClass: model.DeviceClassVoltage, StateClass: model.StateClassMeasurement},
	"llvpl2": {Unit: model.UnitVolt, DeviceClass: model.DeviceClassVoltage, StateClass: model.StateClassMeasurement},
	"llvpl3": {Unit: model.UnitVolt, DeviceClass: model.DeviceClassVoltage, StateClass: model.StateClassMeasurement},

	"llapl1": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"llapl2": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},
	"llapl3": {Unit: model.UnitAmpere, DeviceClass: model.DeviceClassCurrent, StateClass: model.StateClassMeasurement},

	"restzeitlp1m": {Unit: model.UnitMinutes, StateClass: model.StateClassMeasurement},
	"restzeitlp2m": {Unit: model.UnitMinutes, StateClass: model.StateClassMeasurement},
	"restzeitlp3m": {Unit: model.UnitMinutes, StateClass: model.StateClassMeasurement},
}

// displayNames carries curated names for the German raw key vocabulary, keyed
// by normalized raw key. Everything else falls back to fallbackName.
var displayNames = map[string]string{
	"date":                "Last update",
	"lademodus":           "Charging mode",
	"minimalstromstaerke": "Minimum charge current",
	"maximalstromstaerke": "Maximum charge current",
	"plugstatlp1":         "LP1 plug state",
	"plugstatlp2":         "LP2 plug state",
	"plugstatlp3":         "LP3 plug state",
	"llsoll":              "Target charge current",
	"lllp1":               "LP1 charge power",
	"lllp2":               "LP2 charge power",
	"lllp3":               "LP3 charge power",
	"llgesamt":            "Total charge power",
	"gelkwhlp1":           "LP1 charged energy",
	"gelkwhlp2":           "LP2 charged energy",
	"gelkwhlp3":           "LP3 charged energy",
	"gelrlp1":             "LP1 total energy",
	"gelrlp2":             "LP2 total energy",
	"gelrlp3":             "LP3 total energy",
	"llkwhlp1":            "LP1 session energy",
	"llkwhlp2":            "LP2 session energy",
	"llkwhlp3":            "LP3 session energy",
	"speichersoc":         "Battery SoC",
	"speichersocziel":     "Battery target SoC",
	"speicherpower":       "Battery power",
	"speicherleistung":    "Battery power",
	"hausverbrauch":       "House consumption",
	"evu_w":               "Grid power",
	"evuw":                "Grid power",
	"pvw":                 "PV power",
	"pvwh":                "PV generated energy",
	"evubezugwh":          "Grid imported energy",
	"evueinspeisungwh":    "Grid exported energy",
	"charger_soc":         "EV SoC",
	"chargestate":         "Charge state",
	"ladeleistungaktu":    "Instant charge power",
	"laadetermin":         "Charge timer end",
	"evseconnected":       "EVSE connected",
	"evseplugged":         "EVSE plugged",
	"wallboxtemp":         "Wallbox temperature",
	"umgebungstemperatur": "Ambient temperature",
	"aussentemperatur":    "Outside temperature",
	"lfm_status":          "Load management status",
	"lfm_w":               "Load management power",
	"lastmanagementw":     "Load management power total",
	"lfmampere":           "Load management current",
	"socmanu":             "Manual SoC",
	"soccon":              "Configured SoC",
	"phasenzahllp1":       "LP1 phase count",
	"phasenzahllp2":       "LP2 phase count",
	"phasenzahllp3":       "LP3 phase count",
	"phasel1amp":          "Phase L1 current",
	"phasel2amp":          "Phase L2 current",
	"phasel3amp":          "Phase L3 current",
	"llapl1":              "LP1 current",
	"llapl2":              "LP2 current",
	"llapl3":              "LP3 current",
	"llvpl1":              "LP1 voltage",
	"llvpl2":              "LP2 voltage",
	"llvpl3":              "LP3 voltage",
	"restzeitlp1m":        "LP1 remaining time",
	"restzeitlp2m":        "LP2 remaining time",
	"restzeitlp3m":        "LP3 remaining time",
}
