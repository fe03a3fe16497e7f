package registry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type decodeFunc func(any) any

// chargeModes maps the controller's numeric charging-mode codes to their
// display names. Unmapped codes pass through as the raw value on purpose;
// downstream consumers may rely on seeing the raw number.
var chargeModes = map[int]string{
	0: "Immediate",
	1: "Minimum+PV",
	2: "PV Surplus",
	3: "Stop",
	4: "Standby",
}

// The controller reports timestamps in its own colon-separated local format.
const timestampLayout = "2006:01:02-15:04:05"

// coerceValue is the generic decoding rule. It never fails: every input maps
// to some output, worst case the trimmed string or a stringified composite.
func coerceValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case bool:
		return val
	case float64:
		return val
	case int:
		return val
	case int64:
		return val
	case string:
		s := strings.TrimSpace(val)
		if s == "" || s == "--" {
			return nil
		}
		switch strings.ToLower(s) {
		case "true":
			return true
		case "false":
			return false
		}
		if strings.Contains(s, ".") {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
			return s
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return s
	default:
		// Composites are stringified; the host only renders scalars.
		return fmt.Sprintf("%v", v)
	}
}

// decodeTimestamp parses the controller's timestamp format. Unparsable or
// non-string input yields nil, never a raw passthrough.
func decodeTimestamp(v any) any {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	ts, err := time.ParseInLocation(timestampLayout, s, time.Local)
	if err != nil {
		return nil
	}
	return ts.UTC()
}

// decodeChargeMode maps a numeric charging-mode code (parsed as float, then
// truncated) through chargeModes. Unparsable input and unknown codes return
// the raw value unchanged.
func decodeChargeMode(v any) any {
	var code float64
	switch val := v.(type) {
	case float64:
		code = val
	case int:
		code = float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return v
		}
		code = f
	default:
		return v
	}
	if name, ok := chargeModes[int(code)]; ok {
		return name
	}
	return v
}

// decodeInvertedPower flips the sign of a power value; the controller reports
// PV generation as a negative draw. Non-numeric input falls back to generic
// coercion.
func decodeInvertedPower(v any) any {
	switch val := v.(type) {
	case float64:
		return -val
	case int:
		return float64(-val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return coerceValue(v)
		}
		return -f
	default:
		return coerceValue(v)
	}
}
