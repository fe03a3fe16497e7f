package publisher

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/anicoll/openwb-integration/internal/pkg/model"
)

var errAlreadyRegistered = errors.New("publisher already registered")

var (
	registeredPublishers = make(map[string]publisher)
	sensors              sync.Map
)

type publisher interface {
	// Write publishes decoded reading states to the sink.
	Write(ctx context.Context, data []map[string]any) error
	RegisterReading(device *model.Device, status model.ReadingStatus) error
}

func RegisterPublisher(name string, p publisher) error {
	if _, ok := registeredPublishers[name]; ok {
		return errAlreadyRegistered
	}
	registeredPublishers[name] = p
	return nil
}

// RegisterReadings announces newly discovered readings to every sink so they
// can surface them to the host before any state arrives.
func RegisterReadings(device *model.Device, statuses []model.ReadingStatus) error {
	for name, pub := range registeredPublishers {
		for _, status := range statuses {
			if err := pub.RegisterReading(device, status); err != nil {
				zap.L().Error("failed to register reading", zap.Error(err), zap.String("publisher", name), zap.String("key", status.Key))
				continue
			}
		}
		zap.L().Debug("registered readings", zap.Int("count", len(statuses)), zap.String("publisher", name))
	}
	return nil
}

// PublishReadings fans decoded readings out to every registered sink,
// suppressing readings whose rendered value has not changed since the last
// publish.
func PublishReadings(ctx context.Context, device *model.Device, statuses []model.ReadingStatus) error {
	count := 0
	data := make([]map[string]any, 0)
	for _, status := range statuses {
		val := renderValue(status.Value)
		if !shouldUpdate(device.ID, status.Slug, val) {
			continue
		}
		count++
		data = append(data, map[string]any{
			"value":               val,
			"slug":                status.Slug,
			"timestamp":           time.Now(),
			"identifier":          device.ID,
			"unit_of_measurement": status.Unit.String(),
		})
	}

	for name, pub := range registeredPublishers {
		if err := pub.Write(ctx, data); err != nil {
			zap.L().Error("failed to publish readings", zap.Error(err), zap.String("publisher", name))
			continue
		}
		zap.L().Debug("updated sensors", zap.Int("count", count), zap.String("publisher", name))
	}
	return nil
}

// renderValue flattens a decoded value into the string form the host renders.
// nil maps to the empty string, which the host shows as unknown.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		return val.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

func shouldUpdate(identifier, slug, newValue string) bool {
	key := fmt.Sprintf("%s_%s", identifier, slug)
	oldValue, exists := sensors.Load(key)
	if exists && strings.EqualFold(newValue, oldValue.(string)) {
		return false
	}
	if !exists {
		zap.L().Info("configured sensor", zap.String("device", identifier), zap.String("sensor", slug), zap.String("value", newValue))
	}
	sensors.Store(key, newValue)
	return true
}
