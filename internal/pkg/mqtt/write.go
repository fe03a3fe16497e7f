package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anicoll/openwb-integration/internal/pkg/model"
)

func (s *Service) Write(ctx context.Context, data []map[string]any) error {
	for _, d := range data {
		if err := s.PublishData(d); err != nil {
			return err
		}
	}
	return nil
}

// RegisterReading publishes the retained Home Assistant discovery config for
// one reading. Repeated registrations for the same reading are no-ops.
func (s *Service) RegisterReading(device *model.Device, status model.ReadingStatus) error {
	uid := fmt.Sprintf("%s_%s", device.ID, status.Slug)
	if _, exists := s.configured[uid]; exists {
		return nil
	}

	msg := model.DiscoveryMessage{
		Tilda:             fmt.Sprintf("openwb/%s/%s", device.ID, status.Slug),
		Name:              status.Name,
		ID:                strings.ToLower(uid),
		StateTopic:        "~/state",
		AvailabilityTopic: s.availabilityTopic(),
		UnitOfMeasurement: status.Unit.String(),
		DeviceClass:       status.DeviceClass.String(),
		StateClass:        status.StateClass.String(),
		Device: model.DiscoveryDevice{
			Name:             device.Name,
			Identifiers:      []string{device.ID},
			Manufacturer:     "openWB",
			ConfigurationURL: device.ConfigurationURL,
		},
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	topic := fmt.Sprintf("homeassistant/sensor/%s/config", uid)
	token := s.client.Publish(topic, 1, true, payload)
	if err := token.Error(); err != nil {
		return err
	}
	if token.WaitTimeout(time.Second * 5) {
		s.configured[uid] = struct{}{}
	}
	return nil
}

func (s *Service) PublishData(data map[string]any) error {
	value, ok := data["value"].(string)
	if !ok {
		return fmt.Errorf("non-string value for %v/%v", data["identifier"], data["slug"])
	}
	topic := fmt.Sprintf("openwb/%s/%s/state", data["identifier"], data["slug"])

	token := s.client.Publish(topic, 0, true, []byte(value))
	if token.WaitTimeout(time.Second * 10) {
		return nil
	}
	return token.Error()
}
