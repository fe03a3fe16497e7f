package mqtt

import (
	"errors"
	"fmt"
	"time"

	paho_mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/anicoll/openwb-integration/internal/pkg/model"
)

type Service struct {
	client     paho_mqtt.Client
	device     *model.Device
	configured map[string]struct{}
}

func New(client paho_mqtt.Client, device *model.Device) *Service {
	return &Service{
		client:     client,
		device:     device,
		configured: make(map[string]struct{}),
	}
}

func (s *Service) Connect() error {
	token := s.client.Connect()
	if !token.WaitTimeout(time.Second * 5) {
		return errors.New("unable to connect in time")
	}
	if err := token.Error(); err != nil {
		return err
	}
	return s.SetAvailability(true)
}

// SetAvailability publishes the retained availability state the discovery
// configs point at. It is flipped to offline while polled data is stale.
func (s *Service) SetAvailability(online bool) error {
	state := "offline"
	if online {
		state = "online"
	}
	token := s.client.Publish(s.availabilityTopic(), 1, true, state)
	if !token.WaitTimeout(time.Second * 5) {
		return nil
	}
	return token.Error()
}

func (s *Service) Disconnect() {
	_ = s.SetAvailability(false)
	s.client.Disconnect(250)
}

func (s *Service) availabilityTopic() string {
	return fmt.Sprintf("openwb/%s/availability", s.device.ID)
}
