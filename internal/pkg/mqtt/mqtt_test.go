package mqtt

import (
	"encoding/json"
	"testing"
	"time"

	paho_mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anicoll/openwb-integration/internal/pkg/model"
)

type fakeToken struct{}

func (fakeToken) Wait() bool                     { return true }
func (fakeToken) WaitTimeout(time.Duration) bool { return true }
func (fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (fakeToken) Error() error { return nil }

type publishCall struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type fakeClient struct {
	paho_mqtt.Client
	published []publishCall
}

func (c *fakeClient) Connect() paho_mqtt.Token { return fakeToken{} }
func (c *fakeClient) Disconnect(uint)          {}
func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload any) paho_mqtt.Token {
	var data []byte
	switch p := payload.(type) {
	case []byte:
		data = p
	case string:
		data = []byte(p)
	}
	c.published = append(c.published, publishCall{topic: topic, qos: qos, retained: retained, payload: data})
	return fakeToken{}
}

func testService() (*Service, *fakeClient) {
	client := &fakeClient{}
	device := &model.Device{
		ID:               "openwb_wb_local",
		Name:             "openWB wb.local",
		ConfigurationURL: "http://wb.local",
	}
	return New(client, device), client
}

func TestRegisterReadingDiscoveryPayload(t *testing.T) {
	t.Parallel()
	svc, client := testService()

	status := model.ReadingStatus{
		Key:         "wallboxtemp",
		Slug:        "wallboxtemp",
		Name:        "Wallbox temperature",
		Unit:        model.UnitCelsius,
		DeviceClass: model.DeviceClassTemperature,
		StateClass:  model.StateClassMeasurement,
	}
	require.NoError(t, svc.RegisterReading(svc.device, status))
	require.Len(t, client.published, 1)

	call := client.published[0]
	assert.Equal(t, "homeassistant/sensor/openwb_wb_local_wallboxtemp/config", call.topic)
	assert.Equal(t, byte(1), call.qos)
	assert.True(t, call.retained, "discovery configs are retained")

	var msg model.DiscoveryMessage
	require.NoError(t, json.Unmarshal(call.payload, &msg))
	assert.Equal(t, "openwb/openwb_wb_local/wallboxtemp", msg.Tilda)
	assert.Equal(t, "~/state", msg.StateTopic)
	assert.Equal(t, "openwb/openwb_wb_local/availability", msg.AvailabilityTopic)
	assert.Equal(t, "openwb_wb_local_wallboxtemp", msg.ID)
	assert.Equal(t, "Wallbox temperature", msg.Name)
	assert.Equal(t, "°C", msg.UnitOfMeasurement)
	assert.Equal(t, "temperature", msg.DeviceClass)
	assert.Equal(t, "measurement", msg.StateClass)
	assert.Equal(t, "openWB", msg.Device.Manufacturer)
	assert.Equal(t, []string{"openwb_wb_local"}, msg.Device.Identifiers)
	assert.Equal(t, "http://wb.local", msg.Device.ConfigurationURL)
}

func TestRegisterReadingDedupesRepeatedRegistrations(t *testing.T) {
	t.Parallel()
	svc, client := testService()

	status := model.ReadingStatus{Key: "pvw", Slug: "pvw", Name: "PV power", Unit: model.UnitWatt}
	require.NoError(t, svc.RegisterReading(svc.device, status))
	require.NoError(t, svc.RegisterReading(svc.device, status))

	assert.Len(t, client.published, 1, "the same reading is only announced once")
}

func TestSetAvailability(t *testing.T) {
	t.Parallel()
	svc, client := testService()

	require.NoError(t, svc.SetAvailability(true))
	require.NoError(t, svc.SetAvailability(false))
	require.Len(t, client.published, 2)

	for _, call := range client.published {
		assert.Equal(t, "openwb/openwb_wb_local/availability", call.topic)
		assert.True(t, call.retained)
	}
	assert.Equal(t, []byte("online"), client.published[0].payload)
	assert.Equal(t, []byte("offline"), client.published[1].payload)
}

func TestPublishDataWritesStateTopic(t *testing.T) {
	t.Parallel()
	svc, client := testService()

	err := svc.PublishData(map[string]any{
		"identifier": "openwb_wb_local",
		"slug":       "pvw",
		"value":      "-1500",
	})
	require.NoError(t, err)
	require.Len(t, client.published, 1)
	assert.Equal(t, "openwb/openwb_wb_local/pvw/state", client.published[0].topic)
	assert.Equal(t, []byte("-1500"), client.published[0].payload)
}

func TestPublishDataRejectsNonStringValue(t *testing.T) {
	t.Parallel()
	svc, client := testService()

	err := svc.PublishData(map[string]any{
		"identifier": "openwb_wb_local",
		"slug":       "pvw",
		"value":      -1500.0,
	})
	require.Error(t, err)
	assert.Empty(t, client.published)
}
