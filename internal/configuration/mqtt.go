package configuration

const (
	DefaultMqttTopic    = "fancontrol/state"
	DefaultMqttClientId = "fancontrol"
)

// MqttConfig configures publishing of the controller state after every speed change
type MqttConfig struct {
	Enabled bool `json:"enabled"`
	// Broker address, e.g. "tcp://localhost:1883"
	Broker   string `json:"broker"`
	Topic    string `json:"topic"`
	ClientId string `json:"clientId"`
}
