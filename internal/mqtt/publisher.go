package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/simplefan/fancontrol/internal/configuration"
	"github.com/simplefan/fancontrol/internal/ui"
)

const (
	connectTimeout = 3 * time.Second
	publishTimeout = 2 * time.Second
	disconnectWait = 250 // milliseconds
	qos            = 0
)

// State is published to the configured topic after every speed change
type State struct {
	Fan         string  `json:"fan"`
	Temperature float64 `json:"temperature"`
	Speed       int     `json:"speed"`
	Timestamp   int64   `json:"timestamp"`
}

// Publisher forwards speed changes of a controller to an mqtt broker
type Publisher struct {
	client paho.Client
	topic  string
	fanId  string
	now    func() time.Time
}

func createOptions(config configuration.MqttConfig) *paho.ClientOptions {
	opts := paho.NewClientOptions()
	opts.AddBroker(brokerUrl(config.Broker))
	opts.SetClientID(config.ClientId)
	opts.SetKeepAlive(30 * time.Second)
	opts.SetPingTimeout(5 * time.Second)
	opts.SetAutoReconnect(true)
	opts.SetOnConnectHandler(func(c paho.Client) {
		ui.Info("Connected to mqtt broker %s", config.Broker)
	})
	opts.SetConnectionLostHandler(func(c paho.Client, err error) {
		ui.Warning("Lost connection to mqtt broker %s: %v", config.Broker, err)
	})
	return opts
}

// brokerUrl defaults to plain tcp when no scheme is given
func brokerUrl(broker string) string {
	if strings.Contains(broker, "://") {
		return broker
	}
	return fmt.Sprintf("tcp://%s", broker)
}

func NewPublisher(config configuration.MqttConfig, fanId string) *Publisher {
	client := paho.NewClient(createOptions(config))
	return newPublisher(client, config.Topic, fanId)
}

func newPublisher(client paho.Client, topic string, fanId string) *Publisher {
	return &Publisher{
		client: client,
		topic:  topic,
		fanId:  fanId,
		now:    time.Now,
	}
}

// Connect blocks until the broker accepted the connection or ctx is done
func (p *Publisher) Connect(ctx context.Context) error {
	token := p.client.Connect()
	for !token.WaitTimeout(connectTimeout) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt: unable to connect: %w", err)
	}
	return nil
}

func (p *Publisher) Close() {
	if p.client.IsConnected() {
		p.client.Disconnect(disconnectWait)
	}
}

func (p *Publisher) Publish(state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	token := p.client.Publish(p.topic, qos, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt: timeout publishing to %s", p.topic)
	}
	return token.Error()
}

// OnSpeedChanged publishes the new state, failures are logged and never stop the control loop
func (p *Publisher) OnSpeedChanged(temperature float64, speed int) {
	state := State{
		Fan:         p.fanId,
		Temperature: temperature,
		Speed:       speed,
		Timestamp:   p.now().Unix(),
	}
	if err := p.Publish(state); err != nil {
		ui.Warning("Failed to publish state: %v", err)
	}
}
