// Package sink publishes sampled animation frames.
package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Frame is every property value of a target at one sample time.
type Frame struct {
	Time       uint32         `json:"time"`
	Properties map[string]any `json:"properties"`
}

// Sink receives frames in time order.
type Sink interface {
	Write(f Frame) error
	Close() error
}

type writerSink struct {
	enc *json.Encoder
	c   io.Closer
}

// NewWriter returns a Sink writing one JSON object per line to w. Close
// closes w when it is an io.Closer.
func NewWriter(w io.Writer) Sink {
	s := &writerSink{enc: json.NewEncoder(w)}
	if c, ok := w.(io.Closer); ok {
		s.c = c
	}
	return s
}

func (s *writerSink) Write(f Frame) error {
	if err := s.enc.Encode(f); err != nil {
		return fmt.Errorf("write frame %d: %w", f.Time, err)
	}
	return nil
}

func (s *writerSink) Close() error {
	if s.c == nil {
		return nil
	}
	return s.c.Close()
}

// MQTTConfig configures the broker connection.
type MQTTConfig struct {
	URL      string `yaml:"url"`
	ClientID string `yaml:"clientId"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Topic    string `yaml:"topic"`
	QoS      byte   `yaml:"qos"`
}

// ErrNoTopic is returned when an MQTT sink has nowhere to publish.
var ErrNoTopic = errors.New("sink: mqtt topic required")

// NewMQTT connects to the broker in cfg and returns a Sink publishing each
// frame as JSON to cfg.Topic.
func NewMQTT(cfg MQTTConfig) (Sink, error) {
	if cfg.Topic == "" {
		return nil, ErrNoTopic
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "keyframedump"
	}
	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(clientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	client := mqtt.NewClient(options)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", cfg.URL, token.Error())
	}
	return NewMQTTClient(client, cfg.Topic, cfg.QoS)
}

// NewMQTTClient wraps an already connected client.
func NewMQTTClient(client mqtt.Client, topic string, qos byte) (Sink, error) {
	if topic == "" {
		return nil, ErrNoTopic
	}
	if qos > 2 {
		return nil, fmt.Errorf("sink: mqtt qos %d out of range", qos)
	}
	return &mqttSink{client: client, topic: topic, qos: qos}, nil
}

type mqttSink struct {
	client mqtt.Client
	topic  string
	qos    byte
}

func (s *mqttSink) Write(f Frame) error {
	b, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", f.Time, err)
	}
	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish frame %d: %w", f.Time, err)
	}
	return nil
}

func (s *mqttSink) Close() error {
	s.client.Disconnect(250)
	return nil
}
