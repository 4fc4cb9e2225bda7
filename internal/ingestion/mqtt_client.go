package ingestion

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"salestrack/internal/logger"
	pkgmqtt "salestrack/pkg/mqtt"
)

// MQTTIngestionConfig describes the topic and MQTT connection parameters.
type MQTTIngestionConfig struct {
	ClientConfig  *pkgmqtt.Config
	LocationTopic string
	QoS           byte
}

// MQTTIngestionClient wires MQTT position reports into the ping processor.
type MQTTIngestionClient struct {
	cfg       *MQTTIngestionConfig
	client    *pkgmqtt.Client
	processor *Processor

	mu      sync.Mutex
	started bool
}

func NewMQTTIngestionClient(cfg *MQTTIngestionConfig, processor *Processor) (*MQTTIngestionClient, error) {
	if cfg == nil || cfg.ClientConfig == nil {
		return nil, errors.New("mqtt ingestion config is not configured")
	}
	if cfg.LocationTopic == "" {
		return nil, errors.New("location topic is required")
	}
	if processor == nil {
		return nil, errors.New("processor is required")
	}

	return &MQTTIngestionClient{
		cfg:       cfg,
		client:    pkgmqtt.NewClient(cfg.ClientConfig),
		processor: processor,
	}, nil
}

// Start establishes the MQTT connection and subscribes to the location topic.
func (c *MQTTIngestionClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	if err := c.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	if err := c.client.Subscribe(c.cfg.LocationTopic, c.cfg.QoS, c.handleLocationMessage); err != nil {
		c.client.Disconnect()
		return fmt.Errorf("subscribe failed for topic %s: %w", c.cfg.LocationTopic, err)
	}

	logger.Info("Listening for location pings",
		zap.String("topic", c.cfg.LocationTopic),
	)

	c.started = true
	return nil
}

// Stop unsubscribes and disconnects from the broker. Safe to call more than
// once.
func (c *MQTTIngestionClient) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	if err := c.client.Unsubscribe(c.cfg.LocationTopic); err != nil {
		logger.Warn("Failed to unsubscribe from location topic", zap.Error(err))
	}

	c.client.Disconnect()
	c.started = false
}

func (c *MQTTIngestionClient) handleLocationMessage(_ string, payload []byte) {
	msg, err := ParsePingMessage(payload)
	if err != nil {
		logger.Warn("Invalid ping payload", zap.Error(err))
		return
	}

	c.processor.ProcessPing(msg)
}
