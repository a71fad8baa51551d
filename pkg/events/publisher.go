package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	wkafka "github.com/ThreeDotsLabs/watermill-kafka/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/code19m/errx"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
)

const DefaultTopic = "asset-manager-out-topic"

// Config selects the message transport. Without brokers events stay in
// process on a gochannel pub/sub.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// WatermillPublisher implements Publisher on a watermill message.Publisher.
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
}

// NewWatermillPublisher wraps an existing watermill publisher.
func NewWatermillPublisher(publisher message.Publisher, topic string) *WatermillPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &WatermillPublisher{publisher: publisher, topic: topic}
}

// New creates a publisher for cfg. The returned GoChannel is non-nil when
// the in-process transport was chosen, so callers can subscribe to it.
func New(cfg Config, log logger.Logger) (*WatermillPublisher, *gochannel.GoChannel, error) {
	adapter := newLoggerAdapter(log.Named("events"))

	if len(cfg.Brokers) == 0 {
		pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, adapter)
		return NewWatermillPublisher(pubSub, cfg.Topic), pubSub, nil
	}

	saramaCfg := wkafka.DefaultSaramaSyncPublisherConfig()
	if cfg.ClientID != "" {
		saramaCfg.ClientID = cfg.ClientID
	}

	marshaler := wkafka.NewWithPartitioningMarshaler(func(topic string, msg *message.Message) (string, error) {
		key := msg.Metadata.Get("partition_key")
		if key == "" {
			return "", errx.New("partition key is empty")
		}
		return key, nil
	})

	publisher, err := wkafka.NewPublisher(cfg.Brokers, marshaler, saramaCfg, adapter)
	if err != nil {
		return nil, nil, errx.Wrap(err)
	}
	return NewWatermillPublisher(publisher, cfg.Topic), nil, nil
}

// Topic returns the topic events are published on.
func (p *WatermillPublisher) Topic() string {
	return p.topic
}

// Publish implements Publisher.
func (p *WatermillPublisher) Publish(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = watermill.NewUUID()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errx.Wrap(err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.Metadata.Set("type_name", event.TypeName)

	key := event.ElementGUID
	if key == "" {
		key = event.RelationshipGUID
	}
	msg.Metadata.Set("partition_key", key)
	msg.SetContext(ctx)

	return errx.Wrap(p.publisher.Publish(p.topic, msg))
}

// Close implements Publisher.
func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}
