package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
)

func TestWatermillPublisher_GoChannel(t *testing.T) {
	publisher, pubSub, err := New(Config{Topic: "exchange-test"}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, pubSub)
	defer func() { _ = publisher.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, publisher.Topic())
	require.NoError(t, err)

	err = publisher.Publish(ctx, Event{
		Type:          ElementCreated,
		TypeName:      "Glossary",
		ElementGUID:   "glossary-1",
		QualifiedName: "Glossary:Sales",
		UserID:        "erinoverview",
		Version:       1,
	})
	require.NoError(t, err)

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, string(ElementCreated), msg.Metadata.Get("event_type"))
		assert.Equal(t, "glossary-1", msg.Metadata.Get("partition_key"))

		var event Event
		require.NoError(t, json.Unmarshal(msg.Payload, &event))
		assert.Equal(t, "Glossary:Sales", event.QualifiedName)
		assert.NotEmpty(t, event.ID)
	case <-ctx.Done():
		t.Fatal("event was not delivered")
	}
}

func TestWatermillPublisher_DefaultTopic(t *testing.T) {
	p := NewWatermillPublisher(nil, "")
	assert.Equal(t, DefaultTopic, p.Topic())
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.Publish(context.Background(), Event{Type: ElementDeleted}))
	assert.NoError(t, Discard.Close())
}
