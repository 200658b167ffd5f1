package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/group-allocator/internal/config"
	"github.com/spec-kit/group-allocator/internal/events"
)

type recordingPublisher struct {
	channel  string
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	p.channel = channel
	p.payloads = append(p.payloads, payload)
	return p.err
}

func TestNotificationService_PublishesEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	publisher := &recordingPublisher{}
	svc := NewNotificationService(dispatcher, publisher, zap.NewNop(), config.NotificationConfig{Channel: "roster"})
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{ID: "e1", Type: events.EventGroupsShuffled})
	require.NoError(t, err)

	require.Len(t, publisher.payloads, 1)
	assert.Equal(t, "roster", publisher.channel)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &decoded))
	assert.Equal(t, "groups_shuffled", decoded["type"])
	assert.Equal(t, "e1", decoded["id"])
}

func TestNotificationService_PublishFailure(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	boom := errors.New("redis down")
	svc := NewNotificationService(dispatcher, &recordingPublisher{err: boom}, zap.NewNop(), config.NotificationConfig{Channel: "roster"})
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventPlayerAdded})
	assert.ErrorIs(t, err, boom)
}

func TestNotificationService_NoPublisher(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(dispatcher, nil, zap.NewNop(), config.NotificationConfig{Channel: "roster"})
	svc.RegisterHandlers()

	assert.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventPlayerRemoved}))
}
