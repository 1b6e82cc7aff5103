package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/socialdev/internal/events"
)

func TestNotificationService_LogsAndForwards(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	var forwarded []events.Event
	forward := func(_ context.Context, e events.Event) error {
		forwarded = append(forwarded, e)
		return nil
	}

	NewNotificationService(dispatcher, zap.New(core), forward).RegisterHandlers()

	for _, eventType := range events.AllEventTypes {
		require.NoError(t, dispatcher.Publish(context.Background(), events.Event{ID: "e", Type: eventType}))
	}

	assert.Len(t, forwarded, len(events.AllEventTypes))
	assert.Equal(t, len(events.AllEventTypes), logs.FilterMessage("post_created").Len()+
		logs.FilterMessage("post_updated").Len()+
		logs.FilterMessage("post_deleted").Len()+
		logs.FilterMessage("user_logged_in").Len())
}

func TestNotificationService_ForwardFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	sinkErr := errors.New("redis down")

	NewNotificationService(dispatcher, zap.New(core), func(context.Context, events.Event) error {
		return sinkErr
	}).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventPostDeleted})
	assert.ErrorIs(t, err, sinkErr)
	assert.Equal(t, 1, logs.FilterMessage("event forward failed").Len())
}

func TestNotificationService_WithoutForwarder(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, nil, nil).RegisterHandlers()
	assert.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventPostCreated}))
}
