package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReceivesEvent(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(LessonsReloadedEvent, "1.1")

	msg := ListenCmd(ctx, ch)()

	event, ok := msg.(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "1.1", event.Payload)
	require.Equal(t, LessonsReloadedEvent, event.Type)
}

func TestListenCmd_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan Event[string])
	require.Nil(t, ListenCmd(ctx, ch)())
}

func TestListenCmd_ChannelClosed(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)

	require.Nil(t, ListenCmd(context.Background(), ch)())
}

func TestContinuousListener_Listen(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker, ProgressUpdatedEvent)

	broker.Publish(ProgressUpdatedEvent, 1)
	broker.Publish(LogEntryEvent, 99)
	broker.Publish(ProgressUpdatedEvent, 2)

	for _, want := range []int{1, 2} {
		event, ok := listener.Listen()().(Event[int])
		require.True(t, ok)
		require.Equal(t, want, event.Payload)
		require.Equal(t, ProgressUpdatedEvent, event.Type)
	}
}
