package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pi-chain/piswap/x/dex/types"
)

// TestMemorySink_RecordsInOrder tests basic event recording
func TestMemorySink_RecordsInOrder(t *testing.T) {
	sink := NewMemorySink(0)
	ctx := context.Background()

	require.NoError(t, sink.Publish(ctx, types.NewEvent("first")))
	require.NoError(t, sink.Publish(ctx, types.NewEvent("second")))

	events := sink.Events()
	require.Len(t, events, 2)
	require.Equal(t, "first", events[0].Type)
	require.Equal(t, "second", events[1].Type)

	sink.Reset()
	require.Empty(t, sink.Events())
}

// TestMemorySink_Limit tests ring-style truncation at the limit
func TestMemorySink_Limit(t *testing.T) {
	sink := NewMemorySink(2)
	ctx := context.Background()

	require.NoError(t, sink.Publish(ctx, types.NewEvent("first")))
	require.NoError(t, sink.Publish(ctx, types.NewEvent("second")))
	require.NoError(t, sink.Publish(ctx, types.NewEvent("third")))

	events := sink.Events()
	require.Len(t, events, 2)
	require.Equal(t, "second", events[0].Type)
	require.Equal(t, "third", events[1].Type)
}

type failingSink struct{ err error }

func (s failingSink) Publish(context.Context, types.Event) error { return s.err }

// TestMultiSink tests fan-out and first-error reporting
func TestMultiSink(t *testing.T) {
	recorder := NewMemorySink(0)
	boom := errors.New("boom")
	multi := MultiSink{failingSink{err: boom}, recorder}

	err := multi.Publish(context.Background(), types.NewEvent("swap"))
	require.ErrorIs(t, err, boom)

	// The failing sink does not stop delivery to the others.
	require.Len(t, recorder.Events(), 1)
}
