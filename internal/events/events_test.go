package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler counts and remembers the events it receives.
type recordingHandler struct {
	mu      sync.Mutex
	events  []*Event
	failure error
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.failure
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.events)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewEvent(t *testing.T) {
	type payload struct {
		Number int    `json:"number"`
		Name   string `json:"name"`
	}

	event, err := NewEvent(TypeReadingCast, payload{Number: 12, Name: "Застой"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeReadingCast, event.Type)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)
	assert.JSONEq(t, `{"number":12,"name":"Застой"}`, string(event.Payload))

	var decoded payload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, 12, decoded.Number)
}

func TestNewEvent_UnserializablePayload(t *testing.T) {
	_, err := NewEvent(TypeReadingCast, make(chan int))
	assert.Error(t, err)
}

func TestInMemoryEventEmitter(t *testing.T) {
	t.Run("no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(discardLogger())
		event, err := NewEvent(TypeReadingCast, map[string]string{"k": "v"})
		require.NoError(t, err)

		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
	})

	t.Run("delivers by type", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(discardLogger())
		readings := &recordingHandler{}
		other := &recordingHandler{}
		all := &recordingHandler{}
		emitter.Subscribe(TypeReadingCast, readings)
		emitter.Subscribe("reading.deleted", other)
		emitter.Subscribe(AllTypes, all)

		event, err := NewEvent(TypeReadingCast, nil)
		require.NoError(t, err)
		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		assert.Equal(t, 1, readings.count())
		assert.Equal(t, 0, other.count())
		assert.Equal(t, 1, all.count())
		assert.Same(t, event, readings.events[0])
	})

	t.Run("failing handler does not stop delivery", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(discardLogger())
		failing := &recordingHandler{failure: errors.New("journal unavailable")}
		ok := &recordingHandler{}
		emitter.Subscribe(TypeReadingCast, failing)
		emitter.Subscribe(TypeReadingCast, ok)

		event, err := NewEvent(TypeReadingCast, nil)
		require.NoError(t, err)

		err = emitter.EmitEvent(context.Background(), event)
		assert.EqualError(t, err, "journal unavailable")
		assert.Equal(t, 1, ok.count())
	})

	t.Run("handler func adapter", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		var got string
		emitter.Subscribe(AllTypes, HandlerFunc(func(ctx context.Context, e *Event) error {
			got = e.Type
			return nil
		}))

		event, err := NewEvent(TypeReadingCast, nil)
		require.NoError(t, err)
		require.NoError(t, emitter.EmitEvent(context.Background(), event))
		assert.Equal(t, TypeReadingCast, got)
	})

	t.Run("concurrent emit and subscribe", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(discardLogger())
		h := &recordingHandler{}
		emitter.Subscribe(TypeReadingCast, h)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				event, _ := NewEvent(TypeReadingCast, nil)
				_ = emitter.EmitEvent(context.Background(), event)
			}()
			go func() {
				defer wg.Done()
				emitter.Subscribe("other", &recordingHandler{})
			}()
		}
		wg.Wait()
		assert.Equal(t, 20, h.count())
	})
}
