package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventJumped, func(e DomainEvent) {
		got <- e
	})

	b.Publish(JumpedEvent{SessionID: "abc", Search: "foo"})

	select {
	case e := <-got:
		ev, ok := e.(JumpedEvent)
		require.True(t, ok, "expected a JumpedEvent")
		assert.Equal(t, "foo", ev.Search)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var calls int32
	unsubscribe := b.Subscribe(EventJumpCancelled, func(DomainEvent) {
		atomic.AddInt32(&calls, 1)
	})
	unsubscribe()

	done := make(chan struct{})
	b.Subscribe(EventJumpCancelled, func(DomainEvent) {
		close(done)
	})

	b.Publish(JumpCancelledEvent{Reason: "esc"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber was not called")
	}
	// give a stray handler goroutine a moment to run, if any was dispatched
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) {
		panic("boom")
	})
	got := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) {
		got <- struct{}{}
	})

	b.Publish(ErrorEvent{Message: "first"})
	b.Publish(ErrorEvent{Message: "second"})

	for i := 0; i < 2; i++ {
		select {
		case <-got:
		case <-time.After(time.Second):
			t.Fatalf("delivery %d missing", i)
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New()
	b.Close()
	assert.NotPanics(t, b.Close)
}
