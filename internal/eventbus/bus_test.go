package eventbus

import (
	"context"
	"errors"
	"testing"
)

func TestBusPublishBroadcast(t *testing.T) {
	bus := NewDocEventBus()
	calledA := false
	calledB := false

	bus.Subscribe(DocEventSaved, func(ctx context.Context, event DocEvent) error {
		calledA = true
		return nil
	})
	bus.Subscribe(DocEventSaved, func(ctx context.Context, event DocEvent) error {
		calledB = event.DocNumber == "MLR-2025-00042"
		return nil
	})

	if err := bus.Publish(context.Background(), DocEventSaved, DocEvent{Type: DocEventSaved, DocNumber: "MLR-2025-00042"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !calledA || !calledB {
		t.Fatalf("expected handlers to be called")
	}
}

func TestBusOnlyMatchingType(t *testing.T) {
	bus := NewDocEventBus()
	called := false
	bus.Subscribe(DocEventDeleted, func(ctx context.Context, event DocEvent) error {
		called = true
		return nil
	})

	if err := bus.Publish(context.Background(), DocEventSaved, DocEvent{Type: DocEventSaved}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatalf("handler of another event type was called")
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewDocEventBus()
	called := false
	unsubscribe := bus.Subscribe(DocEventSaved, func(ctx context.Context, event DocEvent) error {
		called = true
		return nil
	})
	unsubscribe()

	if err := bus.Publish(context.Background(), DocEventSaved, DocEvent{Type: DocEventSaved}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatalf("expected handler to be unsubscribed")
	}
}

func TestBusPublishJoinErrors(t *testing.T) {
	bus := NewDocEventBus()
	bus.Subscribe(DocEventExported, func(ctx context.Context, event DocEvent) error {
		return errors.New("err-a")
	})
	bus.Subscribe(DocEventExported, func(ctx context.Context, event DocEvent) error {
		return errors.New("err-b")
	})

	if err := bus.Publish(context.Background(), DocEventExported, DocEvent{Type: DocEventExported}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNilBusPublish(t *testing.T) {
	var bus *DocEventBus
	if err := bus.Publish(context.Background(), DocEventSaved, DocEvent{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
