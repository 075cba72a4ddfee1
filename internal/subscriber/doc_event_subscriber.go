package subscriber

import (
	"context"

	"github.com/pathiram/backend/internal/eventbus"
	"k8s.io/klog/v2"
)

// DocEventSubscriber is the notification sink for document events. It only
// logs; failures are reported to the client by the handler that caused them.
type DocEventSubscriber struct{}

func NewDocEventSubscriber() *DocEventSubscriber {
	return &DocEventSubscriber{}
}

func (s *DocEventSubscriber) Register(bus *eventbus.DocEventBus) {
	if bus == nil {
		return
	}
	bus.Subscribe(eventbus.DocEventSaved, s.handleDocSaved)
	bus.Subscribe(eventbus.DocEventUpdated, s.handleDocSaved)
	bus.Subscribe(eventbus.DocEventDeleted, s.handleDocDeleted)
	bus.Subscribe(eventbus.DocEventExported, s.handleDocExported)
	bus.Subscribe(eventbus.DocEventExportFailed, s.handleExportFailed)
}

func (s *DocEventSubscriber) handleDocSaved(ctx context.Context, event eventbus.DocEvent) error {
	klog.V(6).Infof("document %s: id=%d, number=%s, type=%s", event.Type, event.DocID, event.DocNumber, event.DocType)
	return nil
}

func (s *DocEventSubscriber) handleDocDeleted(ctx context.Context, event eventbus.DocEvent) error {
	klog.V(6).Infof("document deleted: id=%d, number=%s", event.DocID, event.DocNumber)
	return nil
}

func (s *DocEventSubscriber) handleDocExported(ctx context.Context, event eventbus.DocEvent) error {
	klog.V(6).Infof("document exported: run=%s, id=%d, type=%s, format=%s, size=%d", event.RunID, event.DocID, event.DocType, event.Format, event.Size)
	return nil
}

func (s *DocEventSubscriber) handleExportFailed(ctx context.Context, event eventbus.DocEvent) error {
	klog.Warningf("document export failed: run=%s, id=%d, type=%s, format=%s: %v", event.RunID, event.DocID, event.DocType, event.Format, event.Err)
	return nil
}
