package service

import "context"

// ChangeBus fans out "something changed" signals for live feeds.
// Signals carry no payload. Subscribers reload state on receipt.
type ChangeBus interface {
	// Publish signals a change on topic.
	Publish(ctx context.Context, topic string) error

	// Subscribe returns a channel that receives a value after changes on topic.
	// Signals may be coalesced. The channel is closed after cancel or bus shutdown.
	Subscribe(ctx context.Context, topic string) (signals <-chan struct{}, cancel func(), err error)
}
