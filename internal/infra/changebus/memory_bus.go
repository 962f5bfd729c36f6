// Package changebus fans out change signals to live feed subscribers.
package changebus

import (
	"context"
	"sync"

	"ecospot/internal/domain/service"
)

// MemoryBus delivers signals within one process.
type MemoryBus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]chan struct{}
	closed bool
}

// NewMemoryBus creates an in-process bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[string]map[uint64]chan struct{})}
}

// Publish signals every subscriber of topic. A subscriber with a pending signal is skipped,
// so bursts collapse into one reload.
func (b *MemoryBus) Publish(_ context.Context, topic string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[topic] {
		signal(ch)
	}

	return nil
}

// Subscribe registers a subscriber. The channel closes after cancel, ctx end or Close.
func (b *MemoryBus) Subscribe(ctx context.Context, topic string) (<-chan struct{}, func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan struct{}, 1)
	if b.closed {
		close(ch)

		return ch, func() {}, nil
	}

	b.nextID++
	id := b.nextID
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uint64]chan struct{})
	}
	b.subs[topic][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() { b.remove(topic, id) })
	}
	stop := context.AfterFunc(ctx, cancel)

	return ch, func() {
		stop()
		cancel()
	}, nil
}

func (b *MemoryBus) remove(topic string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subs[topic][id]
	if !ok {
		return
	}
	delete(b.subs[topic], id)
	if len(b.subs[topic]) == 0 {
		delete(b.subs, topic)
	}
	close(ch)
}

// Close ends every subscription.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subs := range b.subs {
		for _, ch := range subs {
			close(ch)
		}
		delete(b.subs, topic)
	}
	b.closed = true

	return nil
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

var _ service.ChangeBus = (*MemoryBus)(nil)
