package host

import "sync"

// Bus delivers events of type T to subscribed listeners.
type Bus[T any] struct {
	mu        sync.Mutex
	listeners map[int]func(T)
	order     []int
	nextID    int
}

// NewBus creates an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{
		listeners: make(map[int]func(T)),
	}
}

// Subscribe registers fn and returns a function that
// removes it. Calling the returned function more than
// once is harmless.
func (b *Bus[T]) Subscribe(fn func(T)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.order = append(b.order, id)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if _, ok := b.listeners[id]; !ok {
			return
		}

		delete(b.listeners, id)

		for i, oid := range b.order {
			if oid == id {
				b.order = append(b.order[:i], b.order[i+1:]...)

				break
			}
		}
	}
}

// Publish calls every listener synchronously in
// subscription order. Listeners may subscribe or
// unsubscribe while being called; the change applies to
// the next Publish.
func (b *Bus[T]) Publish(ev T) {
	b.mu.Lock()
	snapshot := make([]func(T), 0, len(b.order))

	for _, id := range b.order {
		snapshot = append(snapshot, b.listeners[id])
	}
	b.mu.Unlock()

	for _, fn := range snapshot {
		fn(ev)
	}
}

// Count returns the number of listeners.
func (b *Bus[T]) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.listeners)
}
