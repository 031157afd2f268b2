// Package event provides the shop's in-process event dispatcher.
//
// Checkout fires OrderPlaced after the order log write succeeds; listeners
// (the admin websocket feed, audit logging) react without the checkout path
// knowing about them. Synchronous delivery runs listeners inline; async
// delivery goes through a shared bounded worker pool so a rush of orders
// cannot spawn unbounded goroutines.
package event

import (
	"sync"

	"github.com/lunarosa/shop/pkg/workerpool"
)

// Event names fired by the shop core.
const (
	OrderPlaced     = "order.placed"
	ProductLowStock = "product.low_stock"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}

	poolOnce sync.Once
	pool     *workerpool.Pool
)

func asyncPool() *workerpool.Pool {
	poolOnce.Do(func() {
		pool = workerpool.New(8)
	})
	return pool
}

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	for _, h := range snapshot(event) {
		h(payload)
	}
}

// FireAsync dispatches the event to listeners through the worker pool and
// returns immediately. Delivery is best-effort: if the pool is saturated the
// event is dropped rather than blocking the caller.
func FireAsync(event string, payload interface{}) {
	for _, h := range snapshot(event) {
		h := h
		_ = asyncPool().Submit(func() { h(payload) })
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}

func snapshot(event string) []Handler {
	mu.RLock()
	defer mu.RUnlock()

	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	return hs
}
