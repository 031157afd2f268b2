package event_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lunarosa/shop/pkg/event"
)

func TestFireSynchronous(t *testing.T) {
	defer event.Flush()

	var got []interface{}
	event.Listen(event.OrderPlaced, func(p interface{}) { got = append(got, p) })
	event.Listen(event.OrderPlaced, func(p interface{}) { got = append(got, p) })

	event.Fire(event.OrderPlaced, "order-1")

	assert.Equal(t, []interface{}{"order-1", "order-1"}, got)
}

func TestFireUnknownEventIsNoop(t *testing.T) {
	defer event.Flush()
	event.Fire("never.registered", nil)
}

func TestFireAsync(t *testing.T) {
	defer event.Flush()

	var count atomic.Int32
	var wg sync.WaitGroup
	wg.Add(3)

	event.Listen(event.ProductLowStock, func(interface{}) {
		count.Add(1)
		wg.Done()
	})

	for i := 0; i < 3; i++ {
		event.FireAsync(event.ProductLowStock, i)
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async listeners did not run")
	}
	assert.Equal(t, int32(3), count.Load())
}
