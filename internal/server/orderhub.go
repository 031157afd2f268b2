package server

import (
	"github.com/lunarosa/shop/app/models"
	"github.com/lunarosa/shop/pkg/event"
	"github.com/lunarosa/shop/pkg/ws"
)

// feedMessage is the envelope pushed over the admin order feed.
type feedMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// newOrderHub starts a WebSocket hub and bridges domain events into it.
func newOrderHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()

	event.Listen(event.OrderPlaced, func(payload interface{}) {
		if order, ok := payload.(models.Order); ok {
			hub.BroadcastJSON(feedMessage{Event: event.OrderPlaced, Payload: order})
		}
	})
	event.Listen(event.ProductLowStock, func(payload interface{}) {
		if product, ok := payload.(models.Product); ok {
			hub.BroadcastJSON(feedMessage{Event: event.ProductLowStock, Payload: product})
		}
	})

	return hub
}
