package handlers

import (
	"context"
	"log"

	"github.com/thais-adelino/projeto-skin-track/internal/quiz"
	"github.com/thais-adelino/projeto-skin-track/internal/services"
	"github.com/thais-adelino/projeto-skin-track/internal/ws"
)

// BroadcastSink persists finished sessions through the user service and then
// pushes the fresh statistics snapshot to websocket watchers, so in-process
// saves reach the live feed the same way HTTP saves do.
type BroadcastSink struct {
	service *services.UserService
	hub     *ws.Hub
}

func NewBroadcastSink(service *services.UserService, hub *ws.Hub) *BroadcastSink {
	return &BroadcastSink{service: service, hub: hub}
}

func (b *BroadcastSink) SaveResult(ctx context.Context, name string, analysis quiz.Analysis) error {
	if err := b.service.SaveResult(ctx, name, analysis); err != nil {
		return err
	}
	broadcastStatistics(b.service, b.hub)
	return nil
}

// broadcastStatistics pushes the fresh breakdown to websocket watchers after a
// new result lands. Failures only affect the live feed, never the save.
func broadcastStatistics(service *services.UserService, hub *ws.Hub) {
	if hub == nil {
		return
	}
	stats, err := service.GetStatistics()
	if err != nil {
		log.Printf("failed to fetch statistics for broadcast: %v", err)
		return
	}
	hub.Broadcast(ws.WSMessage{Type: "statistics", Data: stats})
}
