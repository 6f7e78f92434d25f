package mq

import (
	"context"
	"encoding/json"
	"log"

	"cloudstage/models"
	"cloudstage/rdx"
)

// Channel carrying entity-change events for downstream indexers.
const channel = "cloudstage-events"

// Emit publishes an entity-change event to Redis. It is a no-op when Redis
// is not configured; callers fire it on a goroutine and never depend on it.
func Emit(ctx context.Context, eventName string, content models.Index) {
	if rdx.Conn == nil {
		return
	}

	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartWorker consumes entity-change events and logs them. A search indexer
// or cache invalidator can hook in here later.
func StartWorker() {
	if rdx.Conn == nil {
		return
	}
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[Worker] Listening for entity-change events...")
	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[Worker] Failed to parse event: %v", err)
			continue
		}
		log.Printf("[Worker] %s %s %s", event.Method, event.EntityType, event.EntityId)
	}
}
