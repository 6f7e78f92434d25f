package rdx

import (
	"log"
	"os"

	"cloudstage/globals"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared Redis client. It stays nil when REDIS_ADDR is unset,
// and callers must treat that as "messaging disabled".
var Conn *redis.Client

// Init connects to Redis when configured. Returns whether messaging is on.
func Init() bool {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set; entity-change events disabled")
		return false
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis ping failed (%v); entity-change events disabled", err)
		Conn = nil
		return false
	}
	return true
}
