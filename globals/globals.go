package globals

import (
	"context"
	"os"
)

// JwtSecret signs access tokens. Set JWT_SECRET in production.
var JwtSecret = []byte(envOr("JWT_SECRET", "cloudstage_dev_secret"))

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"
const EmailKey ContextKey = "email"

var Ctx = context.Background()
