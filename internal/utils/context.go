// Package utils holds the helpers shared by the HTTP layer, the services and
// the API client: the session cookie and bearer header, JWT signing, bcrypt
// hashing, JSON responses, the resty client and request ids.
package utils

import (
	"context"
)

type ctxKey int

// userIDKey is unexported so only [WithUserID] can mark a context as
// authenticated.
const userIDKey ctxKey = iota

// WithUserID returns a copy of ctx owned by the user with id userID. The auth
// middleware calls it once the session token has been verified.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the id stored by [WithUserID]. ok is false for a
// context of an anonymous request.
func UserIDFromContext(ctx context.Context) (userID int64, ok bool) {
	userID, ok = ctx.Value(userIDKey).(int64)
	return userID, ok
}
