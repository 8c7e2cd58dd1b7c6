package utils

import (
	"context"
)

type contextKey string

const (
	UserNameKey  contextKey = "user_name"
	RequestIDKey contextKey = "request_id"
)

// SetUserContext stores the acting user's display name.
func SetUserContext(ctx context.Context, userName string) context.Context {
	return context.WithValue(ctx, UserNameKey, userName)
}

func GetUserNameFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(UserNameKey)
	if val == nil {
		return "", false
	}

	name, ok := val.(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

func SetRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
