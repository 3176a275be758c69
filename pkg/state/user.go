package state

import (
	"context"
)

const (
	CurrentUserId    = "CurrentUserId"
	CurrentUserEmail = "CurrentUserEmail"
	CurrentUserIP    = "CurrentIP"
)

// CurrentUser returns the current user's ID as uint from the context.
func CurrentUser(ctx context.Context) uint {
	value := ctx.Value(CurrentUserId)
	if value == nil {
		return 0
	}

	userID, ok := value.(uint)
	if !ok {
		return 0
	}

	return userID
}

// CurrentEmail returns the authenticated user's email, or "" when anonymous.
func CurrentEmail(ctx context.Context) string {
	value := ctx.Value(CurrentUserEmail)
	if value == nil {
		return ""
	}

	email, ok := value.(string)
	if !ok {
		return ""
	}

	return email
}

func SetCurrentUser(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, CurrentUserId, userID)
}
