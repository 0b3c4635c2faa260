// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, sync-root path
// containment, home directory expansion and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActionIDCtxKey is the key used to store the identifier of the pending
// action a remote call belongs to.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithActionID(ctx, action.ID)
var ActionIDCtxKey = contextKey("actionID")

// WithActionID returns a copy of ctx carrying id.
func WithActionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ActionIDCtxKey, id)
}

// GetActionIDFromContext retrieves the pending action identifier from ctx.
//
// Returns the ID and an ok flag:
//   - ok == true: value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
func GetActionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ActionIDCtxKey).(string)
	return id, ok
}
