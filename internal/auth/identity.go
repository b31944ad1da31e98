// Package auth holds the security core: password hashing, the identity
// token codec, and the ownership checks every handler runs before touching
// an owned resource. Identity is always an explicit value threaded through
// the request context, never ambient global state.
package auth

import (
	"context"

	"github.com/jnbreid/todo-backend/internal/domain"
)

// Identity is the resolved caller, produced once per request by the
// authentication middleware and immutable afterwards. A nil *Identity is
// an anonymous caller.
type Identity struct {
	UserID   int64
	Username string
}

type ctxKey struct{}

// WithIdentity attaches ident to ctx.
func WithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, ident)
}

// IdentityFrom returns the identity attached to ctx, or nil for an
// anonymous request.
func IdentityFrom(ctx context.Context) *Identity {
	ident, _ := ctx.Value(ctxKey{}).(*Identity)
	return ident
}

// Authorize allows access to a resource owned by ownerID only when ident is
// present and matches. The denial is domain.ErrNotFound, the same sentinel
// a missing resource produces, so non-owners cannot distinguish "exists but
// not yours" from "does not exist".
func Authorize(ident *Identity, ownerID int64) error {
	if ident == nil || ident.UserID != ownerID {
		return domain.ErrNotFound
	}
	return nil
}

// AuthorizeSelf allows an account operation only on the caller's own
// account, compared by username. Account self-deletion deliberately does
// not hide the target's existence the way task denial does: the caller has
// already proven the credentials for it.
func AuthorizeSelf(ident *Identity, username string) error {
	if ident == nil || ident.Username != username {
		return domain.ErrForbiddenSelf
	}
	return nil
}
