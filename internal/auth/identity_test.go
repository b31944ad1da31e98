package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jnbreid/todo-backend/internal/domain"
)

func TestAuthorize(t *testing.T) {
	owner := &Identity{UserID: 1, Username: "alice"}
	other := &Identity{UserID: 2, Username: "bob"}

	if err := Authorize(owner, 1); err != nil {
		t.Fatalf("owner should be allowed: %v", err)
	}
	if err := Authorize(other, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("non-owner denial must be ErrNotFound, got %v", err)
	}
	if err := Authorize(nil, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("anonymous denial must be ErrNotFound, got %v", err)
	}
}

func TestAuthorizeDenialMatchesMissingResource(t *testing.T) {
	// The denial for a foreign resource and the error for an absent one
	// must be the very same condition, or probing ids leaks existence.
	denied := Authorize(&Identity{UserID: 2}, 1)
	if !errors.Is(denied, domain.ErrNotFound) || denied.Error() != domain.ErrNotFound.Error() {
		t.Fatalf("denial %v must be indistinguishable from %v", denied, domain.ErrNotFound)
	}
}

func TestAuthorizeSelf(t *testing.T) {
	ident := &Identity{UserID: 1, Username: "alice"}

	if err := AuthorizeSelf(ident, "alice"); err != nil {
		t.Fatalf("self should be allowed: %v", err)
	}
	if err := AuthorizeSelf(ident, "bob"); !errors.Is(err, domain.ErrForbiddenSelf) {
		t.Fatalf("expected ErrForbiddenSelf, got %v", err)
	}
	if err := AuthorizeSelf(nil, "alice"); !errors.Is(err, domain.ErrForbiddenSelf) {
		t.Fatalf("expected ErrForbiddenSelf for anonymous, got %v", err)
	}
}

func TestIdentityContextRoundTrip(t *testing.T) {
	if got := IdentityFrom(context.Background()); got != nil {
		t.Fatalf("empty context should yield nil identity, got %+v", got)
	}

	ident := &Identity{UserID: 7, Username: "carol"}
	ctx := WithIdentity(context.Background(), ident)
	if got := IdentityFrom(ctx); got != ident {
		t.Fatalf("expected %+v, got %+v", ident, got)
	}
}
