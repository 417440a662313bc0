package http

import (
	"context"

	"github.com/maxgala/aspire-provisioner/internal/domain"
	jwtinfra "github.com/maxgala/aspire-provisioner/internal/infrastructure/jwt"
)

// Provisioner is the minimal interface the router requires from the
// provisioning service.
type Provisioner interface {
	Provision(ctx context.Context, ev *domain.ConfirmationEvent) (*domain.ConfirmationEvent, error)
}

// ProvisionReader is the minimal interface the router requires from the
// audit store.
type ProvisionReader interface {
	ListByUsername(ctx context.Context, username string) ([]domain.ProvisionRecord, error)
}

// UserReader is the minimal interface the router requires from the user store.
type UserReader interface {
	Get(ctx context.Context, username string) (*domain.UserRecord, error)
}

// Deps holds all dependencies for the router.
type Deps struct {
	Provisioner Provisioner
	Provisions  ProvisionReader
	Users       UserReader
	JWTProvider *jwtinfra.Provider
}
