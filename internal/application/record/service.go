package record

import (
	"context"
	"time"

	"github.com/maxgala/aspire-provisioner/internal/domain"
	"github.com/maxgala/aspire-provisioner/internal/pkg/id"
)

// Service creates the local user record for a confirmed account. Exactly one
// insert per confirmation event; the workflow owns construction, the store
// owns storage.
type Service interface {
	Sync(ctx context.Context, p domain.Profile, accountType domain.AccountType, status domain.UserStatus) error
}

type userStore interface {
	Put(ctx context.Context, u *domain.UserRecord) error
}

type service struct {
	repo userStore
}

func NewService(repo userStore) Service {
	return &service{repo: repo}
}

func (s *service) Sync(ctx context.Context, p domain.Profile, accountType domain.AccountType, status domain.UserStatus) error {
	u := &domain.UserRecord{
		RecordID:     id.New(),
		Username:     p.Email,
		UserType:     accountType,
		Industry:     p.Industry,
		IndustryTags: p.IndustryTags,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Put(ctx, u)
}
