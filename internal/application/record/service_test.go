package record

import (
	"context"
	"errors"
	"testing"

	"github.com/maxgala/aspire-provisioner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Put(ctx context.Context, u *domain.UserRecord) error {
	return m.Called(ctx, u).Error(0)
}

func TestSync_ConstructsRecordAndInsertsOnce(t *testing.T) {
	us := &mockUserStore{}
	var got *domain.UserRecord
	us.On("Put", mock.Anything, mock.AnythingOfType("*domain.UserRecord")).
		Run(func(args mock.Arguments) { got = args.Get(1).(*domain.UserRecord) }).
		Return(nil).Once()

	p := domain.Profile{
		Email:        "a@x.com",
		FirstName:    "Amina",
		LastName:     "Khan",
		Industry:     "Finance",
		IndustryTags: "banking,fintech",
	}
	err := NewService(us).Sync(context.Background(), p, domain.AccountFree, domain.StatusEnabled)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@x.com", got.Username)
	assert.Equal(t, domain.AccountFree, got.UserType)
	assert.Equal(t, domain.StatusEnabled, got.Status)
	assert.Equal(t, "Amina", got.FirstName)
	assert.Equal(t, "Khan", got.LastName)
	assert.Equal(t, "banking,fintech", got.IndustryTags)
	assert.NotEmpty(t, got.RecordID)
	assert.False(t, got.CreatedAt.IsZero())
	us.AssertExpectations(t)
}

func TestSync_MentorRecordIsDisabled(t *testing.T) {
	us := &mockUserStore{}
	var got *domain.UserRecord
	us.On("Put", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(*domain.UserRecord) }).
		Return(nil)

	err := NewService(us).Sync(context.Background(),
		domain.Profile{Email: "m@x.com", FirstName: "Omar", LastName: "Ali"},
		domain.AccountMentor, domain.StatusDisabled)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDisabled, got.Status)
}

func TestSync_PropagatesStoreError(t *testing.T) {
	us := &mockUserStore{}
	storeErr := errors.New("dynamo error")
	us.On("Put", mock.Anything, mock.Anything).Return(storeErr)

	err := NewService(us).Sync(context.Background(),
		domain.Profile{Email: "a@x.com", FirstName: "Amina", LastName: "Khan"},
		domain.AccountFree, domain.StatusEnabled)

	require.Error(t, err)
	assert.Equal(t, storeErr, err)
}
