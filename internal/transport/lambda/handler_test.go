package lambda

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/maxgala/aspire-provisioner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvisioner struct {
	gotEvent *domain.ConfirmationEvent
	err      error
}

func (s *stubProvisioner) Provision(_ context.Context, ev *domain.ConfirmationEvent) (*domain.ConfirmationEvent, error) {
	s.gotEvent = ev
	if s.err != nil {
		return nil, s.err
	}
	return ev, nil
}

func envelope() events.CognitoEventUserPoolsPostConfirmation {
	return events.CognitoEventUserPoolsPostConfirmation{
		CognitoEventUserPoolsHeader: events.CognitoEventUserPoolsHeader{
			TriggerSource: domain.TriggerConfirmSignUp,
			UserPoolID:    "us-east-1_pool",
			UserName:      "user-abc",
		},
		Request: events.CognitoEventUserPoolsPostConfirmationRequest{
			UserAttributes: map[string]string{
				domain.AttrEmail:      "a@x.com",
				domain.AttrGivenName:  "Amina",
				domain.AttrFamilyName: "Khan",
			},
		},
	}
}

func TestHandle_ReturnsEnvelopeUnchanged(t *testing.T) {
	svc := &stubProvisioner{}
	env := envelope()

	got, err := NewHandler(svc).Handle(context.Background(), env)

	require.NoError(t, err)
	assert.Equal(t, env, got)
	require.NotNil(t, svc.gotEvent)
	assert.Equal(t, "us-east-1_pool", svc.gotEvent.UserPoolID)
	assert.Equal(t, "user-abc", svc.gotEvent.UserName)
	assert.Equal(t, "a@x.com", svc.gotEvent.Attributes[domain.AttrEmail])
}

func TestHandle_FatalErrorStillReturnsEnvelope(t *testing.T) {
	svc := &stubProvisioner{err: fmt.Errorf("missing attributes: %w", domain.ErrBadRequest)}
	env := envelope()

	got, err := NewHandler(svc).Handle(context.Background(), env)

	require.Error(t, err)
	assert.Equal(t, env, got)
}

func TestEventFromEnvelope(t *testing.T) {
	env := envelope()
	ev := EventFromEnvelope(&env)

	assert.Equal(t, domain.TriggerConfirmSignUp, ev.TriggerSource)
	assert.Equal(t, "us-east-1_pool", ev.UserPoolID)
	assert.Equal(t, "user-abc", ev.UserName)
	assert.Equal(t, "Khan", ev.Attributes[domain.AttrFamilyName])
}
