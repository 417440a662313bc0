package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/maxgala/aspire-provisioner/internal/application/provision"
	"github.com/maxgala/aspire-provisioner/internal/domain"
)

// Handler adapts the Cognito PostConfirmation trigger to the provisioning
// service. The trigger contract requires the incoming envelope back
// unchanged regardless of outcome, so the only error path is the
// fatal-input case.
type Handler struct {
	svc provision.Service
}

func NewHandler(svc provision.Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) Handle(ctx context.Context, env events.CognitoEventUserPoolsPostConfirmation) (events.CognitoEventUserPoolsPostConfirmation, error) {
	if _, err := h.svc.Provision(ctx, EventFromEnvelope(&env)); err != nil {
		return env, err
	}
	return env, nil
}

// EventFromEnvelope maps the raw user-pool envelope to the domain event.
func EventFromEnvelope(env *events.CognitoEventUserPoolsPostConfirmation) *domain.ConfirmationEvent {
	return &domain.ConfirmationEvent{
		TriggerSource: env.TriggerSource,
		UserPoolID:    env.UserPoolID,
		UserName:      env.UserName,
		Attributes:    env.Request.UserAttributes,
	}
}
