package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/maxgala/aspire-provisioner/internal/domain"
	lambdatransport "github.com/maxgala/aspire-provisioner/internal/transport/lambda"
)

// Provisioner is the minimal interface the trigger handler requires.
type Provisioner interface {
	Provision(ctx context.Context, ev *domain.ConfirmationEvent) (*domain.ConfirmationEvent, error)
}

// TriggerHandler replays Cognito PostConfirmation envelopes through the
// provisioning workflow. It mirrors the Lambda contract: the posted envelope
// is echoed back unchanged on success.
type TriggerHandler struct {
	svc Provisioner
}

func NewTriggerHandler(svc Provisioner) *TriggerHandler { return &TriggerHandler{svc: svc} }

func (h *TriggerHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var env events.CognitoEventUserPoolsPostConfirmation
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := h.svc.Provision(r.Context(), lambdatransport.EventFromEnvelope(&env)); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrBadRequest) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, env)
}
