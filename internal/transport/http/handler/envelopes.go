package handler

import (
	"encoding/json"
	"net/http"

	"github.com/maxgala/aspire-provisioner/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ProvisionsEnvelope wraps audit listing responses.
type ProvisionsEnvelope struct {
	Data  []domain.ProvisionRecord `json:"data"`
	Error string                   `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
