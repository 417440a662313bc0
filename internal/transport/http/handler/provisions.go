package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maxgala/aspire-provisioner/internal/domain"
)

// ProvisionReader is the minimal interface the audit handler requires.
type ProvisionReader interface {
	ListByUsername(ctx context.Context, username string) ([]domain.ProvisionRecord, error)
}

// ProvisionHandler exposes the provisioning audit trail for inspection.
type ProvisionHandler struct {
	repo ProvisionReader
}

func NewProvisionHandler(repo ProvisionReader) *ProvisionHandler {
	return &ProvisionHandler{repo: repo}
}

func (h *ProvisionHandler) ListByUsername(w http.ResponseWriter, r *http.Request) {
	records, err := h.repo.ListByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ProvisionsEnvelope{Data: records})
}
