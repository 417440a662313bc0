package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maxgala/aspire-provisioner/internal/domain"
)

// UserReader is the minimal interface the user handler requires.
type UserReader interface {
	Get(ctx context.Context, username string) (*domain.UserRecord, error)
}

// UserHandler exposes the provisioned user record for inspection.
type UserHandler struct {
	repo UserReader
}

func NewUserHandler(repo UserReader) *UserHandler { return &UserHandler{repo: repo} }

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.repo.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, u)
}
