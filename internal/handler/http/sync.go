// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/internal/utils"
	"github.com/MKhiriev/go-manifest-sync/models"
)

// syncResponse is the body of POST /api/sync/{sourceID}. Error is set when
// the pass failed; the result still tells which token stays committed.
type syncResponse struct {
	models.SyncResult
	Error string `json:"error,omitempty"`
}

func (h *Handler) runSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sourceID := chi.URLParam(r, sourceIDParam)

	result, err := h.syncer.Sync(r.Context(), sourceID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("source_id", sourceID).Int("status", status).Msg("sync request failed")
		utils.WriteJSON(w, syncResponse{SyncResult: result, Error: err.Error()}, status)
		return
	}

	utils.WriteJSON(w, syncResponse{SyncResult: result}, http.StatusOK)
}

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sourceID := chi.URLParam(r, sourceIDParam)

	status, err := h.syncer.Status(r.Context(), sourceID)
	if err != nil {
		log.Err(err).Str("source_id", sourceID).Msg("error getting sync status")
		utils.WriteError(w, err, statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
