// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/utils"
	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/go-chi/chi/v5"
)

const sessionIDParam = "session_id"

func (h *Handler) startGame(w http.ResponseWriter, r *http.Request) {
	resp := h.replayer.Start(r.Context())
	h.writeJSON(w, r, resp)
}

func (h *Handler) submitChoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid choice body")
		http.Error(w, "invalid choice body", http.StatusUnprocessableEntity)
		return
	}

	resp := h.replayer.Choose(r.Context(), chi.URLParam(r, sessionIDParam), req.Input)
	h.writeJSON(w, r, resp)
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	resp := h.replayer.State(r.Context(), chi.URLParam(r, sessionIDParam))
	h.writeJSON(w, r, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing response")
	}
}
