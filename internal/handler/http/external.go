// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-gateway/internal/adapter"
	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/internal/utils"
	"github.com/MKhiriev/go-user-gateway/models"
	"github.com/go-chi/chi/v5"
)

// getExternal relays the root of the upstream microservice.
func (h *Handler) getExternal(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, "/", nil)
}

// getExternalPath relays /api/external/<rest> to <baseURL>/<rest>, keeping
// the inbound query string in order.
func (h *Handler) getExternalPath(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query, err := adapter.ParseQuery(r.URL.RawQuery)
	if err != nil {
		log.Err(err).Msg("invalid query string was passed")
		http.Error(w, "Invalid query string was passed", http.StatusBadRequest)
		return
	}

	h.proxy(w, r, "/"+chi.URLParam(r, "*"), query)
}

// proxy answers 200 with the upstream JSON whatever the upstream status was.
// Failures are answered with the status and label of their kind.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request, endpoint string, query adapter.Query) {
	log := logger.FromRequest(r)

	resp, err := h.services.GatewayService.Fetch(r.Context(), endpoint, query)
	if err != nil {
		kind := adapter.KindOf(err)
		log.Err(err).
			Str("endpoint", endpoint).
			Str("kind", kind.String()).
			Int("attempts", resp.Attempts).
			Msg("upstream call failed")

		utils.WriteJSON(w, models.ErrorResponse{
			Error:   LabelFromErrorKind(kind),
			Message: err.Error(),
		}, StatusFromErrorKind(kind))
		return
	}

	log.Debug().
		Str("endpoint", endpoint).
		Int("upstream_status", resp.StatusCode).
		Int("attempts", resp.Attempts).
		Msg("upstream call succeeded")

	utils.WriteJSON(w, resp.Payload, http.StatusOK)
}
