package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-gateway/internal/app"
	"github.com/MKhiriev/go-user-gateway/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, app.MsgHealthy, http.StatusOK)
}
