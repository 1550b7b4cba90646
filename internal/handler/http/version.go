package http

import (
	"net/http"

	"github.com/MKhiriev/go-manifest-sync/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.appInfo.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.appInfo.GetBuildInfo(r.Context()), http.StatusOK)
}
