package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// healthz answers 200 when the database and the cache respond, 503 otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Health(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}
