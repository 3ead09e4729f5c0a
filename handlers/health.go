package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"dgiibot/core/log"
)

// NewHealthRouter exposes GET /health for process supervisors
func NewHealthRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Error("❌ Failed to write health check response", "error", err)
		}
	}).Methods("GET")
	return router
}
