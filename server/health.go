package server

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status        string `json:"status"`
	StartedAt     string `json:"started_at"`
	StoreDriver   string `json:"store_driver,omitempty"`
	VisitProvider string `json:"visit_provider,omitempty"`
}

func (s *Server) handleHealth(startedAt string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:        "ok",
			StartedAt:     startedAt,
			StoreDriver:   s.info.StoreDriver,
			VisitProvider: s.info.VisitProvider,
		})
	}
}
