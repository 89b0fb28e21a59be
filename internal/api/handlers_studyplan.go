package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/booksum/internal/studyplan"
)

func (s *Server) handleStudyPlan(w http.ResponseWriter, r *http.Request) {
	var profile studyplan.Profile
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&profile); err != nil {
		jsonError(w, "invalid profile: "+err.Error(), http.StatusBadRequest)
		return
	}

	prompt, err := studyplan.Build(profile)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"prompt": prompt})
}
