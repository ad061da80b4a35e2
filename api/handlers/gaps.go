package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/seqremap/remap-go/pkg/remap"
)

// GapsRequest carries merged coverage, the length table, and the gap
// parameters.
type GapsRequest struct {
	Regions         map[string][]remap.Interval `json:"regions"`
	Lengths         map[string]int              `json:"lengths"`
	SequenceContext int                         `json:"sequence_context"`
	MinimumSize     int                         `json:"minimum_size"`
}

// GapsResponse carries the extracted gap regions.
type GapsResponse struct {
	Gaps map[string][]remap.Interval `json:"gaps"`
}

// GapsHandler extracts the poorly mapped regions for every sequence in
// the length table.
func GapsHandler(w http.ResponseWriter, r *http.Request) {
	var req GapsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.SequenceContext < 0 || req.MinimumSize < 0 {
		http.Error(w, `{"error": "sequence_context and minimum_size must be >= 0"}`, http.StatusBadRequest)
		return
	}

	gaps := remap.ExtractAllGaps(req.Regions, req.Lengths, req.SequenceContext, req.MinimumSize)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GapsResponse{Gaps: gaps})
}
