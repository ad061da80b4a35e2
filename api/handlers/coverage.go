package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/seqremap/remap-go/pkg/remap"
)

// MergeRequest carries per-sequence alignment intervals.
type MergeRequest struct {
	Sequences map[string][]remap.Interval `json:"sequences"`
}

// MergeResponse carries the merged covered regions.
type MergeResponse struct {
	Regions map[string][]remap.Interval `json:"regions"`
}

// MergeHandler merges per-sequence intervals into maximal covered
// regions.
func MergeHandler(w http.ResponseWriter, r *http.Request) {
	var req MergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MergeResponse{Regions: remap.MergeAll(req.Sequences)})
}

// LengthsRequest carries merged regions to aggregate.
type LengthsRequest struct {
	Regions map[string][]remap.Interval `json:"regions"`
}

// LengthsResponse carries covered-base counts.
type LengthsResponse struct {
	CoveredBases map[string]int `json:"covered_bases"`
	TotalCovered int            `json:"total_covered"`
}

// LengthsHandler sums covered bases per sequence and in total.
func LengthsHandler(w http.ResponseWriter, r *http.Request) {
	var req LengthsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	perSequence, total := remap.CoveredLengths(req.Regions)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LengthsResponse{
		CoveredBases: perSequence,
		TotalCovered: total,
	})
}
