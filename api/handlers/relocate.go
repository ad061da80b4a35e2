package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/seqremap/remap-go/pkg/remap"
)

// RelocateRequest carries a fragment-relative alignment record.
type RelocateRequest struct {
	Subject string `json:"subject"`
	Start   int    `json:"start"`
	Stop    int    `json:"stop"`
}

// RelocateResponse carries the record in parent coordinates.
type RelocateResponse struct {
	Subject   string `json:"subject"`
	Start     int    `json:"start"`
	Stop      int    `json:"stop"`
	Relocated bool   `json:"relocated"`
}

// RelocateHandler rewrites a fragment-relative record into the parent
// sequence's coordinate frame.
func RelocateHandler(w http.ResponseWriter, r *http.Request) {
	var req RelocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	rec, err := remap.RelocateRecord(remap.Record{
		Subject: req.Subject,
		Start:   req.Start,
		Stop:    req.Stop,
	})
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RelocateResponse{
		Subject:   rec.Subject,
		Start:     rec.Start,
		Stop:      rec.Stop,
		Relocated: rec.Subject != req.Subject,
	})
}
