package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/seqremap/remap-go/pkg/remap"
)

// AnalyzeRecord is one already-tokenized alignment record.
type AnalyzeRecord struct {
	Subject           string `json:"subject"`
	Start             int    `json:"start"`
	Stop              int    `json:"stop"`
	Strand            string `json:"strand"`
	Target            string `json:"target"`
	IsReferenceTarget bool   `json:"is_reference_target,omitempty"`
	MapQ              int    `json:"mapq"`
}

// AnalyzeRequest carries a full analysis run.
type AnalyzeRequest struct {
	Records          []AnalyzeRecord `json:"records"`
	Lengths          map[string]int  `json:"lengths"`
	References       []string        `json:"references"`
	MapqCutoff       *int            `json:"mapq_cutoff,omitempty"`
	SequenceContext  *int            `json:"sequence_context,omitempty"`
	MinimumSizeRemap *int            `json:"minimum_size_remap,omitempty"`
}

// AnalyzeResponse carries the coverage, counts, and gaps of a run.
type AnalyzeResponse struct {
	ReferenceRegions      map[string][]remap.Interval `json:"reference_regions"`
	PeerRegions           map[string][]remap.Interval `json:"peer_regions"`
	ReferenceCovered      map[string]int              `json:"reference_covered"`
	ReferenceCoveredTotal int                         `json:"reference_covered_total"`
	PeerCovered           map[string]int              `json:"peer_covered"`
	PeerCoveredTotal      int                         `json:"peer_covered_total"`
	Gaps                  map[string][]remap.Interval `json:"gaps"`
}

// AnalyzeHandler runs the full coverage pipeline on posted records.
func AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	opts := remap.DefaultOptions()
	if req.MapqCutoff != nil {
		opts.MapqCutoff = *req.MapqCutoff
	}
	if req.SequenceContext != nil {
		opts.SequenceContext = *req.SequenceContext
	}
	if req.MinimumSizeRemap != nil {
		opts.MinimumSizeRemap = *req.MinimumSizeRemap
	}
	if err := opts.Validate(); err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	records := make([]remap.Record, 0, len(req.Records))
	for _, rec := range req.Records {
		strand, err := remap.ParseStrand(rec.Strand)
		if err != nil {
			http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		records = append(records, remap.Record{
			Subject:           rec.Subject,
			Start:             rec.Start,
			Stop:              rec.Stop,
			Strand:            strand,
			Target:            rec.Target,
			IsReferenceTarget: rec.IsReferenceTarget,
			MapQ:              rec.MapQ,
		})
	}

	analyzer := remap.NewAnalyzer(opts, req.References)
	result, err := analyzer.Analyze(records, req.Lengths)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, remap.ErrMalformedRecord) && !errors.Is(err, remap.ErrMissingLength) {
			status = http.StatusInternalServerError
		}
		http.Error(w, `{"error": "`+err.Error()+`"}`, status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalyzeResponse{
		ReferenceRegions:      result.ReferenceRegions,
		PeerRegions:           result.PeerRegions,
		ReferenceCovered:      result.ReferenceCovered,
		ReferenceCoveredTotal: result.ReferenceCoveredTotal,
		PeerCovered:           result.PeerCovered,
		PeerCoveredTotal:      result.PeerCoveredTotal,
		Gaps:                  result.Gaps,
	})
}
