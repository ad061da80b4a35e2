// Package stats summarizes coverage analysis results: how much of each
// sequence is covered by qualifying alignments and how much is being
// handed to the re-map phase.
package stats

import (
	"fmt"
	"sort"

	"github.com/seqremap/remap-go/internal/interval"
)

// SequenceCoverage is the coverage summary for a single sequence.
type SequenceCoverage struct {
	Length       int `json:"length"`
	CoveredBases int `json:"covered_bases"`
	GapBases     int `json:"gap_bases"`
}

// CoveredFraction returns the proportion of the sequence covered by at
// least one qualifying alignment.
func (s SequenceCoverage) CoveredFraction() float64 {
	if s.Length == 0 {
		return 0.0
	}
	return float64(s.CoveredBases) / float64(s.Length)
}

// Report aggregates coverage over all sequences of a run.
type Report struct {
	Sequences map[string]SequenceCoverage `json:"sequences"`

	TotalBases   int `json:"total_bases"`
	CoveredBases int `json:"covered_bases"`
	GapBases     int `json:"gap_bases"`
}

// Build assembles a report from the length table, the merged covered
// regions, and the extracted gap regions. Sequences absent from the
// region maps count as fully uncovered.
func Build(lengths map[string]int, covered, gapRegions map[string][]interval.Interval) *Report {
	report := &Report{Sequences: make(map[string]SequenceCoverage, len(lengths))}

	for id, length := range lengths {
		summary := SequenceCoverage{Length: length}
		for _, iv := range covered[id] {
			summary.CoveredBases += iv.Len()
		}
		for _, iv := range gapRegions[id] {
			summary.GapBases += iv.Len()
		}
		report.Sequences[id] = summary

		report.TotalBases += summary.Length
		report.CoveredBases += summary.CoveredBases
		report.GapBases += summary.GapBases
	}
	return report
}

// CoveredFraction returns the proportion of all bases covered by at
// least one qualifying alignment.
func (r *Report) CoveredFraction() float64 {
	if r.TotalBases == 0 {
		return 0.0
	}
	return float64(r.CoveredBases) / float64(r.TotalBases)
}

// RemapFraction returns the proportion of all bases that the gap
// extractor passes along to the re-map phase.
func (r *Report) RemapFraction() float64 {
	if r.TotalBases == 0 {
		return 0.0
	}
	return float64(r.GapBases) / float64(r.TotalBases)
}

func (r *Report) String() string {
	ids := make([]string, 0, len(r.Sequences))
	for id := range r.Sequences {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := fmt.Sprintf(`CoverageReport {
  sequences: %d
  total bases: %d
  covered: %d (%.1f%%)
  to remap: %d (%.1f%%)
}`, len(r.Sequences), r.TotalBases,
		r.CoveredBases, r.CoveredFraction()*100,
		r.GapBases, r.RemapFraction()*100)

	for _, id := range ids {
		s := r.Sequences[id]
		out += fmt.Sprintf("\n%s: %d/%d bp covered (%.1f%%), %d bp to remap",
			id, s.CoveredBases, s.Length, s.CoveredFraction()*100, s.GapBases)
	}
	return out
}
