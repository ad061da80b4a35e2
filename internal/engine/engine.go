// Package engine runs the full coverage analysis: classify alignment
// records, merge per-sequence coverage, aggregate covered bases, and
// extract the gap regions that need a secondary alignment pass.
package engine

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/seqremap/remap-go/internal/classify"
	"github.com/seqremap/remap-go/internal/config"
	"github.com/seqremap/remap-go/internal/coverage"
	"github.com/seqremap/remap-go/internal/gaps"
	"github.com/seqremap/remap-go/internal/interval"
	"github.com/seqremap/remap-go/internal/paf"
	"github.com/seqremap/remap-go/internal/stats"
)

// ErrMissingLength indicates an admitted alignment whose subject
// sequence has no entry in the length table; gap clipping is undefined
// without one.
var ErrMissingLength = errors.New("sequence length unknown")

// Result is the output of one analysis run.
type Result struct {
	// Merged covered regions per subject, split by target class.
	ReferenceRegions map[string][]interval.Interval
	PeerRegions      map[string][]interval.Interval

	// Covered-base counts derived from the regions above.
	ReferenceCovered      map[string]int
	ReferenceCoveredTotal int
	PeerCovered           map[string]int
	PeerCoveredTotal      int

	// Gap regions to re-examine, computed against the reference-
	// targeted coverage for every sequence in the length table.
	Gaps map[string][]interval.Interval
}

// Report summarizes the run against the reference-targeted coverage.
func (r *Result) Report(lengths map[string]int) *stats.Report {
	return stats.Build(lengths, r.ReferenceRegions, r.Gaps)
}

// Analyzer holds the configuration for coverage analysis runs.
type Analyzer struct {
	opts       config.Options
	references map[string]bool
}

// New returns an analyzer with the given options and reference
// sequence names.
func New(opts config.Options, references []string) *Analyzer {
	return &Analyzer{
		opts:       opts,
		references: classify.ReferenceSet(references),
	}
}

// Analyze runs the pipeline over already-tokenized records. Every
// admitted record's subject must appear in the length table. Sequences
// are processed independently and concurrently; within one sequence the
// stages run in order.
func (a *Analyzer) Analyze(records []paf.Record, lengths map[string]int) (*Result, error) {
	part := classify.Split(records, a.references, a.opts.MapqCutoff)

	if err := checkLengths(part, lengths); err != nil {
		return nil, err
	}

	refIntervals, err := classify.Intervals(part.Reference)
	if err != nil {
		return nil, err
	}
	peerIntervals, err := classify.Intervals(part.Peer)
	if err != nil {
		return nil, err
	}

	workers := a.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	result := &Result{
		ReferenceRegions: mergeConcurrent(refIntervals, workers),
		PeerRegions:      mergeConcurrent(peerIntervals, workers),
	}
	result.ReferenceCovered, result.ReferenceCoveredTotal = coverage.Lengths(result.ReferenceRegions)
	result.PeerCovered, result.PeerCoveredTotal = coverage.Lengths(result.PeerRegions)

	result.Gaps = gaps.ExtractAll(result.ReferenceRegions, lengths,
		a.opts.SequenceContext, a.opts.MinimumSizeRemap)

	return result, nil
}

func checkLengths(part classify.Partition, lengths map[string]int) error {
	for _, set := range [][]paf.Record{part.Reference, part.Peer} {
		for _, rec := range set {
			if _, ok := lengths[rec.Subject]; !ok {
				return fmt.Errorf("subject %q: %w", rec.Subject, ErrMissingLength)
			}
		}
	}
	return nil
}

// mergeConcurrent merges each sequence's intervals on a small worker
// pool. Per-sequence merges share no state; the collector owns the
// result map.
func mergeConcurrent(intervals map[string][]interval.Interval, workers int) map[string][]interval.Interval {
	if len(intervals) == 0 {
		return map[string][]interval.Interval{}
	}
	if workers > len(intervals) {
		workers = len(intervals)
	}

	type merged struct {
		id      string
		regions []interval.Interval
	}

	ids := make([]string, 0, len(intervals))
	for id := range intervals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	jobs := make(chan string, workers*2)
	results := make(chan merged, workers*2)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for id := range jobs {
				results <- merged{id: id, regions: coverage.Merge(intervals[id])}
			}
		}()
	}

	out := make(map[string][]interval.Interval, len(intervals))
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for m := range results {
			if len(m.regions) > 0 {
				out[m.id] = m.regions
			}
		}
	}()

	for _, id := range ids {
		jobs <- id
	}
	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	return out
}
