// Package coverage turns per-sequence alignment intervals into the
// minimal set of maximal covered regions, via an endpoint sweep, and
// aggregates covered-base counts.
package coverage

import (
	"sort"

	"github.com/seqremap/remap-go/internal/interval"
)

// Event marks one endpoint of an alignment interval during the sweep.
type Event struct {
	Position int
	Start    bool
}

// Events flattens a list of canonical intervals into endpoint events,
// two per interval, in no particular order.
func Events(intervals []interval.Interval) []Event {
	events := make([]Event, 0, 2*len(intervals))
	for _, iv := range intervals {
		events = append(events,
			Event{Position: iv.Start, Start: true},
			Event{Position: iv.Stop, Start: false})
	}
	return events
}

// EventsBySequence applies Events to every sequence of a per-sequence
// interval map.
func EventsBySequence(intervals map[string][]interval.Interval) map[string][]Event {
	events := make(map[string][]Event, len(intervals))
	for id, ivs := range intervals {
		events[id] = Events(ivs)
	}
	return events
}

// Merge computes the union of a sequence's intervals as a sorted list of
// maximal, pairwise non-overlapping, non-adjacent regions. Touching
// intervals ([10,20) and [20,30)) merge into one region; zero-length
// intervals contribute nothing.
func Merge(intervals []interval.Interval) []interval.Interval {
	return MergeEvents(Events(intervals))
}

// MergeEvents runs the sweep over endpoint events. Events are ordered by
// position; at equal positions start events sort before stop events, so
// the open count never reaches zero between touching intervals and
// adjacency merges.
func MergeEvents(events []Event) []interval.Interval {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].Start && !sorted[j].Start
	})

	var regions []interval.Interval
	var current interval.Interval
	open := 0

	for _, ev := range sorted {
		if open > 0 {
			// At least one alignment is still open; coverage
			// extends up to this endpoint.
			current.Stop = ev.Position
		}
		if ev.Start {
			open++
			if open == 1 {
				current.Start = ev.Position
				current.Stop = ev.Position
			}
		} else {
			open--
			if open == 0 && !current.Empty() {
				regions = append(regions, current)
			}
		}
	}
	return regions
}

// MergeAll merges every sequence of a per-sequence interval map.
// Sequences whose union is empty are dropped from the result.
func MergeAll(intervals map[string][]interval.Interval) map[string][]interval.Interval {
	merged := make(map[string][]interval.Interval, len(intervals))
	for id, ivs := range intervals {
		if regions := Merge(ivs); len(regions) > 0 {
			merged[id] = regions
		}
	}
	return merged
}

// Lengths sums region lengths per sequence and returns the grand total
// across all sequences.
func Lengths(regions map[string][]interval.Interval) (map[string]int, int) {
	perSequence := make(map[string]int, len(regions))
	total := 0
	for id, ivs := range regions {
		sum := 0
		for _, iv := range ivs {
			sum += iv.Len()
		}
		perSequence[id] = sum
		total += sum
	}
	return perSequence, total
}
