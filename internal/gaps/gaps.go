// Package gaps derives the poorly mapped regions of a sequence: the
// complement of its covered regions, padded with context sequence,
// clipped to the sequence bounds, and filtered by a minimum size.
package gaps

import (
	"sort"

	"github.com/seqremap/remap-go/internal/interval"
)

// Extract computes the gap regions for one sequence of the given length.
// The covered regions must be merged output: sorted ascending, maximal,
// non-overlapping. Each candidate gap is padded by context bases on the
// side(s) facing a covered region, clipped to [0, length), and kept only
// if it spans at least minSize bases.
//
// A sequence with no covered regions at all yields the single gap
// [0, length) regardless of minSize; the whole sequence needs
// re-examination.
func Extract(regions []interval.Interval, length, context, minSize int) []interval.Interval {
	if len(regions) == 0 {
		return []interval.Interval{{Start: 0, Stop: length}}
	}

	var out []interval.Interval

	// Between the start of the sequence and the first covered region.
	if first := regions[0]; first.Start > 0 {
		stop := first.Start + context
		if stop > length {
			stop = length
		}
		if stop >= minSize {
			out = append(out, interval.Interval{Start: 0, Stop: stop})
		}
	}

	// Between each adjacent pair of covered regions. Clipping can make
	// the padded candidate collapse or invert; such pairs produce no
	// gap.
	for i := 0; i < len(regions)-1; i++ {
		start := regions[i].Stop - context
		if start < 0 {
			start = 0
		}
		stop := regions[i+1].Start + context
		if stop > length {
			stop = length
		}
		if stop > start && stop-start >= minSize {
			out = append(out, interval.Interval{Start: start, Stop: stop})
		}
	}

	// Between the last covered region and the end of the sequence.
	if last := regions[len(regions)-1]; last.Stop < length {
		start := last.Stop - context
		if start < 0 {
			start = 0
		}
		if length-start >= minSize {
			out = append(out, interval.Interval{Start: start, Stop: length})
		}
	}

	return out
}

// ExtractAll computes gap regions for every sequence in the length table.
// Sequences with no covered regions get the unconditional full-sequence
// gap; sequences whose candidates all fall below minSize are omitted.
func ExtractAll(regions map[string][]interval.Interval, lengths map[string]int, context, minSize int) map[string][]interval.Interval {
	out := make(map[string][]interval.Interval, len(lengths))

	ids := make([]string, 0, len(lengths))
	for id := range lengths {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if gapSet := Extract(regions[id], lengths[id], context, minSize); len(gapSet) > 0 {
			out[id] = gapSet
		}
	}
	return out
}
