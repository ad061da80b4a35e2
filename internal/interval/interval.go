// Package interval defines the half-open coordinate interval used
// throughout the coverage engine, and the strand-aware normalization
// that turns raw alignment coordinates into canonical intervals.
package interval

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord indicates an alignment record whose coordinates are
// inconsistent after strand normalization.
var ErrMalformedRecord = errors.New("malformed alignment record")

// Strand indicates the orientation of an alignment.
type Strand int

const (
	Forward Strand = iota
	Reverse
)

// ParseStrand parses the single-character strand column of a mapping line.
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	default:
		return Forward, fmt.Errorf("%w: unknown strand %q", ErrMalformedRecord, s)
	}
}

func (s Strand) String() string {
	if s == Reverse {
		return "-"
	}
	return "+"
}

// Interval is a half-open span [Start, Stop) on a sequence, with
// Start <= Stop. Start == Stop is a legal zero-length interval that
// contributes no coverage.
type Interval struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

// New builds a canonical interval from a raw coordinate pair. On the
// forward strand the pair is kept in order; on the reverse strand it is
// swapped. A pair that is still descending after the strand-aware swap
// signals a malformed record.
func New(first, second int, strand Strand) (Interval, error) {
	if strand == Reverse {
		first, second = second, first
	}
	if first > second {
		return Interval{}, fmt.Errorf("%w: start %d after stop %d on %s strand",
			ErrMalformedRecord, first, second, strand)
	}
	return Interval{Start: first, Stop: second}, nil
}

// Len returns the number of bases the interval spans.
func (iv Interval) Len() int {
	return iv.Stop - iv.Start
}

// Empty reports whether the interval covers no bases.
func (iv Interval) Empty() bool {
	return iv.Stop == iv.Start
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.Stop)
}
