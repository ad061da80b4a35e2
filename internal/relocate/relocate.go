// Package relocate maps alignment coordinates produced on an excerpted
// sub-sequence back into the coordinate frame of the parent sequence.
//
// A fragment carries its parent id and offsets as structured fields; the
// legacy name encoding <parent>_segment_start_<s>_stop_<e> is produced
// and parsed only at the boundary, for compatibility with mapping files
// that identify fragments by name.
package relocate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/seqremap/remap-go/internal/paf"
)

// ErrMalformedFragmentName indicates a sequence name that matches the
// fragment pattern but whose offsets cannot be parsed. It is never
// silently passed through; a mislocated coordinate is worse than a
// failed run.
var ErrMalformedFragmentName = errors.New("malformed fragment name")

// fragmentTag separates the parent id from the offset suffix.
const fragmentTag = "_segment_"

// Fragment identifies a sub-sequence excised from [Start, Stop) of its
// parent sequence.
type Fragment struct {
	Parent string `json:"parent"`
	Start  int    `json:"start"`
	Stop   int    `json:"stop"`
}

// Name renders the wire-compatible fragment name.
func (f Fragment) Name() string {
	return fmt.Sprintf("%s%sstart_%d_stop_%d", f.Parent, fragmentTag, f.Start, f.Stop)
}

// Len returns the number of bases the fragment spans.
func (f Fragment) Len() int {
	return f.Stop - f.Start
}

// ParseName recovers a Fragment from a sequence name. The second return
// is false when the name does not match the fragment pattern at all; a
// matching name with unparseable offsets is an error.
func ParseName(name string) (Fragment, bool, error) {
	idx := strings.LastIndex(name, fragmentTag)
	if idx < 0 {
		return Fragment{}, false, nil
	}
	parent, suffix := name[:idx], name[idx+len(fragmentTag):]

	// Suffix has the form start_<s>_stop_<e>. Split and read the
	// numbers from the tail; cutting at the last tag keeps a parent id
	// that itself contains the tag intact.
	fields := strings.Split(suffix, "_")
	if len(fields) < 4 || fields[len(fields)-4] != "start" || fields[len(fields)-2] != "stop" {
		return Fragment{}, false, fmt.Errorf("%w: %q", ErrMalformedFragmentName, name)
	}
	start, err := strconv.Atoi(fields[len(fields)-3])
	if err != nil {
		return Fragment{}, false, fmt.Errorf("%w: start offset in %q", ErrMalformedFragmentName, name)
	}
	stop, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return Fragment{}, false, fmt.Errorf("%w: stop offset in %q", ErrMalformedFragmentName, name)
	}

	return Fragment{Parent: parent, Start: start, Stop: stop}, true, nil
}

// Record rewrites a record aligned against a fragment into parent
// coordinates: the subject becomes the parent id and both coordinates
// shift by the fragment's start offset. Records whose subject is not a
// fragment name pass through unchanged.
func Record(rec paf.Record) (paf.Record, error) {
	frag, ok, err := ParseName(rec.Subject)
	if err != nil {
		return rec, err
	}
	if !ok {
		return rec, nil
	}
	rec.Subject = frag.Parent
	rec.Start += frag.Start
	rec.Stop += frag.Start
	return rec, nil
}

// Records rewrites every record, failing on the first malformed
// fragment name.
func Records(recs []paf.Record) ([]paf.Record, error) {
	out := make([]paf.Record, len(recs))
	for i, rec := range recs {
		relocated, err := Record(rec)
		if err != nil {
			return nil, err
		}
		out[i] = relocated
	}
	return out, nil
}
