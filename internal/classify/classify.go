// Package classify partitions alignment records by target class and
// applies the mapping-quality admission threshold. Records aligned
// against a reference sequence and records aligned against another
// assembled sequence feed two independent coverage pipelines.
package classify

import (
	"github.com/seqremap/remap-go/internal/interval"
	"github.com/seqremap/remap-go/internal/paf"
)

// Partition holds admitted records split by target class.
type Partition struct {
	Reference []paf.Record // target is a reference sequence
	Peer      []paf.Record // target is another assembled sequence
}

// ReferenceSet builds a membership set from reference sequence names.
func ReferenceSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// Split drops records below the mapq cutoff and partitions the
// survivors by target class: a record's own IsReferenceTarget flag, or
// membership of its target in the reference set.
func Split(records []paf.Record, references map[string]bool, mapqCutoff int) Partition {
	var part Partition
	for _, rec := range records {
		if rec.MapQ < mapqCutoff {
			continue
		}
		if rec.IsReferenceTarget || references[rec.Target] {
			part.Reference = append(part.Reference, rec)
		} else {
			part.Peer = append(part.Peer, rec)
		}
	}
	return part
}

// Intervals normalizes a record set into per-subject canonical
// intervals. The first malformed record aborts the conversion.
func Intervals(records []paf.Record) (map[string][]interval.Interval, error) {
	out := make(map[string][]interval.Interval)
	for _, rec := range records {
		iv, err := rec.Interval()
		if err != nil {
			return nil, err
		}
		out[rec.Subject] = append(out[rec.Subject], iv)
	}
	return out, nil
}
