// Package remap provides a high-level API for alignment coverage
// analysis: merging alignment spans into covered regions, extracting
// the poorly mapped regions that need a secondary alignment pass, and
// relocating fragment-relative alignments back onto their parent
// sequences.
//
// Example usage:
//
//	records, err := remap.ReadMappings("asm_to_ref.paf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	analyzer := remap.NewAnalyzer(remap.DefaultOptions(), refNames)
//	result, err := analyzer.Analyze(records, remap.LengthsFromRecords(records))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Report(lengths))
package remap

import (
	"io"

	"github.com/seqremap/remap-go/internal/classify"
	"github.com/seqremap/remap-go/internal/config"
	"github.com/seqremap/remap-go/internal/coverage"
	"github.com/seqremap/remap-go/internal/engine"
	"github.com/seqremap/remap-go/internal/gaps"
	"github.com/seqremap/remap-go/internal/interval"
	"github.com/seqremap/remap-go/internal/paf"
	"github.com/seqremap/remap-go/internal/relocate"
	"github.com/seqremap/remap-go/internal/stats"
)

// Re-export types for convenience
type (
	Interval  = interval.Interval
	Strand    = interval.Strand
	Record    = paf.Record
	Partition = classify.Partition
	Fragment  = relocate.Fragment
	Options   = config.Options
	Analyzer  = engine.Analyzer
	Result    = engine.Result
	Report    = stats.Report
)

// Constants
const (
	Forward = interval.Forward
	Reverse = interval.Reverse
)

// Errors
var (
	ErrMalformedRecord       = interval.ErrMalformedRecord
	ErrMissingLength         = engine.ErrMissingLength
	ErrMalformedFragmentName = relocate.ErrMalformedFragmentName
)

// NewInterval builds a canonical half-open interval from a raw
// coordinate pair and strand.
func NewInterval(first, second int, strand Strand) (Interval, error) {
	return interval.New(first, second, strand)
}

// ParseStrand parses a "+" or "-" strand indicator.
func ParseStrand(s string) (Strand, error) {
	return interval.ParseStrand(s)
}

// Merge computes the maximal covered regions for one sequence's
// intervals.
func Merge(intervals []Interval) []Interval {
	return coverage.Merge(intervals)
}

// MergeAll merges every sequence of a per-sequence interval map.
func MergeAll(intervals map[string][]Interval) map[string][]Interval {
	return coverage.MergeAll(intervals)
}

// CoveredLengths sums region lengths per sequence and in total.
func CoveredLengths(regions map[string][]Interval) (map[string]int, int) {
	return coverage.Lengths(regions)
}

// ExtractGaps computes the gap regions for one sequence.
func ExtractGaps(regions []Interval, length, context, minSize int) []Interval {
	return gaps.Extract(regions, length, context, minSize)
}

// ExtractAllGaps computes gap regions for every sequence in the length
// table.
func ExtractAllGaps(regions map[string][]Interval, lengths map[string]int, context, minSize int) map[string][]Interval {
	return gaps.ExtractAll(regions, lengths, context, minSize)
}

// Split drops records below the mapq cutoff and partitions the rest by
// target class.
func Split(records []Record, references []string, mapqCutoff int) Partition {
	return classify.Split(records, classify.ReferenceSet(references), mapqCutoff)
}

// RelocateRecord rewrites a fragment-relative record into parent
// coordinates; non-fragment records pass through unchanged.
func RelocateRecord(rec Record) (Record, error) {
	return relocate.Record(rec)
}

// RelocateRecords rewrites every record.
func RelocateRecords(records []Record) ([]Record, error) {
	return relocate.Records(records)
}

// RelocateMappings streams a tab-separated mapping file, rewriting
// fragment-relative lines in place.
func RelocateMappings(r io.Reader, w io.Writer) error {
	return relocate.Rewrite(r, w)
}

// ParseFragmentName recovers a Fragment from a sequence name. The
// second return is false for names that are not fragment names.
func ParseFragmentName(name string) (Fragment, bool, error) {
	return relocate.ParseName(name)
}

// DefaultOptions returns the analyzer defaults.
func DefaultOptions() Options {
	return config.Default()
}

// LoadOptions reads analyzer options from a YAML file.
func LoadOptions(path string) (Options, error) {
	return config.Load(path)
}

// NewAnalyzer returns an analyzer for the given options and reference
// sequence names.
func NewAnalyzer(opts Options, references []string) *Analyzer {
	return engine.New(opts, references)
}

// ParseMappings reads already-converted mapping records from a reader.
func ParseMappings(r io.Reader) ([]Record, error) {
	return paf.Parse(r)
}

// ReadMappings reads mapping records from a file.
func ReadMappings(path string) ([]Record, error) {
	return paf.ReadFile(path)
}

// LengthsFromRecords builds a sequence-length table from the
// subject-length column of mapping records.
func LengthsFromRecords(records []Record) map[string]int {
	return paf.Lengths(records)
}

// BuildReport assembles a coverage report from raw maps.
func BuildReport(lengths map[string]int, covered, gapRegions map[string][]Interval) *Report {
	return stats.Build(lengths, covered, gapRegions)
}

// Version returns the library version.
func Version() string {
	return "1.0.0"
}
