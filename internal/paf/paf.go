// Package paf tokenizes tab-separated mapping records into the fields
// the coverage engine consumes: subject id and length, the raw
// coordinate pair, strand, target id, and mapping quality. No further
// grammar of the mapping format is interpreted here.
package paf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/seqremap/remap-go/internal/interval"
)

// Column indices of the fields extracted from a mapping line.
const (
	colSubject    = 0
	colSubjectLen = 1
	colStart      = 2
	colStop       = 3
	colStrand     = 4
	colTarget     = 5
	colMapQ       = 11
)

// minColumns is the number of leading columns a mapping line must carry.
const minColumns = 12

// Record is one already-tokenized alignment record. IsReferenceTarget
// may be set by the producer when the target class is already known;
// otherwise the classifier decides from its reference set.
type Record struct {
	Subject           string          `json:"subject"`
	SubjectLen        int             `json:"subject_len"`
	Start             int             `json:"start"`
	Stop              int             `json:"stop"`
	Strand            interval.Strand `json:"-"`
	Target            string          `json:"target"`
	IsReferenceTarget bool            `json:"is_reference_target,omitempty"`
	MapQ              int             `json:"mapq"`
}

// Interval normalizes the record's raw coordinate pair into a canonical
// half-open interval on the subject sequence.
func (r Record) Interval() (interval.Interval, error) {
	iv, err := interval.New(r.Start, r.Stop, r.Strand)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("subject %q: %w", r.Subject, err)
	}
	return iv, nil
}

// ParseLine tokenizes a single mapping line.
func ParseLine(line string) (Record, error) {
	fields := strings.Split(strings.TrimRight(line, "\n"), "\t")
	if len(fields) < minColumns {
		return Record{}, fmt.Errorf("%w: %d columns, want at least %d",
			interval.ErrMalformedRecord, len(fields), minColumns)
	}

	subjectLen, err := strconv.Atoi(fields[colSubjectLen])
	if err != nil {
		return Record{}, fmt.Errorf("%w: subject length %q", interval.ErrMalformedRecord, fields[colSubjectLen])
	}
	start, err := strconv.Atoi(fields[colStart])
	if err != nil {
		return Record{}, fmt.Errorf("%w: start %q", interval.ErrMalformedRecord, fields[colStart])
	}
	stop, err := strconv.Atoi(fields[colStop])
	if err != nil {
		return Record{}, fmt.Errorf("%w: stop %q", interval.ErrMalformedRecord, fields[colStop])
	}
	strand, err := interval.ParseStrand(fields[colStrand])
	if err != nil {
		return Record{}, err
	}
	mapq, err := strconv.Atoi(fields[colMapQ])
	if err != nil {
		return Record{}, fmt.Errorf("%w: mapping quality %q", interval.ErrMalformedRecord, fields[colMapQ])
	}

	return Record{
		Subject:    fields[colSubject],
		SubjectLen: subjectLen,
		Start:      start,
		Stop:       stop,
		Strand:     strand,
		Target:     fields[colTarget],
		MapQ:       mapq,
	}, nil
}

// Parse reads mapping records from r. Blank lines and leftover '@'
// header lines (from converted alignment output) are skipped.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mappings: %w", err)
	}
	return records, nil
}

// ReadFile reads mapping records from a file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mappings: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Lengths builds a sequence-length table from the subject-length column
// of the records.
func Lengths(records []Record) map[string]int {
	lengths := make(map[string]int)
	for _, rec := range records {
		lengths[rec.Subject] = rec.SubjectLen
	}
	return lengths
}
