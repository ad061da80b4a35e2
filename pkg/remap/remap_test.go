package remap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFacade(t *testing.T) {
	merged := Merge([]Interval{{Start: 10, Stop: 20}, {Start: 15, Stop: 30}})
	assert.Equal(t, []Interval{{Start: 10, Stop: 30}}, merged)
}

func TestNewIntervalFacade(t *testing.T) {
	iv, err := NewInterval(30, 10, Reverse)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 10, Stop: 30}, iv)

	_, err = NewInterval(30, 10, Forward)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestSplitFacade(t *testing.T) {
	records := []Record{
		{Subject: "a", Target: "chr1", MapQ: 60},
		{Subject: "b", Target: "contig_2", MapQ: 60},
	}
	part := Split(records, []string{"chr1"}, 20)
	assert.Len(t, part.Reference, 1)
	assert.Len(t, part.Peer, 1)
}

func TestAnalyzePipeline(t *testing.T) {
	mappings := strings.Join([]string{
		"contig_1\t1000\t100\t200\t+\tchr1\t1\t1\t1\t1\t1\t60",
		"contig_1\t1000\t350\t200\t-\tchr1\t1\t1\t1\t1\t1\t60",
		"contig_1\t1000\t500\t600\t+\tchr1\t1\t1\t1\t1\t1\t60",
	}, "\n") + "\n"

	records, err := ParseMappings(strings.NewReader(mappings))
	require.NoError(t, err)
	lengths := LengthsFromRecords(records)
	require.Equal(t, map[string]int{"contig_1": 1000}, lengths)

	opts := DefaultOptions()
	opts.SequenceContext = 50
	opts.MinimumSizeRemap = 100

	analyzer := NewAnalyzer(opts, []string{"chr1"})
	result, err := analyzer.Analyze(records, lengths)
	require.NoError(t, err)

	assert.Equal(t, []Interval{{Start: 100, Stop: 350}, {Start: 500, Stop: 600}},
		result.ReferenceRegions["contig_1"])
	assert.Equal(t, []Interval{{Start: 0, Stop: 150}, {Start: 300, Stop: 550}, {Start: 550, Stop: 1000}},
		result.Gaps["contig_1"])

	report := result.Report(lengths)
	assert.Equal(t, 350, report.CoveredBases)
}

func TestRelocateFacade(t *testing.T) {
	rec, err := RelocateRecord(Record{Subject: "X_segment_start_100_stop_200", Start: 10, Stop: 50})
	require.NoError(t, err)
	assert.Equal(t, Record{Subject: "X", Start: 110, Stop: 150}, rec)

	frag, ok, err := ParseFragmentName("X_segment_start_100_stop_200")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Fragment{Parent: "X", Start: 100, Stop: 200}, frag)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version())
}
