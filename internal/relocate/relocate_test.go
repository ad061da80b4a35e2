package relocate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqremap/remap-go/internal/interval"
	"github.com/seqremap/remap-go/internal/paf"
)

func TestFragmentName(t *testing.T) {
	frag := Fragment{Parent: "contig_1", Start: 100, Stop: 200}
	assert.Equal(t, "contig_1_segment_start_100_stop_200", frag.Name())
	assert.Equal(t, 100, frag.Len())
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Fragment
		fragment bool
		wantErr  bool
	}{
		{
			name:     "plain sequence name",
			input:    "contig_1",
			fragment: false,
		},
		{
			name:     "well-formed fragment",
			input:    "contig_1_segment_start_100_stop_200",
			want:     Fragment{Parent: "contig_1", Start: 100, Stop: 200},
			fragment: true,
		},
		{
			name:     "parent id containing the tag",
			input:    "x_segment_y_segment_start_5_stop_9",
			want:     Fragment{Parent: "x_segment_y", Start: 5, Stop: 9},
			fragment: true,
		},
		{
			name:    "non-numeric start offset",
			input:   "contig_1_segment_start_abc_stop_200",
			wantErr: true,
		},
		{
			name:    "non-numeric stop offset",
			input:   "contig_1_segment_start_100_stop_xyz",
			wantErr: true,
		},
		{
			name:    "missing stop keyword",
			input:   "contig_1_segment_start_100_200",
			wantErr: true,
		},
		{
			name:    "truncated suffix",
			input:   "contig_1_segment_start_100",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag, ok, err := ParseName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedFragmentName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fragment, ok)
			if tt.fragment {
				assert.Equal(t, tt.want, frag)
			}
		})
	}
}

func TestNameParseRoundTrip(t *testing.T) {
	fragments := []Fragment{
		{Parent: "chr1", Start: 0, Stop: 500},
		{Parent: "contig_1", Start: 100, Stop: 200},
		{Parent: "a_segment_b", Start: 7, Stop: 13},
	}
	for _, frag := range fragments {
		got, ok, err := ParseName(frag.Name())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, frag, got)
	}
}

func TestRecord(t *testing.T) {
	// An alignment at (10, 50) on a fragment cut from X at offset 100
	// lands at (110, 150) on X.
	rec := paf.Record{
		Subject: "X_segment_start_100_stop_200",
		Start:   10,
		Stop:    50,
		Target:  "chr1",
		MapQ:    60,
	}
	got, err := Record(rec)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Subject)
	assert.Equal(t, 110, got.Start)
	assert.Equal(t, 150, got.Stop)
	assert.Equal(t, "chr1", got.Target)
	assert.Equal(t, 60, got.MapQ)
}

func TestRecordPassthrough(t *testing.T) {
	rec := paf.Record{Subject: "contig_9", Start: 10, Stop: 50}
	got, err := Record(rec)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRecords(t *testing.T) {
	recs := []paf.Record{
		{Subject: "X_segment_start_100_stop_200", Start: 10, Stop: 50},
		{Subject: "plain", Start: 3, Stop: 8},
	}
	got, err := Records(recs)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, paf.Record{Subject: "X", Start: 110, Stop: 150}, got[0])
	assert.Equal(t, recs[1], got[1])

	_, err = Records([]paf.Record{{Subject: "X_segment_start_a_stop_b"}})
	assert.ErrorIs(t, err, ErrMalformedFragmentName)
}

func TestRewrite(t *testing.T) {
	input := strings.Join([]string{
		"@header line stays",
		"",
		"X_segment_start_100_stop_200\t100\t10\t50\t+\tchr1\tc6\tc7\tc8\tc9\tc10\t60\textra",
		"plain_contig\t900\t5\t40\t-\tchr2\tc6\tc7\tc8\tc9\tc10\t30",
		"short\tline",
	}, "\n") + "\n"

	var out bytes.Buffer
	require.NoError(t, Rewrite(strings.NewReader(input), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "@header line stays", lines[0])
	assert.Equal(t, "", lines[1])
	// Subject renamed, coordinates shifted, every other column intact.
	assert.Equal(t, "X\t100\t110\t150\t+\tchr1\tc6\tc7\tc8\tc9\tc10\t60\textra", lines[2])
	assert.Equal(t, "plain_contig\t900\t5\t40\t-\tchr2\tc6\tc7\tc8\tc9\tc10\t30", lines[3])
	assert.Equal(t, "short\tline", lines[4])
}

func TestRewriteErrors(t *testing.T) {
	var out bytes.Buffer

	err := Rewrite(strings.NewReader("X_segment_start_a_stop_b\t1\t2\t3\n"), &out)
	assert.ErrorIs(t, err, ErrMalformedFragmentName)

	err = Rewrite(strings.NewReader("X_segment_start_1_stop_9\t1\tnope\t3\n"), &out)
	assert.ErrorIs(t, err, interval.ErrMalformedRecord)
}
