package gaps

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqremap/remap-go/internal/coverage"
	"github.com/seqremap/remap-go/internal/interval"
)

func ivs(pairs ...[2]int) []interval.Interval {
	out := make([]interval.Interval, len(pairs))
	for i, p := range pairs {
		out[i] = interval.Interval{Start: p[0], Stop: p[1]}
	}
	return out
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		regions []interval.Interval
		length  int
		context int
		minSize int
		want    []interval.Interval
	}{
		{
			name:    "no coverage yields full sequence regardless of threshold",
			regions: nil,
			length:  500,
			context: 50,
			minSize: 100000,
			want:    ivs([2]int{0, 500}),
		},
		{
			name:    "fully covered yields nothing",
			regions: ivs([2]int{0, 500}),
			length:  500,
			context: 50,
			minSize: 1,
			want:    nil,
		},
		{
			name:    "leading gap padded and kept",
			regions: ivs([2]int{200, 500}),
			length:  500,
			context: 50,
			minSize: 100,
			want:    ivs([2]int{0, 250}),
		},
		{
			name:    "leading gap below threshold dropped",
			regions: ivs([2]int{20, 500}),
			length:  500,
			context: 10,
			minSize: 100,
			want:    nil,
		},
		{
			name:    "trailing gap padded and kept",
			regions: ivs([2]int{0, 300}),
			length:  500,
			context: 50,
			minSize: 100,
			want:    ivs([2]int{250, 500}),
		},
		{
			name:    "interior gap padded on both sides",
			regions: ivs([2]int{0, 100}, [2]int{400, 500}),
			length:  500,
			context: 25,
			minSize: 100,
			want:    ivs([2]int{75, 425}),
		},
		{
			name: "padding clipped to sequence bounds",
			// Leading candidate would stop at 10+200, trailing
			// would start at 490-200.
			regions: ivs([2]int{10, 490}),
			length:  500,
			context: 200,
			minSize: 1,
			want:    ivs([2]int{0, 210}, [2]int{290, 500}),
		},
		{
			name:    "heavy context widens interior candidate",
			regions: ivs([2]int{0, 300}, [2]int{310, 600}),
			length:  600,
			context: 250,
			minSize: 1,
			want:    ivs([2]int{50, 560}),
		},
		{
			name: "out-of-bounds coverage cannot invert a gap",
			// Clipping pulls the interior stop below its start; the
			// guard emits nothing instead of an inverted interval.
			regions: ivs([2]int{0, 900}, [2]int{950, 1000}),
			length:  600,
			context: 0,
			minSize: 1,
			want:    nil,
		},
		{
			name:    "zero context zero threshold is the exact complement",
			regions: ivs([2]int{3, 5}, [2]int{7, 9}),
			length:  11,
			context: 0,
			minSize: 1,
			want:    ivs([2]int{0, 3}, [2]int{5, 7}, [2]int{9, 11}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.regions, tt.length, tt.context, tt.minSize))
		})
	}
}

// TestExtractScenario pins the worked example: length 1000, raw covered
// spans (100,200), (200,350), (500,600), context 50, minimum size 100.
// The touching spans must merge first; the gaps follow from the merged
// coverage.
func TestExtractScenario(t *testing.T) {
	merged := coverage.Merge(ivs([2]int{100, 200}, [2]int{200, 350}, [2]int{500, 600}))
	require.Equal(t, ivs([2]int{100, 350}, [2]int{500, 600}), merged)

	got := Extract(merged, 1000, 50, 100)
	assert.Equal(t, ivs([2]int{0, 150}, [2]int{300, 550}, [2]int{550, 1000}), got)
}

func TestExtractProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 200; trial++ {
		length := 100 + rng.Intn(2000)
		n := rng.Intn(12)
		raw := make([]interval.Interval, 0, n)
		for i := 0; i < n; i++ {
			start := rng.Intn(length)
			stop := start + rng.Intn(length-start)
			raw = append(raw, interval.Interval{Start: start, Stop: stop})
		}
		merged := coverage.Merge(raw)

		context := rng.Intn(300)
		minSize := rng.Intn(300)
		gapSet := Extract(merged, length, context, minSize)

		if len(merged) == 0 {
			require.Equal(t, ivs([2]int{0, length}), gapSet)
			continue
		}
		for _, g := range gapSet {
			assert.GreaterOrEqual(t, g.Start, 0)
			assert.LessOrEqual(t, g.Stop, length)
			assert.LessOrEqual(t, g.Start, g.Stop, "inverted gap %v", g)
			assert.GreaterOrEqual(t, g.Len(), minSize)
		}
	}
}

func TestExtractAll(t *testing.T) {
	regions := map[string][]interval.Interval{
		"covered": ivs([2]int{0, 1000}),
		"partial": ivs([2]int{200, 1000}),
	}
	lengths := map[string]int{
		"covered":   1000,
		"partial":   1000,
		"unaligned": 750,
	}

	got := ExtractAll(regions, lengths, 50, 100)

	// Fully covered sequences produce no gaps.
	assert.NotContains(t, got, "covered")
	assert.Equal(t, ivs([2]int{0, 250}), got["partial"])
	// Sequences in the length table with no coverage at all are
	// re-examined whole.
	assert.Equal(t, ivs([2]int{0, 750}), got["unaligned"])
}
