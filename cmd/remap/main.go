// Command remap provides a CLI for alignment coverage analysis.
//
// Usage:
//
//	remap [command] [options]
//
// Commands:
//
//	coverage    Merge mappings into covered regions
//	gaps        Extract poorly mapped regions
//	stats       Report covered and to-remap base counts
//	extract     Write gap-region fragments as FASTA
//	relocate    Rewrite fragment mappings onto parent coordinates
//	version     Show version information
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/seqremap/remap-go/pkg/remap"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "coverage":
		coverageCmd(os.Args[2:])
	case "gaps":
		gapsCmd(os.Args[2:])
	case "stats":
		statsCmd(os.Args[2:])
	case "extract":
		extractCmd(os.Args[2:])
	case "relocate":
		relocateCmd(os.Args[2:])
	case "version":
		fmt.Printf("remap v%s - alignment coverage analysis\n", remap.Version())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`remap - Alignment Coverage Analysis Tool

Usage:
  remap <command> [options]

Commands:
  coverage  Merge mappings into covered regions
  gaps      Extract poorly mapped regions for re-alignment
  stats     Report covered and to-remap base counts
  extract   Write gap-region fragments as FASTA
  relocate  Rewrite fragment mappings onto parent coordinates
  version   Show version information
  help      Show this help message

Use "remap <command> -h" for more information about a command.`)
}

// analysisFlags holds the flags shared by the analysis commands.
type analysisFlags struct {
	mappings string
	refs     string
	refFasta string
	config   string
	mapq     int
	context  int
	minSize  int
}

func addAnalysisFlags(fs *flag.FlagSet) *analysisFlags {
	defaults := remap.DefaultOptions()
	af := &analysisFlags{}
	fs.StringVar(&af.mappings, "mappings", "", "mapping file (tab-separated, required)")
	fs.StringVar(&af.refs, "refs", "", "comma-separated reference sequence names")
	fs.StringVar(&af.refFasta, "ref-fasta", "", "reference FASTA; its sequence ids join the reference set")
	fs.StringVar(&af.config, "config", "", "YAML options file")
	fs.IntVar(&af.mapq, "mapq", defaults.MapqCutoff, "minimum mapping quality")
	fs.IntVar(&af.context, "context", defaults.SequenceContext, "bases of context around each gap")
	fs.IntVar(&af.minSize, "min-size", defaults.MinimumSizeRemap, "minimum gap size to keep")
	return af
}

// run loads options, reads mappings, and executes the analysis.
func (af *analysisFlags) run(fs *flag.FlagSet) (*remap.Result, map[string]int) {
	if af.mappings == "" {
		fmt.Fprintln(os.Stderr, "Error: -mappings is required")
		fs.Usage()
		os.Exit(1)
	}

	opts := remap.DefaultOptions()
	if af.config != "" {
		var err error
		opts, err = remap.LoadOptions(af.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	// Flags set explicitly override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mapq":
			opts.MapqCutoff = af.mapq
		case "context":
			opts.SequenceContext = af.context
		case "min-size":
			opts.MinimumSizeRemap = af.minSize
		}
	})

	var references []string
	if af.refs != "" {
		references = strings.Split(af.refs, ",")
	}
	if af.refFasta != "" {
		seqs, err := remap.ReadFASTA(af.refFasta)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading reference FASTA: %v\n", err)
			os.Exit(1)
		}
		for _, seq := range seqs {
			references = append(references, seq.ID)
		}
	}

	records, err := remap.ReadMappings(af.mappings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading mappings: %v\n", err)
		os.Exit(1)
	}
	lengths := remap.LengthsFromRecords(records)

	analyzer := remap.NewAnalyzer(opts, references)
	result, err := analyzer.Analyze(records, lengths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing mappings: %v\n", err)
		os.Exit(1)
	}
	return result, lengths
}

func printRegions(regions map[string][]remap.Interval) {
	ids := make([]string, 0, len(regions))
	for id := range regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, iv := range regions[id] {
			fmt.Printf("%s\t%d\t%d\n", id, iv.Start, iv.Stop)
		}
	}
}

func coverageCmd(args []string) {
	fs := flag.NewFlagSet("coverage", flag.ExitOnError)
	af := addAnalysisFlags(fs)
	peer := fs.Bool("peer", false, "print peer-targeted instead of reference-targeted coverage")
	fs.Parse(args)

	result, _ := af.run(fs)
	if *peer {
		printRegions(result.PeerRegions)
	} else {
		printRegions(result.ReferenceRegions)
	}
}

func gapsCmd(args []string) {
	fs := flag.NewFlagSet("gaps", flag.ExitOnError)
	af := addAnalysisFlags(fs)
	fs.Parse(args)

	result, _ := af.run(fs)
	printRegions(result.Gaps)
}

func statsCmd(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	af := addAnalysisFlags(fs)
	fs.Parse(args)

	result, lengths := af.run(fs)
	fmt.Println(result.Report(lengths))
	fmt.Printf("peer-targeted covered bases: %d\n", result.PeerCoveredTotal)
}

func extractCmd(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	af := addAnalysisFlags(fs)
	fasta := fs.String("fasta", "", "assembly FASTA holding the subject sequences (required)")
	out := fs.String("out", "", "output FASTA for gap fragments (required)")
	fs.Parse(args)

	if *fasta == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "Error: -fasta and -out are required")
		fs.Usage()
		os.Exit(1)
	}

	result, _ := af.run(fs)

	sequences, err := remap.ReadFASTA(*fasta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading FASTA: %v\n", err)
		os.Exit(1)
	}

	fragments, err := remap.ExtractFragments(sequences, result.Gaps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting fragments: %v\n", err)
		os.Exit(1)
	}

	if err := remap.WriteFASTA(*out, fragments); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing fragments: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d fragments to %s\n", len(fragments), *out)
}

func relocateCmd(args []string) {
	fs := flag.NewFlagSet("relocate", flag.ExitOnError)
	in := fs.String("in", "", "mapping file to rewrite (default: stdin)")
	out := fs.String("out", "", "output file (default: stdout)")
	fs.Parse(args)

	input := os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		input = f
	}

	output := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		output = f
	}

	if err := remap.RelocateMappings(input, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error relocating mappings: %v\n", err)
		os.Exit(1)
	}
}
