package remap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sequence is one FASTA record.
type Sequence struct {
	ID          string
	Description string
	Bases       string
}

// Len returns the sequence length in bases.
func (s Sequence) Len() int {
	return len(s.Bases)
}

// ToFASTA renders the sequence as a FASTA record.
func (s Sequence) ToFASTA() string {
	header := ">" + s.ID
	if s.Description != "" {
		header += " " + s.Description
	}
	return header + "\n" + s.Bases + "\n"
}

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(filename string) ([]Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ParseFASTA parses FASTA format from a reader.
func ParseFASTA(r io.Reader) ([]Sequence, error) {
	sequences := make([]Sequence, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var currentID, currentDesc string
	var currentBases strings.Builder
	seen := false

	flushSequence := func() {
		if seen {
			sequences = append(sequences, Sequence{
				ID:          currentID,
				Description: currentDesc,
				Bases:       currentBases.String(),
			})
			currentBases.Reset()
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			// Flush previous sequence
			flushSequence()
			seen = true

			// Parse header
			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentID = parts[0]
			if len(parts) > 1 {
				currentDesc = parts[1]
			} else {
				currentDesc = ""
			}
		} else {
			currentBases.WriteString(line)
		}
	}

	// Flush last sequence
	flushSequence()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return sequences, nil
}

// WriteFASTA writes sequences to a FASTA file.
func WriteFASTA(filename string, sequences []Sequence) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	for _, seq := range sequences {
		if _, err := file.WriteString(seq.ToFASTA()); err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}

	return nil
}

// SequenceLengths builds a length table from parsed sequences.
func SequenceLengths(sequences []Sequence) map[string]int {
	lengths := make(map[string]int, len(sequences))
	for _, seq := range sequences {
		lengths[seq.ID] = seq.Len()
	}
	return lengths
}

// ExtractFragments excises the gap regions of each sequence as fragment
// records named for relocation. Regions outside the sequence bounds are
// an error; identical fragments are emitted once.
func ExtractFragments(sequences []Sequence, gapRegions map[string][]Interval) ([]Sequence, error) {
	var fragments []Sequence
	written := make(map[string]bool)

	for _, seq := range sequences {
		for _, gap := range gapRegions[seq.ID] {
			if gap.Start < 0 || gap.Stop > seq.Len() {
				return nil, fmt.Errorf("gap %v outside sequence %q (length %d)",
					gap, seq.ID, seq.Len())
			}
			frag := Fragment{Parent: seq.ID, Start: gap.Start, Stop: gap.Stop}
			name := frag.Name()
			if written[name] {
				continue
			}
			written[name] = true
			fragments = append(fragments, Sequence{
				ID:    name,
				Bases: seq.Bases[gap.Start:gap.Stop],
			})
		}
	}
	return fragments, nil
}
