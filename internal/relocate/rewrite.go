package relocate

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seqremap/remap-go/internal/interval"
)

// Rewrite streams a tab-separated mapping file from r to w, relocating
// every line whose subject column names a fragment. Only the subject,
// start, and stop columns change; all other columns, and lines whose
// subject is not a fragment, are copied through untouched.
func Rewrite(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	out := bufio.NewWriter(w)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		rewritten, err := rewriteLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		if _, err := out.WriteString(rewritten + "\n"); err != nil {
			return fmt.Errorf("writing mappings: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading mappings: %w", err)
	}
	return out.Flush()
}

func rewriteLine(line string) (string, error) {
	if line == "" || strings.HasPrefix(line, "@") {
		return line, nil
	}
	fields := strings.Split(line, "\t")
	if len(fields) < 4 {
		return line, nil
	}

	frag, ok, err := ParseName(fields[0])
	if err != nil {
		return "", err
	}
	if !ok {
		return line, nil
	}

	start, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", fmt.Errorf("%w: start column %q for fragment %q",
			interval.ErrMalformedRecord, fields[2], fields[0])
	}
	stop, err := strconv.Atoi(fields[3])
	if err != nil {
		return "", fmt.Errorf("%w: stop column %q for fragment %q",
			interval.ErrMalformedRecord, fields[3], fields[0])
	}

	fields[0] = frag.Parent
	fields[2] = strconv.Itoa(start + frag.Start)
	fields[3] = strconv.Itoa(stop + frag.Start)
	return strings.Join(fields, "\t"), nil
}
