package edgebound

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteText writes one "<mode>\t<line>\t<lb>\t<rb>" line per band, per
// spec.md §6's debugging dump format.
func WriteText(w io.Writer, s *Set) error {
	bw := bufio.NewWriter(w)
	for _, b := range s.Bands {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%d\n", s.Mode, b.Line, b.Lb, b.Rb); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadText parses the format WriteText produces. Every line must use the
// same mode; ReadText returns an error otherwise.
func ReadText(r io.Reader) (*Set, error) {
	sc := bufio.NewScanner(r)
	var out *Set
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("edgebound: malformed line %q", line)
		}
		mode, err := parseMode(fields[0])
		if err != nil {
			return nil, err
		}
		lineIdx, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("edgebound: bad line index %q: %w", fields[1], err)
		}
		lb, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("edgebound: bad lb %q: %w", fields[2], err)
		}
		rb, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("edgebound: bad rb %q: %w", fields[3], err)
		}
		if out == nil {
			out = New(mode)
		} else if out.Mode != mode {
			return nil, fmt.Errorf("edgebound: mixed modes in one file")
		}
		out.Add(lineIdx, lb, rb)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = New(Diag)
	}
	return out, nil
}

func parseMode(s string) (Mode, error) {
	switch s {
	case "DIAG":
		return Diag, nil
	case "ROW":
		return Row, nil
	default:
		return 0, fmt.Errorf("edgebound: unknown mode %q", s)
	}
}
