package retrieveseq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options controls Extract.
type Options struct {
	// Relative remaps every feature before retrieval when set.
	Relative *RelativeRequest
	// Source names the coordinate file in log messages.
	Source string
	// Logger receives one error entry per skipped line. Nil discards.
	Logger *log.Logger
}

// Summary counts what Extract did with the coordinate lines.
type Summary struct {
	Written int
	Skipped int
}

// Extract reads coordinate lines from coords and writes one FASTA record to
// out for every line that parses and lies inside g. Lines that fail are
// logged and skipped; only read and write errors stop the run.
func Extract(g *Genome, coords io.Reader, out io.Writer, opts Options) (Summary, error) {
	var sum Summary

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opts.Relative != nil {
		if err := opts.Relative.Validate(); err != nil {
			return sum, err
		}
	}

	svc := NewService(g)
	br := bufio.NewReader(coords)
	lineNo := 0

	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return sum, readError(opts.Source, readErr)
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++

		line := strings.TrimSpace(raw)
		if line == "" {
			if readErr == io.EOF {
				break
			}
			continue
		}

		seq, err := extractLine(svc, line, opts.Relative)
		if err != nil {
			var rerr *RecordError
			if !errors.As(err, &rerr) {
				return sum, err
			}
			rerr.Line = lineNo
			logger.Error(skipReason(rerr.Err),
				"file", opts.Source,
				"line", rerr.Line,
				"name", rerr.Name,
				"content", rerr.Content,
			)
			sum.Skipped++
		} else {
			if err := WriteRecord(out, seq.name, seq.letters); err != nil {
				return sum, fmt.Errorf("write %s: %w", seq.name, err)
			}
			logger.Debug("retrieved", "line", lineNo, "name", seq.name, "length", len(seq.letters))
			sum.Written++
		}

		if readErr == io.EOF {
			break
		}
	}

	return sum, nil
}

func readError(source string, err error) error {
	if source == "" {
		return fmt.Errorf("read coordinates: %w", err)
	}
	return fmt.Errorf("read %s: %w", source, err)
}

type namedSeq struct {
	name    string
	letters string
}

func extractLine(svc Service, line string, rel *RelativeRequest) (namedSeq, error) {
	content := strings.Join(strings.Fields(line), " ")

	c, err := ParseCoordinate(line)
	if err != nil {
		return namedSeq{}, &RecordError{Name: c.Name, Content: content, Err: err}
	}

	var letters string
	if rel != nil {
		// With To > From the window keeps the feature's orientation.
		posA, posB := rel.Apply(c.PosA, c.PosB)
		content = fmt.Sprintf("%s %d %d", c.Name, posA, posB)
		letters, err = svc.GetGenomicIntervalWindow(c.PosA, c.PosB, *rel)
	} else {
		letters, err = svc.GenomicInterval(c.PosA, c.PosB)
	}
	if err != nil {
		return namedSeq{}, &RecordError{Name: c.Name, Content: content, Err: err}
	}

	return namedSeq{name: c.Name, letters: letters}, nil
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrNegativePosition):
		return "negative position, sequence skipped"
	case errors.Is(err, ErrZeroPosition):
		return "position 0, sequence skipped"
	case errors.Is(err, ErrBeyondGenome):
		return "position bigger than genome size, sequence skipped"
	default:
		return "wrong data point, sequence skipped"
	}
}
