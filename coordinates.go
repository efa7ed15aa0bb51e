package retrieveseq

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedRecord - the line is not "name posA posB"
var ErrMalformedRecord = errors.New("wrong data point")

// Coordinate is one line of a coordinate table: a feature name and two
// 1-based inclusive positions whose order encodes the strand.
type Coordinate struct {
	Name string
	PosA int
	PosB int
}

// Strand - orientation of the pair as written
func (c Coordinate) Strand() Strand {
	return Orient(c.PosA, c.PosB)
}

// ParseCoordinate splits a whitespace separated "name posA posB" line.
// Fields after the third are ignored.
func ParseCoordinate(line string) (Coordinate, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Coordinate{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRecord, len(fields))
	}

	posA, err := strconv.Atoi(fields[1])
	if err != nil {
		return Coordinate{Name: fields[0]}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	posB, err := strconv.Atoi(fields[2])
	if err != nil {
		return Coordinate{Name: fields[0]}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	return Coordinate{Name: fields[0], PosA: posA, PosB: posB}, nil
}

// RecordError describes a coordinate line that was skipped.
type RecordError struct {
	Line    int    // 1-based line number in the coordinate file
	Name    string // feature name, if one could be read
	Content string // the line, whitespace normalised
	Err     error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Content, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
