package retrieveseq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ErrNoSequence is returned when a genome file holds no sequence letters.
var ErrNoSequence = errors.New("no sequence found")

// LoadGenome reads the first record of a FASTA or 2bit file. Records after
// the first are ignored.
func LoadGenome(path string) (*Genome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var g *Genome
	if strings.EqualFold(filepath.Ext(path), ".2bit") {
		g, err = ReadTwoBitGenome(bytes.NewReader(data))
	} else {
		g, err = ReadFASTAGenome(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// ReadFASTAGenome reads the first FASTA record from r. Sequence lines
// before any header are read as an unnamed first record.
func ReadFASTAGenome(r io.Reader) (*Genome, error) {
	sc := seqio.NewScanner(fasta.NewReader(withHeader(r), linear.NewSeq("", nil, alphabet.DNA)))
	if !sc.Next() {
		if err := sc.Error(); err != nil {
			return nil, fmt.Errorf("error during fasta read: %w", err)
		}
		return nil, ErrNoSequence
	}

	s, ok := sc.Seq().(*linear.Seq)
	if !ok {
		return nil, fmt.Errorf("unexpected sequence type %T", sc.Seq())
	}
	if len(s.Seq) == 0 {
		return nil, fmt.Errorf("%w in record %q", ErrNoSequence, s.Name())
	}

	forward := make([]byte, len(s.Seq))
	for i, l := range s.Seq {
		forward[i] = byte(l)
	}

	return NewGenome(s.Name(), forward), nil
}

// withHeader puts an empty header in front of r when its first non-blank
// byte does not start a header line.
func withHeader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			return br
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		_ = br.UnreadByte()
		if b == HeaderPrefix {
			return br
		}
		return io.MultiReader(strings.NewReader(string(HeaderPrefix)+"\n"), br)
	}
}

// ReadTwoBitGenome reads the first record, in file order, of a 2bit file.
func ReadTwoBitGenome(r io.ReadSeeker) (*Genome, error) {
	tb, err := newTwoBitReader(r)
	if err != nil {
		return nil, err
	}
	if len(tb.names) == 0 {
		return nil, ErrNoSequence
	}

	name := tb.names[0]
	seq, err := tb.readSequence(name)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w in record %q", ErrNoSequence, name)
	}

	return NewGenome(name, seq), nil
}
