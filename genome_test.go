package retrieveseq

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFASTAGenomeFirstRecordOnly(t *testing.T) {
	input := ">chrI yeast chromosome I\nACGT\nTTGA\n\n>chrII\nGGGG\n"
	g, err := ReadFASTAGenome(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "chrI" {
		t.Errorf("expected chrI got %q", g.Name)
	}
	if g.Forward.String() != "ACGTTTGA" {
		t.Errorf("expected ACGTTTGA got %s", g.Forward)
	}
	if g.Reverse.String() != "TCAAACGT" {
		t.Errorf("expected TCAAACGT got %s", g.Reverse)
	}
}

func TestReadFASTAGenomeKeepsUnknownLetters(t *testing.T) {
	g, err := ReadFASTAGenome(strings.NewReader(">x\nacgXN\n"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Forward.String() != "acgXN" {
		t.Errorf("expected acgXN got %s", g.Forward)
	}
}

func TestReadFASTAGenomeEmpty(t *testing.T) {
	for _, input := range []string{"", ">empty\n"} {
		if _, err := ReadFASTAGenome(strings.NewReader(input)); !errors.Is(err, ErrNoSequence) {
			t.Errorf("input %q: expected ErrNoSequence got %v", input, err)
		}
	}
}

func TestLoadGenome(t *testing.T) {
	dir := t.TempDir()

	fa := filepath.Join(dir, "genome.FASTA")
	if err := os.WriteFile(fa, []byte(">chr1\nAGCCC\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tb := filepath.Join(dir, "insulin.2bit")
	if err := os.WriteFile(tb, insulin2bit, 0o644); err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		path   string
		name   string
		length int
	}{
		{fa, "chr1", 5},
		{tb, "chr4", 1431},
	}
	for i, test := range tt {
		g, err := LoadGenome(test.path)
		if err != nil {
			t.Fatalf("test number %d: %v", i, err)
		}
		if g.Name != test.name || g.Len() != test.length {
			t.Errorf("expected %s/%d got %s/%d on test number %d", test.name, test.length, g.Name, g.Len(), i)
		}
		if g.Forward.Slice(0, 5) != "AGCCC" {
			t.Errorf("expected AGCCC got %s on test number %d", g.Forward.Slice(0, 5), i)
		}
	}

	if _, err := LoadGenome(filepath.Join(dir, "missing.fa")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error got %v", err)
	}
}

func TestNewDataService(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insulin.2bit")
	if err := os.WriteFile(path, insulin2bit, 0o644); err != nil {
		t.Fatal(err)
	}

	service, err := NewDataService(path)
	if err != nil {
		t.Fatal(err)
	}
	if service.Genome().Name != "chr4" {
		t.Errorf("expected chr4 got %s", service.Genome().Name)
	}
	seq, err := service.GenomicInterval(1, 5)
	if err != nil || seq != "AGCCC" {
		t.Errorf("expected AGCCC got %q (%v)", seq, err)
	}
}

func TestReadFASTAGenomeWithoutHeader(t *testing.T) {
	tt := []struct {
		input    string
		expected string
	}{
		{"ACGTACGT\n", "ACGTACGT"},
		{"\n  ACGT\nTTGA\n>chrII\nGGGG\n", "ACGTTTGA"},
		{">chrI\nAC\n", "AC"},
	}
	for i, test := range tt {
		g, err := ReadFASTAGenome(strings.NewReader(test.input))
		if err != nil {
			t.Fatalf("test number %d: %v", i, err)
		}
		if g.Forward.String() != test.expected {
			t.Errorf("expected %v got %v on test number %d", test.expected, g.Forward, i)
		}
	}
}
