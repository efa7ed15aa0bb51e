package retrieveseq

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func thousandBases() *Genome {
	return NewGenome("chr", []byte(strings.Repeat("ACGTTGCAAG", 100)))
}

func TestExtract(t *testing.T) {
	coords := strings.Join([]string{
		"A 1 10",
		"",
		"B 1000 990",
		"X 1001 1050",
		"Y abc 20",
		"Z 5",
		"N -1 4",
		"   ",
		"C 95 110",
	}, "\n")

	var out, logs bytes.Buffer
	sum, err := Extract(thousandBases(), strings.NewReader(coords), &out, Options{
		Source: "coords.txt",
		Logger: log.New(&logs),
	})
	if err != nil {
		t.Fatal(err)
	}

	want := ">A\nACGTTGCAAG\n>B\nCTTGCAACGTC\n>C\nTGCAAGACGTTGCAAG\n"
	if out.String() != want {
		t.Errorf("expected output\n%s\ngot\n%s", want, out.String())
	}
	if sum.Written != 3 || sum.Skipped != 4 {
		t.Errorf("expected 3 written 4 skipped got %+v", sum)
	}

	for _, s := range []string{
		"position bigger than genome size",
		"wrong data point",
		"negative position",
		"X 1001 1050",
		"Y abc 20",
		"line=4",
		"line=5",
	} {
		if !strings.Contains(logs.String(), s) {
			t.Errorf("expected log to mention %q, got:\n%s", s, logs.String())
		}
	}
}

func TestExtractRelative(t *testing.T) {
	coords := "A 10 20\nB 30 21\nE 3 9\n"

	var out bytes.Buffer
	sum, err := Extract(thousandBases(), strings.NewReader(coords), &out, Options{
		Relative: &RelativeRequest{Mode: ModeStart, From: -5, To: 5},
	})
	if err != nil {
		t.Fatal(err)
	}

	// E is remapped to (-2, 8) and skipped
	want := ">A\nTGCAAGACGTT\n>B\nAACGTCTTGCA\n"
	if out.String() != want {
		t.Errorf("expected output\n%s\ngot\n%s", want, out.String())
	}
	if sum.Written != 2 || sum.Skipped != 1 {
		t.Errorf("expected 2 written 1 skipped got %+v", sum)
	}
}

func TestExtractRejectsOffsetOrder(t *testing.T) {
	var out bytes.Buffer
	_, err := Extract(thousandBases(), strings.NewReader("A 10 20\n"), &out, Options{
		Relative: &RelativeRequest{Mode: ModeStart, From: 50, To: 10},
	})
	if !errors.Is(err, ErrOffsetOrder) {
		t.Errorf("expected ErrOffsetOrder got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output got %q", out.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExtractWriteError(t *testing.T) {
	_, err := Extract(thousandBases(), strings.NewReader("A 1 10\n"), failWriter{}, Options{})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected write error got %v", err)
	}
}

func TestExtractLongLineIsSkipped(t *testing.T) {
	coords := "A 1 10\njunk " + strings.Repeat("x", 70000) + "\nB 1 5\n"

	var out bytes.Buffer
	sum, err := Extract(thousandBases(), strings.NewReader(coords), &out, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := ">A\nACGTTGCAAG\n>B\nACGTT\n"; out.String() != want {
		t.Errorf("expected output\n%s\ngot\n%s", want, out.String())
	}
	if sum.Written != 2 || sum.Skipped != 1 {
		t.Errorf("expected 2 written 1 skipped got %+v", sum)
	}
}

func TestExtractLastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	sum, err := Extract(thousandBases(), strings.NewReader("A 1 10\n\nB 1 5"), &out, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Written != 2 || !strings.HasSuffix(out.String(), ">B\nACGTT\n") {
		t.Errorf("expected B to be written, got %+v\n%s", sum, out.String())
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestExtractReadError(t *testing.T) {
	tt := []struct {
		source   string
		expected string
	}{
		{"", "read coordinates: device gone"},
		{"orfs.txt", "read orfs.txt: device gone"},
	}
	for i, test := range tt {
		var out bytes.Buffer
		_, err := Extract(thousandBases(), failReader{}, &out, Options{Source: test.source})
		if err == nil || err.Error() != test.expected {
			t.Errorf("expected %v got %v on test number %d", test.expected, err, i)
		}
	}
}
