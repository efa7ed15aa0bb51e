package retrieveseq

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// WriteRecord writes a single-line FASTA record.
func WriteRecord(w io.Writer, name, seq string) error {
	_, err := fmt.Fprintf(w, "%c%s\n%s\n", HeaderPrefix, name, seq)
	return err
}

// OutputName derives the output file from the genome file:
// genome.FASTA becomes genome-sequences.FASTA, or genome-start_-100_150.FASTA
// for a relative request. 2bit and extension-less genomes get .fasta.
func OutputName(genomePath string, req *RelativeRequest) string {
	ext := filepath.Ext(genomePath)
	base := strings.TrimSuffix(genomePath, ext)
	if ext == "" || strings.EqualFold(ext, ".2bit") {
		ext = ".fasta"
	}

	if req == nil {
		return base + "-sequences" + ext
	}
	return fmt.Sprintf("%s-%s_%d_%d%s", base, req.Mode, req.From, req.To, ext)
}
