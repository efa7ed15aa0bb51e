package app

import (
	"flag"
	"fmt"
	"io"
)

const wrongInput = "Wrong input. If you need help, use the -help command (retrieve-seq -help)"

func printUsage(out io.Writer, fs *flag.FlagSet) {
	def := func(name string) string {
		if f := fs.Lookup(name); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintln(out, "retrieve-seq – retrieve ORF sequences from a genome")
	fmt.Fprintf(out, "Version: %s\n\n", Version)
	fmt.Fprintln(out, "Retrieve the sequence of every ORF from a genome, or retrieve sequences relative to")
	fmt.Fprintln(out, "the first, last or both nucleotides of every ORF (e.g. from -100 to +50 relative to")
	fmt.Fprintln(out, "the start codon of every ORF).")

	fmt.Fprintln(out, "\nUsage:")
	fmt.Fprintln(out, "  retrieve-seq [flags] genome.fasta coords.txt [-start|-stop|-startstop from to]")
	fmt.Fprintln(out, "  retrieve-seq -h | -help")

	fmt.Fprintln(out, "\nCoordinate file (name, first nt, last nt; last < first means reverse strand):")
	fmt.Fprintln(out, "  ORF-1 13092 13769")
	fmt.Fprintln(out, "  ORF-2 13738 12953")
	fmt.Fprintln(out, "  ORF-3 54562 54678")

	fmt.Fprintln(out, "\nRelative position:")
	fmt.Fprintln(out, "  -start from to       window anchored at the first nt of every ORF")
	fmt.Fprintln(out, "  -stop from to        window anchored at the last nt of every ORF")
	fmt.Fprintln(out, "  -startstop from to   first nt + from through last nt + to")
	fmt.Fprintln(out, "  e.g. -start -100 +150 retrieves -100 to +150 around the first nt; to must be > from")

	fmt.Fprintln(out, "\nFlags:")
	fmt.Fprintf(out, "  -o string        Output FASTA (appended to) [%s]\n", "<genome>-sequences.<ext>")
	fmt.Fprintf(out, "  -config string   JSON config file [%s]\n", orDefault(def("config"), "retrieve-seq.json"))
	fmt.Fprintf(out, "  -verbose         Debug logging [%s]\n", def("verbose"))
	fmt.Fprintf(out, "  -version         Print version and exit [%s]\n", def("version"))

	fmt.Fprintln(out, "\nGenome input may be FASTA or 2bit; only the first sequence is used.")
}

func orDefault(s, d string) string {
	if s == "" {
		return d
	}
	return s
}
