// Package retrieveseq extracts named subsequences from a single reference
// sequence, reading each coordinate pair from the forward or the reverse
// complement strand according to the order of its two positions.
package retrieveseq

// Sequence is an immutable run of nucleotide letters. The zero value is an
// empty sequence.
type Sequence struct {
	letters string
}

// NewSequence copies b into a new Sequence.
func NewSequence(b []byte) Sequence {
	return Sequence{letters: string(b)}
}

// Len - Return number of letters
func (s Sequence) Len() int {
	return len(s.letters)
}

// Slice returns the letters in the 0-based half-open range [start, end).
func (s Sequence) Slice(start, end int) string {
	return s.letters[start:end]
}

// String returns the whole sequence.
func (s Sequence) String() string {
	return s.letters
}

// ReverseComplement returns s reversed end-to-end with every base replaced
// by its complement. Letters without a complement are kept as they are.
func (s Sequence) ReverseComplement() Sequence {
	n := len(s.letters)
	rc := make([]byte, n)
	for i := 0; i < n; i++ {
		rc[n-1-i] = COMPLEMENT[s.letters[i]]
	}
	return Sequence{letters: string(rc)}
}

// Genome is the forward strand of a single reference sequence together with
// its reverse complement. It is not modified after NewGenome returns.
type Genome struct {
	Name    string
	Forward Sequence
	Reverse Sequence
}

// NewGenome builds a Genome from the forward strand letters.
func NewGenome(name string, forward []byte) *Genome {
	fwd := NewSequence(forward)
	return &Genome{
		Name:    name,
		Forward: fwd,
		Reverse: fwd.ReverseComplement(),
	}
}

// Len - Return genome length in bases
func (g *Genome) Len() int {
	return g.Forward.Len()
}
