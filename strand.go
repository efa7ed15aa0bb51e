package retrieveseq

// Strand is the orientation of a coordinate pair.
type Strand int

const (
	// Forward - second coordinate lies after the first
	Forward Strand = iota
	// Reverse - second coordinate lies at or before the first
	Reverse
)

func (s Strand) String() string {
	if s == Forward {
		return "+"
	}
	return "-"
}

// Orient infers the strand of the 1-based pair (a, b).
func Orient(a, b int) Strand {
	if b > a {
		return Forward
	}
	return Reverse
}

// Retrieve returns the subsequence spanned by the 1-based inclusive
// positions posA and posB. When posB > posA it is read from the forward
// strand, otherwise from the reverse complement, where forward position p
// sits at L-p+1. Equal positions take the reverse branch.
//
// Both positions must already lie in [1, L]; see CheckBounds.
func Retrieve(posA, posB int, forward, reverse Sequence) string {
	if Orient(posA, posB) == Forward {
		return forward.Slice(posA-1, posB)
	}
	l := forward.Len()
	return reverse.Slice(l-posA, l-posB+1)
}
