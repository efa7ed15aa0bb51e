package retrieveseq

// GenomicInterval - Receives 1-based posA, posB and returns the strand-aware subsequence.
func (service *genomeResults) GenomicInterval(posA, posB int) (string, error) {
	g := service.genome

	if err := CheckBounds(posA, posB, g.Len()); err != nil {
		return "", err
	}

	return Retrieve(posA, posB, g.Forward, g.Reverse), nil
}
