package retrieveseq

// GetGenomicIntervalWindow - Remaps the feature (start, end) with req and returns the window sequence.
func (service *genomeResults) GetGenomicIntervalWindow(start, end int, req RelativeRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	posA, posB := req.Apply(start, end)

	return service.GenomicInterval(posA, posB)
}
