package retrieveseq

// Service includes all services
type Service interface {
	// Genome returns the loaded reference.
	Genome() *Genome

	// Genomic Interval-based services

	// returns the subsequence between two 1-based positions, strand taken from their order
	GenomicInterval(posA, posB int) (string, error)
	// returns the window relative to a feature's start, stop or both
	GetGenomicIntervalWindow(start, end int, req RelativeRequest) (string, error)
}

type genomeResults struct {
	genome *Genome
}

// NewService - Serve intervals from a genome already in memory
func NewService(g *Genome) Service {
	return &genomeResults{genome: g}
}

// NewDataService - Open a FASTA or 2bit genome reference
func NewDataService(genomeFile string) (Service, error) {
	g, err := LoadGenome(genomeFile)
	if err != nil {
		return nil, err
	}

	return NewService(g), nil
}

func (service *genomeResults) Genome() *Genome {
	return service.genome
}
