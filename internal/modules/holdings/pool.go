package holdings

import (
	"sync"

	"github.com/tradelens/tradelens/internal/domain"
)

// lookupJob is a single valuation job for the worker pool.
type lookupJob struct {
	position domain.PositionSummary
	index    int
}

// lookupResult carries a valued holding back to its pre-assigned slot.
type lookupResult struct {
	holding Holding
	index   int
}

// fetchBatch values all open positions in parallel with a bounded worker
// pool. Results land in a pre-sized slice indexed by job index, so output
// order matches input order regardless of lookup completion order.
func (s *Service) fetchBatch(positions []domain.PositionSummary) []Holding {
	numJobs := len(positions)
	if numJobs == 0 {
		return []Holding{}
	}

	jobs := make(chan lookupJob, numJobs)
	results := make(chan lookupResult, numJobs)

	numWorkers := s.numWorkers
	if numJobs < numWorkers {
		numWorkers = numJobs // Don't spawn more workers than jobs
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- lookupResult{
					index:   job.index,
					holding: s.fetchHolding(job.position),
				}
			}
		}()
	}

	for idx, ps := range positions {
		jobs <- lookupJob{index: idx, position: ps}
	}
	close(jobs)

	wg.Wait()
	close(results)

	holdings := make([]Holding, numJobs)
	for result := range results {
		holdings[result.index] = result.holding
	}
	return holdings
}
