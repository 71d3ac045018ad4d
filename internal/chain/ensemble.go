package chain

import "sync"

// Ensemble runs several independent chains of the same configuration
// concurrently, one goroutine per chain, with derived seeds seedBase+i.
// Chains share nothing; results come back in member order.
type Ensemble struct {
	distType string
	stepSize float64
	numSteps int
	runs     int
	seedBase int64
}

func NewEnsemble(distType string, stepSize float64, numSteps int, runs int, seedBase int64) *Ensemble {
	return &Ensemble{
		distType: distType,
		stepSize: stepSize,
		numSteps: numSteps,
		runs:     runs,
		seedBase: seedBase,
	}
}

func (e *Ensemble) Run(startX, startY float64, n int) ([]*Result, error) {
	results := make([]*Result, e.runs)
	errs := make([]error, e.runs)

	var wg sync.WaitGroup
	for i := 0; i < e.runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = SampleSeeded(
				n, e.stepSize, e.numSteps, startX, startY, e.distType,
				e.seedBase+int64(idx),
			)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
