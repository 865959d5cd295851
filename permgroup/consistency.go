package permgroup

import (
	"fmt"
	"math/big"
	"math/rand"
	"runtime"
)

// ConsistentOrder computes the order of the group generated
// by gens with trials independent BSGS constructions, each
// with its own random base choices, and checks that they
// all agree.
//
// Constructions run in parallel on GOMAXPROCS workers.
func ConsistentOrder(n int, gens []Perm, trials int) (*big.Int, error) {
	checkGenerators(n, gens)
	if trials < 1 {
		trials = 1
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > trials {
		workers = trials
	}
	nExtra := trials % workers
	results := make(chan []*big.Int, workers)
	for i := 0; i < workers; i++ {
		trialsPerWorker := trials / workers
		if i < nExtra {
			trialsPerWorker += 1
		}
		rng := rand.New(rand.NewSource(rand.Int63()))
		go func() {
			results <- orderTrials(rng, n, gens, trialsPerWorker)
		}()
	}

	var first *big.Int
	var err error
	for i := 0; i < workers; i++ {
		for _, order := range <-results {
			if first == nil {
				first = order
			} else if first.Cmp(order) != 0 && err == nil {
				err = fmt.Errorf("%w: %s and %s", ErrInconsistentOrder, first, order)
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return first, nil
}

func orderTrials(rng *rand.Rand, n int, gens []Perm, trials int) []*big.Int {
	res := make([]*big.Int, trials)
	for i := range res {
		res[i] = OrderRand(n, gens, rng)
	}
	return res
}
