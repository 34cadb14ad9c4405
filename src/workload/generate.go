package workload

import (
	"fmt"
	"math"
	"math/rand/v2"

	mapset "github.com/deckarep/golang-set/v2"
	"gonum.org/v1/gonum/stat/distuv"
)

// maxDrawsPerValue bounds the rejection sampling used for unique workloads.
const maxDrawsPerValue = 100

// GenerateWorkload draws n values from a normal distribution, rounded to the
// nearest integer. With unique set, repeated draws are rejected.
func GenerateWorkload(n int, mean, stdDev float64, unique bool, seed uint64) (*Workload, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative number of values: %d", n)
	}
	if stdDev < 0 {
		return nil, fmt.Errorf("negative standard deviation: %v", stdDev)
	}
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: stdDev,
		Src:   rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}

	w := &Workload{Values: make([]int, 0, n)}
	seen := mapset.NewThreadUnsafeSet[int]()
	draws := 0
	for len(w.Values) < n {
		if draws == maxDrawsPerValue*n {
			return nil, fmt.Errorf("could not draw %d unique values with mean %v and standard deviation %v", n, mean, stdDev)
		}
		draws++
		v := int(math.Round(dist.Rand()))
		if unique && !seen.Add(v) {
			continue
		}
		w.Values = append(w.Values, v)
	}
	return w, nil
}

// Distinct counts the different values in the workload.
func (w *Workload) Distinct() int {
	return mapset.NewThreadUnsafeSet(w.Values...).Cardinality()
}
