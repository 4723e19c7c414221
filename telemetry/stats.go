package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FrameStats summarizes the tick durations of one session in milliseconds.
type FrameStats struct {
	Mean float64
	P50  float64
	P95  float64
	Max  float64
}

// ComputeFrameStats sorts a copy of samples and reads its moments.
func ComputeFrameStats(samples []float64) FrameStats {
	if len(samples) == 0 {
		return FrameStats{}
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	return FrameStats{
		Mean: stat.Mean(sorted, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:  stat.Quantile(0.95, stat.Empirical, sorted, nil),
		Max:  sorted[len(sorted)-1],
	}
}
