package boostlib

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Objective is the capability set the boosting loop selects once, at
// training entry: a base-score initialiser, a gradient/hessian computation
// and a final transform. The round loop calls GradHess through this
// interface once per round, and its per-row loop runs inside the concrete
// implementation; FinalTransform is called through the interface per row
// when the round's metric is computed.
type Objective interface {
	BaseScore(labels []float32) float32
	GradHess(labels, preds, g, h []float32, pool *Pool)
	FinalTransform(raw float32) float32
}

func objectiveFor(task Task) (Objective, error) {
	switch task {
	case TaskRegression:
		return RegressionObjective{}, nil
	case TaskBinary:
		return BinaryObjective{}, nil
	default:
		return nil, Errorf(InvalidConfiguration, "unknown task %q", task)
	}
}

func meanFloat32(values []float32) float32 {
	x := make([]float64, len(values))
	for i, v := range values {
		x[i] = float64(v)
	}
	return float32(stat.Mean(x, nil))
}

// RegressionObjective is squared-error: g = yhat - y, h = 1.
type RegressionObjective struct{}

func (RegressionObjective) BaseScore(labels []float32) float32 {
	return meanFloat32(labels)
}

func (RegressionObjective) GradHess(labels, preds, g, h []float32, pool *Pool) {
	pool.ParallelFor(len(labels), func(i int) {
		g[i] = preds[i] - labels[i]
		h[i] = 1
	})
}

func (RegressionObjective) FinalTransform(raw float32) float32 { return raw }

// BinaryObjective is binary logistic: g = p - y, h = p(1-p).
type BinaryObjective struct{}

func sigmoid32(x float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(x))))
}

func (BinaryObjective) BaseScore(labels []float32) float32 {
	mean := meanFloat32(labels)
	if mean < 0.01 {
		mean = 0.01
	}
	if mean > 0.99 {
		mean = 0.99
	}
	return float32(math.Log(float64(mean) / float64(1-mean)))
}

func (BinaryObjective) GradHess(labels, preds, g, h []float32, pool *Pool) {
	pool.ParallelFor(len(labels), func(i int) {
		p := sigmoid32(preds[i])
		g[i] = p - labels[i]
		h[i] = p * (1 - p)
	})
}

func (BinaryObjective) FinalTransform(raw float32) float32 { return sigmoid32(raw) }
