package boostlib

import "gorgonia.org/tensor"

// Histograms holds per-feature, per-bin sums of gradients and hessians for
// one node's row set, stored as two dense tensors shaped (n_cols, n_bins).
// The tensor-backed storage keeps the accumulation buffers contiguous, the
// way the teacher's own histogram tensors are shaped in
// find_the_best_split.go; a fresh pair is allocated for every node.
type Histograms struct {
	NCols, NBins int
	G, H         *tensor.Dense
}

func newHistograms(nCols, nBins int) *Histograms {
	return &Histograms{
		NCols: nCols,
		NBins: nBins,
		G:     tensor.New(tensor.WithShape(nCols, nBins), tensor.Of(tensor.Float32)),
		H:     tensor.New(tensor.WithShape(nCols, nBins), tensor.Of(tensor.Float32)),
	}
}

func (hs *Histograms) gData() []float32 { return hs.G.Data().([]float32) }
func (hs *Histograms) hData() []float32 { return hs.H.Data().([]float32) }

// Get returns the gradient and hessian sum for one (feature, bin) pair.
func (hs *Histograms) Get(feature, bin int) (float32, float32) {
	idx := feature*hs.NBins + bin
	return hs.gData()[idx], hs.hData()[idx]
}

// BuildHistograms aggregates g and h over rows into per-feature, per-bin
// sums. Columns are processed in parallel, one worker stripe per feature;
// since a worker only ever touches its own stripe of the backing array,
// no reduction step is needed and the result does not depend on thread
// count or scheduling order.
func BuildHistograms(m *Matrix, rows []int, g, h []float32, pool *Pool) *Histograms {
	hs := newHistograms(m.NCols, m.NBins)
	gdata := hs.gData()
	hdata := hs.hData()
	nBins := m.NBins
	nCols := m.NCols

	pool.ParallelFor(nCols, func(col int) {
		base := col * nBins
		for _, r := range rows {
			bin := int(m.Binned[r*nCols+col])
			gdata[base+bin] += g[r]
			hdata[base+bin] += h[r]
		}
	})
	return hs
}
