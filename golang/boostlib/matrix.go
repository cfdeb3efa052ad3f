package boostlib

import (
	"math"
	"sort"
)

// Matrix is a row-major feature table with an optional label column. The
// raw Features are never mutated once built; CreateBins/ApplyBins derive
// the Binned view used by training from them.
type Matrix struct {
	NRows, NCols int
	Features     []float32
	Labels       []float32
	Names        []string

	Bins   []BinInfo
	Binned []uint8
	NBins  int
}

// NewMatrix builds a Matrix from a flat, row-major feature slice and an
// optional label slice.
func NewMatrix(features, labels []float32, nRows, nCols int) (*Matrix, error) {
	return NewMatrixWithNames(features, labels, nRows, nCols, nil)
}

// NewMatrixWithNames is NewMatrix plus column names, used by collaborators
// (the CSV loader) that know the original header.
func NewMatrixWithNames(features, labels []float32, nRows, nCols int, names []string) (*Matrix, error) {
	if len(features) != nRows*nCols {
		return nil, Errorf(InconsistentShape, "feature vector length %d does not match %d rows x %d cols", len(features), nRows, nCols)
	}
	if len(labels) != 0 && len(labels) != nRows {
		return nil, Errorf(InconsistentShape, "label vector length %d does not match %d rows", len(labels), nRows)
	}
	if names != nil && len(names) != nCols {
		return nil, Errorf(InconsistentShape, "column name count %d does not match %d cols", len(names), nCols)
	}
	return &Matrix{NRows: nRows, NCols: nCols, Features: features, Labels: labels, Names: names}, nil
}

// HasLabels reports whether this matrix carries one label per row.
func (m *Matrix) HasLabels() bool {
	return len(m.Labels) == m.NRows && m.NRows > 0
}

func isNaN32(v float32) bool {
	return math.IsNaN(float64(v))
}

// BinInfo holds the quantile edges for one feature column. Edges has at
// most n_bins-1 entries: exactly n_bins-1 in the quantile branch, and one
// per distinct value (fewer than n_bins) in the few-unique-values branch of
// CreateBins. The edge count — and with it the reserved missing code —
// therefore varies per column but is always below n_bins.
type BinInfo struct {
	Edges []float32
}

// GetBin returns v's bin code: the index of the first edge strictly
// greater than v. The missing code is this column's own edge count (not a
// matrix-wide n_bins-1), matching data.cpp's BinInfo::get_bin, which
// returns splits.size() for missing and upper_bound's distance otherwise.
func (b BinInfo) GetBin(v float32) uint8 {
	if isNaN32(v) {
		return uint8(len(b.Edges))
	}
	idx := sort.Search(len(b.Edges), func(i int) bool { return b.Edges[i] > v })
	return uint8(idx)
}

// CreateBins derives per-column quantile edges from this matrix's own raw
// data: a column with fewer than nBins distinct non-missing values gets one
// edge per value; otherwise nBins-1 approximate quantile edges are taken
// from the sorted unique values. The binned view is rebuilt immediately.
func (m *Matrix) CreateBins(nBins int) error {
	if nBins < 1 || nBins > 256 {
		return Errorf(InvalidConfiguration, "n_bins must be in [1, 256], got %d", nBins)
	}
	bins := make([]BinInfo, m.NCols)
	for col := 0; col < m.NCols; col++ {
		values := make([]float32, 0, m.NRows)
		for row := 0; row < m.NRows; row++ {
			v := m.Features[row*m.NCols+col]
			if !isNaN32(v) {
				values = append(values, v)
			}
		}
		sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
		values = dedupSortedFloat32(values)

		if len(values) < nBins {
			bins[col] = BinInfo{Edges: values}
			continue
		}

		edges := make([]float32, nBins-1)
		u := len(values)
		for i := 1; i <= nBins-1; i++ {
			edges[i-1] = values[i*u/nBins]
		}
		bins[col] = BinInfo{Edges: edges}
	}
	m.Bins = bins
	m.NBins = nBins
	m.rebin()
	return nil
}

// ApplyBins projects this matrix through another matrix's already-computed
// bin edges, without recomputing them — the inference-time path.
func (m *Matrix) ApplyBins(reference *Matrix) error {
	if reference.Bins == nil {
		return Errorf(FormatError, "reference matrix has no bin edges computed")
	}
	if reference.NCols != m.NCols {
		return Errorf(InconsistentShape, "reference matrix has %d columns, this matrix has %d", reference.NCols, m.NCols)
	}
	m.Bins = reference.Bins
	m.NBins = reference.NBins
	m.rebin()
	return nil
}

func (m *Matrix) rebin() {
	m.Binned = make([]uint8, m.NRows*m.NCols)
	for row := 0; row < m.NRows; row++ {
		for col := 0; col < m.NCols; col++ {
			v := m.Features[row*m.NCols+col]
			m.Binned[row*m.NCols+col] = m.Bins[col].GetBin(v)
		}
	}
}

func dedupSortedFloat32(values []float32) []float32 {
	if len(values) == 0 {
		return values
	}
	out := values[:1]
	for _, v := range values[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Subset returns a new Matrix containing only the given row indices, with
// no bin information — callers that need a binned subset call CreateBins
// or ApplyBins on the result.
func (m *Matrix) Subset(rows []int) *Matrix {
	features := make([]float32, len(rows)*m.NCols)
	var labels []float32
	if m.HasLabels() {
		labels = make([]float32, len(rows))
	}
	for i, r := range rows {
		copy(features[i*m.NCols:(i+1)*m.NCols], m.Features[r*m.NCols:(r+1)*m.NCols])
		if labels != nil {
			labels[i] = m.Labels[r]
		}
	}
	return &Matrix{NRows: len(rows), NCols: m.NCols, Features: features, Labels: labels, Names: m.Names}
}
