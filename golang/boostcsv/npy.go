package boostcsv

import (
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/tarstars/boostedgo/golang/boostlib"
)

// LoadNpy reads a 2-D float64 .npy array at path as a feature-only matrix
// (no labels): one row per sample, one column per feature. Supplements the
// CSV loader for callers already working with numpy-produced fixtures, the
// way the teacher's own tooling round-trips predictions and learning curves
// through npyio.
func LoadNpy(path string) (*boostlib.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, boostlib.Errorf(boostlib.IoError, "open %s: %v", path, err)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, boostlib.Errorf(boostlib.ParseError, "npy header %s: %v", path, err)
	}

	dense := &mat.Dense{}
	if err := r.Read(dense); err != nil {
		return nil, boostlib.Errorf(boostlib.ParseError, "npy body %s: %v", path, err)
	}

	rows, cols := dense.Dims()
	features := make([]float32, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			features[i*cols+j] = float32(dense.At(i, j))
		}
	}
	return boostlib.NewMatrix(features, nil, rows, cols)
}

// SaveNpy writes predictions (or any single-column vector) to path in npy
// format, mirroring the teacher's own npyio.Write(dst, prediction) calls for
// exporting model output back to Python/numpy tooling.
func SaveNpy(path string, values []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return boostlib.Errorf(boostlib.IoError, "create %s: %v", path, err)
	}
	defer f.Close()

	dense := mat.NewDense(len(values), 1, nil)
	for i, v := range values {
		dense.Set(i, 0, float64(v))
	}
	if err := npyio.Write(f, dense); err != nil {
		return boostlib.Errorf(boostlib.IoError, "write npy %s: %v", path, err)
	}
	return nil
}
