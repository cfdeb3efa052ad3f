// Package boostcsv loads feature matrices from CSV and npy files into
// boostlib.Matrix values.
package boostcsv

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/tarstars/boostedgo/golang/boostlib"
)

var missingTokens = map[string]bool{
	"":    true,
	"NA":  true,
	"N/A": true,
	"?":   true,
}

// LoadCSV reads a header-led, comma-separated file at path into a
// boostlib.Matrix. labelCol is the 0-based index of the label column in the
// header row, or -1 if the file carries no labels. Missing values ("", "NA",
// "N/A", "?") become NaN, resolved to the binner's missing code during
// training. Returns the matrix and the feature column names in matrix
// column order (label column excluded).
func LoadCSV(path string, labelCol int) (*boostlib.Matrix, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, boostlib.Errorf(boostlib.IoError, "open %s: %v", path, err)
	}
	defer file.Close()
	return loadCSV(file, labelCol)
}

func loadCSV(r io.Reader, labelCol int) (*boostlib.Matrix, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, nil, boostlib.Errorf(boostlib.ParseError, "read header: %v", err)
	}
	if labelCol >= len(header) {
		return nil, nil, boostlib.Errorf(boostlib.InvalidConfiguration, "label column %d out of range for %d columns", labelCol, len(header))
	}

	var names []string
	for i, name := range header {
		if i == labelCol {
			continue
		}
		names = append(names, name)
	}
	nCols := len(names)

	var features []float32
	var labels []float32
	nRows := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, boostlib.Errorf(boostlib.ParseError, "row %d: %v", nRows+1, err)
		}
		if len(row) != len(header) {
			return nil, nil, boostlib.Errorf(boostlib.InconsistentShape, "row %d has %d columns, header has %d", nRows+1, len(row), len(header))
		}

		col := 0
		for i, token := range row {
			v, perr := parseCell(token)
			if perr != nil {
				return nil, nil, boostlib.Errorf(boostlib.ParseError, "row %d, column %q: %v", nRows+1, header[i], perr)
			}
			if i == labelCol {
				labels = append(labels, v)
				continue
			}
			features = append(features, v)
			col++
		}
		nRows++
	}

	m, err := boostlib.NewMatrixWithNames(features, labels, nRows, nCols, names)
	if err != nil {
		return nil, nil, err
	}
	return m, names, nil
}

func parseCell(token string) (float32, error) {
	if missingTokens[token] {
		return float32(math.NaN()), nil
	}
	v, err := strconv.ParseFloat(token, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}
