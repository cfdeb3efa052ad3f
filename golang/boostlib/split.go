package boostlib

import "math"

// SplitResult is the outcome of searching one node's histograms for the
// best (feature, bin) split.
type SplitResult struct {
	Valid     bool
	FeatureID int
	Bin       int
	Threshold float32
	Gain      float32

	LeftG, LeftH   float32
	RightG, RightH float32
}

// FindBestSplit scans every feature's histogram for the split maximising
// the regularised gain, subject to the min-child-weight constraint on both
// sides. The missing-value bin is never a split candidate: the sweep for
// feature f stops one bin short of bins[f].Edges' length, so the reserved
// missing code never enters the left prefix sum — a deliberate departure
// from the original scalar fallback, which sweeps through it.
func FindBestSplit(hs *Histograms, bins []BinInfo, totalG, totalH float32, cfg Config, pool *Pool) SplitResult {
	nCols := hs.NCols
	results := make([]SplitResult, nCols)
	gdata := hs.gData()
	hdata := hs.hData()

	pool.ParallelFor(nCols, func(f int) {
		results[f] = bestSplitForFeature(f, gdata, hdata, hs.NBins, bins[f], totalG, totalH, cfg)
	})

	var best SplitResult
	found := false
	for f := 0; f < nCols; f++ {
		r := results[f]
		if !r.Valid {
			continue
		}
		if !found || r.Gain > best.Gain {
			found = true
			best = r
		}
	}
	best.Valid = found
	return best
}

func bestSplitForFeature(f int, gdata, hdata []float32, nBins int, bin BinInfo, totalG, totalH float32, cfg Config) SplitResult {
	base := f * nBins
	minChildWeight := float32(cfg.MinChildWeight)
	regLambda := float32(cfg.RegLambda)
	parentGain := totalG * totalG / (totalH + regLambda)

	var leftG, leftH float32
	best := SplitResult{FeatureID: f}
	bestGain := float32(math.Inf(-1))
	found := false

	limit := len(bin.Edges)
	for b := 0; b < limit; b++ {
		leftG += gdata[base+b]
		leftH += hdata[base+b]
		rightG := totalG - leftG
		rightH := totalH - leftH
		if leftH < minChildWeight || rightH < minChildWeight {
			continue
		}
		gain := leftG*leftG/(leftH+regLambda) + rightG*rightG/(rightH+regLambda) - parentGain
		if !found || gain > bestGain {
			found = true
			bestGain = gain
			best.Bin = b
			best.Gain = gain
			best.LeftG, best.LeftH = leftG, leftH
			best.RightG, best.RightH = rightG, rightH
		}
	}
	best.Valid = found
	if found {
		// Codes 0..Bin hold exactly the values below Edges[Bin] (GetBin
		// returns the first edge strictly greater than v), so the threshold
		// is the largest float32 below that edge: partitionRows and
		// PredictOne then send left exactly the rows counted in LeftG/LeftH.
		best.Threshold = math.Nextafter32(bin.Edges[best.Bin], float32(math.Inf(-1)))
	}
	return best
}
