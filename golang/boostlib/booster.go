package boostlib

import (
	"log"
	"math/rand"
)

// Model is a trained ensemble: a base score plus an ordered sequence of
// trees. Prediction is base_score + learning_rate * sum(tree(x)), passed
// through the objective's final transform.
type Model struct {
	Config    Config
	BaseScore float32
	Trees     []*Tree
}

// Train fits a Model to m, returning the model and the configured metric
// evaluated on the training matrix after each round.
func Train(m *Matrix, cfg Config) (*Model, []float64, error) {
	return trainInternal(m, cfg, nil)
}

// CrossValidate runs k-fold cross-validation: rows are shuffled with the
// configured seed and split into n_folds roughly equal folds, one model is
// trained per fold on the complement and evaluated on the held-out fold
// after every round, and the per-round metric is averaged across folds.
// This supplements spec.md's boosting loop with the original prototype's
// GBDT::cv, which the distillation dropped.
func CrossValidate(m *Matrix, cfg Config, nFolds int) ([]float64, error) {
	if nFolds < 2 {
		return nil, Errorf(InvalidConfiguration, "n_folds must be >= 2, got %d", nFolds)
	}
	if m.NRows < nFolds {
		return nil, Errorf(InvalidConfiguration, "n_folds (%d) cannot exceed n_rows (%d)", nFolds, m.NRows)
	}
	if !m.HasLabels() {
		return nil, Errorf(MissingLabels, "cross-validation matrix has no labels")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	idx := makeRange(m.NRows)
	rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	folds := make([][]int, nFolds)
	for i, v := range idx {
		folds[i%nFolds] = append(folds[i%nFolds], v)
	}

	sums := make([]float64, cfg.NRounds)
	for fold := 0; fold < nFolds; fold++ {
		var trainIdx []int
		for f := 0; f < nFolds; f++ {
			if f != fold {
				trainIdx = append(trainIdx, folds[f]...)
			}
		}
		testIdx := folds[fold]

		trainMatrix := m.Subset(trainIdx)
		testMatrix := m.Subset(testIdx)

		_, roundMetrics, err := trainInternal(trainMatrix, cfg, testMatrix)
		if err != nil {
			return nil, err
		}
		for r, v := range roundMetrics {
			sums[r] += v / float64(nFolds)
		}
	}
	return sums, nil
}

// trainInternal runs the boosting loop on m. When evalMatrix is non-nil it
// is projected through m's bin edges and the returned metric sequence is
// evaluated against it each round instead of against m itself — the path
// CrossValidate uses for held-out folds.
func trainInternal(m *Matrix, cfg Config, evalMatrix *Matrix) (*Model, []float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if m.NRows == 0 || m.NCols == 0 {
		return nil, nil, Errorf(EmptyDataset, "training matrix has %d rows and %d cols", m.NRows, m.NCols)
	}
	if !m.HasLabels() {
		return nil, nil, Errorf(MissingLabels, "training matrix has no labels")
	}

	if err := m.CreateBins(cfg.NBins); err != nil {
		return nil, nil, err
	}
	if evalMatrix != nil {
		if err := evalMatrix.ApplyBins(m); err != nil {
			return nil, nil, err
		}
	}

	obj, err := objectiveFor(cfg.Task)
	if err != nil {
		return nil, nil, err
	}
	metricFn, err := metricByName(cfg.Metric)
	if err != nil {
		return nil, nil, err
	}

	pool := NewPool(cfg.NThreads)

	baseScore := obj.BaseScore(m.Labels)
	preds := fillFloat32(m.NRows, baseScore)
	g := make([]float32, m.NRows)
	h := make([]float32, m.NRows)
	obj.GradHess(m.Labels, preds, g, h, pool)

	model := &Model{Config: cfg, BaseScore: baseScore}

	rng := rand.New(rand.NewSource(cfg.Seed))
	allRows := makeRange(m.NRows)

	var evalPreds []float32
	if evalMatrix != nil {
		evalPreds = fillFloat32(evalMatrix.NRows, baseScore)
	}

	metrics := make([]float64, 0, cfg.NRounds)

	for round := 0; round < cfg.NRounds; round++ {
		rows := allRows
		if cfg.Subsample < 1 {
			rows = sampleRows(rng, m.NRows, cfg.Subsample)
		}

		tree := BuildTree(m, g, h, rows, cfg, pool)
		contrib := tree.Predict(m, pool)
		for i := range preds {
			preds[i] += float32(cfg.LearningRate) * contrib[i]
		}
		obj.GradHess(m.Labels, preds, g, h, pool)
		model.Trees = append(model.Trees, tree)

		var metricLabels, metricPreds []float32
		if evalMatrix != nil {
			evalContrib := tree.Predict(evalMatrix, pool)
			for i := range evalPreds {
				evalPreds[i] += float32(cfg.LearningRate) * evalContrib[i]
			}
			metricLabels = evalMatrix.Labels
			metricPreds = finalPredictions(evalPreds, obj)
		} else {
			metricLabels = m.Labels
			metricPreds = finalPredictions(preds, obj)
		}

		value := metricFn(metricLabels, metricPreds)
		metrics = append(metrics, value)
		log.Printf("round %d: %s = %.6f", round, cfg.Metric, value)
	}

	return model, metrics, nil
}

func finalPredictions(raw []float32, obj Objective) []float32 {
	out := make([]float32, len(raw))
	for i, v := range raw {
		out[i] = obj.FinalTransform(v)
	}
	return out
}

func fillFloat32(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func makeRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func sampleRows(rng *rand.Rand, n int, rate float64) []int {
	rows := make([]int, 0, int(float64(n)*rate))
	for i := 0; i < n; i++ {
		if rng.Float64() < rate {
			rows = append(rows, i)
		}
	}
	return rows
}

// PredictRow returns the ensemble prediction for one row's raw feature
// values, without requiring a full Matrix — the path the HTTP server uses.
func (model *Model) PredictRow(features []float32) (float32, error) {
	if len(model.Trees) == 0 {
		return 0, Errorf(UntrainedModel, "model has no trees")
	}
	obj, err := objectiveFor(model.Config.Task)
	if err != nil {
		return 0, err
	}
	raw := model.BaseScore
	for _, t := range model.Trees {
		raw += float32(model.Config.LearningRate) * t.PredictOne(features)
	}
	return obj.FinalTransform(raw), nil
}

// Predict returns ensemble predictions for every row of m.
func (model *Model) Predict(m *Matrix, pool *Pool) ([]float32, error) {
	if len(model.Trees) == 0 {
		return nil, Errorf(UntrainedModel, "model has no trees")
	}
	obj, err := objectiveFor(model.Config.Task)
	if err != nil {
		return nil, err
	}
	raw := fillFloat32(m.NRows, model.BaseScore)
	for _, t := range model.Trees {
		contrib := t.Predict(m, pool)
		for i := range raw {
			raw[i] += float32(model.Config.LearningRate) * contrib[i]
		}
	}
	out := make([]float32, len(raw))
	for i, v := range raw {
		out[i] = obj.FinalTransform(v)
	}
	return out, nil
}
