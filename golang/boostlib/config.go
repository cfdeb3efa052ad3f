package boostlib

// Task selects the training objective.
type Task string

const (
	TaskRegression Task = "regression"
	TaskBinary     Task = "binary"
)

// Config holds every training hyperparameter. Zero values are not valid
// defaults for most fields; use DefaultConfig as a starting point.
type Config struct {
	Task           Task
	NRounds        int
	LearningRate   float64
	MaxDepth       int
	MinDataInLeaf  int
	MinChildWeight float64
	RegLambda      float64
	NBins          int
	Subsample      float64
	Colsample      float64
	Seed           int64
	NThreads       int
	Metric         string
}

// DefaultConfig returns the configuration the CLI falls back to when a flag
// is left unset.
func DefaultConfig() Config {
	return Config{
		Task:           TaskRegression,
		NRounds:        100,
		LearningRate:   0.1,
		MaxDepth:       6,
		MinDataInLeaf:  20,
		MinChildWeight: 1.0,
		RegLambda:      1.0,
		NBins:          256,
		Subsample:      1.0,
		Colsample:      1.0,
		Seed:           0,
		NThreads:       -1,
		Metric:         "rmse",
	}
}

// Validate checks every field against the bounds this training engine
// actually enforces, returning an InvalidConfiguration error naming the
// first violation found.
func (c Config) Validate() error {
	if c.Task != TaskRegression && c.Task != TaskBinary {
		return Errorf(InvalidConfiguration, "task must be %q or %q, got %q", TaskRegression, TaskBinary, c.Task)
	}
	if c.NRounds < 1 {
		return Errorf(InvalidConfiguration, "n_rounds must be >= 1, got %d", c.NRounds)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return Errorf(InvalidConfiguration, "learning_rate must be in (0, 1], got %g", c.LearningRate)
	}
	if c.MaxDepth < 1 || c.MaxDepth > 32 {
		return Errorf(InvalidConfiguration, "max_depth must be in [1, 32], got %d", c.MaxDepth)
	}
	if c.MinDataInLeaf < 1 {
		return Errorf(InvalidConfiguration, "min_data_in_leaf must be >= 1, got %d", c.MinDataInLeaf)
	}
	if c.MinChildWeight <= 0 {
		return Errorf(InvalidConfiguration, "min_child_weight must be > 0, got %g", c.MinChildWeight)
	}
	if c.RegLambda < 0 {
		return Errorf(InvalidConfiguration, "reg_lambda must be >= 0, got %g", c.RegLambda)
	}
	if c.NBins < 1 || c.NBins > 256 {
		return Errorf(InvalidConfiguration, "n_bins must be in [1, 256], got %d", c.NBins)
	}
	if c.Subsample <= 0 || c.Subsample > 1 {
		return Errorf(InvalidConfiguration, "subsample must be in (0, 1], got %g", c.Subsample)
	}
	if c.Colsample <= 0 || c.Colsample > 1 {
		return Errorf(InvalidConfiguration, "colsample must be in (0, 1], got %g", c.Colsample)
	}
	switch c.Metric {
	case "rmse", "mae", "logloss", "auc":
	default:
		return Errorf(InvalidConfiguration, "metric must be one of rmse, mae, logloss, auc, got %q", c.Metric)
	}
	return nil
}
