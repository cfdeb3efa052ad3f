package boostlib

import (
	"encoding/json"
	"os"
	"strconv"
)

// The xgb* types mirror the wrapper XGBoost itself writes: learner ->
// {attributes, gradient_booster, learner_model_param}. base_score is a
// genuine field of the real format (XGBoost stores it under
// learner_model_param); the original prototype's convert_to_xgboost_json
// never set it, which silently loses the trained base score on a round
// trip through this format. This implementation restores it.
type xgbLearnerModelParam struct {
	Objective       string `json:"objective"`
	Eta             string `json:"eta"`
	MaxDepth        string `json:"max_depth"`
	MinChildWeight  string `json:"min_child_weight"`
	Lambda          string `json:"lambda"`
	Subsample       string `json:"subsample"`
	ColsampleBytree string `json:"colsample_bytree"`
	BaseScore       string `json:"base_score"`
}

type xgbAttributes struct {
	BestIteration string `json:"best_iteration"`
}

type xgbGradientBoosterModel struct {
	Trees []jsonTree `json:"trees"`
}

type xgbGradientBooster struct {
	Name  string                   `json:"name"`
	Model xgbGradientBoosterModel  `json:"model"`
}

type xgbLearner struct {
	Attributes       xgbAttributes        `json:"attributes"`
	GradientBooster  xgbGradientBooster   `json:"gradient_booster"`
	LearnerModelParam xgbLearnerModelParam `json:"learner_model_param"`
}

type xgbModel struct {
	Learner xgbLearner `json:"learner"`
	Version string     `json:"version"`
}

// SaveXGBoost writes the model using the XGBoost-compatible JSON wrapper,
// for interop with the XGBoost ecosystem rather than this project's own
// tooling.
func (model *Model) SaveXGBoost(path string) error {
	cfg := model.Config
	objective := "reg:squarederror"
	if cfg.Task == TaskBinary {
		objective = "binary:logistic"
	}

	trees := make([]jsonTree, len(model.Trees))
	for i, t := range model.Trees {
		trees[i] = treeToJSON(t)
	}

	xm := xgbModel{
		Version: "1.0.0",
		Learner: xgbLearner{
			Attributes: xgbAttributes{BestIteration: strconv.Itoa(len(model.Trees))},
			GradientBooster: xgbGradientBooster{
				Name:  "gbtree",
				Model: xgbGradientBoosterModel{Trees: trees},
			},
			LearnerModelParam: xgbLearnerModelParam{
				Objective:       objective,
				Eta:             strconv.FormatFloat(cfg.LearningRate, 'g', -1, 64),
				MaxDepth:        strconv.Itoa(cfg.MaxDepth),
				MinChildWeight:  strconv.FormatFloat(cfg.MinChildWeight, 'g', -1, 64),
				Lambda:          strconv.FormatFloat(cfg.RegLambda, 'g', -1, 64),
				Subsample:       strconv.FormatFloat(cfg.Subsample, 'g', -1, 64),
				ColsampleBytree: strconv.FormatFloat(cfg.Colsample, 'g', -1, 64),
				BaseScore:       strconv.FormatFloat(float64(model.BaseScore), 'g', -1, 32),
			},
		},
	}

	data, err := json.MarshalIndent(xm, "", "  ")
	if err != nil {
		return Errorf(FormatError, "encoding xgboost model: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Errorf(IoError, "writing %s: %v", path, err)
	}
	return nil
}

// LoadXGBoostModel reads a model from the XGBoost-compatible JSON wrapper.
// n_rounds is taken from len(trees), not from attributes.best_iteration,
// per this project's resolution of that field's ambiguity on load.
func LoadXGBoostModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Errorf(IoError, "reading %s: %v", path, err)
	}
	var xm xgbModel
	if err := json.Unmarshal(data, &xm); err != nil {
		return nil, Errorf(FormatError, "decoding %s: %v", path, err)
	}

	params := xm.Learner.LearnerModelParam
	cfg := DefaultConfig()
	switch params.Objective {
	case "binary:logistic":
		cfg.Task = TaskBinary
		cfg.Metric = "logloss"
	case "reg:squarederror", "":
		cfg.Task = TaskRegression
		cfg.Metric = "rmse"
	default:
		return nil, Errorf(FormatError, "%s: unsupported objective %q", path, params.Objective)
	}

	if v, err := strconv.ParseFloat(params.Eta, 64); err == nil {
		cfg.LearningRate = v
	}
	if v, err := strconv.Atoi(params.MaxDepth); err == nil {
		cfg.MaxDepth = v
	}
	if v, err := strconv.ParseFloat(params.MinChildWeight, 64); err == nil {
		cfg.MinChildWeight = v
	}
	if v, err := strconv.ParseFloat(params.Lambda, 64); err == nil {
		cfg.RegLambda = v
	}
	if v, err := strconv.ParseFloat(params.Subsample, 64); err == nil {
		cfg.Subsample = v
	}
	if v, err := strconv.ParseFloat(params.ColsampleBytree, 64); err == nil {
		cfg.Colsample = v
	}

	trees := xm.Learner.GradientBooster.Model.Trees
	cfg.NRounds = len(trees)

	model := &Model{Config: cfg}
	if v, err := strconv.ParseFloat(params.BaseScore, 32); err == nil {
		model.BaseScore = float32(v)
	}
	for i, jt := range trees {
		t, err := treeFromJSON(jt)
		if err != nil {
			return nil, Errorf(FormatError, "%s: tree %d: %v", path, i, err)
		}
		model.Trees = append(model.Trees, t)
	}
	return model, nil
}
