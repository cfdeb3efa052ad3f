package boostlib

import (
	"encoding/json"
	"os"
)

// jsonConfig mirrors the config block of the native model file, field for
// field matching the original save_model_to_json layout.
type jsonConfig struct {
	Task           string  `json:"task"`
	NRounds        int     `json:"n_rounds"`
	LearningRate   float64 `json:"learning_rate"`
	MaxDepth       int     `json:"max_depth"`
	MinDataInLeaf  int     `json:"min_data_in_leaf"`
	MinChildWeight float64 `json:"min_child_weight"`
	RegLambda      float64 `json:"reg_lambda"`
	NBins          int     `json:"n_bins"`
	Subsample      float64 `json:"subsample"`
	Colsample      float64 `json:"colsample"`
	Seed           int64   `json:"seed"`
	Metric         string  `json:"metric"`
}

// jsonNode is one XGBoost-style node: a leaf carries Leaf, an internal
// node carries Split/SplitCondition/Yes/No/Missing (Missing always equals
// No, since missing values always route right).
type jsonNode struct {
	NodeID         int      `json:"nodeid"`
	Leaf           *float32 `json:"leaf,omitempty"`
	Split          *int     `json:"split,omitempty"`
	SplitCondition *float32 `json:"split_condition,omitempty"`
	Yes            *int     `json:"yes,omitempty"`
	No             *int     `json:"no,omitempty"`
	Missing        *int     `json:"missing,omitempty"`
}

type jsonTree struct {
	Nodes []jsonNode `json:"nodes"`
}

// jsonModel is the native on-disk model format. base_score is not part of
// the schema spec.md names for the XGBoost wrapper, but it must round-trip
// here: without it, a reloaded model's predictions would silently drift
// from the score it was saved with the moment it has more than zero trees.
type jsonModel struct {
	Config    jsonConfig `json:"config"`
	BaseScore float32    `json:"base_score"`
	Trees     []jsonTree `json:"trees"`
}

func configToJSON(cfg Config) jsonConfig {
	return jsonConfig{
		Task:           string(cfg.Task),
		NRounds:        cfg.NRounds,
		LearningRate:   cfg.LearningRate,
		MaxDepth:       cfg.MaxDepth,
		MinDataInLeaf:  cfg.MinDataInLeaf,
		MinChildWeight: cfg.MinChildWeight,
		RegLambda:      cfg.RegLambda,
		NBins:          cfg.NBins,
		Subsample:      cfg.Subsample,
		Colsample:      cfg.Colsample,
		Seed:           cfg.Seed,
		Metric:         cfg.Metric,
	}
}

func configFromJSON(j jsonConfig) Config {
	cfg := DefaultConfig()
	cfg.Task = Task(j.Task)
	cfg.NRounds = j.NRounds
	cfg.LearningRate = j.LearningRate
	cfg.MaxDepth = j.MaxDepth
	cfg.MinDataInLeaf = j.MinDataInLeaf
	cfg.MinChildWeight = j.MinChildWeight
	cfg.RegLambda = j.RegLambda
	cfg.NBins = j.NBins
	cfg.Subsample = j.Subsample
	cfg.Colsample = j.Colsample
	cfg.Seed = j.Seed
	cfg.Metric = j.Metric
	return cfg
}

// treeToJSON renumbers node ids in breadth-first order, matching the
// original to_xgboost_json traversal, so the ids in the file read the way
// a human skimming it would expect (root is 0, its children are 1 and 2,
// and so on) regardless of the order nodes were appended during building.
func treeToJSON(t *Tree) jsonTree {
	nodeMap := make(map[int]int, len(t.Nodes))
	queue := []int{0}
	next := 0
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if _, seen := nodeMap[idx]; seen {
			continue
		}
		nodeMap[idx] = next
		next++
		n := t.Nodes[idx]
		if !n.IsLeaf {
			queue = append(queue, n.Left, n.Right)
		}
	}

	nodes := make([]jsonNode, len(t.Nodes))
	for i, n := range t.Nodes {
		id := nodeMap[i]
		if n.IsLeaf {
			w := n.Weight
			nodes[i] = jsonNode{NodeID: id, Leaf: &w}
			continue
		}
		f := n.FeatureID
		thr := n.Threshold
		yes := nodeMap[n.Left]
		no := nodeMap[n.Right]
		nodes[i] = jsonNode{NodeID: id, Split: &f, SplitCondition: &thr, Yes: &yes, No: &no, Missing: &no}
	}
	return jsonTree{Nodes: nodes}
}

func treeFromJSON(j jsonTree) (*Tree, error) {
	nodeMap := make(map[int]int, len(j.Nodes))
	for _, nj := range j.Nodes {
		if _, ok := nodeMap[nj.NodeID]; !ok {
			nodeMap[nj.NodeID] = len(nodeMap)
		}
	}

	nodes := make([]Node, len(nodeMap))
	for _, nj := range j.Nodes {
		ourID := nodeMap[nj.NodeID]
		if nj.Leaf != nil {
			nodes[ourID] = Node{IsLeaf: true, Weight: *nj.Leaf}
			continue
		}
		if nj.Split == nil || nj.SplitCondition == nil || nj.Yes == nil || nj.No == nil {
			return nil, Errorf(FormatError, "internal node %d is missing split fields", nj.NodeID)
		}
		yesIdx, ok := nodeMap[*nj.Yes]
		if !ok {
			return nil, Errorf(FormatError, "node %d references undefined child %d", nj.NodeID, *nj.Yes)
		}
		noIdx, ok := nodeMap[*nj.No]
		if !ok {
			return nil, Errorf(FormatError, "node %d references undefined child %d", nj.NodeID, *nj.No)
		}
		nodes[ourID] = Node{FeatureID: *nj.Split, Threshold: *nj.SplitCondition, Left: yesIdx, Right: noIdx}
	}
	return &Tree{Nodes: nodes}, nil
}

// Save writes the model to the native JSON format.
func (model *Model) Save(path string) error {
	jm := jsonModel{
		Config:    configToJSON(model.Config),
		BaseScore: model.BaseScore,
		Trees:     make([]jsonTree, len(model.Trees)),
	}
	for i, t := range model.Trees {
		jm.Trees[i] = treeToJSON(t)
	}

	data, err := json.MarshalIndent(jm, "", "  ")
	if err != nil {
		return Errorf(FormatError, "encoding model: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Errorf(IoError, "writing %s: %v", path, err)
	}
	return nil
}

// LoadModel reads a model previously written by Save.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Errorf(IoError, "reading %s: %v", path, err)
	}
	var jm jsonModel
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, Errorf(FormatError, "decoding %s: %v", path, err)
	}

	model := &Model{Config: configFromJSON(jm.Config), BaseScore: jm.BaseScore}
	for i, jt := range jm.Trees {
		t, err := treeFromJSON(jt)
		if err != nil {
			return nil, Errorf(FormatError, "%s: tree %d: %v", path, i, err)
		}
		model.Trees = append(model.Trees, t)
	}
	return model, nil
}
