package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tarstars/boostedgo/golang/boostcsv"
	"github.com/tarstars/boostedgo/golang/boostlib"
)

func runCV(args []string) {
	fs := flag.NewFlagSet("cv", flag.ExitOnError)
	data := fs.String("data", "", "path to the training CSV")
	labelCol := fs.Int("label", -1, "0-based label column index")
	folds := fs.Int("folds", 5, "number of cross-validation folds")

	def := boostlib.DefaultConfig()
	task := fs.String("task", string(def.Task), "regression|binary")
	nrounds := fs.Int("nrounds", def.NRounds, "number of boosting rounds")
	lr := fs.Float64("lr", def.LearningRate, "learning rate")
	maxDepth := fs.Int("max_depth", def.MaxDepth, "maximum tree depth")
	minChildWeight := fs.Float64("min_child_weight", def.MinChildWeight, "minimum sum of hessian in a child")
	minDataInLeaf := fs.Int("min_data_in_leaf", def.MinDataInLeaf, "minimum row count in a leaf")
	regLambda := fs.Float64("reg_lambda", def.RegLambda, "L2 leaf weight regularization")
	subsample := fs.Float64("subsample", def.Subsample, "row subsample rate per round")
	colsample := fs.Float64("colsample", def.Colsample, "column subsample rate (reserved, not honoured yet)")
	nbins := fs.Int("nbins", def.NBins, "number of histogram bins per feature")
	metric := fs.String("metric", def.Metric, "rmse|mae|logloss|auc")
	seed := fs.Int64("seed", def.Seed, "RNG seed for fold shuffling and subsampling")
	nthreads := fs.Int("nthreads", def.NThreads, "worker pool size, <=0 means NumCPU")
	fs.Parse(args)

	if *data == "" {
		log.Fatal("--data is required")
	}
	if *labelCol < 0 {
		log.Fatal("--label is required and must be a valid 0-based column index")
	}

	m, _, err := boostcsv.LoadCSV(*data, *labelCol)
	if err != nil {
		log.Fatalf("load data: %v", err)
	}

	cfg := boostlib.Config{
		Task:           boostlib.Task(*task),
		NRounds:        *nrounds,
		LearningRate:   *lr,
		MaxDepth:       *maxDepth,
		MinDataInLeaf:  *minDataInLeaf,
		MinChildWeight: *minChildWeight,
		RegLambda:      *regLambda,
		NBins:          *nbins,
		Subsample:      *subsample,
		Colsample:      *colsample,
		Seed:           *seed,
		NThreads:       *nthreads,
		Metric:         *metric,
	}

	metrics, err := boostlib.CrossValidate(m, cfg, *folds)
	if err != nil {
		log.Fatalf("cross-validate: %v", err)
	}
	for round, v := range metrics {
		fmt.Printf("round %d: %s = %.6f\n", round, cfg.Metric, v)
	}
}
