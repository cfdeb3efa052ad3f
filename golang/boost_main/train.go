package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tarstars/boostedgo/golang/boostcsv"
	"github.com/tarstars/boostedgo/golang/boostlib"
)

func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	data := fs.String("data", "", "path to the training CSV")
	labelCol := fs.Int("label", -1, "0-based label column index")
	out := fs.String("out", "", "path to write the trained model")
	xgboost := fs.Bool("xgboost", false, "save in XGBoost-interop JSON format instead of the native format")

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
	seed := fs.Int64("seed", def.Seed, "RNG seed for subsampling")
	nthreads := fs.Int("nthreads", def.NThreads, "worker pool size, <=0 means NumCPU")
	fs.Parse(args)

	if *data == "" || *out == "" {
		log.Fatal("--data and --out are required")
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

	model, metrics, err := boostlib.Train(m, cfg)
	if err != nil {
		log.Fatalf("train: %v", err)
	}
	fmt.Fprintf(os.Stderr, "final %s = %.6f\n", cfg.Metric, metrics[len(metrics)-1])

	if *xgboost {
		err = model.SaveXGBoost(*out)
	} else {
		err = model.Save(*out)
	}
	if err != nil {
		log.Fatalf("save model: %v", err)
	}
}
