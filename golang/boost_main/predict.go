package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tarstars/boostedgo/golang/boostcsv"
	"github.com/tarstars/boostedgo/golang/boostlib"
)

func runPredict(args []string) {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	data := fs.String("data", "", "path to the feature CSV")
	labelCol := fs.Int("label", -1, "0-based label column index, -1 if the file carries no labels")
	model := fs.String("model", "", "path to a trained model")
	out := fs.String("out", "", "path to write predictions (one float per line); defaults to stdout")
	xgboost := fs.Bool("xgboost", false, "load the model from XGBoost-interop JSON format instead of the native format")
	nthreads := fs.Int("nthreads", -1, "worker pool size, <=0 means NumCPU")
	fs.Parse(args)

	if *data == "" || *model == "" {
		log.Fatal("--data and --model are required")
	}

	m, _, err := boostcsv.LoadCSV(*data, *labelCol)
	if err != nil {
		log.Fatalf("load data: %v", err)
	}

	var loaded *boostlib.Model
	if *xgboost {
		loaded, err = boostlib.LoadXGBoostModel(*model)
	} else {
		loaded, err = boostlib.LoadModel(*model)
	}
	if err != nil {
		log.Fatalf("load model: %v", err)
	}

	pool := boostlib.NewPool(*nthreads)
	preds, err := loaded.Predict(m, pool)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		w = f
	}
	buf := bufio.NewWriter(w)
	defer buf.Flush()
	for _, p := range preds {
		fmt.Fprintf(buf, "%g\n", p)
	}
}
