package main

import (
	"flag"
	"log"

	"github.com/goccy/go-graphviz"
	"github.com/tarstars/boostedgo/golang/boostlib"
)

func runGraph(args []string) {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	model := fs.String("model", "", "path to a trained model")
	xgboost := fs.Bool("xgboost", false, "load the model from XGBoost-interop JSON format instead of the native format")
	tree := fs.Int("tree", 0, "index of the tree to render")
	format := fs.String("format", "svg", "output format: svg|png|jpg")
	out := fs.String("out", "tree.svg", "output file path")
	fs.Parse(args)

	if *model == "" {
		log.Fatal("--model is required")
	}

	var loaded *boostlib.Model
	var err error
	if *xgboost {
		loaded, err = boostlib.LoadXGBoostModel(*model)
	} else {
		loaded, err = boostlib.LoadModel(*model)
	}
	if err != nil {
		log.Fatalf("load model: %v", err)
	}

	graphvizFormat, ok := map[string]graphviz.Format{
		"png": graphviz.PNG,
		"svg": graphviz.SVG,
		"jpg": graphviz.JPG,
	}[*format]
	if !ok {
		log.Fatalf("unsupported --format %q: want png, svg, or jpg", *format)
	}

	if err := loaded.RenderTree(*tree, graphvizFormat, *out); err != nil {
		log.Fatalf("render tree: %v", err)
	}
}
