package main

import (
	"flag"
	"log"

	"github.com/tarstars/boostedgo/golang/boostlib"
)

func main() {
	modelPath := flag.String("model", ModelPath(), "path to a native-format boostedgo model")
	addr := flag.String("addr", ":"+Port(), "listen address")
	flag.Parse()

	if *modelPath == "" {
		log.Fatal("no model path given: pass --model or set MODEL_PATH")
	}

	model, err := boostlib.LoadModel(*modelPath)
	if err != nil {
		log.Fatalf("load model %s: %v", *modelPath, err)
	}

	srv := NewServer(model)
	if err := srv.ListenAndServe(*addr); err != nil {
		log.Fatal(err)
	}
}
