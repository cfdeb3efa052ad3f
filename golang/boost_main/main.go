// Command boost_main is the training/prediction/cross-validation CLI for
// boostedgo, dispatching to a subcommand the way the teacher's own
// extra_boost_main dispatches on a "mode" flag, but with one flag.FlagSet
// per subcommand instead of one shared flag set.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	subcommand := os.Args[1]
	args := os.Args[2:]

	switch subcommand {
	case "train":
		runTrain(args)
	case "predict":
		runPredict(args)
	case "cv":
		runCV(args)
	case "graph":
		runGraph(args)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: boost_main <train|predict|cv|graph> [flags]")
}
