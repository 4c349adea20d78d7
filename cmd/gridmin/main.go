// Command gridmin reads "n m a b g0 x y z" from stdin (or -input, or eight
// positional arguments) and prints the sum of the minima of every a×b
// window of the generated n×m grid.
//
//	echo "2 2 1 1 5 1 1 100" | gridmin        # 26
//	gridmin -log-level debug 2 2 2 2 5 1 1 100 # 5
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridmin/internal/cli"
	"github.com/katalvlaran/gridmin/internal/config"
)

func main() {
	// A missing .env is fine; real env and flags still apply.
	_ = godotenv.Load(".env")

	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger, err := cli.NewLogger(cfg, os.Stderr)
	if err != nil {
		config.Exitf("configure logging: %v", err)
	}
	if err := cli.Run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		config.Exitf("gridmin: %v", err)
	}
}
