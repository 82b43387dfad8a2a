package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/ogzhanolguncu/hadoop-wordcount-in-go/map_reduce"
)

type config struct {
	inputFile string
	format    map_reduce.Format
	verbose   bool
}

// parseConfig reads the command line. With no arguments it counts lorem.txt
// and prints tuples.
func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("wordcount", flag.ContinueOnError)
	var (
		inputFile = fs.String("input", "lorem.txt", "Text file to count words in")
		format    = fs.String("format", string(map_reduce.FormatTuple), "Output format: tuple or tsv")
		verbose   = fs.Bool("v", false, "Log progress to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	outFormat, err := map_reduce.ParseFormat(*format)
	if err != nil {
		return config{}, err
	}

	return config{inputFile: *inputFile, format: outFormat, verbose: *verbose}, nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	runner := map_reduce.NewRunner(
		&map_reduce.WordCountMapper{},
		&map_reduce.WordCountReducer{},
	)
	if cfg.verbose {
		runner.SetLogger(log.Default())
	}

	if err := run(runner, cfg.inputFile, cfg.format, os.Stdout); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
	if cfg.verbose {
		log.Printf("run %s complete", runner.LastRunID())
	}
}

func run(runner *map_reduce.Runner, inputFile string, format map_reduce.Format, out io.Writer) error {
	results, err := runner.RunFile(inputFile)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	if err := map_reduce.WriteResults(w, results, format); err != nil {
		return err
	}
	return w.Flush()
}
