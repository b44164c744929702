// Command visgraph computes visibility graphs of time series.
//
//	visgraph build series.txt --type natural --mode el
//	visgraph build series.txt -t horizontal -w distance --format json -o graph.json
//	visgraph generate brownian -n 512 --seed 7 -o walk.txt
//	visgraph config init visgraph.toml
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
