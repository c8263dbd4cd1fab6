// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jdiag parses JSON files and prints their values, or a diagnostic
// pointing at the first error in each file.
//
// Usage:
//
//	jdiag [flags] file...
//	jdiag -bench file [-n N] [-workers W]
//
// Each file is parsed and its value is printed in a debug representation. If
// a file does not parse, jdiag prints a diagnostic showing the line where
// parsing failed and exits with status 1 after all files are processed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/cursor"
	"golang.org/x/sync/errgroup"
)

var (
	allowJWCC  = flag.Bool("jwcc", false, "Accept comments and trailing commas")
	strictMode = flag.Bool("strict", false, "Reject text after the top-level value")
	maxDepth   = flag.Int("max-depth", 0, "Maximum nesting depth (0 for default, < 0 for unlimited)")
	quietMode  = flag.Bool("quiet", false, "Print only diagnostics")
	selectPath = flag.String("select", "", "Print the value at this dotted path (e.g., items.0.name)")
	maxJobs    = flag.Int("j", runtime.NumCPU(), "Maximum number of files to parse concurrently")

	benchFile    = flag.String("bench", "", "Measure parsing throughput on this file")
	benchRounds  = flag.Int("n", 1000, "Number of times to parse the -bench file")
	benchWorkers = flag.Int("workers", runtime.NumCPU(), "Number of concurrent parsers for -bench")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %[1]s [flags] file...
       %[1]s -bench file [-n N] [-workers W]

Parse each named JSON file and print its value, or a diagnostic describing
the first error found. The exit status is 1 if any file fails to parse.

Options:
`, "jdiag")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("jdiag: ")

	p := new(jparse.Parser)
	p.AllowJWCC(*allowJWCC)
	p.RejectTrailingText(*strictMode)
	p.SetMaxDepth(*maxDepth)

	if *benchFile != "" {
		br, err := runBench(p, *benchFile, *benchRounds, *benchWorkers)
		if err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
		fmt.Print(br)
		return
	}
	if flag.NArg() == 0 {
		log.Fatal("You must provide at least one file to parse")
	}

	results := parseFiles(p, flag.Args(), *maxJobs)
	sel := cursor.ParsePath(*selectPath)
	var nfail int
	for _, r := range results {
		if !r.report(os.Stdout, sel, *quietMode) {
			nfail++
		}
	}
	if nfail > 0 {
		log.Printf("%d of %d files failed", nfail, len(results))
		os.Exit(1)
	}
}

// A result records the outcome of parsing one file.
type result struct {
	name  string
	text  string
	value jparse.Value
	err   error
}

// parseFiles reads and parses each of the named files, with at most limit
// parses in flight at once. If limit <= 0 there is no limit. The results are
// in the same order as names.
func parseFiles(p *jparse.Parser, names []string, limit int) []result {
	rs := make([]result, len(names))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, name := range names {
		g.Go(func() error {
			rs[i].name = name
			data, err := os.ReadFile(name)
			if err != nil {
				rs[i].err = err
				return nil
			}
			rs[i].text = string(data)
			rs[i].value, rs[i].err = p.Parse(rs[i].text)
			return nil
		})
	}
	g.Wait() // errors are recorded per file
	return rs
}

// report writes the value of r, or its diagnostic, to w. If sel is non-empty,
// only the value at that path is written. If quiet is true, successful results
// are not written. It reports whether r is a success.
func (r result) report(w io.Writer, sel []any, quiet bool) bool {
	if r.err != nil {
		if d := jparse.Diagnose(r.text, r.err); d != nil {
			fmt.Fprintf(w, "%s:\n", r.name)
			d.WriteTo(w)
		} else {
			log.Printf("Reading %q: %v", r.name, r.err)
		}
		return false
	}

	c := cursor.New(r.value).Down(sel...)
	if err := c.Err(); err != nil {
		log.Printf("Selecting %v in %q: %v", sel, r.name, err)
		return false
	}
	if !quiet {
		fmt.Fprintf(w, "%s: %s\n", r.name, jparse.Dump(c.Value()))
	}
	return true
}
