// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/creachadair/jparse"
	"github.com/panjf2000/ants/v2"
)

// benchResult summarizes a throughput measurement.
type benchResult struct {
	Bytes   int64         // total bytes parsed
	Elapsed time.Duration // wall-clock time for all parses
}

// BytesPerSec reports the parsing throughput in bytes per second.
func (b benchResult) BytesPerSec() float64 {
	if b.Elapsed <= 0 {
		return 0
	}
	return float64(b.Bytes) / b.Elapsed.Seconds()
}

func (b benchResult) String() string {
	bps := b.BytesPerSec()
	return fmt.Sprintf("Bytes/s: %.0f\nMB/s: %.2f\nGB/s: %.4f\n", bps, bps/1e6, bps/1e9)
}

// runBench parses the contents of path n times, distributed over a pool of
// workers, and reports the aggregate throughput. The file must parse without
// error under p.
func runBench(p *jparse.Parser, path string, n, workers int) (benchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return benchResult{}, err
	}
	text := string(data)
	if _, err := p.Parse(text); err != nil {
		return benchResult{}, fmt.Errorf("parse %s: %w", path, err)
	}

	var wg sync.WaitGroup
	var nerr atomic.Int64
	pool, err := ants.NewPoolWithFunc(max(workers, 1), func(any) {
		defer wg.Done()
		if _, err := p.Parse(text); err != nil {
			nerr.Add(1)
		}
	})
	if err != nil {
		return benchResult{}, fmt.Errorf("create pool: %w", err)
	}
	defer pool.Release()

	start := time.Now()
	for range n {
		wg.Add(1)
		if err := pool.Invoke(nil); err != nil {
			wg.Done()
			wg.Wait()
			return benchResult{}, fmt.Errorf("submit: %w", err)
		}
	}
	wg.Wait()
	elapsed := time.Since(start)

	if k := nerr.Load(); k != 0 {
		return benchResult{}, fmt.Errorf("%d of %d parses failed", k, n)
	}
	return benchResult{Bytes: int64(n) * int64(len(data)), Elapsed: elapsed}, nil
}
