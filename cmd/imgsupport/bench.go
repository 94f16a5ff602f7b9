package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/imgsupport/pkg/imgsupport"
)

// benchUserAgents covers every precedence branch plus an unknown client.
var benchUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/70.0.3538.102 Safari/537.36 Edge/18.19042",
	"Mozilla/5.0 (Linux; Android 13; SM-S908B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/20.0 Chrome/106.0.5249.126 Mobile Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 OPR/77.0.4054.277",
	"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
}

type benchOptions struct {
	iterations int
}

type benchResult struct {
	name  string
	calls int
	took  time.Duration
	hits  int
}

func (r benchResult) perCall() time.Duration {
	if r.calls == 0 {
		return 0
	}
	return r.took / time.Duration(r.calls)
}

func (r benchResult) opsPerSec() float64 {
	if r.took <= 0 {
		return 0
	}
	return float64(r.calls) / r.took.Seconds()
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{iterations: 100000}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure detection latency over a fixed User-Agent set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 100000, "passes over the User-Agent set")
	return cmd
}

func runBench(w io.Writer, opts benchOptions) error {
	if opts.iterations <= 0 {
		return errors.New("iterations must be positive")
	}

	uas := make([][]byte, len(benchUserAgents))
	for i, ua := range benchUserAgents {
		uas[i] = []byte(ua)
	}

	results := []benchResult{
		measure("WebPSupported", uas, opts.iterations, imgsupport.WebPSupported),
		measure("AVIFSupported", uas, opts.iterations, imgsupport.AVIFSupported),
		measure("Best", uas, opts.iterations, func(ua []byte) bool {
			_, ok := imgsupport.Best(ua)
			return ok
		}),
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "user agents: %d, iterations: %d\n", len(uas), opts.iterations)
	fmt.Fprintln(tw, "FUNCTION\tCALLS\tTOTAL\tPER CALL\tOPS/S\tTRUE")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%.0f\t%d\n",
			r.name, r.calls, r.took.Round(time.Microsecond), r.perCall(), r.opsPerSec(), r.hits)
	}
	return tw.Flush()
}

func measure(name string, uas [][]byte, iterations int, fn func([]byte) bool) benchResult {
	res := benchResult{name: name}
	start := time.Now()
	for range iterations {
		for _, ua := range uas {
			if fn(ua) {
				res.hits++
			}
		}
	}
	res.took = time.Since(start)
	res.calls = iterations * len(uas)
	return res
}
