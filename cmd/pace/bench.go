package main

import (
	"fmt"
	"os"
	"time"

	logrusr "github.com/bombsimon/logrusr/v3"
	"github.com/go-logr/logr"
	"github.com/pace-tools/pace"
	"github.com/pace-tools/pace/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"
)

var (
	benchIterations int
	benchWorkers    []int
	benchRenderer   string
	benchOutput     string
	benchIntervalMs int
	benchVerbosity  int
)

// benchResult is one row of the measurement matrix.
type benchResult struct {
	Workers    int     `yaml:"workers"`
	Iterations int     `yaml:"iterations"`
	ElapsedMs  float64 `yaml:"elapsed_ms"`
	NsPerOp    float64 `yaml:"ns_per_op"`
	OpsPerSec  float64 `yaml:"ops_per_sec"`
	FinalCount uint64  `yaml:"final_count"`
}

// BenchCmd measures the cost of advancing a bar from N concurrent workers.
//
// With the default noop renderer the numbers isolate the tracking core
// (counter, sample ring, gate) from display cost; --renderer=bar measures
// the full path including terminal output.
func BenchCmd() *cobra.Command {
	var errLog logr.Logger

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure advance throughput across worker counts",
		PreRunE: func(c *cobra.Command, args []string) error {
			logrusErrLog := logrus.New()
			logrusErrLog.SetOutput(os.Stderr)
			errLog = logrusr.New(logrusErrLog)

			if err := validateBenchFlags(); err != nil {
				errLog.Error(err, "failed to validate flags")
				return err
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			logrusLog := logrus.New()
			logrusLog.SetOutput(os.Stderr)
			logrusLog.SetFormatter(&logrus.TextFormatter{})
			logrusLog.SetLevel(logrus.Level(benchVerbosity + 5))
			log := logrusr.New(logrusLog)

			results := make([]benchResult, 0, len(benchWorkers))
			for _, workers := range benchWorkers {
				log.V(2).Info("running benchmark", "workers", workers, "iterations", benchIterations)
				result, err := benchOne(workers)
				if err != nil {
					log.Error(err, "benchmark run failed", "workers", workers)
					return err
				}
				results = append(results, result)
			}

			return writeBenchResults(results)
		},
	}

	cmd.Flags().IntVar(&benchIterations, "iterations", 1_000_000, "Total advance calls per run")
	cmd.Flags().IntSliceVar(&benchWorkers, "workers", []int{1, 2, 4, 8}, "Worker counts to measure")
	cmd.Flags().StringVar(&benchRenderer, "renderer", "noop", "Renderer under test (noop, bar)")
	cmd.Flags().StringVar(&benchOutput, "output", "table", "Result format (table, yaml)")
	cmd.Flags().IntVar(&benchIntervalMs, "interval-ms", 33, "Render throttle interval in milliseconds")
	cmd.Flags().IntVar(&benchVerbosity, "verbose", 0, "Log verbosity")

	return cmd
}

func validateBenchFlags() error {
	if benchIterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", benchIterations)
	}
	if len(benchWorkers) == 0 {
		return fmt.Errorf("at least one worker count is required")
	}
	for _, w := range benchWorkers {
		if w <= 0 {
			return fmt.Errorf("worker counts must be positive, got %d", w)
		}
	}
	if benchRenderer != "noop" && benchRenderer != "bar" {
		return fmt.Errorf("unknown renderer %q (expected noop or bar)", benchRenderer)
	}
	if benchOutput != "table" && benchOutput != "yaml" {
		return fmt.Errorf("unknown output format %q (expected table or yaml)", benchOutput)
	}
	if benchIntervalMs < 0 {
		return fmt.Errorf("interval-ms must not be negative, got %d", benchIntervalMs)
	}
	return nil
}

// benchOne runs the full iteration count split across the given worker
// count and verifies counter conservation afterwards.
func benchOne(workers int) (benchResult, error) {
	renderer, interactive := benchRendererUnderTest()
	bar := pace.New(uint64(benchIterations),
		pace.WithRenderer(renderer),
		pace.WithInteractive(interactive),
		pace.WithRenderInterval(time.Duration(benchIntervalMs)*time.Millisecond),
	)

	per := benchIterations / workers
	extra := benchIterations % workers

	start := time.Now()
	g := new(errgroup.Group)
	for i := 0; i < workers; i++ {
		n := per
		if i < extra {
			n++
		}
		g.Go(func() error {
			for j := 0; j < n; j++ {
				bar.Inc()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return benchResult{}, err
	}
	elapsed := time.Since(start)
	bar.Finish()

	final := bar.Current()
	if final != uint64(benchIterations) {
		return benchResult{}, fmt.Errorf("lost updates: expected %d, counted %d", benchIterations, final)
	}

	return benchResult{
		Workers:    workers,
		Iterations: benchIterations,
		ElapsedMs:  float64(elapsed.Microseconds()) / 1000.0,
		NsPerOp:    float64(elapsed.Nanoseconds()) / float64(benchIterations),
		OpsPerSec:  float64(benchIterations) / elapsed.Seconds(),
		FinalCount: final,
	}, nil
}

// benchRendererUnderTest builds the renderer named by --renderer.
//
// The noop renderer still runs with the interactivity signal on so the
// gate and dispatch path are exercised; only the display work is elided.
func benchRendererUnderTest() (pace.Renderer, bool) {
	if benchRenderer == "bar" {
		return pace.NewBarRenderer(os.Stdout), term.Interactive()
	}
	return pace.NewNoopRenderer(), true
}

func writeBenchResults(results []benchResult) error {
	if benchOutput == "yaml" {
		data, err := yaml.Marshal(results)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	fmt.Printf("%-8s %-12s %-12s %-12s %-14s\n", "workers", "iterations", "elapsed_ms", "ns/op", "ops/s")
	for _, r := range results {
		fmt.Printf("%-8d %-12d %-12.2f %-12.2f %-14.0f\n",
			r.Workers, r.Iterations, r.ElapsedMs, r.NsPerOp, r.OpsPerSec)
	}
	return nil
}
