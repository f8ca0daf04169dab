package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"

	"github.com/arvid220u/rsakeys/battery"
	"github.com/joho/godotenv"
)

const (
	envBattery  = "RSA_BATTERY"
	envParallel = "RSA_PARALLEL"
)

type config struct {
	envFile     string
	batteryPath string
	parallelism int
}

// parseConfig reads flags, then the dotenv file. Environment values only
// fill in flags that were not given on the command line.
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	flags := flag.NewFlagSet("rsademo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.envFile, "env", ".env", "dotenv file to load (missing file is ignored)")
	flags.StringVar(&cfg.batteryPath, "battery", "", "JSON or YAML battery file (default: built-in examples, or $"+envBattery+")")
	flags.IntVar(&cfg.parallelism, "parallel", runtime.NumCPU(), "number of cases run at once, <= 0 for unbounded (or $"+envParallel+")")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if err := godotenv.Load(cfg.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", cfg.envFile, err)
	}

	given := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { given[f.Name] = true })
	if v := os.Getenv(envBattery); v != "" && !given["battery"] {
		cfg.batteryPath = v
	}
	if v := os.Getenv(envParallel); v != "" && !given["parallel"] {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envParallel, err)
		}
		cfg.parallelism = p
	}
	return cfg, nil
}

// run returns the process exit code: 0 if every case passed, 1 if any failed,
// 2 on bad usage or an unreadable battery.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "rsademo: ", 0)

	cfg, err := parseConfig(args, stderr)
	if err != nil {
		logger.Printf("%v", err)
		return 2
	}

	cases := battery.Default()
	if cfg.batteryPath != "" {
		cases, err = battery.Load(cfg.batteryPath)
		if err != nil {
			logger.Printf("%v", err)
			return 2
		}
	}

	results, err := battery.Run(ctx, cases, cfg.parallelism)
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	if err := battery.Report(stdout, results); err != nil {
		logger.Printf("write report: %v", err)
		return 1
	}
	if n := battery.Failed(results); n > 0 {
		logger.Printf("%d of %d cases failed", n, len(results))
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
