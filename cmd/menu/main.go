package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/menu-knapsack/internal/config"
	"github.com/eugenenazirov/menu-knapsack/internal/knapsack"
	"github.com/eugenenazirov/menu-knapsack/internal/logging"
	"github.com/eugenenazirov/menu-knapsack/internal/report"
	"github.com/eugenenazirov/menu-knapsack/internal/storage"
)

type options struct {
	catalogFile string
	capacity    float64
	hideItems   bool
	logLevel    string
	maxExact    int
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	kingpin.FatalIfError(err, "parse arguments")

	logger, err := logging.New(opts.logLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Fatal("menu report failed", zap.Error(err))
	}
}

func parseArgs(args []string) (options, error) {
	var opts options
	app := kingpin.New("menu", "Compare greedy and exhaustive item selection over a menu")
	app.Flag("catalog", "YAML file with a top-level catalog list (defaults to the sample menu)").StringVar(&opts.catalogFile)
	app.Flag("capacity", "Calorie budget to allocate").Default("750").Float64Var(&opts.capacity)
	app.Flag("hide-items", "Only print the exact search total").BoolVar(&opts.hideItems)
	app.Flag("max-exact-items", "Largest catalog the exhaustive search will explore").Default("24").IntVar(&opts.maxExact)
	app.Flag("log-level", "Log level (debug, info, warn, error)").Default("warn").EnumVar(&opts.logLevel, "debug", "info", "warn", "error")

	if _, err := app.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(opts options, out io.Writer, logger *zap.Logger) error {
	items := storage.DefaultMenu()
	if opts.catalogFile != "" {
		loaded, err := config.LoadCatalogFile(opts.catalogFile)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		items = loaded
	}
	logger.Debug("catalog loaded", zap.Int("items", len(items)), zap.Float64("capacity", opts.capacity))

	solver := knapsack.New(knapsack.WithMaxExactItems(opts.maxExact))
	for _, strategy := range []knapsack.Strategy{knapsack.StrategyValue, knapsack.StrategyCost, knapsack.StrategyDensity} {
		sel, err := solver.Solve(strategy, items, opts.capacity)
		if err != nil {
			return fmt.Errorf("greedy by %s: %w", strategy, err)
		}
		if err := report.Greedy(out, report.GreedyLabels[strategy], opts.capacity, sel); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(out, "************"); err != nil {
		return err
	}

	sel, err := solver.Solve(knapsack.StrategyExact, items, opts.capacity)
	if err != nil {
		return fmt.Errorf("exact search: %w", err)
	}
	return report.Exact(out, opts.capacity, sel, !opts.hideItems)
}
