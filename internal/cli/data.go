package cli

import (
	"context"
	"strings"

	"github.com/YuminosukeSato/arules/dataset"
	"github.com/YuminosukeSato/arules/pkg/log"
	"github.com/spf13/cobra"
)

var (
	flagDataPath     string
	flagCodebook     string
	flagDropConstant bool
)

// addDataFlags registers the dataset flags shared by mine and plot.
func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDataPath, "data", "", "headed CSV file (default: cached UCI mushroom data)")
	cmd.Flags().StringVar(&flagCodebook, "codebook", "", `"mushroom", "none" or a YAML codebook path`)
	cmd.Flags().BoolVar(&flagDropConstant, "drop-constant", true, "drop columns with a single value")
}

func applyDataFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	if f.Changed("data") {
		cfg.DataPath = flagDataPath
	}
	if f.Changed("codebook") {
		cfg.Codebook = flagCodebook
	}
	if f.Changed("drop-constant") {
		cfg.DropConstant = flagDropConstant
	}
}

// loadTable reads, relabels and cleans the configured dataset.
func loadTable(ctx context.Context) (*dataset.Table, error) {
	logger := log.GetLoggerWithName("cli")

	var (
		t   *dataset.Table
		err error
	)
	if cfg.DataPath != "" {
		logger.Info("Loading data from local file", "path", cfg.DataPath)
		t, err = dataset.LoadCSV(cfg.DataPath)
	} else {
		logger.Info("Loading data", "url", cfg.DataURL, "cache", cfg.CachePath)
		t, err = dataset.Fetch(ctx, dataset.FetchOptions{
			URL:        cfg.DataURL,
			CachePath:  cfg.CachePath,
			TargetLast: true,
		})
	}
	if err != nil {
		return nil, err
	}

	cb, err := codebook(cfg.Codebook)
	if err != nil {
		return nil, err
	}
	if cb != nil {
		var missing []string
		t, missing = dataset.ApplyCodebook(t, cb)
		if len(missing) > 0 {
			logger.Warn("Codebook columns not found in data", log.ColumnsKey, strings.Join(missing, ","))
		}
	}

	if cfg.DropConstant {
		var dropped []string
		t, dropped = dataset.DropConstantColumns(t)
		if len(dropped) > 0 {
			logger.Info("Dropping constant columns (no information)", log.ColumnsKey, strings.Join(dropped, ","))
		}
	}
	return t, nil
}

func codebook(name string) (dataset.Codebook, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "mushroom":
		return dataset.MushroomCodebook(), nil
	default:
		return dataset.LoadCodebook(name)
	}
}
