package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/YuminosukeSato/arules/pkg/errors"
)

// MushroomURL is the UCI Mushroom (agaricus-lepiota) data file.
const MushroomURL = "https://archive.ics.uci.edu/ml/machine-learning-databases/mushroom/agaricus-lepiota.data"

// MushroomColumns names the columns of the raw UCI file; the class comes first.
var MushroomColumns = []string{
	"poisonous", "cap-shape", "cap-surface", "cap-color", "bruises", "odor",
	"gill-attachment", "gill-spacing", "gill-size", "gill-color",
	"stalk-shape", "stalk-root", "stalk-surface-above-ring", "stalk-surface-below-ring",
	"stalk-color-above-ring", "stalk-color-below-ring", "veil-type", "veil-color",
	"ring-number", "ring-type", "spore-print-color", "population", "habitat",
}

// FetchOptions controls Fetch.
type FetchOptions struct {
	// URL of a headerless CSV. Defaults to MushroomURL.
	URL string
	// Columns names the headerless columns. Defaults to MushroomColumns.
	Columns []string
	// CachePath is a headed CSV read instead of downloading when it exists,
	// and written after a successful download. Empty disables caching.
	CachePath string
	// TargetLast moves the first column to the end, features then target.
	TargetLast bool
	// Client defaults to an http.Client with a 60s timeout.
	Client *http.Client
}

// Fetch loads the dataset from the local cache, or downloads it and fills the cache.
func Fetch(ctx context.Context, opts FetchOptions) (*Table, error) {
	if opts.CachePath != "" {
		if _, err := os.Stat(opts.CachePath); err == nil {
			return LoadCSV(opts.CachePath)
		}
	}
	if opts.URL == "" {
		opts.URL = MushroomURL
	}
	if opts.Columns == nil {
		opts.Columns = MushroomColumns
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, errors.Newf("fetch: unexpected status %s: %s", resp.Status, string(b))
	}

	t, err := ReadHeaderless(resp.Body, opts.Columns)
	if err != nil {
		return nil, err
	}
	if opts.TargetLast && t.NumColumns() > 1 {
		order := append(append([]string(nil), t.Columns[1:]...), t.Columns[0])
		if t, err = t.Select(order...); err != nil {
			return nil, err
		}
	}

	if opts.CachePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.CachePath), 0o755); err != nil {
			return nil, errors.Wrap(err, "mkdir cache dir")
		}
		if err := SaveCSV(opts.CachePath, t); err != nil {
			return nil, fmt.Errorf("write cache: %w", err)
		}
	}
	return t, nil
}
