// Copyright 2024 Romazes

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/csv"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/Romazes/Lean.DataSource.NasdaqDataLink/download"
	"github.com/Romazes/Lean.DataSource.NasdaqDataLink/nasdaqdatalink"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
	"gonum.org/v1/gonum/stat"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	CacheDir string // default: ~/.nasdaqdatalink
	LogLevel logging.Level
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("nasdaqdatalink-import", flag.ExitOnError)
	fs.StringVar(&flags.CacheDir, "cache",
		filepath.Join(os.Getenv("HOME"), ".nasdaqdatalink"),
		"config and output directory")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	err := fs.Parse(args)
	return &flags, err
}

type Config struct {
	Key         string   `toml:"key"`          // user key for Nasdaq Data Link
	Symbols     []string `toml:"symbols"`      // datasets to download, e.g. "WIKI/FB"
	ValueColumn string   `toml:"value_column"` // optional preferred value column
}

func parseConfig(cacheDir string) (*Config, error) {
	filePath := filepath.Join(cacheDir, "config.toml")
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sample := `key = "YourSecretNasdaqDataLinkKey"
symbols = ["WIKI/FB"]
`
			err = errors.Annotate(err,
				"config file '%s' does not exist.\nPlease create config file containing:\n%s",
				filePath, sample)
			return nil, err
		} else {
			return nil, errors.Annotate(err,
				"cannot check config file for existence: '%s'", filePath)
		}
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	if len(c.Symbols) == 0 {
		return nil, errors.Reason("config file %s lists no symbols", filePath)
	}
	return &c, nil
}

// seriesFileName maps a dataset symbol to its output file, e.g. "WIKI/FB" ->
// "WIKI_FB.csv".
func seriesFileName(symbol string) string {
	return strings.ReplaceAll(symbol, "/", "_") + ".csv"
}

func writeSeries(filePath string, s *download.Series) error {
	f, err := os.Create(filePath)
	if err != nil {
		return errors.Annotate(err, "failed to create %s", filePath)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(s.Schema); err != nil {
		return errors.Annotate(err, "failed to write header to %s", filePath)
	}
	for _, r := range s.Records {
		if err := w.Write(r.CSV()); err != nil {
			return errors.Annotate(err, "failed to write row to %s", filePath)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Annotate(err, "failed to flush rows to %s", filePath)
	}
	return nil
}

func logSummary(ctx context.Context, s *download.Series) {
	values := s.Values()
	if len(values) == 0 {
		logging.Warningf(ctx, "%s: no records", s.Config.Symbol)
		return
	}
	start, end := s.DateRange()
	logging.Infof(ctx, "%s: %d records from %s to %s, value mean=%.4f stddev=%.4f",
		s.Config.Symbol, len(s.Records), start, end,
		stat.Mean(values, nil), stat.StdDev(values, nil))
}

func importAll(ctx context.Context, flags *Flags) error {
	config, err := parseConfig(flags.CacheDir)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	nasdaqdatalink.SetAuthCode(config.Key)
	if !nasdaqdatalink.IsAuthCodeSet() {
		logging.Warningf(ctx,
			"no API key configured; the vendor may reject anonymous requests")
	}

	configs := make([]nasdaqdatalink.Config, len(config.Symbols))
	for i, symbol := range config.Symbols {
		configs[i] = nasdaqdatalink.Config{
			Symbol:      symbol,
			ValueColumn: config.ValueColumn,
		}
	}
	series, err := download.FetchAll(ctx, configs)
	if err != nil {
		return errors.Annotate(err, "failed to download series")
	}
	for _, s := range series {
		filePath := filepath.Join(flags.CacheDir, seriesFileName(s.Config.Symbol))
		if err := writeSeries(filePath, s); err != nil {
			return errors.Annotate(err, "failed to write series for %s", s.Config.Symbol)
		}
		logSummary(ctx, s)
	}
	logging.Infof(ctx, "imported %d series into %s", len(series), flags.CacheDir)
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := importAll(ctx, flags); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
